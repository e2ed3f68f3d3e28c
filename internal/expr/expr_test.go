package expr

import "testing"

func TestAddStringConcat(t *testing.T) {
	e := Add(Str("a"), Str("b"))
	b, ok := e.(*BinOp)
	if !ok {
		t.Fatalf("Add(str, str) = %T, want *BinOp", e)
	}
	if b.Op != OpStrCat || b.Kind() != KindStr {
		t.Fatalf("Add(str, str) op/kind = %v/%v, want OpStrCat/KindStr", b.Op, b.Kind())
	}
}

func TestAddNegativeLiteralLowersToSub(t *testing.T) {
	e := Add(Int(5), Int(-3))
	b, ok := e.(*BinOp)
	if !ok {
		t.Fatalf("Add(int, -lit) = %T, want *BinOp", e)
	}
	if b.Op != OpSub {
		t.Fatalf("Add(int, -lit) op = %v, want OpSub", b.Op)
	}
	rhs, ok := b.Right.(*Lit)
	if !ok || rhs.IntVal != 3 {
		t.Fatalf("Add(int, -lit) right = %+v, want Lit{IntVal: 3}", b.Right)
	}
}

func TestAddPositiveIntegers(t *testing.T) {
	e := Add(Int(5), Int(3))
	b, ok := e.(*BinOp)
	if !ok || b.Op != OpAdd || b.Kind() != KindInt {
		t.Fatalf("Add(int, int) = %+v, want BinOp{Op: OpAdd, K: KindInt}", e)
	}
}

func TestAddVariableOperandNotTreatedAsNegative(t *testing.T) {
	e := Add(Int(5), &Var{Name: "x", K: KindInt})
	b, ok := e.(*BinOp)
	if !ok || b.Op != OpAdd {
		t.Fatalf("Add(int, var) = %+v, want BinOp{Op: OpAdd}", e)
	}
}

func TestComparisonConstructorsYieldBoolKind(t *testing.T) {
	ctors := []func(Expr, Expr) *BinOp{Eq, Neq, Lt, Gt, Le, Ge, And, Or}
	for _, ctor := range ctors {
		e := ctor(Int(1), Int(2))
		if e.Kind() != KindBool {
			t.Fatalf("constructor produced kind %v, want KindBool", e.Kind())
		}
	}
}

func TestKindStringNames(t *testing.T) {
	cases := map[Kind]string{KindStr: "str", KindInt: "int", KindBool: "bool"}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestIsAnyAndFenAndIndirectKinds(t *testing.T) {
	if (&IsAny{}).Kind() != KindBool {
		t.Fatalf("IsAny.Kind() != KindBool")
	}
	if (&Fen{}).Kind() != KindStr {
		t.Fatalf("Fen.Kind() != KindStr")
	}
	if (&Indirect{}).Kind() != KindStr {
		t.Fatalf("Indirect.Kind() != KindStr")
	}
}
