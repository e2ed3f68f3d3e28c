package instrset

import (
	"testing"

	"github.com/funvibe/rgxchess/internal/state"
)

func TestToUnaryFromUnaryRoundTrip(t *testing.T) {
	toUnary, err := ToUnary()
	if err != nil {
		t.Fatalf("ToUnary: %v", err)
	}
	fromUnary, err := FromUnary()
	if err != nil {
		t.Fatalf("FromUnary: %v", err)
	}

	for _, v := range []int{0, 1, 5, 63} {
		lit, err := state.EncodeInt(v)
		if err != nil {
			t.Fatalf("EncodeInt(%d): %v", v, err)
		}
		unary := apply(t, toUnary, "%%\n#stack:\n"+lit+"\n")
		wantUnary := "%%\n#stack:\n"
		for i := 0; i < v; i++ {
			wantUnary += "A"
		}
		wantUnary += "\n"
		if unary != wantUnary {
			t.Fatalf("ToUnary(%d) = %q, want %q", v, unary, wantUnary)
		}

		back := apply(t, fromUnary, unary)
		wantBack := "%%\n#stack:\n" + lit + "\n"
		if back != wantBack {
			t.Fatalf("FromUnary(%d) = %q, want %q", v, back, wantBack)
		}
	}
}

func TestAddUnary(t *testing.T) {
	rules, err := AddUnary()
	if err != nil {
		t.Fatalf("AddUnary: %v", err)
	}
	got := apply(t, rules, "%%\n#stack:\nAAA\nAA\n")
	want := "%%\n#stack:\nAAAAA\n"
	if got != want {
		t.Fatalf("AddUnary(3,2) = %q, want %q", got, want)
	}
}

func TestSubUnary(t *testing.T) {
	rules, err := SubUnary()
	if err != nil {
		t.Fatalf("SubUnary: %v", err)
	}
	if got := apply(t, rules, "%%\n#stack:\nAAAAA\nAA\n"); got != "%%\n#stack:\nAAA\n" {
		t.Fatalf("SubUnary(5,2) = %q", got)
	}
	if got := apply(t, rules, "%%\n#stack:\nAA\nAAAAA\n"); got != "%%\n#stack:\n\n" {
		t.Fatalf("SubUnary(2,5) (clamped to 0) = %q", got)
	}
}

func TestStringCat(t *testing.T) {
	rules, err := StringCat()
	if err != nil {
		t.Fatalf("StringCat: %v", err)
	}
	got := apply(t, rules, "%%\n#stack:\nfoo\nbar\n")
	want := "%%\n#stack:\nfoobar\n"
	if got != want {
		t.Fatalf("StringCat = %q, want %q", got, want)
	}
}

func TestBinaryAddRoundTrip(t *testing.T) {
	rules, err := BinaryAdd()
	if err != nil {
		t.Fatalf("BinaryAdd: %v", err)
	}
	a, _ := state.EncodeInt(5)
	b, _ := state.EncodeInt(3)
	got := apply(t, rules, "%%\n#stack:\n"+a+"\n"+b+"\n")
	want, _ := state.EncodeInt(8)
	if got != "%%\n#stack:\n"+want+"\n" {
		t.Fatalf("BinaryAdd(5,3) = %q, want %q", got, "%%\n#stack:\n"+want+"\n")
	}
}

func TestBinarySubtractRoundTrip(t *testing.T) {
	rules, err := BinarySubtract()
	if err != nil {
		t.Fatalf("BinarySubtract: %v", err)
	}
	a, _ := state.EncodeInt(9)
	b, _ := state.EncodeInt(4)
	got := apply(t, rules, "%%\n#stack:\n"+a+"\n"+b+"\n")
	want, _ := state.EncodeInt(5)
	if got != "%%\n#stack:\n"+want+"\n" {
		t.Fatalf("BinarySubtract(9,4) = %q, want %q", got, "%%\n#stack:\n"+want+"\n")
	}
}
