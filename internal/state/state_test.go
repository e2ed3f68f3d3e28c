package state

import "testing"

// Testable Property 1 (SPEC_FULL.md §8): Parse(s.String()) round trips
// byte-for-byte for any State Parse produced.
func TestParseStringRoundTrip(t *testing.T) {
	src := "%%\n#stack:\nAAA\nhello\n#x: 1\n#y: two\n%UID0True\n#stack:\n#z: 3\n"

	st, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := st.String(); got != src {
		t.Fatalf("round trip mismatch:\n got %q\nwant %q", got, src)
	}

	again, err := Parse(st.String())
	if err != nil {
		t.Fatalf("Parse (2nd pass): %v", err)
	}
	if again.String() != src {
		t.Fatalf("second round trip mismatch: %q", again.String())
	}
}

func TestParseThreadsAndVars(t *testing.T) {
	src := "%%\n#stack:\nAAA\n#x: 1\n%TAG1\n#stack:\n#y: 2\n"
	st, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(st.Threads) != 2 {
		t.Fatalf("expected 2 threads, got %d", len(st.Threads))
	}
	if !st.Threads[0].Active {
		t.Fatalf("expected first thread active")
	}
	if st.Threads[1].Active || st.Threads[1].Tag != "TAG1" {
		t.Fatalf("expected second thread inactive with tag TAG1, got %+v", st.Threads[1])
	}
	if v, ok := st.Threads[0].Lookup("x"); !ok || v != "1" {
		t.Fatalf("expected x=1, got %q ok=%v", v, ok)
	}
	active := st.ActiveThreads()
	if len(active) != 1 || active[0] != 0 {
		t.Fatalf("expected active threads [0], got %v", active)
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse("not-a-header\n"); err == nil {
		t.Fatalf("expected error for malformed header")
	}
	if _, err := Parse("%%\nnotstack\n"); err == nil {
		t.Fatalf("expected error for missing #stack: line")
	}
}
