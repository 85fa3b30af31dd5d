package arena

import "testing"

type point struct{ x, y int }

func TestAllocStableAddress(t *testing.T) {
	a := New("")

	first := Alloc(a, point{1, 2})
	for i := 0; i < segmentSize*3; i++ {
		Alloc(a, point{i, i})
	}

	if first.x != 1 || first.y != 2 {
		t.Fatalf("pointer returned by first Alloc became stale after growth: got %+v", *first)
	}
}

func TestAllocSeparatesTypes(t *testing.T) {
	a := New("")

	p := Alloc(a, point{1, 2})
	s := Alloc(a, "hello")

	if p.x != 1 {
		t.Fatalf("point corrupted: %+v", *p)
	}
	if *s != "hello" {
		t.Fatalf("string corrupted: %q", *s)
	}
}

func TestListPushAndSlice(t *testing.T) {
	a := New("")
	l := Empty[int](a)

	for i := 1; i <= 5; i++ {
		l.Push(i)
	}

	got := l.Slice()
	want := []int{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("Slice() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Slice()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if l.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", l.Len())
	}
}

func TestFromSingle(t *testing.T) {
	a := New("")
	l := FromSingle(a, "only")
	if l.Len() != 1 || l.Slice()[0] != "only" {
		t.Fatalf("FromSingle produced %v", l.Slice())
	}
}

func TestSourceIsNulTerminated(t *testing.T) {
	a := New("abc")
	src := a.Source()
	if len(src) != 4 || src[3] != 0 {
		t.Fatalf("Source() = %v, want nul-terminated copy of %q", src, "abc")
	}
	if a.Text(0, 3) != "abc" {
		t.Fatalf("Text(0,3) = %q, want %q", a.Text(0, 3), "abc")
	}
}

func TestIntern(t *testing.T) {
	a := New("")
	s1 := a.Intern("foo")
	s2 := a.Intern("foo")
	if s1 != s2 {
		t.Fatalf("Intern did not return equal strings: %q vs %q", s1, s2)
	}
}
