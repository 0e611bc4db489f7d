package vec

import "testing"

func TestEqualIgnoresCapacityAndDeadSlots(t *testing.T) {
	av, aerr := NewOf(1, 2, 3)
	a := mustVec(t, av, aerr)
	bv, berr := NewWithCapacity[int](10)
	b := mustVec(t, bv, berr)
	for i := 1; i <= 3; i++ {
		if err := b.PushBack(i); err != nil {
			t.Fatalf("PushBack: %v", err)
		}
	}
	// Leave a stale value in a dead slot of b.
	if err := b.PushBack(99); err != nil {
		t.Fatalf("PushBack: %v", err)
	}
	b.PopBack()
	if !Equal(a, b) || !Equal(b, a) {
		t.Fatalf("a=%v b=%v", a.Items(), b.Items())
	}
	if !Equal(a, a) {
		t.Fatalf("not reflexive")
	}
}

func TestEqualMismatch(t *testing.T) {
	av, aerr := NewOf(1, 2, 3)
	a := mustVec(t, av, aerr)
	bv, berr := NewOf(1, 2)
	b := mustVec(t, bv, berr)
	cv, cerr := NewOf(1, 2, 4)
	c := mustVec(t, cv, cerr)
	if Equal(a, b) || Equal(a, c) {
		t.Fatalf("unexpected equality")
	}
}

func TestEqualNilAsEmpty(t *testing.T) {
	var a *Vector[int]
	if !Equal(a, New[int]()) {
		t.Fatalf("nil should equal empty")
	}
	bv, berr := NewOf(1)
	if Equal(a, mustVec(t, bv, berr)) {
		t.Fatalf("nil should not equal non-empty")
	}
}

func TestCompareOrdering(t *testing.T) {
	cases := []struct {
		a, b []int
		want int
	}{
		{[]int{1, 2}, []int{1, 3}, -1},
		{[]int{1, 3}, []int{1, 2}, 1},
		{[]int{1, 2}, []int{1, 2, 0}, -1},
		{[]int{1, 2, 0}, []int{1, 2}, 1},
		{[]int{1, 2}, []int{1, 2}, 0},
		{nil, nil, 0},
		{nil, []int{0}, -1},
	}
	for _, c := range cases {
		av, aerr := NewOf(c.a...)
		a := mustVec(t, av, aerr)
		bv, berr := NewOf(c.b...)
		b := mustVec(t, bv, berr)
		if got := Compare(a, b); got != c.want {
			t.Fatalf("Compare(%v,%v)=%d want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestDerivedOrderings(t *testing.T) {
	lov, loerr := NewOf(1, 2)
	lo := mustVec(t, lov, loerr)
	hiv, hierr := NewOf(1, 3)
	hi := mustVec(t, hiv, hierr)
	if !Less(lo, hi) || Less(hi, lo) || Less(lo, lo) {
		t.Fatalf("Less misbehaves")
	}
	if !LessOrEqual(lo, hi) || !LessOrEqual(lo, lo) || LessOrEqual(hi, lo) {
		t.Fatalf("LessOrEqual misbehaves")
	}
	if !Greater(hi, lo) || Greater(lo, hi) || Greater(hi, hi) {
		t.Fatalf("Greater misbehaves")
	}
	if !GreaterOrEqual(hi, lo) || !GreaterOrEqual(hi, hi) || GreaterOrEqual(lo, hi) {
		t.Fatalf("GreaterOrEqual misbehaves")
	}
}

func TestEqualFunc(t *testing.T) {
	a := New[payload]()
	b := New[payload]()
	for i := 0; i < 3; i++ {
		if err := a.PushBack(newPayload(i)); err != nil {
			t.Fatalf("PushBack: %v", err)
		}
		if err := b.PushBack(newPayload(i)); err != nil {
			t.Fatalf("PushBack: %v", err)
		}
	}
	sameTag := func(x, y payload) bool { return *x.tag == *y.tag }
	if !EqualFunc(a, b, sameTag) {
		t.Fatalf("expected equal by tag")
	}
	b.PopBack()
	if EqualFunc(a, b, sameTag) {
		t.Fatalf("length mismatch not detected")
	}
}

func TestCompareFunc(t *testing.T) {
	a := New[payload]()
	b := New[payload]()
	for i := 0; i < 2; i++ {
		if err := a.PushBack(newPayload(i)); err != nil {
			t.Fatalf("PushBack: %v", err)
		}
		if err := b.PushBack(newPayload(i + 1)); err != nil {
			t.Fatalf("PushBack: %v", err)
		}
	}
	byTag := func(x, y payload) int { return *x.tag - *y.tag }
	if got := CompareFunc(a, b, byTag); got >= 0 {
		t.Fatalf("CompareFunc=%d", got)
	}
	if got := CompareFunc(b, a, byTag); got <= 0 {
		t.Fatalf("CompareFunc=%d", got)
	}
}
