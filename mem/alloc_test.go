package mem

import (
	"errors"
	"testing"
)

func TestQuotaAcquireRelease(t *testing.T) {
	q := NewQuotaAllocator(10)
	if err := q.Acquire(6); err != nil {
		t.Fatalf("Acquire(6): %v", err)
	}
	if q.Used() != 6 {
		t.Fatalf("used=%d", q.Used())
	}
	if err := q.Acquire(5); !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("expected ErrOutOfMemory, got %v", err)
	}
	if q.Used() != 6 {
		t.Fatalf("failed acquire changed used=%d", q.Used())
	}
	if err := q.Acquire(4); err != nil {
		t.Fatalf("Acquire(4): %v", err)
	}
	q.Release(10)
	if q.Used() != 0 {
		t.Fatalf("used=%d after release", q.Used())
	}
}

func TestQuotaUnlimited(t *testing.T) {
	q := NewQuotaAllocator(0)
	if err := q.Acquire(1 << 20); err != nil {
		t.Fatalf("unlimited acquire: %v", err)
	}
}

func TestQuotaIgnoresNonPositive(t *testing.T) {
	q := NewQuotaAllocator(1)
	if err := q.Acquire(0); err != nil {
		t.Fatalf("Acquire(0): %v", err)
	}
	if err := q.Acquire(-3); err != nil {
		t.Fatalf("Acquire(-3): %v", err)
	}
	q.Release(-3)
	if q.Used() != 0 {
		t.Fatalf("used=%d", q.Used())
	}
	q.Release(5)
	if q.Used() != 0 {
		t.Fatalf("used went negative: %d", q.Used())
	}
}

func TestSetLimit(t *testing.T) {
	q := NewQuotaAllocator(2)
	if err := q.Acquire(2); err != nil {
		t.Fatalf("Acquire(2): %v", err)
	}
	if err := q.Acquire(1); !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("expected ErrOutOfMemory, got %v", err)
	}
	q.SetLimit(5)
	if err := q.Acquire(3); err != nil {
		t.Fatalf("after SetLimit: %v", err)
	}
}
