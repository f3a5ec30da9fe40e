package mpint

import "testing"

func TestCondAssign(t *testing.T) {
	x := NewInt(5)
	y := NewInt(99)

	CondAssign(x, y, 0)
	if x.Int64() != 5 {
		t.Errorf("CondAssign with cond=0 changed x to %d, want unchanged 5", x.Int64())
	}

	CondAssign(x, y, 1)
	if x.Int64() != 99 {
		t.Errorf("CondAssign with cond=1: x = %d, want 99", x.Int64())
	}
}

func TestCondAssignNegative(t *testing.T) {
	x := NewInt(5)
	y := NewInt(-99)
	CondAssign(x, y, 1)
	if x.Int64() != -99 {
		t.Errorf("CondAssign did not carry sign: x = %d, want -99", x.Int64())
	}
}

func TestCondSwap(t *testing.T) {
	x := NewInt(1)
	y := NewInt(2)

	CondSwap(x, y, 0)
	if x.Int64() != 1 || y.Int64() != 2 {
		t.Errorf("CondSwap with cond=0 swapped: x=%d y=%d", x.Int64(), y.Int64())
	}

	CondSwap(x, y, 1)
	if x.Int64() != 2 || y.Int64() != 1 {
		t.Errorf("CondSwap with cond=1: x=%d y=%d, want x=2 y=1", x.Int64(), y.Int64())
	}
}

func TestCondSwapNegativeValues(t *testing.T) {
	x := NewInt(-7)
	y := NewInt(13)
	CondSwap(x, y, 1)
	if x.Int64() != 13 || y.Int64() != -7 {
		t.Errorf("CondSwap: x=%d y=%d, want x=13 y=-7", x.Int64(), y.Int64())
	}
}

func TestCondAssignRawMasking(t *testing.T) {
	dst := []uint64{1, 2, 3}
	src := []uint64{9, 9, 9}
	CondAssignRaw(dst, src, 0)
	for i, v := range dst {
		if v != []uint64{1, 2, 3}[i] {
			t.Errorf("CondAssignRaw(cond=0) mutated dst: %v", dst)
		}
	}
	CondAssignRaw(dst, src, 1)
	for _, v := range dst {
		if v != 9 {
			t.Errorf("CondAssignRaw(cond=1) = %v, want all 9", dst)
		}
	}
}

func TestCondMaskValues(t *testing.T) {
	if condMask(0) != 0 {
		t.Error("condMask(0) should be 0")
	}
	if condMask(1) != wordMax {
		t.Error("condMask(1) should be all-ones")
	}
}
