package mpint

import "testing"

func TestCmpOrdering(t *testing.T) {
	tests := []struct {
		x, y int64
		want int
	}{
		{1, 2, -1},
		{2, 1, 1},
		{1, 1, 0},
		{-1, 1, -1},
		{1, -1, 1},
		{-1, -1, 0},
		{-2, -1, -1},
		{0, 0, 0},
		{0, -1, 1},
		{0, 1, -1},
	}
	for _, tt := range tests {
		got := Cmp(NewInt(tt.x), NewInt(tt.y))
		if got != tt.want {
			t.Errorf("Cmp(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCmpIntMatchesCmp(t *testing.T) {
	x := NewInt(42)
	if CmpInt(x, 42) != 0 {
		t.Errorf("CmpInt(42, 42) != 0")
	}
	if CmpInt(x, 41) != 1 {
		t.Errorf("CmpInt(42, 41) != 1")
	}
	if CmpInt(x, 43) != -1 {
		t.Errorf("CmpInt(42, 43) != -1")
	}
}

func TestCmpAbsIgnoresSign(t *testing.T) {
	if CmpAbs(NewInt(-5), NewInt(5)) != 0 {
		t.Error("CmpAbs(-5, 5) should be 0")
	}
	if CmpAbs(NewInt(-5), NewInt(3)) != 1 {
		t.Error("CmpAbs(-5, 3) should be 1")
	}
}

func TestBitAndSetBit(t *testing.T) {
	x := new(Int)
	if err := x.SetBit(3, 1); err != nil {
		t.Fatalf("SetBit: %v", err)
	}
	if x.Bit(3) != 1 {
		t.Errorf("Bit(3) = %d, want 1", x.Bit(3))
	}
	if x.Int64() != 8 {
		t.Errorf("after SetBit(3,1), value = %d, want 8", x.Int64())
	}
	if err := x.SetBit(3, 0); err != nil {
		t.Fatalf("SetBit: %v", err)
	}
	if x.Bit(3) != 0 || !x.IsZero() {
		t.Errorf("after clearing bit 3, expected zero, got %v", x)
	}
}

func TestSetBitRejectsBadValue(t *testing.T) {
	x := new(Int)
	if err := x.SetBit(0, 2); err == nil {
		t.Fatal("expected BadInput for v > 1")
	}
}

func TestBitBeyondAllocationIsZero(t *testing.T) {
	x := NewInt(1)
	if x.Bit(500) != 0 {
		t.Errorf("Bit(500) on a small value should be 0")
	}
}

func TestLsbAndMsb(t *testing.T) {
	x := NewInt(0b1011000)
	if x.Lsb() != 3 {
		t.Errorf("Lsb(0b1011000) = %d, want 3", x.Lsb())
	}
	if x.Msb() != 7 {
		t.Errorf("Msb(0b1011000) = %d, want 7", x.Msb())
	}
	if x.BitLen() != x.Msb() {
		t.Error("BitLen should alias Msb")
	}
}

func TestLsbOfZeroIsZero(t *testing.T) {
	z := new(Int)
	if z.Lsb() != 0 {
		t.Errorf("Lsb(0) = %d, want 0 by convention", z.Lsb())
	}
}
