package mpint

import "testing"

func TestMulBasic(t *testing.T) {
	tests := []struct {
		x, y, want int64
	}{
		{6, 7, 42},
		{-6, 7, -42},
		{6, -7, -42},
		{-6, -7, 42},
		{0, 12345, 0},
		{1, -1, -1},
	}
	for _, tt := range tests {
		z := new(Int)
		Mul(z, NewInt(tt.x), NewInt(tt.y))
		if got := z.Int64(); got != tt.want {
			t.Errorf("Mul(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestMulCommutative(t *testing.T) {
	a := NewInt(123456789012345)
	b := NewInt(987654321)
	ab := new(Int)
	ba := new(Int)
	Mul(ab, a, b)
	Mul(ba, b, a)
	if Cmp(ab, ba) != 0 {
		t.Errorf("a*b = %v, b*a = %v, want equal", ab, ba)
	}
}

func TestMulDistributesOverAdd(t *testing.T) {
	a := NewInt(17)
	b := NewInt(23)
	c := NewInt(-9)

	bc := new(Int)
	Add(bc, b, c)
	lhs := new(Int)
	Mul(lhs, a, bc)

	ab := new(Int)
	ac := new(Int)
	Mul(ab, a, b)
	Mul(ac, a, c)
	rhs := new(Int)
	Add(rhs, ab, ac)

	if Cmp(lhs, rhs) != 0 {
		t.Errorf("a*(b+c) = %v, a*b+a*c = %v, want equal", lhs, rhs)
	}
}

func TestMulWideResultCrossesLimbs(t *testing.T) {
	a := new(Int)
	ReadString(a, "ffffffffffffffff", 16)
	b := a.Clone()
	z := new(Int)
	Mul(z, a, b)

	want := new(Int)
	ReadString(want, "fffffffffffffffe0000000000000001", 16)
	if Cmp(z, want) != 0 {
		t.Errorf("(2^64-1)^2 = %v, want %v", z, want)
	}
}

func TestMulIntMatchesMul(t *testing.T) {
	a := NewInt(41)
	z1 := new(Int)
	MulInt(z1, a, 3)
	z2 := new(Int)
	Mul(z2, a, NewInt(3))
	if Cmp(z1, z2) != 0 {
		t.Errorf("MulInt diverged from Mul: %v vs %v", z1, z2)
	}
}
