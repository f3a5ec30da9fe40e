package mpint

import (
	"math"
	"testing"
)

func TestSetInt64RoundTrip(t *testing.T) {
	tests := []int64{0, 1, -1, 42, -42, math.MaxInt64, math.MinInt64}
	for _, v := range tests {
		x := NewInt(v)
		if got := x.Int64(); got != v {
			t.Errorf("NewInt(%d).Int64() = %d", v, got)
		}
	}
}

func TestReadWriteStringRoundTrip(t *testing.T) {
	values := []string{"0", "-0", "123456789012345678901234567890", "-987654321", "1"}
	for _, radix := range []int{2, 8, 10, 16} {
		for _, v := range values {
			x := new(Int)
			if err := ReadString(x, v, 10); err != nil {
				t.Fatalf("ReadString(%q, 10): %v", v, err)
			}
			s, err := WriteString(x, radix)
			if err != nil {
				t.Fatalf("WriteString radix %d: %v", radix, err)
			}
			back := new(Int)
			if err := ReadString(back, s, radix); err != nil {
				t.Fatalf("ReadString(%q, %d): %v", s, radix, err)
			}
			if Cmp(back, x) != 0 {
				t.Errorf("round trip through radix %d failed for %q: got %v", radix, v, back)
			}
		}
	}
}

func TestReadStringRejectsBadInput(t *testing.T) {
	x := new(Int)
	cases := []string{"", "-", "+", "12g", "1.5"}
	for _, c := range cases {
		if err := ReadString(x, c, 10); err == nil {
			t.Errorf("ReadString(%q, 10) should have failed", c)
		}
	}
}

func TestReadStringRejectsBadRadix(t *testing.T) {
	x := new(Int)
	if err := ReadString(x, "10", 1); err == nil {
		t.Error("expected BadInput for radix 1")
	}
	if err := ReadString(x, "10", 17); err == nil {
		t.Error("expected BadInput for radix 17")
	}
}

func TestWriteStringZero(t *testing.T) {
	s, err := WriteString(new(Int), 16)
	if err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if s != "0" {
		t.Errorf("WriteString(0, 16) = %q, want %q", s, "0")
	}
}

func TestWriteStringLowercaseHex(t *testing.T) {
	x := new(Int)
	ReadString(x, "ABCDEF", 16)
	s, _ := WriteString(x, 16)
	if s != "abcdef" {
		t.Errorf("WriteString = %q, want lowercase %q", s, "abcdef")
	}
}

func TestReadWriteBinaryRoundTrip(t *testing.T) {
	x := new(Int)
	ReadString(x, "123456789012345678901234567890", 10)

	size := BinarySize(x)
	buf := make([]byte, size)
	if err := WriteBinary(x, buf); err != nil {
		t.Fatalf("WriteBinary: %v", err)
	}

	back := new(Int)
	if err := ReadBinary(back, buf); err != nil {
		t.Fatalf("ReadBinary: %v", err)
	}
	if Cmp(back, x) != 0 {
		t.Errorf("binary round trip failed: got %v, want %v", back, x)
	}
}

func TestWriteBinaryTooSmallReportsRequired(t *testing.T) {
	x := new(Int)
	ReadString(x, "ffffffffffffffff", 16)
	buf := make([]byte, 4)
	err := WriteBinary(x, buf)
	if err == nil {
		t.Fatal("expected BufferTooSmall")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != BufferTooSmall {
		t.Fatalf("expected BufferTooSmall, got %v", err)
	}
	if e.Required != 8 {
		t.Errorf("Required = %d, want 8", e.Required)
	}
}

func TestReadBinaryEmptyIsZero(t *testing.T) {
	z := new(Int)
	if err := ReadBinary(z, nil); err != nil {
		t.Fatalf("ReadBinary(nil): %v", err)
	}
	if !z.IsZero() {
		t.Errorf("ReadBinary(nil) should produce zero, got %v", z)
	}
}

func TestWriteBinaryZeroPads(t *testing.T) {
	x := NewInt(1)
	buf := make([]byte, 4)
	if err := WriteBinary(x, buf); err != nil {
		t.Fatalf("WriteBinary: %v", err)
	}
	want := []byte{0, 0, 0, 1}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf = %v, want %v", buf, want)
			break
		}
	}
}

func TestStringImplementsStringer(t *testing.T) {
	x := NewInt(-255)
	if x.String() != "-255" {
		t.Errorf("String() = %q, want %q", x.String(), "-255")
	}
	if x.GoString() != "mpint.Int(-255)" {
		t.Errorf("GoString() = %q, want %q", x.GoString(), "mpint.Int(-255)")
	}
}
