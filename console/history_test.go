package console

import "testing"

func TestHistoryAdd(t *testing.T) {
	h := NewHistory(0)

	h.Add("gcd(462,1071)")
	h.Add("invmod(3,11)")

	if h.Size() != 2 {
		t.Errorf("Size = %d, want 2", h.Size())
	}
	all := h.GetAll()
	if all[0] != "gcd(462,1071)" {
		t.Errorf("first entry = %q, want gcd(462,1071)", all[0])
	}
}

func TestHistoryIgnoresEmptyAndDuplicates(t *testing.T) {
	h := NewHistory(0)

	h.Add("isprime(97)")
	h.Add("")
	h.Add("isprime(97)")
	h.Add("1a2b#16")

	if h.Size() != 2 {
		t.Errorf("Size = %d, want 2", h.Size())
	}
}

func TestHistoryPreviousNext(t *testing.T) {
	h := NewHistory(0)
	h.Add("3^7 mod 13")
	h.Add("gcd(462,1071)")

	if got := h.Previous(); got != "gcd(462,1071)" {
		t.Errorf("Previous() = %q, want gcd(462,1071)", got)
	}
	if got := h.Previous(); got != "3^7 mod 13" {
		t.Errorf("Previous() = %q, want 3^7 mod 13", got)
	}
	if got := h.Previous(); got != "" {
		t.Errorf("Previous() past the start should return empty, got %q", got)
	}
	if got := h.Next(); got != "gcd(462,1071)" {
		t.Errorf("Next() = %q, want gcd(462,1071)", got)
	}
}

func TestHistoryMaxSizeTrims(t *testing.T) {
	h := NewHistory(2)
	h.Add("a")
	h.Add("b")
	h.Add("c")

	all := h.GetAll()
	if len(all) != 2 || all[0] != "b" || all[1] != "c" {
		t.Errorf("GetAll() = %v, want [b c]", all)
	}
}

func TestHistorySearch(t *testing.T) {
	h := NewHistory(0)
	h.Add("gcd(462,1071)")
	h.Add("gcd(4,6)")
	h.Add("isprime(97)")

	results := h.Search("gcd")
	if len(results) != 2 {
		t.Errorf("Search(gcd) returned %d entries, want 2", len(results))
	}
}
