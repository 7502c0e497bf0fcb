package utils

import "testing"

func TestComparePassword(t *testing.T) {
	hashed, err := HashPassword("s3cret")
	if err != nil {
		t.Fatal(err)
	}

	if err := ComparePassword(string(hashed), "s3cret"); err != nil {
		t.Errorf("matching password rejected: %v", err)
	}
	if err := ComparePassword(string(hashed), "wrong"); err == nil {
		t.Error("wrong password accepted")
	}

	// a corrupted stored hash must fail the compare, not fall open
	if err := ComparePassword("not-a-bcrypt-hash", "s3cret"); err == nil {
		t.Error("malformed stored hash accepted")
	}
	if err := ComparePassword("", "s3cret"); err == nil {
		t.Error("empty stored hash accepted")
	}
}
