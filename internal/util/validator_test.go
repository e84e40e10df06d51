package util

import (
	"testing"
	"time"
)

func TestValidateRole_Known(t *testing.T) {
	for _, role := range []string{"admin", "employee"} {
		if err := ValidateRole(role); err != nil {
			t.Errorf("ValidateRole(%q) error = %v, want nil", role, err)
		}
	}
}

func TestValidateRole_Unknown(t *testing.T) {
	for _, role := range []string{"", "root", "Admin ", "superuser"} {
		if err := ValidateRole(role); err == nil {
			t.Errorf("ValidateRole(%q) error = nil, want error", role)
		}
	}
}

func TestValidateEntryType_Known(t *testing.T) {
	for _, typ := range []string{"Quotation", "Invoice", "Purchase", "Goods Exp", "Cash Exp"} {
		if err := ValidateEntryType(typ); err != nil {
			t.Errorf("ValidateEntryType(%q) error = %v, want nil", typ, err)
		}
	}
}

func TestValidateEntryType_Unknown(t *testing.T) {
	for _, typ := range []string{"", "quotation", "Receipt"} {
		if err := ValidateEntryType(typ); err == nil {
			t.Errorf("ValidateEntryType(%q) error = nil, want error", typ)
		}
	}
}

func TestParseEntryDate_DisplayFormat(t *testing.T) {
	got, err := ParseEntryDate("03-12-2025")
	if err != nil {
		t.Fatalf("ParseEntryDate(03-12-2025) error = %v", err)
	}
	want := time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseEntryDate(03-12-2025) = %v, want %v", got, want)
	}
}

func TestParseEntryDate_ISOFormat(t *testing.T) {
	got, err := ParseEntryDate("2025-12-03")
	if err != nil {
		t.Fatalf("ParseEntryDate(2025-12-03) error = %v", err)
	}
	if got.Day() != 3 || got.Month() != time.December || got.Year() != 2025 {
		t.Errorf("ParseEntryDate(2025-12-03) = %v", got)
	}
}

func TestParseEntryDate_Invalid(t *testing.T) {
	for _, s := range []string{"", "not-a-date", "2025/12/03", "32-13-2025"} {
		if _, err := ParseEntryDate(s); err == nil {
			t.Errorf("ParseEntryDate(%q) error = nil, want error", s)
		}
	}
}
