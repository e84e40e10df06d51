package util

import (
	"fmt"
	"time"

	"backoffice/internal/models"
)

// ValidateRole checks that a role is one of the known roles.
func ValidateRole(role string) error {
	if role != models.RoleAdmin && role != models.RoleEmployee {
		return fmt.Errorf("unknown role %q", role)
	}
	return nil
}

// ValidateEntryType checks an entry type against the known set.
func ValidateEntryType(t string) error {
	for _, known := range models.EntryTypes {
		if t == known {
			return nil
		}
	}
	return fmt.Errorf("unknown entry type %q", t)
}

// entry dates are displayed dd-mm-yyyy; date pickers submit yyyy-mm-dd
var entryDateLayouts = []string{"02-01-2006", "2006-01-02"}

// ParseEntryDate parses an entry or filter date in either accepted layout.
func ParseEntryDate(s string) (time.Time, error) {
	for _, layout := range entryDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want dd-mm-yyyy", s)
}
