package models

import (
	"fmt"
	"time"
)

// Accepted layouts for the stored date string. The first one is what the
// frontend date picker submits.
var dateLayouts = []string{"2006-01-02", time.RFC3339, "01/02/2006"}

// ParseDate parses a stored record date.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not a valid date", s)
}

// ParseClock parses a stored record time of day (24h "HH:mm").
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a valid time", s)
	}
	return t, nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// ValidateMeta checks a record payload against the schema rules. typeSet is
// the kind-specific type enum (InterviewTypes or JobTypes). The returned
// error message names the first violated field, mirroring what clients show.
func ValidateMeta(m *RecordMeta, typeSet []string) error {
	switch {
	case m.Company == "":
		return fmt.Errorf("please provide company")
	case len(m.Company) > 50:
		return fmt.Errorf("company name should not be more than 50 characters")
	case m.Position == "":
		return fmt.Errorf("please provide position")
	case len(m.Position) > 50:
		return fmt.Errorf("position should not be more than 50 characters")
	case m.Status == "":
		return fmt.Errorf("please provide status")
	case !contains(Statuses, m.Status):
		return fmt.Errorf("%s is not a valid status", m.Status)
	case m.Type == "":
		return fmt.Errorf("please provide type")
	case !contains(typeSet, m.Type):
		return fmt.Errorf("%s is not a valid type", m.Type)
	case m.Date == "":
		return fmt.Errorf("please provide date")
	case m.Time == "":
		return fmt.Errorf("please provide time")
	}
	if _, err := ParseDate(m.Date); err != nil {
		return err
	}
	if _, err := ParseClock(m.Time); err != nil {
		return err
	}
	return nil
}
