package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar day in UTC held in its YYYY-MM-DD form, so equal days
// compare equal with ==.
type Date string

// ParseDate parses a strict YYYY-MM-DD string in UTC.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return "", err
	}
	return Date(t.Format(DateLayout)), nil
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	t, _ := time.ParseInLocation(DateLayout, string(d), time.UTC)
	return t
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, string(d), time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", string(d), err)
	}
	return t, nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = Date(v.UTC().Format(DateLayout))
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
	return nil
}

func (d *Date) scanText(s string) error {
	if len(s) < len(DateLayout) {
		return fmt.Errorf("cannot scan %q into Date", s)
	}
	parsed, err := ParseDate(s[:len(DateLayout)])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
