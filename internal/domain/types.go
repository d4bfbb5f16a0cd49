package domain

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

const (
	dateLayout      = "2006-01-02"
	clockLayout     = "15:04"
	clockFullLayout = "15:04:05"
)

// Date is a calendar day with no time-of-day component. All events are dated
// in UTC, so Date carries no location.
type Date struct {
	t time.Time
}

// NewDate returns the Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: want YYYY-MM-DD", s)
	}
	return Date{t: t.UTC()}, nil
}

// Time returns midnight UTC on the date.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) String() string {
	return d.t.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("unmarshal date: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner for DATE columns.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("scan date: unsupported type %T", src)
	}
}

// Value implements driver.Valuer for DATE columns.
func (d Date) Value() (driver.Value, error) {
	return d.t, nil
}

// ClockTime is a time of day in UTC with minute precision, stored as minutes
// since midnight. Seconds are not modeled.
type ClockTime int

// NewClockTime returns the ClockTime for the given hour and minute.
func NewClockTime(hour, minute int) ClockTime {
	return ClockTime(hour*60 + minute)
}

// ParseClockTime parses HH:MM, also accepting HH:MM:SS with the seconds
// discarded (the form TIME columns come back in).
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		t, err = time.Parse(clockFullLayout, s)
	}
	if err != nil {
		return 0, fmt.Errorf("parse time %q: want HH:MM", s)
	}
	return NewClockTime(t.Hour(), t.Minute()), nil
}

func (t ClockTime) Hour() int {
	return int(t) / 60
}

func (t ClockTime) Minute() int {
	return int(t) % 60
}

// Duration returns the offset from midnight.
func (t ClockTime) Duration() time.Duration {
	return time.Duration(t) * time.Minute
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t ClockTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

func (t *ClockTime) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("unmarshal time: %w", err)
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Scan implements sql.Scanner for TIME columns.
func (t *ClockTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t = NewClockTime(v.Hour(), v.Minute())
		return nil
	case []byte:
		parsed, err := ParseClockTime(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := ParseClockTime(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("scan time: unsupported type %T", src)
	}
}

// Value implements driver.Valuer for TIME columns.
func (t ClockTime) Value() (driver.Value, error) {
	return fmt.Sprintf("%02d:%02d:00", t.Hour(), t.Minute()), nil
}
