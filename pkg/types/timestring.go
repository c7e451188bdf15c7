package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	timeLayout    = "15:04"
	minutesPerDay = 24 * 60
)

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrTimeOutOfRange возвращается, когда результат операции выходит за пределы суток
	ErrTimeOutOfRange = errors.New("time is out of day range")
)

// TimeString represents a wall-clock time of day in "HH:MM" format.
// It is stored in the database as a TIME column and serialized to JSON
// as a plain string.
type TimeString string

// NewTimeString creates a TimeString from a time.Time, keeping only
// hours and minutes.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	t := TimeString(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate checks that the value is a well-formed "HH:MM" time.
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// IsZero returns true for an empty value.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// Hour returns the hour-of-day component (0-23).
func (t TimeString) Hour() int {
	return t.MinutesOfDay() / 60
}

// MinutesOfDay returns the number of minutes elapsed since midnight.
// Returns 0 for malformed values; callers are expected to Validate first.
func (t TimeString) MinutesOfDay() int {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.MinutesOfDay() < other.MinutesOfDay()
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.MinutesOfDay() > other.MinutesOfDay()
}

// Equal reports whether both values denote the same minute of day.
func (t TimeString) Equal(other TimeString) bool {
	return t.MinutesOfDay() == other.MinutesOfDay()
}

// AddMinutes returns the time shifted forward by m minutes.
// Результат не может пересекать границу суток - это ошибка, а не перенос
// на следующий день.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total := t.MinutesOfDay() + m
	if total < 0 || total > minutesPerDay {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, t, m)
	}
	if total == minutesPerDay {
		// 24:00 непредставимо в формате HH:MM
		return "", fmt.Errorf("%w: %s + %d minutes crosses midnight", ErrTimeOutOfRange, t, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// MinutesBetween returns end - start in minutes. Negative when end is
// earlier than start.
func MinutesBetween(start, end TimeString) int {
	return end.MinutesOfDay() - start.MinutesOfDay()
}

// Scan implements sql.Scanner. Postgres TIME columns arrive either as
// time.Time or as a raw "HH:MM:SS" string depending on the driver path.
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeFormat, value)
	}
}

func (t *TimeString) scanString(s string) error {
	if len(s) >= 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// MarshalJSON serializes the value as a JSON string.
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON parses and validates a JSON string.
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
