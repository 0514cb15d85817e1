package domain

import (
	"fmt"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04:05"
	shortTimeLayout = "15:04"
)

// Date is a calendar date without a time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf truncates t to its wall-clock calendar day in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// At combines d and t into an instant in loc.
func (d Date) At(t LocalTime, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, t.Hour, t.Minute, t.Second, 0, loc)
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) MonthOf() Month {
	return Month{Year: d.Year, Month: d.Month}
}

// LocalTime is a wall-clock time of day with second precision.
type LocalTime struct {
	Hour   int
	Minute int
	Second int
}

func NewLocalTime(hour, minute, second int) LocalTime {
	return LocalTime{Hour: hour, Minute: minute, Second: second}
}

func LocalTimeOf(t time.Time) LocalTime {
	return LocalTime{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// ParseLocalTime accepts "HH:mm:ss" and "HH:mm".
func ParseLocalTime(s string) (LocalTime, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		var shortErr error
		t, shortErr = time.Parse(shortTimeLayout, s)
		if shortErr != nil {
			return LocalTime{}, fmt.Errorf("parse time %q: %w", s, err)
		}
	}
	return LocalTimeOf(t), nil
}

// String formats t as "HH:mm:ss".
func (t LocalTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Add moves m by n calendar months.
func (m Month) Add(n int) Month {
	return MonthOf(time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0))
}

func (m Month) FirstDay() Date {
	return Date{Year: m.Year, Month: m.Month, Day: 1}
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}
