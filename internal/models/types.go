package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar-day fields.
const DateLayout = "2006-01-02"

var dateLocation atomic.Pointer[time.Location]

// SetDateLocation sets the school timezone used to turn RFC3339 timestamps into calendar days.
func SetDateLocation(loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}
	dateLocation.Store(loc)
}

func schoolLocation() *time.Location {
	if loc := dateLocation.Load(); loc != nil {
		return loc
	}
	return time.UTC
}

// rawScalar unwraps a JSON scalar into its textual form. Quoted strings are unquoted and trimmed.
func rawScalar(data []byte) (string, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", false
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", false
		}
		s = strings.TrimSpace(s)
		return s, s != ""
	}
	return string(data), true
}

// Money is a monetary amount. Absent, null or unparseable input decodes to zero.
type Money struct {
	decimal.Decimal
}

// NewMoney builds a Money from a float.
func NewMoney(v float64) Money {
	return Money{decimal.NewFromFloat(v)}
}

// UnmarshalJSON accepts numbers and numeric strings.
func (m *Money) UnmarshalJSON(data []byte) error {
	m.Decimal = decimal.Zero
	raw, ok := rawScalar(data)
	if !ok {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	m.Decimal = d
	return nil
}

// MarshalJSON renders the amount as a bare JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

// Number is a lenient float field.
type Number float64

// UnmarshalJSON accepts numbers and numeric strings; anything else becomes zero.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = 0
	raw, ok := rawScalar(data)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	*n = Number(f)
	return nil
}

// Int is a lenient integer field. Fractions are truncated.
type Int int64

// UnmarshalJSON accepts numbers and numeric strings; anything else becomes zero.
func (i *Int) UnmarshalJSON(data []byte) error {
	*i = 0
	raw, ok := rawScalar(data)
	if !ok {
		return nil
	}
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*i = Int(v)
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt64 {
		return nil
	}
	*i = Int(int64(f))
	return nil
}

// DateError reports an unparseable calendar day.
type DateError struct {
	Value string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", e.Value)
}

// Date is a calendar day without time of day.
type Date struct {
	t time.Time
}

// NewDate builds a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day of t in the school timezone.
func DateOf(t time.Time) Date {
	local := t.In(schoolLocation())
	return NewDate(local.Year(), local.Month(), local.Day())
}

// Today returns the current calendar day in the school timezone.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses YYYY-MM-DD or an RFC3339 timestamp.
func ParseDate(raw string) (Date, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return Date{t: t}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return DateOf(t), nil
	}
	return Date{}, &DateError{Value: raw}
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Before reports whether d is an earlier day than o.
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// After reports whether d is a later day than o.
func (d Date) After(o Date) bool { return d.t.After(o.t) }

// Equal reports whether both are the same day.
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// Year returns the calendar year.
func (d Date) Year() int { return d.t.Year() }

// Month returns the calendar month.
func (d Date) Month() time.Month { return d.t.Month() }

// AddDays shifts the date by n days.
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// UnmarshalJSON accepts null, empty, YYYY-MM-DD or RFC3339 strings.
func (d *Date) UnmarshalJSON(data []byte) error {
	*d = Date{}
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &DateError{Value: string(data)}
	}
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON renders null for unset dates.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	FromDate Date `json:"fromDate" validate:"required"`
	ToDate   Date `json:"toDate" validate:"required"`
}

// Validate enforces fromDate <= toDate.
func (r DateRange) Validate() error {
	if r.ToDate.Before(r.FromDate) {
		return fmt.Errorf("fromDate %s must not be after toDate %s", r.FromDate, r.ToDate)
	}
	return nil
}

// Contains reports whether day falls within the range, both ends included.
func (r DateRange) Contains(day Date) bool {
	return !day.Before(r.FromDate) && !day.After(r.ToDate)
}

// Overlaps reports whether the range shares at least one day with [from, to].
func (r DateRange) Overlaps(from, to Date) bool {
	return !r.ToDate.Before(from) && !r.FromDate.After(to)
}
