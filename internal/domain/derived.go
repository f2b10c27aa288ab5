package domain

import (
	"math"
	"time"
)

// Derived attributes are computed on read and never stored, so they cannot
// drift from their source fields.

// Age returns the customer's anniversary-based age at now
func (c *Customer) Age(now time.Time) int {
	age := now.Year() - c.DateOfBirth.Year()
	if now.Month() < c.DateOfBirth.Month() ||
		(now.Month() == c.DateOfBirth.Month() && now.Day() < c.DateOfBirth.Day()) {
		age--
	}
	return age
}

// BMI returns the body mass index rounded to two decimal places
func (m *BodyMeasurement) BMI() float64 {
	heightM := m.Height / 100
	return math.Round(m.Weight/(heightM*heightM)*100) / 100
}

// BMICategory buckets the BMI value; each boundary belongs to the lower category
func (m *BodyMeasurement) BMICategory() string {
	bmi := m.BMI()
	switch {
	case bmi < 18.5:
		return "Under Weight"
	case bmi < 25:
		return "Normal Weight"
	case bmi < 30:
		return "Over Weight"
	default:
		return "Obese"
	}
}

// truncateToDate drops the clock portion so conditions compare on calendar days
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func conditionActive(toDate *time.Time, now time.Time) bool {
	return toDate == nil || !toDate.Before(truncateToDate(now))
}

// conditionDuration reports the condition length in days. ok is false for an
// inactive condition with no end date, which has no determinable duration.
func conditionDuration(fromDate time.Time, toDate *time.Time, now time.Time) (days int, ok bool) {
	if toDate == nil {
		if conditionActive(toDate, now) {
			return int(truncateToDate(now).Sub(truncateToDate(fromDate)).Hours() / 24), true
		}
		return 0, false
	}
	return int(truncateToDate(*toDate).Sub(truncateToDate(fromDate)).Hours() / 24), true
}

// IsActive reports whether the injury has no end date or ends on/after today
func (i *Injury) IsActive(now time.Time) bool {
	return conditionActive(i.ToDate, now)
}

// DurationDays returns the injury duration in days when determinable
func (i *Injury) DurationDays(now time.Time) (int, bool) {
	return conditionDuration(i.FromDate, i.ToDate, now)
}

// IsActive reports whether the disease has no end date or ends on/after today
func (d *Disease) IsActive(now time.Time) bool {
	return conditionActive(d.ToDate, now)
}

// DurationDays returns the disease duration in days when determinable
func (d *Disease) DurationDays(now time.Time) (int, bool) {
	return conditionDuration(d.FromDate, d.ToDate, now)
}
