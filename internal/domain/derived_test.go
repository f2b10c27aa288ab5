package domain

import (
	"testing"
	"time"
)

func TestCustomerAge(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name        string
		dateOfBirth time.Time
		want        int
	}{
		{"birthday already passed", time.Date(1990, time.March, 1, 0, 0, 0, 0, time.UTC), 36},
		{"birthday today", time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC), 36},
		{"birthday later this year", time.Date(1990, time.December, 31, 0, 0, 0, 0, time.UTC), 35},
		{"birthday tomorrow", time.Date(1990, time.June, 16, 0, 0, 0, 0, time.UTC), 35},
	}

	for _, tc := range cases {
		customer := &Customer{DateOfBirth: tc.dateOfBirth}
		if got := customer.Age(now); got != tc.want {
			t.Errorf("%s: expected age %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestBMIBoundary(t *testing.T) {
	// 170cm / 53.5kg sits just above the under-weight boundary.
	m := &BodyMeasurement{Height: 170, Weight: 53.5}
	if bmi := m.BMI(); bmi != 18.51 {
		t.Errorf("expected BMI 18.51, got %v", bmi)
	}
	if category := m.BMICategory(); category != "Normal Weight" {
		t.Errorf("expected Normal Weight, got %s", category)
	}

	// 53.45kg lands just below it.
	m = &BodyMeasurement{Height: 170, Weight: 53.45}
	if bmi := m.BMI(); bmi != 18.49 {
		t.Errorf("expected BMI 18.49, got %v", bmi)
	}
	if category := m.BMICategory(); category != "Under Weight" {
		t.Errorf("expected Under Weight, got %s", category)
	}
}

func TestBMICategories(t *testing.T) {
	cases := []struct {
		weight float64
		want   string
	}{
		{50, "Under Weight"},
		{60, "Normal Weight"},
		{75, "Over Weight"},
		{95, "Obese"},
	}

	for _, tc := range cases {
		m := &BodyMeasurement{Height: 170, Weight: tc.weight}
		if got := m.BMICategory(); got != tc.want {
			t.Errorf("weight %v: expected %s, got %s", tc.weight, tc.want, got)
		}
	}
}

func TestConditionActivity(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 30, 0, 0, time.UTC)
	yesterday := time.Date(2026, time.June, 14, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2026, time.June, 16, 0, 0, 0, 0, time.UTC)

	injury := &Injury{FromDate: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)}
	if !injury.IsActive(now) {
		t.Error("condition with no end date should be active")
	}

	injury.ToDate = &today
	if !injury.IsActive(now) {
		t.Error("condition ending today should still be active")
	}

	injury.ToDate = &tomorrow
	if !injury.IsActive(now) {
		t.Error("condition ending tomorrow should be active")
	}

	injury.ToDate = &yesterday
	if injury.IsActive(now) {
		t.Error("condition ending yesterday should be inactive")
	}
}

func TestConditionDuration(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 30, 0, 0, time.UTC)
	from := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.June, 11, 0, 0, 0, 0, time.UTC)

	disease := &Disease{FromDate: from, ToDate: &to}
	days, ok := disease.DurationDays(now)
	if !ok || days != 10 {
		t.Errorf("expected 10 days, got %d (ok=%v)", days, ok)
	}

	// No end date: duration runs up to today.
	disease = &Disease{FromDate: from}
	days, ok = disease.DurationDays(now)
	if !ok || days != 14 {
		t.Errorf("expected 14 days, got %d (ok=%v)", days, ok)
	}
}
