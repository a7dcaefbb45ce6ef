package domain

import "testing"

func TestDefaultPlansCoverTheWeek(t *testing.T) {
	plans := DefaultPlans()

	if len(plans) != len(Weekdays) {
		t.Fatalf("DefaultPlans() has %d entries, want %d", len(plans), len(Weekdays))
	}
	for _, day := range Weekdays {
		if _, ok := plans[day]; !ok {
			t.Errorf("DefaultPlans() missing %q", day)
		}
	}
}

func TestDefaultPlansRestDays(t *testing.T) {
	plans := DefaultPlans()

	for _, day := range []string{"saturday", "sunday"} {
		p := plans[day]
		if p.Type != "Rest" {
			t.Errorf("%s type = %q, want Rest", day, p.Type)
		}
		if len(p.Exercises) != 0 {
			t.Errorf("%s should have no exercises, got %d", day, len(p.Exercises))
		}
	}

	monday := plans["monday"]
	if monday.Type != "Chest Biceps Core" {
		t.Errorf("monday type = %q", monday.Type)
	}
	if len(monday.Exercises) == 0 {
		t.Error("monday should carry exercises")
	}
}
