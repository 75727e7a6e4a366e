package utils

import (
	"testing"

	"github.com/cskyle2026/Diabetes/models"
)

func TestLeadingNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"250 kcal", 250},
		{"30g", 30},
		{"0.5g", 0.5},
		{"500mg", 500},
		{" 12 ", 12},
		{"-5g", -5},
		{"-0.5g", -0.5},
		{"-", 0},
		{"trace", 0},
		{"", 0},
		{"g30", 0},
		{"approx. 100", 0},
	}
	for _, tt := range tests {
		if got := LeadingNumber(tt.in); got != tt.want {
			t.Errorf("LeadingNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDeltaFromNutrition(t *testing.T) {
	n := models.NutritionInfo{
		Calories: "250 kcal",
		Carbs:    "30g",
		Sugar:    "15g",
		Fat:      "10g",
		Sodium:   "500mg",
		Protein:  "unknown",
	}
	got := DeltaFromNutrition(n)
	want := models.NutrientDelta{Calories: 250, Carbs: 30, Protein: 0, Fat: 10}
	if got != want {
		t.Errorf("DeltaFromNutrition = %+v, want %+v", got, want)
	}
}
