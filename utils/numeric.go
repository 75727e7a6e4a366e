package utils

import (
	"strconv"
	"strings"

	"github.com/cskyle2026/Diabetes/models"
)

// LeadingNumber extracts the numeric prefix of a human-readable quantity
// such as "250 kcal" or "30g". A leading minus sign is kept, so "-5g"
// parses to -5. Anything without a parseable leading number
// contributes 0.
func LeadingNumber(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && s[end] == '-' {
		end++
	}
	seenDot := false
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

// DeltaFromNutrition converts the accumulator-relevant nutrient strings
// of a result into numeric values. Sugar and sodium are reported to the
// user but not tracked against goals.
func DeltaFromNutrition(n models.NutritionInfo) models.NutrientDelta {
	return models.NutrientDelta{
		Calories: LeadingNumber(n.Calories),
		Carbs:    LeadingNumber(n.Carbs),
		Protein:  LeadingNumber(n.Protein),
		Fat:      LeadingNumber(n.Fat),
	}
}
