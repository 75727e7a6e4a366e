package models

// NutrientDelta is one confirmed food's contribution to the day.
type NutrientDelta struct {
	Calories float64 `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
}

// NutrientTotals holds the four tracked nutrient amounts.
type NutrientTotals struct {
	Calories float64 `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
}

// DailyProgress tracks consumed nutrients against daily goals for one
// calendar day.
type DailyProgress struct {
	Consumed NutrientTotals `json:"consumed"`
	Goals    NutrientTotals `json:"goals"`
}

// DefaultDailyProgress returns a zeroed day against the stock goals.
func DefaultDailyProgress() DailyProgress {
	return DailyProgress{
		Goals: NutrientTotals{Calories: 2000, Carbs: 250, Protein: 120, Fat: 60},
	}
}

// AddFood adds delta to the consumed totals. Goals are never touched.
// Deltas are applied as-is; negative values are not rejected, so
// corrections via negative entries slip through unvalidated.
func (p *DailyProgress) AddFood(delta NutrientDelta) {
	p.Consumed.Calories += delta.Calories
	p.Consumed.Carbs += delta.Carbs
	p.Consumed.Protein += delta.Protein
	p.Consumed.Fat += delta.Fat
}
