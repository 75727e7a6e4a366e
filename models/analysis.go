package models

// AlertLevel classifies how suitable a food is for the user's profile.
type AlertLevel string

const (
	AlertGreen  AlertLevel = "GREEN"
	AlertYellow AlertLevel = "YELLOW"
	AlertRed    AlertLevel = "RED"
)

// Valid reports whether a is one of the three enumerated levels.
func (a AlertLevel) Valid() bool {
	switch a {
	case AlertGreen, AlertYellow, AlertRed:
		return true
	}
	return false
}

// NutritionInfo carries human-readable quantities such as "250 kcal" or
// "30g". Values stay strings at this layer; callers that need arithmetic
// parse the leading number defensively.
type NutritionInfo struct {
	Calories string `json:"calories"`
	Carbs    string `json:"carbs"`
	Sugar    string `json:"sugar"`
	Fat      string `json:"fat"`
	Sodium   string `json:"sodium"`
	Protein  string `json:"protein"`
}

// AnalysisResult is the structured outcome of one food analysis. It lives
// in the session until the user retakes the photo or confirms it into the
// daily progress.
type AnalysisResult struct {
	FoodName    string        `json:"foodName"`
	Nutrition   NutritionInfo `json:"nutrition"`
	AlertLevel  AlertLevel    `json:"alertLevel"`
	Explanation string        `json:"explanation"`
	Substitutes []string      `json:"substitutes"`
}

// ShowSubstitutes reports whether the result offers a substitutes reveal.
// Only YELLOW and RED results that actually carry suggestions do; a GREEN
// result never exposes the action even if the list is populated.
func (r *AnalysisResult) ShowSubstitutes() bool {
	if r.AlertLevel != AlertYellow && r.AlertLevel != AlertRed {
		return false
	}
	return len(r.Substitutes) > 0
}
