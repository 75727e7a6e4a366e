package models

import "errors"

// HealthCondition is one of the fixed conditions that steer the analysis
// toward the user's needs.
type HealthCondition string

const (
	ConditionDiabetes     HealthCondition = "diabetes"
	ConditionHypertension HealthCondition = "hypertension"
	ConditionCholesterol  HealthCondition = "cholesterol"
	ConditionObesity      HealthCondition = "obesity"
)

// MinProfileAge is the minimum age accepted at profile creation.
const MinProfileAge = 18

// ErrUnderage is returned when profile setup is attempted below the
// minimum age. The caller reports it inline and must not create a profile.
var ErrUnderage = errors.New("profile age must be at least 18")

// HealthProfile is the user's health context. It lives only inside the
// session and is never written to the local store.
type HealthProfile struct {
	Age                int               `json:"age"`
	Weight             float64           `json:"weight"`
	Height             float64           `json:"height"`
	Gender             string            `json:"gender"`
	DietaryPreferences string            `json:"dietaryPreferences,omitempty"`
	Conditions         []HealthCondition `json:"conditions"`
	Language           LanguageCode      `json:"language"`
	// Avatar is a data-URI encoded image, or empty.
	Avatar string `json:"avatar,omitempty"`
}

// Clone returns an independent copy, conditions included. Session
// accessors hand out clones so no caller holds a pointer into state
// guarded by the session mutex.
func (p *HealthProfile) Clone() *HealthProfile {
	if p == nil {
		return nil
	}
	c := *p
	c.Conditions = make([]HealthCondition, len(p.Conditions))
	copy(c.Conditions, p.Conditions)
	return &c
}

// NewHealthProfile validates and builds a profile. Age is the only
// guarded field; everything else is stored as provided. An unsupported
// language collapses to the default.
func NewHealthProfile(age int, weight, height float64, gender, dietary string, conditions []HealthCondition, lang LanguageCode, avatar string) (*HealthProfile, error) {
	if age < MinProfileAge {
		return nil, ErrUnderage
	}
	if !lang.Supported() {
		lang = DefaultLanguage
	}
	if conditions == nil {
		conditions = []HealthCondition{}
	}
	return &HealthProfile{
		Age:                age,
		Weight:             weight,
		Height:             height,
		Gender:             gender,
		DietaryPreferences: dietary,
		Conditions:         conditions,
		Language:           lang,
		Avatar:             avatar,
	}, nil
}
