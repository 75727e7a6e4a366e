package models

import "testing"

func TestShowSubstitutes(t *testing.T) {
	tests := []struct {
		name        string
		level       AlertLevel
		substitutes []string
		want        bool
	}{
		{"red with substitutes", AlertRed, []string{"salada", "frango grelhado", "peixe"}, true},
		{"yellow with substitutes", AlertYellow, []string{"fruta"}, true},
		{"green empty", AlertGreen, []string{}, false},
		{"green populated still hidden", AlertGreen, []string{"chá"}, false},
		{"red empty", AlertRed, []string{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := AnalysisResult{AlertLevel: tt.level, Substitutes: tt.substitutes}
			if got := r.ShowSubstitutes(); got != tt.want {
				t.Errorf("ShowSubstitutes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAlertLevelValid(t *testing.T) {
	for _, level := range []AlertLevel{AlertGreen, AlertYellow, AlertRed} {
		if !level.Valid() {
			t.Errorf("%q should be valid", level)
		}
	}
	for _, level := range []AlertLevel{"", "ORANGE", "green"} {
		if level.Valid() {
			t.Errorf("%q should be invalid", level)
		}
	}
}
