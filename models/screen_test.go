package models

import "testing"

func TestScreenNamesRoundTrip(t *testing.T) {
	screens := []Screen{
		ScreenLogin, ScreenRegister, ScreenProfileSetup,
		ScreenCamera, ScreenResult, ScreenSettings, ScreenUserProfile,
	}
	for _, s := range screens {
		parsed, ok := ParseScreen(s.String())
		if !ok {
			t.Fatalf("ParseScreen(%q) not ok", s.String())
		}
		if parsed != s {
			t.Errorf("ParseScreen(%q) = %v, want %v", s.String(), parsed, s)
		}
	}
}

func TestUnknownScreenRendersAsLogin(t *testing.T) {
	if got := Screen(99).String(); got != "login" {
		t.Errorf("Screen(99).String() = %q, want %q", got, "login")
	}
	if got := Screen(-1).String(); got != "login" {
		t.Errorf("Screen(-1).String() = %q, want %q", got, "login")
	}
}

func TestParseScreenRejectsUnknownNames(t *testing.T) {
	screen, ok := ParseScreen("dashboard")
	if ok {
		t.Fatal("ParseScreen accepted a name outside the closed set")
	}
	if screen != ScreenLogin {
		t.Errorf("fallback screen = %v, want login", screen)
	}
}
