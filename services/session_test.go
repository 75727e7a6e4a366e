package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/cskyle2026/Diabetes/models"
)

func TestSessionStartsAtLogin(t *testing.T) {
	s := NewSession(1)
	if s.Screen() != models.ScreenLogin {
		t.Errorf("initial screen = %v, want login", s.Screen())
	}
	if s.Language() != models.DefaultLanguage {
		t.Errorf("initial language = %v, want default", s.Language())
	}
}

func TestSetScreenOverwritesUnconditionally(t *testing.T) {
	s := NewSession(1)
	all := []models.Screen{
		models.ScreenLogin, models.ScreenRegister, models.ScreenProfileSetup,
		models.ScreenCamera, models.ScreenResult, models.ScreenSettings, models.ScreenUserProfile,
	}
	// every screen must be reachable from every other
	for _, from := range all {
		for _, to := range all {
			s.SetScreen(from)
			s.SetScreen(to)
			if s.Screen() != to {
				t.Fatalf("transition %v -> %v left screen at %v", from, to, s.Screen())
			}
		}
	}
}

func TestSetProfileSyncsLanguage(t *testing.T) {
	s := NewSession(1)
	profile, err := models.NewHealthProfile(30, 70, 175, "male", "", nil, models.LangJapanese, "")
	if err != nil {
		t.Fatal(err)
	}
	s.SetProfile(profile)
	if s.Language() != models.LangJapanese {
		t.Errorf("language = %v, want ja after profile install", s.Language())
	}
}

func TestSetLanguageWritesBackIntoProfile(t *testing.T) {
	s := NewSession(1)
	profile, err := models.NewHealthProfile(30, 70, 175, "male", "", nil, models.LangPortuguese, "")
	if err != nil {
		t.Fatal(err)
	}
	s.SetProfile(profile)

	s.SetLanguage(models.LangSpanish)
	if s.Language() != models.LangSpanish {
		t.Errorf("language = %v, want es", s.Language())
	}
	if s.Profile().Language != models.LangSpanish {
		t.Errorf("profile language = %v, want es", s.Profile().Language)
	}
}

func TestProfileReturnsSnapshot(t *testing.T) {
	s := NewSession(1)
	profile, err := models.NewHealthProfile(30, 70, 175, "male", "", []models.HealthCondition{models.ConditionDiabetes}, models.LangPortuguese, "")
	if err != nil {
		t.Fatal(err)
	}
	s.SetProfile(profile)

	snap := s.Profile()
	s.SetLanguage(models.LangEnglish)
	if snap.Language != models.LangPortuguese {
		t.Errorf("snapshot language = %v, changed after SetLanguage", snap.Language)
	}
	if s.Profile().Language != models.LangEnglish {
		t.Errorf("session profile language = %v, want en", s.Profile().Language)
	}

	// mutating a snapshot must not leak back into the session
	snap.Age = 99
	snap.Conditions[0] = models.ConditionObesity
	current := s.Profile()
	if current.Age != 30 || current.Conditions[0] != models.ConditionDiabetes {
		t.Errorf("session profile mutated through a snapshot: %+v", current)
	}
}

func TestConcurrentProfileReadsAndLanguageWrites(t *testing.T) {
	s := NewSession(1)
	profile, err := models.NewHealthProfile(30, 70, 175, "male", "", nil, models.LangPortuguese, "")
	if err != nil {
		t.Fatal(err)
	}
	s.SetProfile(profile)

	// exercised under the race detector: readers serialize profile
	// snapshots while writers flip the language
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if p := s.Profile(); !p.Language.Supported() {
					t.Errorf("torn profile read: language = %q", p.Language)
					return
				}
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if j%2 == 0 {
					s.SetLanguage(models.LangEnglish)
				} else {
					s.SetLanguage(models.LangPortuguese)
				}
			}
		}()
	}
	wg.Wait()
}

func TestBeginAnalysisGuards(t *testing.T) {
	s := NewSession(1)

	if _, _, err := s.BeginAnalysis(); !errors.Is(err, ErrNoCapture) {
		t.Fatalf("no capture: err = %v, want ErrNoCapture", err)
	}

	captureID := s.SetCapturedImage("data:image/jpeg;base64,Zm9v")
	image, gotID, err := s.BeginAnalysis()
	if err != nil {
		t.Fatalf("BeginAnalysis: %v", err)
	}
	if image == "" || gotID != captureID {
		t.Errorf("BeginAnalysis returned image=%q id=%q", image, gotID)
	}

	if _, _, err := s.BeginAnalysis(); !errors.Is(err, ErrAnalysisInFlight) {
		t.Fatalf("second start: err = %v, want ErrAnalysisInFlight", err)
	}

	if !s.FinishAnalysis(captureID, &models.AnalysisResult{AlertLevel: models.AlertGreen}) {
		t.Fatal("FinishAnalysis rejected the current capture")
	}

	if _, _, err := s.BeginAnalysis(); !errors.Is(err, ErrAlreadyAnalyzed) {
		t.Fatalf("after result: err = %v, want ErrAlreadyAnalyzed", err)
	}
}

func TestStaleCompletionIsDiscarded(t *testing.T) {
	s := NewSession(1)
	s.SetCapturedImage("data:image/jpeg;base64,b2xk")
	_, staleID, err := s.BeginAnalysis()
	if err != nil {
		t.Fatal(err)
	}

	// user retakes while the analysis is in flight
	s.SetCapturedImage("data:image/jpeg;base64,bmV3")

	if s.FinishAnalysis(staleID, &models.AnalysisResult{AlertLevel: models.AlertRed}) {
		t.Fatal("completion for a replaced capture must be dropped")
	}
	if s.Result() != nil {
		t.Error("stale result leaked into the session")
	}
}

func TestConfirmResultClearsCaptureState(t *testing.T) {
	s := NewSession(1)

	if _, err := s.ConfirmResult(); !errors.Is(err, ErrNoResult) {
		t.Fatalf("no result: err = %v, want ErrNoResult", err)
	}

	captureID := s.SetCapturedImage("data:image/jpeg;base64,Zm9v")
	if _, _, err := s.BeginAnalysis(); err != nil {
		t.Fatal(err)
	}
	s.FinishAnalysis(captureID, &models.AnalysisResult{AlertLevel: models.AlertYellow, Substitutes: []string{"salada"}})

	result, err := s.ConfirmResult()
	if err != nil {
		t.Fatalf("ConfirmResult: %v", err)
	}
	if result.AlertLevel != models.AlertYellow {
		t.Errorf("result = %+v", result)
	}
	if s.Result() != nil || s.CapturedImage() != "" {
		t.Error("confirm must clear result and capture")
	}
}

func TestClearCaptureDropsEverything(t *testing.T) {
	s := NewSession(1)
	captureID := s.SetCapturedImage("data:image/jpeg;base64,Zm9v")
	if _, _, err := s.BeginAnalysis(); err != nil {
		t.Fatal(err)
	}
	s.FinishAnalysis(captureID, &models.AnalysisResult{AlertLevel: models.AlertGreen})

	s.ClearCapture()
	if s.CapturedImage() != "" || s.Result() != nil {
		t.Error("ClearCapture left residual state")
	}
}

func TestSessionManagerReturnsSameSession(t *testing.T) {
	m := NewSessionManager()
	a := m.Get(7)
	b := m.Get(7)
	if a != b {
		t.Error("Get returned different sessions for the same user")
	}

	a.SetScreen(models.ScreenSettings)
	m.End(7)
	if m.Get(7).Screen() != models.ScreenLogin {
		t.Error("End must discard session state")
	}
}
