package services

import (
	"errors"
	"sync"

	"github.com/cskyle2026/Diabetes/models"

	"github.com/google/uuid"
)

var (
	ErrNoCapture        = errors.New("no captured image")
	ErrAlreadyAnalyzed  = errors.New("capture already analyzed")
	ErrAnalysisInFlight = errors.New("analysis already in progress")
	ErrNoResult         = errors.New("no analysis result to confirm")
)

// Session owns all live state for one signed-in user: the active screen,
// the health profile, the captured image with its analysis result, and
// the active language. The original app mutated this state on a single
// event loop; here handlers run on arbitrary goroutines, so the mutex
// serializes access instead.
type Session struct {
	mu sync.Mutex

	userID   uint
	screen   models.Screen
	profile  *models.HealthProfile
	language models.LanguageCode

	capturedImage string // data URI
	captureID     string // tags in-flight work so stale completions can be dropped
	result        *models.AnalysisResult
	analyzing     bool
}

func NewSession(userID uint) *Session {
	return &Session{
		userID:   userID,
		screen:   models.ScreenLogin,
		language: models.DefaultLanguage,
	}
}

func (s *Session) UserID() uint {
	return s.userID
}

func (s *Session) Screen() models.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}

// SetScreen overwrites the active screen. Any screen is reachable from
// any other; there is no guard and no history.
func (s *Session) SetScreen(screen models.Screen) {
	s.mu.Lock()
	s.screen = screen
	s.mu.Unlock()
}

// Profile returns a copy of the health profile, or nil before setup.
// Callers read and serialize it without holding the session mutex, so
// the internal struct must never escape.
func (s *Session) Profile() *models.HealthProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Clone()
}

// SetProfile installs the profile and syncs the active language from it.
func (s *Session) SetProfile(p *models.HealthProfile) {
	s.mu.Lock()
	s.profile = p.Clone()
	if p != nil && p.Language.Supported() {
		s.language = p.Language
	}
	s.mu.Unlock()
}

func (s *Session) Language() models.LanguageCode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// SetLanguage changes the active language and writes it back into the
// profile so the two never drift apart. The profile is replaced rather
// than mutated: copies handed out earlier stay valid snapshots.
func (s *Session) SetLanguage(lang models.LanguageCode) {
	s.mu.Lock()
	s.language = lang
	if s.profile != nil {
		p := s.profile.Clone()
		p.Language = lang
		s.profile = p
	}
	s.mu.Unlock()
}

// SetCapturedImage stores a fresh capture, clears any previous result and
// tags the capture so completions for older captures can be discarded.
func (s *Session) SetCapturedImage(dataURI string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.capturedImage = dataURI
	s.captureID = uuid.NewString()
	s.result = nil
	s.analyzing = false
	return s.captureID
}

// ClearCapture drops the image and its result together (retake path).
func (s *Session) ClearCapture() {
	s.mu.Lock()
	s.capturedImage = ""
	s.captureID = ""
	s.result = nil
	s.analyzing = false
	s.mu.Unlock()
}

func (s *Session) CapturedImage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.capturedImage
}

func (s *Session) Result() *models.AnalysisResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// BeginAnalysis enforces the single-flight rule: it succeeds only when a
// capture exists, no result has been produced for it yet, and no analysis
// is outstanding.
func (s *Session) BeginAnalysis() (image, captureID string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.capturedImage == "" {
		return "", "", ErrNoCapture
	}
	if s.result != nil {
		return "", "", ErrAlreadyAnalyzed
	}
	if s.analyzing {
		return "", "", ErrAnalysisInFlight
	}
	s.analyzing = true
	return s.capturedImage, s.captureID, nil
}

// FinishAnalysis records the outcome for captureID. Completions for a
// capture the user has already replaced or discarded are dropped; the
// return value reports whether the result was kept.
func (s *Session) FinishAnalysis(captureID string, result *models.AnalysisResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if captureID == "" || captureID != s.captureID {
		return false
	}
	s.analyzing = false
	s.result = result
	return true
}

// FailAnalysis clears the in-flight flag without recording a result so
// the user can retry with a new photo.
func (s *Session) FailAnalysis(captureID string) {
	s.mu.Lock()
	if captureID == s.captureID {
		s.analyzing = false
	}
	s.mu.Unlock()
}

// ConfirmResult hands the result to the caller for saving and resets the
// capture state in one step.
func (s *Session) ConfirmResult() (*models.AnalysisResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return nil, ErrNoResult
	}
	result := s.result
	s.result = nil
	s.capturedImage = ""
	s.captureID = ""
	return result, nil
}

// SessionManager hands out one session per user. Sessions live for the
// process lifetime; ending one throws away all unsaved state.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[uint]*Session
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[uint]*Session)}
}

// Get returns the user's session, creating it on first access.
func (m *SessionManager) Get(userID uint) *Session {
	m.mu.RLock()
	s := m.sessions[userID]
	m.mu.RUnlock()
	if s != nil {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s := m.sessions[userID]; s != nil {
		return s
	}
	s = NewSession(userID)
	m.sessions[userID] = s
	return s
}

// End tears the session down. Profile, capture and result die with it.
func (m *SessionManager) End(userID uint) {
	m.mu.Lock()
	delete(m.sessions, userID)
	m.mu.Unlock()
}
