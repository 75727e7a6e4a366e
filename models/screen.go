package models

// Screen identifies the single active view of the app shell. Screens are
// mutually exclusive render targets; there is no history stack.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenRegister
	ScreenProfileSetup
	ScreenCamera
	ScreenResult
	ScreenSettings
	ScreenUserProfile
)

// String returns the wire name of the screen. Every Screen value is
// handled here; anything out of range renders as the login screen.
func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenRegister:
		return "register"
	case ScreenProfileSetup:
		return "profile_setup"
	case ScreenCamera:
		return "camera"
	case ScreenResult:
		return "result"
	case ScreenSettings:
		return "settings"
	case ScreenUserProfile:
		return "user_profile"
	default:
		return "login"
	}
}

var screenNames = map[string]Screen{
	"login":         ScreenLogin,
	"register":      ScreenRegister,
	"profile_setup": ScreenProfileSetup,
	"camera":        ScreenCamera,
	"result":        ScreenResult,
	"settings":      ScreenSettings,
	"user_profile":  ScreenUserProfile,
}

// ParseScreen maps a wire name back to a Screen. The second return value
// reports whether the name belongs to the closed screen set.
func ParseScreen(name string) (Screen, bool) {
	s, ok := screenNames[name]
	if !ok {
		return ScreenLogin, false
	}
	return s, true
}
