package domain

type SessionState string

const (
	SessionInitializing    SessionState = "initializing"
	SessionAuthenticated   SessionState = "authenticated"
	SessionUnauthenticated SessionState = "unauthenticated"
)

// Session is a point-in-time view of the authentication state. Loading
// is true only until startup initialization has run once.
type Session struct {
	State   SessionState
	Token   string
	User    User
	Loading bool
	Error   string
}

func (s Session) IsAuthenticated() bool {
	return s.State == SessionAuthenticated
}
