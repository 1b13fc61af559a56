package domain

// SessionState is the lifecycle state of the console session.
type SessionState string

const (
	SessionAnonymous      SessionState = "anonymous"
	SessionAuthenticating SessionState = "authenticating"
	SessionAuthenticated  SessionState = "authenticated"
)

// SessionTransition is delivered to session observers on every state change.
type SessionTransition struct {
	From SessionState
	To   SessionState
	Role Role
}
