package entity

// Session binds an opaque bearer token to a user identity.
// It is the sole session-validity mechanism: no expiry, a session
// lives until an explicit logout deletes it. A user may hold any
// number of concurrent sessions.
type Session struct {
	Token  string
	UserID string
}
