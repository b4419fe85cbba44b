package events

const (
	KindSignup      = "signup"
	KindLogin       = "login"
	KindLoginFailed = "login_failed"
)

// AuthEvent is one authentication attempt, published to the redis stream for
// the analytics worker. It never carries password material.
type AuthEvent struct {
	Kind      string
	Email     string
	IP        string
	UserAgent string
	Timestamp int64
}
