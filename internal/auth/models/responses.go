package models

// LoginResult reports only that a passcode email went out, never the code.
type LoginResult struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

// VerifyOTPResult carries the authenticated admin profile; the session token
// itself travels as an http-only cookie, not in the body.
type VerifyOTPResult struct {
	Message string  `json:"message"`
	Admin   Profile `json:"admin"`

	// SessionToken is set as a cookie by the transport layer and never
	// serialized into the response body.
	SessionToken string `json:"-"`
}

// WhoAmIResult reflects whatever principal the middleware attached. This
// endpoint never fails; absence of a principal is a valid answer.
type WhoAmIResult struct {
	IsLoggedIn bool     `json:"is_logged_in"`
	Admin      *Profile `json:"admin,omitempty"`
}
