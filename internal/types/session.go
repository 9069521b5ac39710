package types

// User is the profile of a registered account as returned by the server.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is the authenticated identity of the current user: an opaque
// bearer token plus the profile it was issued for. A new login overwrites
// the previous session wholesale.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
