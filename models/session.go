package models

// Session is the authenticated identity, or its absence when nil. At most one
// session is active at a time.
type Session struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
