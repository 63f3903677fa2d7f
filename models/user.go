package models

// User is one users record. Credentials are stored and compared in
// plaintext against the mock store; hardening the scheme is explicitly out
// of scope.
type User struct {
	ID       NumericID `json:"id"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
}
