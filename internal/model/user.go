// Package model defines domain entities for the application.
package model

// User represents an API user account.
//
// Password is stored verbatim in the senha_hash column and compared
// byte-for-byte at login. This mirrors the contract the API ships with;
// do not reuse this scheme elsewhere.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha_hash"`
}
