// Package service declares the collaborators the marketplace use cases depend
// on: hashing, tokens, captioning, blob storage, events and QR codes.
package service

// PasswordHasher hashes account passwords. Check is constant time and never
// reports why a comparison failed.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
