package domain

// Admin is the single administrator identity, supplied by configuration at
// startup and immutable for the process lifetime. PasswordHash is a bcrypt
// hash; the plaintext is never held or logged.
type Admin struct {
	Username     string
	PasswordHash string
}
