package gateway

// CredentialHasher hashes and compares passwords. The hash is salted and
// one-way; plaintext is never persisted anywhere.
type CredentialHasher interface {
	// Hash returns the salted hash of a plaintext password
	Hash(password string) (string, error)

	// Compare reports whether plaintext matches the stored hash
	Compare(hash, password string) bool
}
