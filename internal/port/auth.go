package port

// TokenVerifier checks bearer-token validity. Token issuance lives outside
// this service; only verification of presented tokens is modeled here.
type TokenVerifier interface {
	Verify(token string) error
}
