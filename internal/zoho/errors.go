package zoho

import "fmt"

// AuthError is a failed token exchange or identity call. The request cannot
// proceed without it, so handlers treat it as fatal.
type AuthError struct {
	Status int
	Body   string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("zoho auth failed: status %d: %s", e.Status, e.Body)
}

// UpstreamError is a non-success response from one of the service families.
// Listing handlers report it alongside an empty collection so a failed fetch
// stays distinguishable from a genuinely empty one.
type UpstreamError struct {
	Service string
	Status  int
	Body    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("zoho %s: status %d: %s", e.Service, e.Status, e.Body)
}
