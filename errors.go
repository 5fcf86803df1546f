package cookiejar

import "fmt"

// ParseError reports a malformed Set-Cookie or Cookie header string.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cookiejar: parse error: %s: %q", e.Reason, e.Input)
}

// PublicSuffixError reports a Domain attribute that names a public suffix
// distinct from the request host.
type PublicSuffixError struct {
	Domain string
}

func (e *PublicSuffixError) Error() string {
	return fmt.Sprintf("cookiejar: domain %q is a public suffix", e.Domain)
}

// DomainMismatchError reports a Domain attribute that does not domain-match
// the request host.
type DomainMismatchError struct {
	Host, Domain string
}

func (e *DomainMismatchError) Error() string {
	return fmt.Sprintf("cookiejar: domain %q does not domain-match host %q", e.Domain, e.Host)
}

// HttpOnlyError reports a non-HTTP API attempting to set or read an
// HttpOnly cookie.
type HttpOnlyError struct {
	Key string
}

func (e *HttpOnlyError) Error() string {
	return fmt.Sprintf("cookiejar: %q is HttpOnly and the request is not HTTP", e.Key)
}

// SecureOverwriteError reports a non-secure request attempting to overwrite
// an existing Secure cookie on the same triple.
type SecureOverwriteError struct {
	Key string
}

func (e *SecureOverwriteError) Error() string {
	return fmt.Sprintf("cookiejar: refusing to overwrite secure cookie %q over an insecure channel", e.Key)
}

// PrefixError reports a violation of the __Secure-/__Host- naming
// convention.
type PrefixError struct {
	Key    string
	Prefix string
}

func (e *PrefixError) Error() string {
	return fmt.Sprintf("cookiejar: cookie %q violates the %s prefix requirements", e.Key, e.Prefix)
}

// SameSiteNoneInsecureError reports a SameSite=None cookie set without the
// Secure attribute, which RFC 6265bis §8.8.3 and modern browsers both forbid.
type SameSiteNoneInsecureError struct {
	Key string
}

func (e *SameSiteNoneInsecureError) Error() string {
	return fmt.Sprintf("cookiejar: %q has SameSite=None but not Secure", e.Key)
}

// ValidationError reports a Cookie whose fields violate one of the
// invariants Validate checks.
type ValidationError struct {
	Key    string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("cookiejar: cookie %q field %s: %s", e.Key, e.Field, e.Reason)
}

// StoreError wraps a failure reported by a Store implementation.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("cookiejar: store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
