package cookiejar

import "time"

// PrefixSecurityMode controls how a Jar enforces the __Secure- and __Host-
// cookie name prefix conventions.
type PrefixSecurityMode int

const (
	// PrefixSecuritySilent (the zero value, and the spec default) silently
	// drops a cookie that violates its name prefix's requirements.
	PrefixSecuritySilent PrefixSecurityMode = iota
	// PrefixSecurityStrict rejects a violating cookie with a PrefixError.
	PrefixSecurityStrict
	// PrefixSecurityUnsafeDisabled skips prefix enforcement entirely.
	PrefixSecurityUnsafeDisabled
)

// Logger is the optional hook a Jar uses to trace ingestion/retrieval
// decisions. A nil Logger (the default) disables tracing. Host applications
// can plug in logrus, zap, or anything else that implements Debugf.
type Logger interface {
	Debugf(format string, args ...any)
}

func (j *Jar) logf(format string, args ...any) {
	if j.Logger != nil {
		j.Logger.Debugf(format, args...)
	}
}

// SetCookieOptions configures one Jar.SetCookie/SetParsedCookie call.
type SetCookieOptions struct {
	// NonHTTP marks this call as originating from a non-HTTP API (e.g. a
	// scripting environment's document.cookie). The zero value (false)
	// matches the spec default of an HTTP-originated call.
	NonHTTP bool

	// Secure overrides whether the ingesting channel is secure. A nil
	// value (the default) infers it from the request URL's scheme.
	Secure *bool

	// SameSiteContext is the navigational context of the request that
	// carried this Set-Cookie. No check in SetCookie/SetParsedCookie reads
	// it; SameSite gating is applied in GetCookies.
	SameSiteContext SameSite

	// IgnoreError makes a validation failure drop the cookie silently
	// (returning a nil Cookie, nil error) instead of returning an error.
	IgnoreError bool

	// Now overrides the current time; the zero value means time.Now().
	Now time.Time
}

func (o SetCookieOptions) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

// GetCookiesOptions configures one Jar.GetCookies/GetCookieString/
// GetSetCookieStrings call.
type GetCookiesOptions struct {
	// NonHTTP marks this call as originating from a non-HTTP API; HttpOnly
	// cookies are excluded when true. Zero value (false) matches the spec
	// default of an HTTP-originated call.
	NonHTTP bool

	// Secure overrides whether the retrieving channel is secure. A nil
	// value (the default) infers it from the request URL's scheme.
	Secure *bool

	// SameSiteContext is the navigational context of the outgoing request.
	SameSiteContext SameSite

	// AllPaths, if true, skips path-match filtering entirely.
	AllPaths bool

	// NoExpireSweep suppresses the default expired-cookie removal side
	// effect. Zero value (false) matches the spec default of sweeping.
	NoExpireSweep bool

	// NoSort suppresses the default cookieCompare ordering, returning
	// cookies in store order instead. Zero value (false) matches the spec
	// default of sorting.
	NoSort bool

	// AllowSpecialUseDomain is forwarded to Store.FindCookies.
	AllowSpecialUseDomain bool

	// Now overrides the current time; the zero value means time.Now().
	Now time.Time
}

func (o GetCookiesOptions) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}
