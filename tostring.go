package cookiejar

import (
	"strconv"
	"strings"
	"time"
)

// imfFixdate is the RFC 7231 §7.1.1.1 IMF-fixdate format used to render
// Expires.
const imfFixdate = "Mon, 02 Jan 2006 15:04:05 GMT"

// String renders c as a full Set-Cookie header value: "key=value", then
// each attribute the cookie carries, then each extension verbatim.
// Parse(c.String(), opts) reproduces c on every field that round-trips
// (value, key, domain, path, secure, httpOnly, sameSite, maxAge, expires),
// modulo attribute case and extension ordering.
func (c *Cookie) String() string {
	var b strings.Builder
	b.WriteString(c.CookieString())

	if !c.Expires.IsZero() {
		b.WriteString("; Expires=")
		b.WriteString(c.Expires.UTC().Format(imfFixdate))
	}
	if c.MaxAge != NoMaxAge {
		b.WriteString("; Max-Age=")
		b.WriteString(strconv.FormatInt(c.MaxAge, 10))
	}
	if c.Domain != "" {
		b.WriteString("; Domain=")
		b.WriteString(c.Domain)
	}
	if c.Path != "" {
		b.WriteString("; Path=")
		b.WriteString(c.Path)
	}
	if c.Secure {
		b.WriteString("; Secure")
	}
	if c.HttpOnly {
		b.WriteString("; HttpOnly")
	}
	switch c.SameSite {
	case SameSiteStrict:
		b.WriteString("; SameSite=Strict")
	case SameSiteLax:
		b.WriteString("; SameSite=Lax")
	case SameSiteNone:
		b.WriteString("; SameSite=None")
	}
	for _, ext := range c.Extensions {
		b.WriteString("; ")
		b.WriteString(ext)
	}

	return b.String()
}

// ExpiryDate is a convenience wrapper around ExpiryTime returning the same
// instant, named to mirror the host-facing Cookie.expiryDate() API.
func (c *Cookie) ExpiryDate(now time.Time) time.Time {
	return c.ExpiryTime(now)
}
