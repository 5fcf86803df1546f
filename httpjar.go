package cookiejar

import (
	"net/http"
	"net/url"
)

// HTTPJar adapts a Jar to the standard library's http.CookieJar interface,
// so it can be plugged into an http.Client directly. Unlike Jar's own
// SetCookie/GetCookies, which report per-cookie errors, HTTPJar follows
// http.CookieJar's contract of silent best-effort handling.
type HTTPJar struct {
	Jar *Jar
}

// NewHTTPJar wraps jar (a fresh Jar if nil) as an http.CookieJar.
func NewHTTPJar(jar *Jar) *HTTPJar {
	if jar == nil {
		jar = &Jar{}
	}
	return &HTTPJar{Jar: jar}
}

// SetCookies implements http.CookieJar. Cookies that fail validation are
// dropped silently, matching http.CookieJar's contract.
func (h *HTTPJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	for _, hc := range cookies {
		c := fromHTTPCookie(hc)
		h.Jar.SetParsedCookie(c, u, SetCookieOptions{IgnoreError: true})
	}
}

// Cookies implements http.CookieJar.
func (h *HTTPJar) Cookies(u *url.URL) []*http.Cookie {
	cookies, err := h.Jar.GetCookies(u, GetCookiesOptions{})
	if err != nil {
		return nil
	}
	out := make([]*http.Cookie, len(cookies))
	for i, c := range cookies {
		out[i] = &http.Cookie{Name: c.Key, Value: c.Value}
	}
	return out
}

func fromHTTPCookie(hc *http.Cookie) *Cookie {
	c := &Cookie{
		Key:      hc.Name,
		Value:    hc.Value,
		Domain:   hc.Domain,
		Path:     hc.Path,
		Secure:   hc.Secure,
		HttpOnly: hc.HttpOnly,
		MaxAge:   NoMaxAge,
	}
	switch hc.SameSite {
	case http.SameSiteLaxMode:
		c.SameSite = SameSiteLax
	case http.SameSiteStrictMode:
		c.SameSite = SameSiteStrict
	case http.SameSiteNoneMode:
		c.SameSite = SameSiteNone
	}
	if hc.MaxAge != 0 {
		c.MaxAge = int64(hc.MaxAge)
	}
	if !hc.Expires.IsZero() {
		c.Expires = hc.Expires
	}
	return c
}
