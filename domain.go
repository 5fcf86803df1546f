// Copyright 2012 Volker Dobler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cookiejar

// Domain and path utilities operating on URLs, hosts, and cookie paths per
// RFC 6265 §5.1.2-5.1.4.

import (
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// CanonicalDomain returns the canonical form of host: lowercased, with a
// leading dot stripped, and any non-ASCII label converted via IDNA ToASCII.
// An empty host canonicalizes to "". CanonicalDomain is idempotent on
// well-formed ASCII input.
func CanonicalDomain(host string) string {
	if host == "" {
		return ""
	}
	host = strings.TrimSpace(host)
	host = strings.TrimPrefix(host, ".")
	host = strings.ToLower(host)
	host = strings.TrimSuffix(host, ".")

	if isASCII(host) {
		return host
	}
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		// Not a valid IDN label; fall back to the lowercased original
		// rather than rejecting outright — canonicalization never fails.
		return host
	}
	return ascii
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// DomainMatch implements RFC 6265 §5.1.3 "domain-match": true iff hostDomain
// and cookieDomain are identical, or cookieDomain is a dot-bounded suffix of
// hostDomain and hostDomain is not an IP literal. hostOnly, when true,
// requires exact equality regardless of suffix (a host-only cookie never
// domain-matches a parent domain).
func DomainMatch(hostDomain, cookieDomain string, hostOnly bool) bool {
	if hostDomain == cookieDomain {
		return true
	}
	if hostOnly {
		return false
	}
	if isIPLiteral(hostDomain) {
		return false
	}
	return strings.HasSuffix(hostDomain, "."+cookieDomain)
}

// PathMatch implements RFC 6265 §5.1.4 "path-match": true iff cookiePath
// equals requestPath, or cookiePath is a prefix of requestPath ending in "/"
// or immediately followed in requestPath by "/".
func PathMatch(requestPath, cookiePath string) bool {
	if requestPath == cookiePath {
		return true
	}
	if !strings.HasPrefix(requestPath, cookiePath) || cookiePath == "" {
		return false
	}
	if cookiePath[len(cookiePath)-1] == '/' {
		return true
	}
	return requestPath[len(cookiePath)] == '/'
}

// DefaultPath computes the RFC 6265 §5.1.4 default-path for requestPath:
//
//	path in url  |  directory
//	-------------+------------
//	""           |  "/"
//	"xy/z"       |  "/"
//	"/abc"       |  "/"
//	"/ab/xy/km"  |  "/ab/xy"
//	"/abc/"      |  "/abc"
func DefaultPath(requestPath string) string {
	if len(requestPath) == 0 || requestPath[0] != '/' {
		return "/"
	}
	i := strings.LastIndex(requestPath, "/")
	if i == 0 {
		return "/"
	}
	return requestPath[:i]
}

// PermitsSameSite reports whether a cookie with the given SameSite attribute
// may be sent in a request made in navigational context ctx. An unspecified
// SameSite is unrestricted.
func PermitsSameSite(sameSite SameSite, ctx SameSite) bool {
	switch sameSite {
	case SameSiteStrict:
		return ctx == SameSiteStrict
	case SameSiteLax:
		return ctx == SameSiteLax || ctx == SameSiteStrict
	case SameSiteNone:
		return true
	default:
		return true
	}
}

// requestHost returns the canonical host from URL u, stripping any port and
// applying CanonicalDomain. See RFC 6265 §5.1.2.
func requestHost(u *url.URL) (string, error) {
	h := strings.ToLower(u.Host)
	if strings.Contains(h, ":") {
		var err error
		h, _, err = net.SplitHostPort(h)
		if err != nil {
			return "", err
		}
	}
	return CanonicalDomain(h), nil
}

// isSecure checks for an https-like scheme.
func isSecure(u *url.URL) bool {
	switch strings.ToLower(u.Scheme) {
	case "https", "wss":
		return true
	default:
		return false
	}
}

// isHTTP checks for an http(s)/websocket scheme this jar will act on.
func isHTTP(u *url.URL) bool {
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "ws", "wss":
		return true
	default:
		return false
	}
}

// isIPLiteral reports whether host is formally an IPv4 or IPv6 address,
// never a host name eligible for domain-cookie suffix matching.
func isIPLiteral(host string) bool {
	return net.ParseIP(host) != nil
}

func requestPath(u *url.URL) string {
	if u.Path == "" {
		return "/"
	}
	return u.Path
}
