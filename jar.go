// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cookiejar implements an RFC 6265 conforming cookie jar with
// SameSite, public-suffix aware domain matching, and a pluggable Store.
package cookiejar

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"
)

var defaultSuffixList PublicSuffixList = XNetSuffixList{}

// Jar is an RFC 6265 conforming cookie jar backed by a pluggable Store. The
// zero value is a ready-to-use jar: it lazily creates a MemStore on first
// use and applies the RFC defaults (reject public suffixes, silent prefix
// enforcement, no capacity limits).
//
// The MaxCookiesPerDomain and MaxCookiesTotal values may be changed at any
// time; they are enforced at the end of each SetCookie call, against every
// cookie then stored. MaxBytesPerCookie only affects newly ingested cookies.
//
// A Jar's methods are safe for concurrent use.
type Jar struct {
	// MaxCookiesPerDomain caps the cookies a single domain may hold; 0
	// means unlimited. Exceeding it evicts the least-recently-accessed
	// cookies for that domain.
	MaxCookiesPerDomain int
	// MaxCookiesTotal caps the cookies the jar may hold in total; 0 means
	// unlimited.
	MaxCookiesTotal int
	// MaxBytesPerCookie rejects an incoming cookie whose key+value exceeds
	// this many bytes; 0 means unlimited.
	MaxBytesPerCookie int

	// LooseMode relaxes RFC 6265 §5.2/§5.3 strictness: non-token cookie
	// values are accepted, a SameSite=None cookie need not carry Secure,
	// and a name/value pair without "=" is accepted as a cookie with an
	// empty name whose value is the whole pair.
	LooseMode bool
	// AllowAllDomains disables the public-suffix rejection in SetCookie,
	// permitting a Domain attribute that names a public suffix.
	AllowAllDomains bool
	// AllowSpecialUseDomain is forwarded to the Store on every lookup.
	AllowSpecialUseDomain bool
	// PrefixSecurity controls __Secure-/__Host- enforcement. The zero
	// value, PrefixSecuritySilent, matches the RFC default.
	PrefixSecurity PrefixSecurityMode
	// PublicSuffixList overrides the list consulted when validating a
	// Domain attribute. A nil value (the default) uses XNetSuffixList.
	PublicSuffixList PublicSuffixList
	// Logger, if non-nil, receives a trace line for every ingestion and
	// retrieval decision.
	Logger Logger
	// DefaultSameSiteContext is substituted for a cookie's SameSite
	// attribute during GetCookies filtering when that attribute was never
	// set (SameSiteUnspecified). The zero value leaves unspecified
	// cookies unrestricted, per RFC 6265bis.
	DefaultSameSiteContext SameSite

	mu        sync.Mutex
	store     Store
	nextIndex int64
}

// NewJar returns a Jar backed by store. A nil store defers to a lazily
// created MemStore, same as the zero value Jar{}.
func NewJar(store Store) *Jar {
	return &Jar{store: store}
}

func (j *Jar) storeLocked() Store {
	if j.store == nil {
		j.store = NewMemStore()
	}
	return j.store
}

func (j *Jar) publicSuffixListLocked() PublicSuffixList {
	if j.PublicSuffixList != nil {
		return j.PublicSuffixList
	}
	return defaultSuffixList
}

func (j *Jar) nextIndexLocked() int64 {
	j.nextIndex++
	return j.nextIndex
}

// SetCookie parses raw as a single Set-Cookie header value and, if it
// validates against u and opts, stores it. It returns the stored Cookie
// (nil if the Set-Cookie carried an already-past expiry, which deletes any
// matching stored cookie instead of storing one) or, for a rejected cookie,
// an error describing why, unless opts.IgnoreError is set.
func (j *Jar) SetCookie(raw string, u *url.URL, opts SetCookieOptions) (*Cookie, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	c, err := Parse(raw, ParseOptions{LooseMode: j.LooseMode})
	if err != nil {
		if opts.IgnoreError {
			return nil, nil
		}
		return nil, err
	}
	return j.setCookieLocked(c, u, opts)
}

// SetParsedCookie validates and stores a pre-parsed Cookie (for example one
// converted from an *http.Cookie). c is cloned before any field is
// modified; the caller's Cookie is never mutated.
func (j *Jar) SetParsedCookie(c *Cookie, u *url.URL, opts SetCookieOptions) (*Cookie, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.setCookieLocked(c.Clone(), u, opts)
}

func (j *Jar) setCookieLocked(c *Cookie, u *url.URL, opts SetCookieOptions) (*Cookie, error) {
	now := opts.now()

	host, err := requestHost(u)
	if err != nil {
		return nil, err
	}
	secure := isSecure(u)
	if opts.Secure != nil {
		secure = *opts.Secure
	}

	reject := func(cause error) (*Cookie, error) {
		j.logf("setCookie %q rejected: %v", c.Key, cause)
		if opts.IgnoreError {
			return nil, nil
		}
		return nil, cause
	}

	if c.Domain != "" {
		domain := CanonicalDomain(c.Domain)
		if !j.AllowAllDomains && isPublicSuffix(j.publicSuffixListLocked(), domain) && domain != host {
			return reject(&PublicSuffixError{Domain: domain})
		}
		if !DomainMatch(host, domain, false) {
			return reject(&DomainMismatchError{Host: host, Domain: domain})
		}
		c.Domain = domain
		c.HostOnly = false
	} else {
		c.Domain = host
		c.HostOnly = true
	}

	if c.Path == "" {
		c.Path = DefaultPath(requestPath(u))
		c.PathIsDefault = true
	}

	if c.HttpOnly && opts.NonHTTP {
		return reject(&HttpOnlyError{Key: c.Key})
	}

	if c.SameSite == SameSiteNone && !c.Secure && !j.LooseMode {
		return reject(&SameSiteNoneInsecureError{Key: c.Key})
	}

	if j.PrefixSecurity != PrefixSecurityUnsafeDisabled {
		if rejected, dropped := j.checkPrefixLocked(c); rejected != nil || dropped {
			if rejected != nil {
				return reject(rejected)
			}
			return nil, nil
		}
	}

	if j.MaxBytesPerCookie > 0 && len(c.Key)+len(c.Value) > j.MaxBytesPerCookie {
		return reject(fmt.Errorf("cookiejar: cookie %q exceeds MaxBytesPerCookie", c.Key))
	}

	store := j.storeLocked()
	existing := store.FindCookie(c.Domain, c.Path, c.Key)
	if existing != nil && existing.Secure && !secure {
		return reject(&SecureOverwriteError{Key: c.Key})
	}

	if existing != nil {
		c.Creation = existing.Creation
		c.CreationIndex = existing.CreationIndex
	} else {
		c.Creation = now
		c.CreationIndex = j.nextIndexLocked()
	}
	c.LastAccessed = now

	if c.IsExpired(now) {
		store.RemoveCookie(c.Domain, c.Path, c.Key)
		j.logf("setCookie %q deleted (past expiry)", c.Key)
		return nil, nil
	}

	store.UpdateCookie(existing, c)
	j.enforceCapacityLocked(store, c.Domain)
	j.logf("setCookie %q stored for %s%s", c.Key, c.Domain, c.Path)
	return c, nil
}

// checkPrefixLocked enforces the __Secure-/__Host- naming conventions.
// It returns a non-nil error when PrefixSecurity is strict; otherwise a
// violation reports dropped=true so the caller silently discards the
// cookie instead of storing it.
func (j *Jar) checkPrefixLocked(c *Cookie) (rejected error, dropped bool) {
	var prefix string
	var ok bool
	switch {
	case strings.HasPrefix(c.Key, "__Host-"):
		prefix = "__Host-"
		ok = c.Secure && c.HostOnly && c.Path == "/"
	case strings.HasPrefix(c.Key, "__Secure-"):
		prefix = "__Secure-"
		ok = c.Secure
	default:
		return nil, false
	}
	if ok {
		return nil, false
	}
	if j.PrefixSecurity == PrefixSecurityStrict {
		return &PrefixError{Key: c.Key, Prefix: prefix}, false
	}
	j.logf("setCookie %q dropped: %s prefix violation", c.Key, prefix)
	return nil, true
}

// enforceCapacityLocked evicts the least-recently-accessed cookies once
// MaxCookiesPerDomain or MaxCookiesTotal is exceeded.
func (j *Jar) enforceCapacityLocked(store Store, domain string) {
	if j.MaxCookiesPerDomain > 0 {
		var inDomain []*Cookie
		for _, c := range store.AllCookies() {
			if c.Domain == domain {
				inDomain = append(inDomain, c)
			}
		}
		evictExcess(store, inDomain, j.MaxCookiesPerDomain)
	}
	if j.MaxCookiesTotal > 0 {
		evictExcess(store, store.AllCookies(), j.MaxCookiesTotal)
	}
}

func evictExcess(store Store, cookies []*Cookie, max int) {
	excess := len(cookies) - max
	if excess <= 0 {
		return
	}
	for _, c := range leastRecentlyUsed(cookies, excess) {
		store.RemoveCookie(c.Domain, c.Path, c.Key)
	}
}

// GetCookies returns the cookies applicable to a request for u, filtered by
// domain-match, path-match, Secure, HttpOnly, SameSite, and expiry, and (by
// default) sorted by cookieCompare: longer path first, then earlier
// creation, then lower CreationIndex.
func (j *Jar) GetCookies(u *url.URL, opts GetCookiesOptions) ([]*Cookie, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	host, err := requestHost(u)
	if err != nil {
		return nil, err
	}
	now := opts.now()
	store := j.storeLocked()
	if !opts.NoExpireSweep {
		sweepExpired(store, now)
	}

	secure := isSecure(u)
	if opts.Secure != nil {
		secure = *opts.Secure
	}
	path := requestPath(u)
	if opts.AllPaths {
		path = ""
	}

	candidates := store.FindCookies(host, path, opts.AllowSpecialUseDomain || j.AllowSpecialUseDomain)
	result := make([]*Cookie, 0, len(candidates))
	for _, c := range candidates {
		if c.IsExpired(now) {
			continue
		}
		if c.HttpOnly && opts.NonHTTP {
			continue
		}
		if !secureEnough(c.Secure, secure) {
			continue
		}
		effectiveSameSite := c.SameSite
		if effectiveSameSite == SameSiteUnspecified && j.DefaultSameSiteContext != SameSiteUnspecified {
			effectiveSameSite = j.DefaultSameSiteContext
		}
		if !PermitsSameSite(effectiveSameSite, opts.SameSiteContext) {
			continue
		}
		c.LastAccessed = now
		store.UpdateCookie(c, c)
		result = append(result, c)
	}

	if !opts.NoSort {
		sort.Slice(result, func(i, k int) bool { return cookieCompare(result[i], result[k]) < 0 })
	}
	j.logf("getCookies %s%s -> %d cookie(s)", host, path, len(result))
	return result, nil
}

// GetCookieString returns the semicolon-joined "key=value" pairs for u, the
// form sent in a request's Cookie header.
func (j *Jar) GetCookieString(u *url.URL, opts GetCookiesOptions) (string, error) {
	cookies, err := j.GetCookies(u, opts)
	if err != nil {
		return "", err
	}
	parts := make([]string, len(cookies))
	for i, c := range cookies {
		parts[i] = c.CookieString()
	}
	return strings.Join(parts, "; "), nil
}

// GetSetCookieStrings returns the full Set-Cookie representation of every
// cookie applicable to u, one string per cookie.
func (j *Jar) GetSetCookieStrings(u *url.URL, opts GetCookiesOptions) ([]string, error) {
	cookies, err := j.GetCookies(u, opts)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(cookies))
	for i, c := range cookies {
		out[i] = c.String()
	}
	return out, nil
}

// RemoveCookie deletes the single cookie identified by (domain, path, key),
// reporting whether a cookie was actually removed.
func (j *Jar) RemoveCookie(domain, path, key string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.storeLocked().RemoveCookie(domain, path, key)
}

// RemoveAllCookies empties the jar.
func (j *Jar) RemoveAllCookies() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.storeLocked().RemoveAllCookies()
}

// AllCookies returns every cookie currently stored, expired or not, in no
// particular order.
func (j *Jar) AllCookies() []*Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.storeLocked().AllCookies()
}

// Clone returns a deep copy of j: same configuration, a fresh MemStore
// holding a clone of every stored cookie, and the same creationIndex
// counter so newly set cookies on the clone won't collide with the
// original's.
func (j *Jar) Clone() *Jar {
	j.mu.Lock()
	defer j.mu.Unlock()

	clone := &Jar{
		MaxCookiesPerDomain:    j.MaxCookiesPerDomain,
		MaxCookiesTotal:        j.MaxCookiesTotal,
		MaxBytesPerCookie:      j.MaxBytesPerCookie,
		LooseMode:              j.LooseMode,
		AllowAllDomains:        j.AllowAllDomains,
		AllowSpecialUseDomain:  j.AllowSpecialUseDomain,
		PrefixSecurity:         j.PrefixSecurity,
		PublicSuffixList:       j.PublicSuffixList,
		Logger:                 j.Logger,
		DefaultSameSiteContext: j.DefaultSameSiteContext,
		store:                  NewMemStore(),
		nextIndex:              j.nextIndex,
	}
	for _, c := range j.storeLocked().AllCookies() {
		clone.store.PutCookie(c.Clone())
	}
	return clone
}
