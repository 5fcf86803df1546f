// Copyright 2012 Volker Dobler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cookiejar

import "time"

// Store is the interface of a low-level cookie store backing a Jar.
// Cookies are identified as (domain, path, key) triples. A Store is
// responsible for its own bookkeeping; the Jar is responsible for request
// validation, LastAccessed updates, and CreationIndex assignment.
//
// Implementations exposed across goroutines must provide their own
// synchronization; the default MemStore guards its contents with its own
// read/write lock, in addition to the mutual exclusion of its Jar.
type Store interface {
	// FindCookie looks up the cookie identified by (domain, path, key),
	// returning nil if no such cookie is stored.
	FindCookie(domain, path, key string) *Cookie

	// FindCookies returns every stored cookie whose Domain domain-matches
	// domain and, unless path is empty, whose Path path-matches path. The
	// result may be over-approximate; Jar re-filters and re-sorts it. A
	// host-only cookie is included iff its Domain equals domain exactly.
	FindCookies(domain, path string, allowSpecialUseDomain bool) []*Cookie

	// PutCookie upserts cookie by its (Domain, Path, Key) triple.
	PutCookie(cookie *Cookie)

	// UpdateCookie replaces oldCookie with newCookie. The default
	// behavior is simply PutCookie(newCookie); MemStore additionally
	// removes oldCookie's entry when its triple differs from newCookie's.
	UpdateCookie(oldCookie, newCookie *Cookie)

	// RemoveCookie deletes the cookie (domain, path, key), reporting
	// whether a cookie was actually removed.
	RemoveCookie(domain, path, key string) bool

	// RemoveCookies deletes every cookie matching domain and, if path is
	// non-empty, path. It returns the number of cookies removed.
	RemoveCookies(domain, path string) int

	// RemoveAllCookies clears the store entirely.
	RemoveAllCookies()

	// AllCookies returns every stored cookie, expired or not. Jar.Serialize
	// requires this capability; a Store that cannot enumerate its
	// contents may return nil.
	AllCookies() []*Cookie

	// Synchronous reports whether this Store's operations complete without
	// ever suspending (e.g. to perform real I/O). The in-memory stores in
	// this package never suspend and always report true.
	Synchronous() bool
}

// sweepExpired removes every cookie in store that is expired as of now,
// returning how many were removed. It is the shared implementation behind
// Jar.GetCookies' optional expired-sweep side effect.
func sweepExpired(store Store, now time.Time) int {
	removed := 0
	for _, c := range store.AllCookies() {
		if c.IsExpired(now) {
			if store.RemoveCookie(c.Domain, c.Path, c.Key) {
				removed++
			}
		}
	}
	return removed
}
