package cookiejar

import "golang.org/x/net/publicsuffix"

// PublicSuffixList answers "is domain a public suffix" — spec.md's injected
// suffixOf(host) hook. Implementations must be safe for concurrent use.
//
// A public suffix list implementation is in the package
// golang.org/x/net/publicsuffix; a smaller, bundled, dependency-light
// alternative lives in this module's internal/psl package.
type PublicSuffixList interface {
	// PublicSuffix returns the public suffix of domain, e.g. "co.uk" for
	// "foo.co.uk" or "com" for "example.com".
	PublicSuffix(domain string) string

	// String describes the source of this list (version, build time, ...).
	String() string
}

// XNetSuffixList adapts golang.org/x/net/publicsuffix to PublicSuffixList.
// It is the Jar's default when no PublicSuffixList is configured.
type XNetSuffixList struct{}

// PublicSuffix implements PublicSuffixList.
func (XNetSuffixList) PublicSuffix(domain string) string {
	suffix, _ := publicsuffix.PublicSuffix(domain)
	return suffix
}

// String implements PublicSuffixList.
func (XNetSuffixList) String() string {
	return "golang.org/x/net/publicsuffix"
}

// isPublicSuffix reports whether list considers domain a public suffix
// (i.e. the suffix it reports back is the whole of domain).
func isPublicSuffix(list PublicSuffixList, domain string) bool {
	if list == nil {
		return false
	}
	return list.PublicSuffix(domain) == domain
}
