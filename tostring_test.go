package cookiejar

import (
	"strings"
	"testing"
	"time"
)

func TestCookieStringFull(t *testing.T) {
	c := &Cookie{
		Key:      "A",
		Value:    "a",
		Expires:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		MaxAge:   60,
		Domain:   "host.test",
		Path:     "/p",
		Secure:   true,
		HttpOnly: true,
		SameSite: SameSiteLax,
	}
	got := c.String()
	for _, want := range []string{
		"A=a",
		"Expires=Tue, 02 Jan 2024 03:04:05 GMT",
		"Max-Age=60",
		"Domain=host.test",
		"Path=/p",
		"Secure",
		"HttpOnly",
		"SameSite=Lax",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
}

func TestCookieStringOmitsUnsetAttributes(t *testing.T) {
	c := &Cookie{Key: "A", Value: "a", MaxAge: NoMaxAge}
	got := c.String()
	if got != "A=a" {
		t.Errorf("got %q, want %q", got, "A=a")
	}
}

func TestCookieStringIncludesExtensions(t *testing.T) {
	c := &Cookie{Key: "A", Value: "a", MaxAge: NoMaxAge, Extensions: []string{"Foo=Bar"}}
	got := c.String()
	if !strings.HasSuffix(got, "; Foo=Bar") {
		t.Errorf("got %q, want a trailing extension", got)
	}
}
