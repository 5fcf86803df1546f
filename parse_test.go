package cookiejar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseBasicNameValue(t *testing.T) {
	c, err := Parse("A=B", ParseOptions{})
	require.NoError(t, err)
	require.Equal(t, "A", c.Key)
	require.Equal(t, "B", c.Value)
	require.Equal(t, NoMaxAge, c.MaxAge)
}

func TestParseQuotedValue(t *testing.T) {
	c, err := Parse(`A="B"`, ParseOptions{})
	require.NoError(t, err)
	require.Equal(t, "B", c.Value)
}

func TestParseRejectsMissingEquals(t *testing.T) {
	_, err := Parse("novalue", ParseOptions{})
	require.Error(t, err)
	require.IsType(t, &ParseError{}, err)
}

func TestParseLooseModeAllowsMissingEquals(t *testing.T) {
	c, err := Parse("novalue", ParseOptions{LooseMode: true})
	require.NoError(t, err)
	require.Equal(t, "", c.Key)
	require.Equal(t, "novalue", c.Value)
}

func TestParseAttributes(t *testing.T) {
	c, err := Parse("A=B; Domain=Example.COM; Path=/p; Secure; HttpOnly; SameSite=Lax; Max-Age=60", ParseOptions{})
	require.NoError(t, err)
	require.Equal(t, "example.com", c.Domain)
	require.Equal(t, "/p", c.Path)
	require.True(t, c.Secure)
	require.True(t, c.HttpOnly)
	require.Equal(t, SameSiteLax, c.SameSite)
	require.EqualValues(t, 60, c.MaxAge)
}

func TestParseUnknownAttributeBecomesExtension(t *testing.T) {
	c, err := Parse("A=B; Foo=Bar", ParseOptions{})
	require.NoError(t, err)
	require.Equal(t, []string{"Foo=Bar"}, c.Extensions)
}

func TestParseInvalidDomainAttributeIgnored(t *testing.T) {
	c, err := Parse("A=B; Domain=", ParseOptions{})
	require.NoError(t, err)
	require.Equal(t, "", c.Domain)
}

func TestParseInvalidPathAttributeIgnored(t *testing.T) {
	c, err := Parse("A=B; Path=relative", ParseOptions{})
	require.NoError(t, err)
	require.Equal(t, "", c.Path)
}

func TestParseNegativeMaxAge(t *testing.T) {
	c, err := Parse("A=B; Max-Age=-100", ParseOptions{})
	require.NoError(t, err)
	require.EqualValues(t, -100, c.MaxAge)
}

func TestParseZeroMaxAge(t *testing.T) {
	c, err := Parse("A=B; Max-Age=0", ParseOptions{})
	require.NoError(t, err)
	require.EqualValues(t, 0, c.MaxAge)
}

func TestParseOverflowingMaxAgeClampsToMaxTime(t *testing.T) {
	c, err := Parse("A=B; Max-Age=99999999999999999999", ParseOptions{})
	require.NoError(t, err)
	require.EqualValues(t, MaxTime, c.MaxAge)
}

func TestParseCookieDateExamples(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		{
			raw:  "Wed, 09 Jun 2021 10:18:14 GMT",
			want: time.Date(2021, 6, 9, 10, 18, 14, 0, time.UTC),
		},
		{
			raw:  "09 Jun 2021 10:18:14 GMT",
			want: time.Date(2021, 6, 9, 10, 18, 14, 0, time.UTC),
		},
		{
			// tokens out of the usual order are still accepted
			raw:  "10:18:14, 09-Jun-2021",
			want: time.Date(2021, 6, 9, 10, 18, 14, 0, time.UTC),
		},
		{
			// two-digit year, 0-68 expands into the 2000s
			raw:  "Wed, 09 Jun 68 10:18:14 GMT",
			want: time.Date(2068, 6, 9, 10, 18, 14, 0, time.UTC),
		},
		{
			// two-digit year, 69-99 expands into the 1900s
			raw:  "Wed, 09 Jun 99 10:18:14 GMT",
			want: time.Date(1999, 6, 9, 10, 18, 14, 0, time.UTC),
		},
	}
	for _, tt := range cases {
		c, err := Parse("A=B; Expires="+tt.raw, ParseOptions{})
		require.NoError(t, err, tt.raw)
		require.True(t, c.Expires.Equal(tt.want), "%s: got %v want %v", tt.raw, c.Expires, tt.want)
	}
}

func TestParseCookieDateRejectsInvalidCalendarDate(t *testing.T) {
	c, err := Parse("A=B; Expires=Wed, 31 Feb 2021 10:18:14 GMT", ParseOptions{})
	require.NoError(t, err)
	require.True(t, c.Expires.IsZero(), "Feb 31 should not produce a valid Expires")
}

func TestParseCookieDateRejectsMissingComponent(t *testing.T) {
	c, err := Parse("A=B; Expires=09 Jun 2021", ParseOptions{})
	require.NoError(t, err)
	require.True(t, c.Expires.IsZero(), "missing time-of-day should not produce a valid Expires")
}
