package cookiejar

import (
	"strconv"
	"strings"
	"time"

	"github.com/rfc6265/cookiejar/abnf"
)

// separatorBytes is the RFC 2616 §2.2 separators set, excluded from token.
const separatorBytes = "()<>@,;:\\\"/[]?={} \t"

func isTokenByte(b byte) bool {
	if b < 0x20 || b == 0x7F {
		return false
	}
	return !strings.ContainsRune(separatorBytes, rune(b))
}

// tokenRule matches RFC 2616 token: 1*<any CHAR except CTLs or separators>.
var tokenRule = abnf.Map(
	abnf.Repeat(1, abnf.Unbounded, abnf.Pred(isTokenByte)),
	bytesToString,
)

func isCookieOctet(b byte) bool {
	switch {
	case b == 0x21:
		return true
	case b >= 0x23 && b <= 0x2B:
		return true
	case b >= 0x2D && b <= 0x3A:
		return true
	case b >= 0x3C && b <= 0x5B:
		return true
	case b >= 0x5D && b <= 0x7E:
		return true
	default:
		return false
	}
}

// cookieOctetRule matches RFC 6265 cookie-octet: VCHAR less DQUOTE, comma,
// semicolon, and backslash.
var cookieOctetRule = abnf.Map(
	abnf.Repeat(0, abnf.Unbounded, abnf.Pred(isCookieOctet)),
	bytesToString,
)

func bytesToString(bs []byte) string { return string(bs) }

// ParseOptions configures Parse's tolerance of malformed input.
type ParseOptions struct {
	// LooseMode allows a name/value pair with no "=" (the whole pair
	// becomes the value, with an empty name) and values that don't match
	// cookie-octet.
	LooseMode bool
}

// Parse parses one Set-Cookie (or Cookie) header string per RFC 6265 §5.2,
// returning a Cookie with its attributes populated but Domain/Path/HostOnly
// not yet resolved against a request context — that normalization is
// Jar.SetCookie's job (spec steps 3-4).
func Parse(s string, opts ParseOptions) (*Cookie, error) {
	nvPart, attrPart, hasAttrs := strings.Cut(s, ";")

	key, value, err := parseNameValue(strings.TrimSpace(nvPart), opts.LooseMode)
	if err != nil {
		return nil, err
	}

	c := &Cookie{
		Key:    key,
		Value:  value,
		MaxAge: NoMaxAge,
	}

	if hasAttrs {
		for _, raw := range strings.Split(attrPart, ";") {
			applyAttribute(c, strings.TrimSpace(raw))
		}
	}

	return c, nil
}

func parseNameValue(pair string, loose bool) (key, value string, err error) {
	if pair == "" {
		return "", "", &ParseError{Input: pair, Reason: "empty name=value pair"}
	}

	name, val, found := strings.Cut(pair, "=")
	if !found {
		if loose {
			return "", strings.TrimSpace(name), nil
		}
		return "", "", &ParseError{Input: pair, Reason: "missing '=' in name=value pair"}
	}

	name = strings.TrimSpace(name)
	val = strings.TrimSpace(val)
	val = strings.TrimPrefix(val, `"`)
	val = strings.TrimSuffix(val, `"`)

	if res := tokenRule(name); !res.Ok || res.Remaining != "" {
		return "", "", &ParseError{Input: pair, Reason: "cookie name is not a valid token"}
	}

	if !loose {
		if res := cookieOctetRule(val); !res.Ok || res.Remaining != "" {
			return "", "", &ParseError{Input: pair, Reason: "cookie value contains an invalid character"}
		}
	}

	return name, val, nil
}

// applyAttribute parses one ";"-separated attribute and folds it into c.
// Malformed attribute values are ignored per RFC 6265 §5.2, not rejected.
func applyAttribute(c *Cookie, raw string) {
	if raw == "" {
		return
	}
	attrName, attrValue, _ := strings.Cut(raw, "=")
	attrValue = strings.TrimSpace(attrValue)
	name := strings.ToLower(strings.TrimSpace(attrName))

	switch name {
	case "expires":
		if t, ok := parseCookieDate(attrValue); ok {
			c.Expires = t
		}
	case "max-age":
		if n, ok := parseMaxAge(attrValue); ok {
			c.MaxAge = n
		}
	case "domain":
		d := strings.TrimPrefix(attrValue, ".")
		d = strings.ToLower(d)
		if d != "" {
			c.Domain = d
		}
	case "path":
		if strings.HasPrefix(attrValue, "/") {
			c.Path = attrValue
		}
	case "secure":
		c.Secure = true
	case "httponly":
		c.HttpOnly = true
	case "samesite":
		switch strings.ToLower(attrValue) {
		case "strict":
			c.SameSite = SameSiteStrict
		case "lax":
			c.SameSite = SameSiteLax
		case "none":
			c.SameSite = SameSiteNone
		default:
			c.SameSite = SameSiteUnspecified
		}
	default:
		c.Extensions = append(c.Extensions, raw)
	}
}

func parseMaxAge(s string) (int64, bool) {
	res := abnf.Seq2(abnf.Opt(abnf.Terminal("-")), abnf.Repeat(1, abnf.Unbounded, abnf.DIGIT))(s)
	if !res.Ok || res.Remaining != "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Overflows an int64: treat as a very large Max-Age, clamped later
		// by ExpiryTime against MaxTime.
		if strings.HasPrefix(s, "-") {
			return -1, true
		}
		return MaxTime, true
	}
	if n == 0 {
		// Zero Max-Age means "already expired", represented the same as a
		// negative Max-Age (see ExpiryTime).
		return 0, true
	}
	return n, true
}

// cookieDateDelimiter matches RFC 6265 §5.1.1's delimiter set: HTAB, SP-'/',
// ';'-'@', '['-'`', '{'-'~'.
func isCookieDateDelimiter(b byte) bool {
	switch {
	case b == 0x09:
		return true
	case b >= 0x20 && b <= 0x2F:
		return true
	case b >= 0x3B && b <= 0x40:
		return true
	case b >= 0x5B && b <= 0x60:
		return true
	case b >= 0x7B && b <= 0x7E:
		return true
	default:
		return false
	}
}

var monthNames = []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}

// parseCookieDate implements the RFC 6265 §5.1.1 cookie-date algorithm: scan
// delimiter-separated tokens looking for the first that matches each of
// time, day-of-month, month, and year, in any order, ignoring tokens that
// don't fit any of the four patterns.
func parseCookieDate(s string) (time.Time, bool) {
	var hour, min, sec, day, month, year int
	var haveTime, haveDay, haveMonth, haveYear bool

	for _, tok := range tokenizeCookieDate(s) {
		if !haveTime {
			if h, m, sc, ok := matchTimeToken(tok); ok {
				hour, min, sec = h, m, sc
				haveTime = true
				continue
			}
		}
		if !haveDay {
			if d, ok := matchDayToken(tok); ok {
				day = d
				haveDay = true
				continue
			}
		}
		if !haveMonth {
			if m, ok := matchMonthToken(tok); ok {
				month = m
				haveMonth = true
				continue
			}
		}
		if !haveYear {
			if y, ok := matchYearToken(tok); ok {
				year = y
				haveYear = true
				continue
			}
		}
	}

	if !haveTime || !haveDay || !haveMonth || !haveYear {
		return time.Time{}, false
	}
	if year < 1601 || hour > 23 || min > 59 || sec > 59 {
		return time.Time{}, false
	}
	if day < 1 || day > daysInMonth(year, month) {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC), true
}

func tokenizeCookieDate(s string) []string {
	var tokens []string
	var cur strings.Builder
	for i := 0; i < len(s); i++ {
		if isCookieDateDelimiter(s[i]) {
			if cur.Len() > 0 {
				tokens = append(tokens, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteByte(s[i])
	}
	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}
	return tokens
}

// matchTimeToken matches hh:mm:ss with 1-2 digit components.
func matchTimeToken(tok string) (h, m, s int, ok bool) {
	digits2 := abnf.Repeat(1, 2, abnf.DIGIT)
	res := abnf.Seq3(digits2, abnf.Terminal(":"), abnf.Seq3(digits2, abnf.Terminal(":"), digits2))(tok)
	if !res.Ok || res.Remaining != "" {
		return 0, 0, 0, false
	}
	hh := string(res.Value.A)
	mm := string(res.Value.C.A)
	ss := string(res.Value.C.C)
	hv, _ := strconv.Atoi(hh)
	mv, _ := strconv.Atoi(mm)
	sv, _ := strconv.Atoi(ss)
	return hv, mv, sv, true
}

// matchDayToken matches a 1-2 digit day-of-month.
func matchDayToken(tok string) (int, bool) {
	res := abnf.Repeat(1, 2, abnf.DIGIT)(tok)
	if !res.Ok || res.Remaining != "" {
		return 0, false
	}
	d, _ := strconv.Atoi(string(res.Value))
	return d, true
}

// matchMonthToken matches a case-insensitive 3-letter month abbreviation
// prefix (the token may have trailing letters, e.g. "June").
func matchMonthToken(tok string) (int, bool) {
	if len(tok) < 3 {
		return 0, false
	}
	prefix := strings.ToLower(tok[:3])
	for i, name := range monthNames {
		if name == prefix {
			return i + 1, true
		}
	}
	return 0, false
}

// matchYearToken matches a 2 or 4 digit year, expanding 2-digit years per
// RFC 6265 §5.1.1: 00-68 -> 2000-2068, 69-99 -> 1969-1999.
func matchYearToken(tok string) (int, bool) {
	res := abnf.Alt(abnf.Repeat(4, 4, abnf.DIGIT), abnf.Repeat(2, 2, abnf.DIGIT))(tok)
	if !res.Ok || res.Remaining != "" {
		return 0, false
	}
	y, _ := strconv.Atoi(string(res.Value))
	if len(res.Value) == 2 {
		if y <= 68 {
			y += 2000
		} else {
			y += 1900
		}
	}
	return y, true
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
