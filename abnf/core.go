package abnf

// Core rules from RFC 5234 Appendix B.1, expressed over the Rule[T]
// combinators in rule.go. Each is a Rule[byte] matching a single octet,
// except CRLF and LWSP which span more than one octet.

// ALPHA = %x41-5A / %x61-7A.
var ALPHA = Alt(Range('A', 'Z'), Range('a', 'z'))

// BIT = "0" / "1".
var BIT = Alt(Range('0', '0'), Range('1', '1'))

// CHAR = %x01-7F.
var CHAR = Range(0x01, 0x7F)

// CR = %x0D.
var CR = Range(0x0D, 0x0D)

// LF = %x0A.
var LF = Range(0x0A, 0x0A)

// CRLF = CR LF.
var CRLF = Map(Seq2(CR, LF), func(p struct {
	A byte
	B byte
}) string {
	return "\r\n"
})

// CTL = %x00-1F / %x7F.
var CTL = Alt(Range(0x00, 0x1F), Range(0x7F, 0x7F))

// DIGIT = %x30-39.
var DIGIT = Range('0', '9')

// DQUOTE = %x22.
var DQUOTE = Range(0x22, 0x22)

// HEXDIG = DIGIT / "A" / "B" / "C" / "D" / "E" / "F".
var HEXDIG = Alt(DIGIT, Range('A', 'F'), Range('a', 'f'))

// HTAB = %x09.
var HTAB = Range(0x09, 0x09)

// OCTET = %x00-FF.
var OCTET = Range(0x00, 0xFF)

// SP = %x20.
var SP = Range(0x20, 0x20)

// VCHAR = %x21-7E.
var VCHAR = Range(0x21, 0x7E)

// WSP = SP / HTAB.
var WSP = Alt(SP, HTAB)

// LWSP = *(WSP / CRLF WSP).
var LWSP = Map(Repeat(0, Unbounded, Alt(
	Map(WSP, func(b byte) string { return string(b) }),
	Map(Seq2(CRLF, WSP), func(p struct {
		A string
		B byte
	}) string {
		return p.A + string(p.B)
	}),
)), func(parts []string) string {
	out := ""
	for _, p := range parts {
		out += p
	}
	return out
})
