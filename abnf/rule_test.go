package abnf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTerminal(t *testing.T) {
	r := Terminal("GMT")
	res := r("gmt rest")
	require.True(t, res.Ok)
	require.Equal(t, "gmt", res.Value)
	require.Equal(t, " rest", res.Remaining)

	res = r("nope")
	require.False(t, res.Ok)
	require.Equal(t, "nope", res.Remaining)
}

func TestRange(t *testing.T) {
	r := Range('0', '9')
	res := r("5x")
	require.True(t, res.Ok)
	require.Equal(t, byte('5'), res.Value)
	require.Equal(t, "x", res.Remaining)

	res = r("x5")
	require.False(t, res.Ok)
	require.Equal(t, "x5", res.Remaining)
}

func TestSeq2(t *testing.T) {
	r := Seq2(Terminal("a"), Terminal("b"))
	res := r("abc")
	require.True(t, res.Ok)
	require.Equal(t, "a", res.Value.A)
	require.Equal(t, "b", res.Value.B)
	require.Equal(t, "c", res.Remaining)

	res = r("ac")
	require.False(t, res.Ok)
	require.Equal(t, "ac", res.Remaining, "a partial match must not consume input on failure")
}

func TestSeq3(t *testing.T) {
	r := Seq3(Terminal("a"), Terminal("b"), Terminal("c"))
	res := r("abcd")
	require.True(t, res.Ok)
	require.Equal(t, "d", res.Remaining)
}

func TestAlt(t *testing.T) {
	r := Alt(Terminal("cat"), Terminal("dog"))
	res := r("dog food")
	require.True(t, res.Ok)
	require.Equal(t, "dog", res.Value)
	require.Equal(t, " food", res.Remaining)

	res = r("fish")
	require.False(t, res.Ok)
}

func TestRepeatBounds(t *testing.T) {
	r := Repeat(2, 4, DIGIT)
	res := r("123456")
	require.True(t, res.Ok)
	require.Len(t, res.Value, 4)
	require.Equal(t, "56", res.Remaining)

	res = r("1x")
	require.False(t, res.Ok, "one digit is below the min of 2")
	require.Equal(t, "1x", res.Remaining)
}

func TestRepeatUnbounded(t *testing.T) {
	r := Repeat(0, Unbounded, DIGIT)
	res := r("")
	require.True(t, res.Ok)
	require.Empty(t, res.Value)
}

func TestOpt(t *testing.T) {
	r := Opt(Terminal("-"))
	res := r("-5")
	require.True(t, res.Ok)
	require.NotNil(t, res.Value)
	require.Equal(t, "5", res.Remaining)

	res = r("5")
	require.True(t, res.Ok, "Opt never fails")
	require.Nil(t, res.Value)
	require.Equal(t, "5", res.Remaining)
}

func TestMap(t *testing.T) {
	r := Map(Repeat(1, Unbounded, DIGIT), func(bs []byte) string { return string(bs) })
	res := r("42x")
	require.True(t, res.Ok)
	require.Equal(t, "42", res.Value)
	require.Equal(t, "x", res.Remaining)
}

func TestLazyMemoizesAndSupportsRecursion(t *testing.T) {
	calls := 0
	var rule Rule[byte]
	rule = Lazy(func() Rule[byte] {
		calls++
		return DIGIT
	})
	rule("1")
	rule("2")
	require.Equal(t, 1, calls, "Lazy must build its inner rule only once")

	// nested = "(" nested ")" / "x", counting the depth of parentheses.
	var nested Rule[int]
	nested = Lazy(func() Rule[int] {
		return Alt(
			Map(Seq3(Terminal("("), nested, Terminal(")")), func(p struct {
				A string
				B int
				C string
			}) int {
				return p.B + 1
			}),
			Map(Terminal("x"), func(string) int { return 0 }),
		)
	})
	res := nested("((x))rest")
	require.True(t, res.Ok)
	require.Equal(t, 2, res.Value)
	require.Equal(t, "rest", res.Remaining)
}

func TestPred(t *testing.T) {
	r := Pred(func(b byte) bool { return b == 'z' })
	res := r("zzz")
	require.True(t, res.Ok)
	require.Equal(t, byte('z'), res.Value)
	require.Equal(t, "zz", res.Remaining)
}

func TestCoreRulesCRLF(t *testing.T) {
	res := CRLF("\r\nrest")
	require.True(t, res.Ok)
	require.Equal(t, "\r\n", res.Value)
	require.Equal(t, "rest", res.Remaining)
}

func TestCoreRulesALPHA(t *testing.T) {
	res := ALPHA("Zrest")
	require.True(t, res.Ok)
	res = ALPHA("9rest")
	require.False(t, res.Ok)
}
