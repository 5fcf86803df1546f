package psl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTriePlainTLD(t *testing.T) {
	trie := New()
	require.Equal(t, "com", trie.PublicSuffix("com"))
	require.Equal(t, "com", trie.PublicSuffix("example.com"))
	require.Equal(t, "com", trie.PublicSuffix("www.example.com"))
}

func TestTrieTwoLabelSuffix(t *testing.T) {
	trie := New()
	require.Equal(t, "co.uk", trie.PublicSuffix("co.uk"))
	require.Equal(t, "co.uk", trie.PublicSuffix("example.co.uk"))
	require.Equal(t, "co.uk", trie.PublicSuffix("www.example.co.uk"))
}

func TestTrieNoneNodeIsNotItselfASuffix(t *testing.T) {
	trie := New()
	// "github" under "io" is marked Kind: None, i.e. "github.io" alone is
	// not a public suffix rule in the seed table; only the bare "io" TLD is.
	require.Equal(t, "io", trie.PublicSuffix("github.io"))
}

func TestTrieUnknownTLDFallsBackToLastLabel(t *testing.T) {
	trie := New()
	require.Equal(t, "zz", trie.PublicSuffix("example.zz"))
}

func TestTrieExceptionRule(t *testing.T) {
	trie := New()
	// "tokyo.jp" is a wildcard rule with "metro" excepted back out.
	require.Equal(t, "tokyo.jp", trie.PublicSuffix("metro.tokyo.jp"))
}

func TestTrieString(t *testing.T) {
	trie := New()
	require.NotEmpty(t, trie.String())
}
