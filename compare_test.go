package cookiejar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCookieCompareLongerPathFirst(t *testing.T) {
	a := &Cookie{Path: "/a/b"}
	b := &Cookie{Path: "/a"}
	require.Equal(t, -1, cookieCompare(a, b))
	require.Equal(t, 1, cookieCompare(b, a))
}

func TestCookieCompareEarlierCreationFirst(t *testing.T) {
	now := time.Now()
	a := &Cookie{Path: "/", Creation: now}
	b := &Cookie{Path: "/", Creation: now.Add(time.Second)}
	require.Equal(t, -1, cookieCompare(a, b))
	require.Equal(t, 1, cookieCompare(b, a))
}

func TestCookieCompareCreationIndexTiebreak(t *testing.T) {
	now := time.Now()
	a := &Cookie{Path: "/", Creation: now, CreationIndex: 1}
	b := &Cookie{Path: "/", Creation: now, CreationIndex: 2}
	require.Equal(t, -1, cookieCompare(a, b))
	require.Equal(t, 1, cookieCompare(b, a))
}

func TestCookieCompareEqual(t *testing.T) {
	now := time.Now()
	a := &Cookie{Path: "/", Creation: now, CreationIndex: 1}
	b := &Cookie{Path: "/", Creation: now, CreationIndex: 1}
	require.Equal(t, 0, cookieCompare(a, b))
}
