// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cookiejar

import (
	"fmt"
	"net/url"
	"testing"
)

func fillJar(b *testing.B, jar *Jar, n int) []*url.URL {
	urls := make([]*url.URL, n)
	for i := 0; i < n; i++ {
		raw := fmt.Sprintf("http://host%d.test/path%d", i%64, i%8)
		u, err := url.Parse(raw)
		if err != nil {
			b.Fatalf("url.Parse: %v", err)
		}
		urls[i] = u
		if _, err := jar.SetCookie(fmt.Sprintf("K%d=v%d", i, i), u, SetCookieOptions{}); err != nil {
			b.Fatalf("SetCookie: %v", err)
		}
	}
	return urls
}

func BenchmarkSetCookie(b *testing.B) {
	jar := NewJar(nil)
	u, _ := url.Parse("http://www.host.test/")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		jar.SetCookie(fmt.Sprintf("K%d=v", i%1000), u, SetCookieOptions{})
	}
}

func BenchmarkGetCookies(b *testing.B) {
	jar := NewJar(nil)
	urls := fillJar(b, jar, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		jar.GetCookies(urls[i%len(urls)], GetCookiesOptions{})
	}
}

func BenchmarkGetCookieString(b *testing.B) {
	jar := NewJar(nil)
	urls := fillJar(b, jar, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		jar.GetCookieString(urls[i%len(urls)], GetCookiesOptions{})
	}
}

func BenchmarkSetCookieWithCapacityLimit(b *testing.B) {
	jar := NewJar(nil)
	jar.MaxCookiesPerDomain = 50
	u, _ := url.Parse("http://www.host.test/")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		jar.SetCookie(fmt.Sprintf("K%d=v", i), u, SetCookieOptions{})
	}
}

func BenchmarkClone(b *testing.B) {
	jar := NewJar(nil)
	fillJar(b, jar, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		jar.Clone()
	}
}
