// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cookiejarctl drives a cookiejar.Jar from the command line: it
// applies Set-Cookie lines to a jar, prints the Cookie header a request
// would carry, and round-trips a jar through its JSON serialize format.
// It fakes request/response exchange rather than performing real network
// I/O, since the library itself scopes an HTTP client out.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
