// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cookiejar

import (
	"bytes"
	"testing"
	"time"
)

func TestGobStoreSnapshotRestore(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	store := NewGobStore()
	jar := NewJar(store)
	u := mustURL(t, "http://www.host.test/")

	if _, err := jar.SetCookie("A=a; Max-Age=3600", u, SetCookieOptions{Now: now}); err != nil {
		t.Fatalf("SetCookie: %v", err)
	}
	if _, err := jar.SetCookie("B=b", u, SetCookieOptions{Now: now}); err != nil { // session cookie
		t.Fatalf("SetCookie: %v", err)
	}

	var buf bytes.Buffer
	if err := store.Snapshot(&buf, now); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	restored := NewGobStore()
	if err := restored.Restore(&buf, now); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	all := restored.AllCookies()
	if len(all) != 1 {
		t.Fatalf("got %d cookies after restore, want 1 (session cookie B should be dropped)", len(all))
	}
	if all[0].Key != "A" {
		t.Errorf("got key %q, want %q", all[0].Key, "A")
	}
}

func TestGobStoreSnapshotDropsExpiredCookies(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewGobStore()
	jar := NewJar(store)
	u := mustURL(t, "http://www.host.test/")

	if _, err := jar.SetCookie("A=a; Max-Age=3600", u, SetCookieOptions{Now: now}); err != nil {
		t.Fatalf("SetCookie: %v", err)
	}

	future := now.Add(2 * time.Hour)
	data, err := store.SnapshotBytes(future)
	if err != nil {
		t.Fatalf("SnapshotBytes: %v", err)
	}

	restored := NewGobStore()
	if err := restored.Restore(bytes.NewReader(data), future); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if got := len(restored.AllCookies()); got != 0 {
		t.Fatalf("got %d cookies, want 0 (A should have expired before the snapshot)", got)
	}
}

func TestGobStoreRestoreReplacesContents(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewGobStore()
	jar := NewJar(store)
	u := mustURL(t, "http://www.host.test/")
	if _, err := jar.SetCookie("OLD=old; Max-Age=3600", u, SetCookieOptions{Now: now}); err != nil {
		t.Fatal(err)
	}

	other := NewGobStore()
	otherJar := NewJar(other)
	if _, err := otherJar.SetCookie("NEW=new; Max-Age=3600", u, SetCookieOptions{Now: now}); err != nil {
		t.Fatal(err)
	}
	data, err := other.SnapshotBytes(now)
	if err != nil {
		t.Fatal(err)
	}

	if err := store.Restore(bytes.NewReader(data), now); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	all := store.AllCookies()
	if len(all) != 1 || all[0].Key != "NEW" {
		t.Fatalf("Restore should fully replace store contents, got %v", all)
	}
}
