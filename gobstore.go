// Copyright 2012 Volker Dobler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cookiejar

import (
	"bytes"
	"encoding/gob"
	"io"
	"time"
)

// GobStore wraps a MemStore and adds gob-based snapshot/restore, adapted
// from the teacher's FlatStorage/FancyStorage GobEncode/GobDecode pair. It
// satisfies Store like any other backing store; the gob capability is
// exposed separately via Snapshot/Restore rather than through the Store
// interface itself, since most Store implementations have no reason to
// support it.
type GobStore struct {
	*MemStore
}

// NewGobStore creates an empty GobStore.
func NewGobStore() *GobStore {
	return &GobStore{MemStore: NewMemStore()}
}

// Snapshot gob-encodes every non-expired, persistent cookie in the store to
// w. Session cookies are dropped, mirroring the teacher's GobEncode: a
// snapshot is meant to survive a process restart, at which point a session
// cookie's semantics would already have expired anyway.
func (g *GobStore) Snapshot(w io.Writer, now time.Time) error {
	data := make([]*Cookie, 0)
	for _, c := range g.MemStore.AllCookies() {
		if c.IsPersistent() && !c.IsExpired(now) {
			data = append(data, c)
		}
	}
	return gob.NewEncoder(w).Encode(data)
}

// Restore replaces the store's contents with the non-expired cookies
// gob-decoded from r.
func (g *GobStore) Restore(r io.Reader, now time.Time) error {
	data := make([]*Cookie, 0)
	if err := gob.NewDecoder(r).Decode(&data); err != nil {
		return err
	}

	g.MemStore.RemoveAllCookies()
	for _, c := range data {
		if !c.IsExpired(now) {
			g.MemStore.PutCookie(c)
		}
	}
	return nil
}

// SnapshotBytes is a convenience wrapper around Snapshot for callers that
// want the encoded form as a []byte rather than writing to an io.Writer.
func (g *GobStore) SnapshotBytes(now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.Snapshot(&buf, now); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
