// Copyright 2012 Volker Dobler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package psl is a small, bundled, pure-Go public suffix list, adapted from
// the teacher's label-trie (bst.go) and TLD-bucketed rule list
// (publicsuffixes.go). The teacher's own generated rule table was not part
// of this retrieval (the upstream publicsuffix.org data file runs well past
// this corpus's per-file size cap), so this package ships a small,
// hand-curated seed table covering the common top-level/public-suffix
// shapes (plain TLDs, two-label public suffixes, and one wildcard
// example) rather than the full >9000-rule ICANN list.
//
// For production use, prefer golang.org/x/net/publicsuffix, which carries
// the authoritative, regularly-updated table and implements the same
// two-method interface (see ../../suffixlist.go). This package exists for
// hosts that want a dependency-light, offline fallback and are willing to
// accept its reduced coverage.
package psl

import "strings"

// Kind classifies a label-trie node.
type Kind uint8

const (
	// None marks an internal node that is itself not a complete rule, only
	// a path toward deeper ones (e.g. "uk" on the way to "co.uk" when "uk"
	// alone is not a public suffix rule in this seed table).
	None Kind = iota
	Normal
	Exception
	Wildcard
)

// wildcardLabel is the "*" label in a Wildcard rule's child node, matching
// any single label.
const wildcardLabel = "*"

// Node is one label of the public suffix trie, read right-to-left (the
// root's children are TLDs).
type Node struct {
	Label string
	Kind  Kind
	Sub   []Node
}

func findChild(label string, nodes []Node) *Node {
	var wildcard *Node
	for i := range nodes {
		if nodes[i].Label == label {
			return &nodes[i]
		}
		if nodes[i].Label == wildcardLabel {
			wildcard = &nodes[i]
		}
	}
	return wildcard
}

// Trie is a pure-Go PublicSuffixList backed by a bundled rule tree.
type Trie struct {
	root []Node
}

// New returns a Trie seeded with Seed, the package's bundled rule table.
func New() *Trie {
	return &Trie{root: Seed}
}

// String implements the PublicSuffixList "description" method.
func (t *Trie) String() string {
	return "psl.Trie (bundled seed table)"
}

// PublicSuffix returns the public suffix of domain per the
// publicsuffix.org matching algorithm: walk labels right to left through
// the trie, remembering the deepest node that is itself a rule (Kind !=
// None). An Exception rule's suffix is one label shorter than the match;
// a Wildcard rule's suffix is exactly the match. No match at all falls
// back to the implicit "*" rule: the suffix is just the TLD.
func (t *Trie) PublicSuffix(domain string) string {
	labels := strings.Split(domain, ".")

	nodes := t.root
	var lastRule *Node
	var lastRuleDepth int

	depth := 0
	for i := len(labels) - 1; i >= 0; i-- {
		child := findChild(labels[i], nodes)
		if child == nil {
			break
		}
		depth++
		if child.Kind != None {
			lastRule = child
			lastRuleDepth = depth
		}
		nodes = child.Sub
	}

	if lastRule == nil {
		if len(labels) == 0 {
			return ""
		}
		return labels[len(labels)-1]
	}

	switch lastRule.Kind {
	case Exception:
		lastRuleDepth--
	case Wildcard:
		// depth already includes the label that matched "*".
	}

	if lastRuleDepth <= 0 || lastRuleDepth > len(labels) {
		return ""
	}
	return strings.Join(labels[len(labels)-lastRuleDepth:], ".")
}
