// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abnf provides small parser combinators for building RFC 5234
// ABNF-style grammars over plain strings. A Rule never consumes input on
// failure: Remaining on a failed Result always equals the string the rule
// was given.
package abnf

import "strings"

// Unbounded is the "*" (zero-or-more, no upper limit) repeat count.
const Unbounded = -1

// Result is the outcome of applying a Rule to an input string.
type Result[T any] struct {
	Value     T
	Remaining string
	Ok        bool
}

func ok[T any](value T, remaining string) Result[T] {
	return Result[T]{Value: value, Remaining: remaining, Ok: true}
}

func fail[T any](original string) Result[T] {
	var zero T
	return Result[T]{Value: zero, Remaining: original, Ok: false}
}

// Rule parses a prefix of its input, returning the parsed value and the
// unconsumed remainder, or reports failure while returning the original
// input unconsumed.
type Rule[T any] func(input string) Result[T]

// Terminal matches a literal string case-insensitively and discards it,
// returning the matched (original-case) text.
func Terminal(literal string) Rule[string] {
	return func(input string) Result[string] {
		if len(input) < len(literal) || !strings.EqualFold(input[:len(literal)], literal) {
			return fail[string](input)
		}
		return ok(input[:len(literal)], input[len(literal):])
	}
}

// Range matches a single byte whose value lies in [lo, hi], e.g. the ABNF
// form %x41-5A.
func Range(lo, hi byte) Rule[byte] {
	return func(input string) Result[byte] {
		if len(input) == 0 || input[0] < lo || input[0] > hi {
			return fail[byte](input)
		}
		return ok(input[0], input[1:])
	}
}

// Seq2 concatenates two rules, all-or-nothing: if either fails the whole
// sequence fails and no input is consumed.
func Seq2[A, B any](a Rule[A], b Rule[B]) Rule[struct {
	A A
	B B
}] {
	type pair = struct {
		A A
		B B
	}
	return func(input string) Result[pair] {
		ra := a(input)
		if !ra.Ok {
			return fail[pair](input)
		}
		rb := b(ra.Remaining)
		if !rb.Ok {
			return fail[pair](input)
		}
		return ok(pair{ra.Value, rb.Value}, rb.Remaining)
	}
}

// Seq3 concatenates three rules, all-or-nothing.
func Seq3[A, B, C any](a Rule[A], b Rule[B], c Rule[C]) Rule[struct {
	A A
	B B
	C C
}] {
	type triple = struct {
		A A
		B B
		C C
	}
	return func(input string) Result[triple] {
		ra := a(input)
		if !ra.Ok {
			return fail[triple](input)
		}
		rb := b(ra.Remaining)
		if !rb.Ok {
			return fail[triple](input)
		}
		rc := c(rb.Remaining)
		if !rc.Ok {
			return fail[triple](input)
		}
		return ok(triple{ra.Value, rb.Value, rc.Value}, rc.Remaining)
	}
}

// Pred matches a single byte satisfying predicate fn. It is the escape
// hatch for grammar productions expressed as exclusion sets (e.g. RFC 6265's
// "any CHAR except CTLs or separators") that don't read naturally as a
// union of %x ranges.
func Pred(fn func(byte) bool) Rule[byte] {
	return func(input string) Result[byte] {
		if len(input) == 0 || !fn(input[0]) {
			return fail[byte](input)
		}
		return ok(input[0], input[1:])
	}
}

// Seq concatenates any number of same-typed rules, all-or-nothing, in the
// order given. On any child failure it returns Fail{original input}.
func Seq[T any](rules ...Rule[T]) Rule[[]T] {
	return func(input string) Result[[]T] {
		results := make([]T, 0, len(rules))
		remaining := input
		for _, r := range rules {
			res := r(remaining)
			if !res.Ok {
				return fail[[]T](input)
			}
			results = append(results, res.Value)
			remaining = res.Remaining
		}
		return ok(results, remaining)
	}
}

// Alt returns the result of the first rule that succeeds, left to right.
// It fails only if every branch fails.
func Alt[T any](rules ...Rule[T]) Rule[T] {
	return func(input string) Result[T] {
		for _, r := range rules {
			if res := r(input); res.Ok {
				return res
			}
		}
		return fail[T](input)
	}
}

// Repeat matches r greedily between min and max times (inclusive). Pass
// Unbounded for max to allow unlimited repetitions. Repeat fails if the
// number of matches found is less than min; it never consumes a match that
// would bring the count above max.
func Repeat[T any](min, max int, r Rule[T]) Rule[[]T] {
	return func(input string) Result[[]T] {
		results := make([]T, 0, 4)
		remaining := input
		for max == Unbounded || len(results) < max {
			res := r(remaining)
			if !res.Ok {
				break
			}
			if res.Remaining == remaining {
				// Never loop forever on a rule that matches the empty string.
				break
			}
			results = append(results, res.Value)
			remaining = res.Remaining
		}
		if len(results) < min {
			return fail[[]T](input)
		}
		return ok(results, remaining)
	}
}

// Opt matches r zero or one time. It never fails.
func Opt[T any](r Rule[T]) Rule[*T] {
	return func(input string) Result[*T] {
		if res := r(input); res.Ok {
			v := res.Value
			return ok(&v, res.Remaining)
		}
		return ok[*T](nil, input)
	}
}

// Map transforms a successful Result's value through f. A failed Result
// passes through with its original-input Remaining, unchanged.
func Map[T, U any](r Rule[T], f func(T) U) Rule[U] {
	return func(input string) Result[U] {
		res := r(input)
		if !res.Ok {
			return fail[U](input)
		}
		return ok(f(res.Value), res.Remaining)
	}
}

// Lazy defers construction of a rule until first use and memoizes it,
// allowing forward references in mutually recursive grammars.
func Lazy[T any](build func() Rule[T]) Rule[T] {
	var inner Rule[T]
	return func(input string) Result[T] {
		if inner == nil {
			inner = build()
		}
		return inner(input)
	}
}
