// Package kleene defines synthesis Options and the package sentinel errors.
package kleene

import "errors"

// ErrAutomatonNil is returned when a nil *fsa.Automaton is passed to Synthesize.
var ErrAutomatonNil = errors.New("kleene: automaton is nil")

// Alternation is the one-character alternation operator of the output grammar.
const Alternation = "|"

// Option configures optional behavior of Synthesize.
type Option func(*Options)

// Options holds the output-grammar constants of the construction. The
// operators themselves (Alternation, the Kleene star, structural parens)
// are fixed; only the two terminal constants are configurable.
type Options struct {
	// Epsilon is the empty-string constant emitted on diagonal entries.
	Epsilon string

	// EmptySet is the empty-language constant emitted for absent edges.
	EmptySet string
}

// DefaultOptions returns the canonical output grammar: "eps" for the empty
// string and "{}" for the empty language.
func DefaultOptions() Options {
	return Options{
		Epsilon:  "eps",
		EmptySet: "{}",
	}
}

// WithEpsilon returns an Option overriding the empty-string constant.
// An empty value is ignored.
func WithEpsilon(s string) Option {
	return func(o *Options) {
		if s != "" {
			o.Epsilon = s
		}
	}
}

// WithEmptySet returns an Option overriding the empty-language constant.
// An empty value is ignored.
func WithEmptySet(s string) Option {
	return func(o *Options) {
		if s != "" {
			o.EmptySet = s
		}
	}
}
