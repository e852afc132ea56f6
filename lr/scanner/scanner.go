/*
Package scanner defines an interface for scanners to be used for reading
grammar specifications and the token types they produce.

A default scanner implementation is provided as an adapter for lexmachine,
living in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"text/scanner"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slrgen.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("slrgen.scanner")
}

// TokType is a category type for a Token. Apart from EOF we do not define any
// constants here, as it is up to applications to define them.
type TokType int

// EOF is identical to text/scanner.EOF.
const EOF TokType = scanner.EOF

// Token represents an input token. Tokens are produced by a scanner.
//
//    TokType = Symbol      // identifier for this kind of token (application specific)
//    Lexeme  = "expr"      // lexeme as it appeared in the input
//    Span    = 6…10        // occurred from position 6 in the input
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() Token
	SetErrorHandler(func(error))
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input positions. A span denotes
// a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// lexmachine scanner.
type DefaultToken struct {
	kind   TokType
	lexeme string
	span   Span
}

var _ Token = DefaultToken{}

// MakeDefaultToken creates a token from its parts.
func MakeDefaultToken(typ TokType, lexeme string, span Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

// TokType is part of interface Token.
func (t DefaultToken) TokType() TokType {
	return t.kind
}

// Lexeme is part of interface Token.
func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

// Span is part of interface Token.
func (t DefaultToken) Span() Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("<%d|%q%v>", t.kind, t.lexeme, t.span)
}

// LogError is the default error reporting function for scanners.
func LogError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}
