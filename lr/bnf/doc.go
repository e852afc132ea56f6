/*
Package bnf reads grammars from a plain-text rule notation.

Rules are given one per line, with alternatives separated by '|':

    # expression grammar
    E -> E + T | T
    T -> T * F | F
    F -> ( E ) | id

Separators '->', '→' and '::=' are accepted. Symbols are separated by whitespace.
A symbol is a non-terminal if it appears as the left hand side of a rule, every
other symbol is a terminal. An alternative which is empty or consists of 'ε'
denotes the empty word. Lines starting with '#' or '//' are comments, even if
they contain a separator; a grammar symbol may therefore not start a rule with
'#' or '//'.

The left hand side of the first rule is the start symbol, unless option
StartSymbol says otherwise. The grammar returned is augmented with a start rule
S' → S (see package lr).

Right hand side symbols which are written like a non-terminal (i.e., starting
with an upper case letter) but are never defined are reported as warnings, or
as an error in strict mode.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bnf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slrgen.bnf'.
func tracer() tracing.Trace {
	return tracing.Select("slrgen.bnf")
}
