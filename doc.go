/*
Package slrgen generates SLR(1) parser tables from a grammar given as text.

slrgen strives to be a small and lightweight tool to check grammars for
the SLR(1) property and to inspect the tables an LR parser would use.
Package structure is as follows:

■ lr: Package lr implements grammars, grammar analysis (FIRST and FOLLOW sets),
the LR(0) automaton (CFSM) and the construction of ACTION and GOTO tables.

■ lr/bnf: Package bnf reads grammars from a plain-text rule notation.

■ cmd/slrgen: A command line tool with an interactive REPL.

The base package runs the complete pipeline with a single call:

    result, err := slrgen.Generate(`
        E -> E + T | T
        T -> T * F | F
        F -> ( E ) | id
    `)

If the grammar is not SLR(1), Generate returns the complete result together with
an error of type lr.ConflictErrors.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package slrgen

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slrgen'.
func tracer() tracing.Trace {
	return tracing.Select("slrgen")
}
