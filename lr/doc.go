/*
Package lr implements the construction of SLR(1) parser tables.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Grammars may
contain ε-productions.

Example:

    b := lr.NewGrammarBuilder("G")
    b.LHS("S").N("A").T("a").End()  // S  ->  A a
    b.LHS("A").N("B").N("D").End()  // A  ->  B D
    b.LHS("B").T("b").End()         // B  ->  b
    b.LHS("B").Epsilon()            // B  ->
    b.LHS("D").T("d").End()         // D  ->  d
    b.LHS("D").Epsilon()            // D  ->

This results in the following grammar, augmented by a start rule:

   g, _ := b.Grammar()
   g.Dump()

   0: S' → S
   1: S → A a
   2: A → B D
   3: B → b
   4: B → ε
   5: D → d
   6: D → ε

Grammars are usually not built by hand, but read from text with package bnf.

Static Grammar Analysis

After the grammar is complete, it has to be analysed. For this end, the
grammar is subjected to an LRAnalysis object, which computes FIRST and
FOLLOW sets for the grammar and determines all ε-derivable non-terminals.

    ga := lr.Analysis(g)  // analyser for grammar above
    for _, A := range g.NonTerminals() {
        fmt.Printf("FOLLOW(%v) = %v\n", A, ga.Follow(A))
    }

    // Output:
    FOLLOW(S') = [$]
    FOLLOW(S) = [$]
    FOLLOW(A) = [a]
    FOLLOW(B) = [a d]
    FOLLOW(D) = [a]

Parser Construction

Using grammar analysis as input, a bottom-up parser can be constructed.
First a characteristic finite state machine (CFSM) is built from the
grammar. The CFSM will then be transformed into a GOTO table and an
ACTION table for an SLR(1) parser. The CFSM will not be thrown away,
but is made available to the client. This is intended
for debugging purposes, but may be useful for error recovery, too.
It can be exported to Graphviz's Dot-format.

Example:

    lrgen := lr.NewTableGenerator(ga)  // ga is a grammar analysis, see above
    err := lrgen.CreateTables()        // construct LR parser tables

If the grammar is not SLR(1), CreateTables returns ConflictErrors, listing every
conflicting cell. The tables are complete nevertheless, with conflicting cells
holding all competing actions.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slrgen.lr'.
func tracer() tracing.Trace {
	return tracing.Select("slrgen.lr")
}
