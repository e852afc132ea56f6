/*
Command slrgen generates SLR(1) parser tables for a grammar and displays
them on the terminal, or exports them to Graphviz and HTML.

Grammars are read from a file or from stdin, one rule per line:

    E -> E + T | T
    T -> T * F | F
    F -> ( E ) | id

Use 'slrgen repl' to enter a grammar interactively.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
