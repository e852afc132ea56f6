package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/slrgen"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Enter grammar rules interactively",
		Long: `repl reads grammar rules line by line. Lines starting with ':' are commands:
  :table   print the parse table
  :states  print the states of the LR(0) automaton
  :follow  print FIRST and FOLLOW sets
  :rules   print the augmented grammar
  :clear   forget all rules
  :quit    leave the REPL (or <ctrl>D)`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
	rootCmd.AddCommand(cmd)
}

// Intp is our interpreter object. It collects rule lines and re-generates the
// tables on every command.
type Intp struct {
	rules []string
	repl  *readline.Instance
}

func runREPL(cmd *cobra.Command, args []string) error {
	repl, err := readline.New("slrgen> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Println("Welcome to slrgen, enter rules or :help")
	intp := &Intp{repl: repl}
	intp.REPL()
	return nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if !strings.HasPrefix(line, ":") {
			intp.rules = append(intp.rules, line)
			continue
		}
		if quit := intp.Execute(line); quit {
			break
		}
	}
	pterm.Println("Good bye!")
}

// Execute runs a REPL command. It returns true if the REPL should quit.
func (intp *Intp) Execute(command string) bool {
	tracer().Debugf("command %q with %d rules", command, len(intp.rules))
	switch command {
	case ":quit", ":q":
		return true
	case ":clear":
		intp.rules = nil
		return false
	case ":help":
		pterm.Info.Println(":table :states :follow :rules :clear :quit")
		return false
	}
	render := map[string]func(*slrgen.Result){
		":table":  renderTable,
		":states": renderStates,
		":follow": renderFollow,
		":rules":  renderRules,
	}[command]
	if render == nil {
		pterm.Error.Println(fmt.Sprintf("unknown command %s", command))
		return false
	}
	result, err := slrgen.Generate(strings.Join(intp.rules, "\n"), generatorOptions()...)
	if result == nil {
		pterm.Error.Println(err.Error())
		return false
	}
	printWarnings(result)
	render(result)
	if command == ":table" || isConflict(err) {
		printConflicts(result)
	}
	return false
}
