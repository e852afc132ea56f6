package bnf

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/slrgen/lr"
	"github.com/npillmayer/slrgen/lr/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// Token types of the right hand side tokenizer.
const (
	tokSymbol = iota + 1
	tokBar
)

// Separators between left and right hand side of a rule. The first one is the
// canonical form.
var separators = []string{"->", "→", "::="}

// Option configures a Reader.
type Option func(*Reader)

// StartSymbol overrides the start symbol, which defaults to the left hand side
// of the first rule.
func StartSymbol(name string) Option {
	return func(r *Reader) {
		r.start = name
	}
}

// Strict turns warnings about undefined non-terminals into an error.
func Strict(b bool) Option {
	return func(r *Reader) {
		r.strict = b
	}
}

// Name sets the name of the grammar. Default is "G".
func Name(name string) Option {
	return func(r *Reader) {
		r.name = name
	}
}

// Reader reads grammars from text. A Reader may be used for more than one grammar,
// but not concurrently.
type Reader struct {
	name     string
	start    string
	strict   bool
	warnings []error
}

// NewReader creates a grammar reader.
func NewReader(opts ...Option) *Reader {
	r := &Reader{name: "G"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Parse reads a grammar from a string. Warnings are traced, but otherwise dropped;
// use a Reader to inspect them.
func Parse(text string, opts ...Option) (*lr.Grammar, error) {
	return NewReader(opts...).Read(strings.NewReader(text))
}

// Warnings returns the warnings of the last call to Read.
func (r *Reader) Warnings() []error {
	return r.warnings
}

// rawRule is a rule line, split into alternatives of symbol names.
type rawRule struct {
	line int
	lhs  string
	alts [][]string
}

// Read reads a grammar from an input stream. Errors are *MalformedRuleError for
// lines not following the rule syntax, or the errors of lr.GrammarBuilder, e.g.
// lr.ErrEmptyGrammar.
func (r *Reader) Read(in io.Reader) (*lr.Grammar, error) {
	r.warnings = nil
	rules, err := r.readRules(in)
	if err != nil {
		return nil, err
	}
	isLHS := make(map[string]bool)
	for _, rule := range rules {
		isLHS[rule.lhs] = true
	}
	b := lr.NewGrammarBuilder(r.name)
	if r.start != "" {
		b.SetStart(r.start)
	}
	reported := make(map[string]bool)
	for _, rule := range rules {
		for _, alt := range rule.alts {
			rb := b.LHS(rule.lhs)
			if len(alt) == 0 {
				rb.Epsilon()
				continue
			}
			for _, sym := range alt {
				if isLHS[sym] {
					rb.N(sym)
					continue
				}
				if looksLikeNonTerminal(sym) && !reported[sym] {
					reported[sym] = true
					w := &lr.UndefinedSymbolError{Name: sym, Line: rule.line}
					tracer().Infof("warning: %v", w)
					if r.strict {
						return nil, w
					}
					r.warnings = append(r.warnings, w)
				}
				rb.T(sym)
			}
			rb.End()
		}
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, fmt.Errorf("grammar %q: %w", r.name, err)
	}
	for _, A := range g.Unreachable() {
		tracer().Infof("non-terminal %v is unreachable from %v", A, g.UserStart())
	}
	return g, nil
}

func (r *Reader) readRules(in io.Reader) ([]rawRule, error) {
	lm, err := newTokenizer()
	if err != nil {
		return nil, err
	}
	var rules []rawRule
	lines := bufio.NewScanner(in)
	lineno := 0
	for lines.Scan() {
		lineno++
		text := strings.TrimSpace(lines.Text())
		if text == "" || isComment(text) {
			continue
		}
		rule, err := splitRule(lm, lineno, text)
		if err != nil {
			return nil, err
		}
		tracer().Debugf("line %d: %s → %v", lineno, rule.lhs, rule.alts)
		rules = append(rules, rule)
	}
	if err := lines.Err(); err != nil {
		return nil, fmt.Errorf("reading grammar: %w", err)
	}
	return rules, nil
}

func splitRule(lm *lexmach.LMAdapter, lineno int, text string) (rawRule, error) {
	rule := rawRule{line: lineno}
	at, sep := -1, ""
	for _, s := range separators {
		if i := strings.Index(text, s); i >= 0 && (at < 0 || i < at) {
			at, sep = i, s
		}
	}
	if at < 0 {
		return rule, malformed(lineno, text, "missing separator '->'")
	}
	lhs := strings.Fields(text[:at])
	switch {
	case len(lhs) == 0:
		return rule, malformed(lineno, text, "missing left hand side")
	case len(lhs) > 1:
		return rule, malformed(lineno, text, "left hand side must be a single symbol")
	case isReserved(lhs[0]) || strings.Contains(lhs[0], "|"):
		return rule, malformed(lineno, text, fmt.Sprintf("illegal left hand side %q", lhs[0]))
	}
	rule.lhs = lhs[0]
	sc, err := lm.Scanner(text[at+len(sep):])
	if err != nil {
		return rule, err
	}
	tokens, err := sc.Tokens()
	if err != nil {
		return rule, malformed(lineno, text, err.Error())
	}
	var alt []string
	for _, tok := range tokens {
		switch tok.TokType() {
		case tokBar:
			rule.alts = append(rule.alts, alt)
			alt = nil
		case tokSymbol:
			sym := tok.Lexeme()
			if sym == lr.EpsilonName {
				continue
			}
			if sym == lr.EOFName {
				return rule, malformed(lineno, text, "end-of-input marker $ is reserved")
			}
			alt = append(alt, sym)
		}
	}
	rule.alts = append(rule.alts, alt)
	return rule, nil
}

// isComment is checked before rule syntax, thus "# S -> a" is a comment.
func isComment(line string) bool {
	return strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//")
}

func isReserved(name string) bool {
	return name == lr.EpsilonName || name == lr.EOFName
}

func looksLikeNonTerminal(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// newTokenizer creates a lexmachine DFA for the right hand side of rules.
func newTokenizer() (*lexmach.LMAdapter, error) {
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte("( |\t|\r)+"), lexmach.Skip)
		lexer.Add([]byte("[^ \t\r\n\\|]+"), lexmach.MakeToken("SYMBOL", tokSymbol))
	}
	lm, err := lexmach.NewLMAdapter(init, []string{"|"}, nil, map[string]int{"|": tokBar})
	if err != nil {
		return nil, fmt.Errorf("cannot create rule tokenizer: %w", err)
	}
	return lm, nil
}
