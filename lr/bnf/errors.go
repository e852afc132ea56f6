package bnf

import "fmt"

// MalformedRuleError is returned for a line which is not of the form
// 'LHS -> alternatives'.
type MalformedRuleError struct {
	Line   int
	Text   string
	Reason string
}

func (e *MalformedRuleError) Error() string {
	return fmt.Sprintf("line %d: malformed rule %q: %s", e.Line, e.Text, e.Reason)
}

func malformed(line int, text, reason string) *MalformedRuleError {
	return &MalformedRuleError{Line: line, Text: text, Reason: reason}
}
