// Package heuristics scores TypeScript snippets against fixed rule sets.
//
// Every rule is a substring or regular-expression predicate over the raw
// snippet text; there is no parsing and no semantic analysis. Rule sets are
// independent, evaluated in fixed order with no early exit, and findings are
// never deduplicated.
package heuristics

import (
	"fmt"
	"strings"
)

// Finding is one advisory produced by a rule. All findings are advisory;
// there is no severity ladder.
type Finding struct {
	// Message is the advisory text, fixed per rule.
	Message string
	// Example is a worked code example, present for generic-opportunity
	// findings only.
	Example string
}

// rule pairs a predicate with the finding it appends when it fires.
type rule struct {
	name    string
	matches func(code string) bool
	finding Finding
}

// evaluate runs every rule against code in table order. No early exit: a
// later rule fires regardless of earlier matches.
func evaluate(rules []rule, code string) []Finding {
	var findings []Finding
	for _, r := range rules {
		if r.matches(code) {
			findings = append(findings, r.finding)
		}
	}
	return findings
}

// render numbers the findings, or returns the sentinel when none fired.
func render(header string, findings []Finding, sentinel string) string {
	if len(findings) == 0 {
		return sentinel
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%d):\n", header, len(findings))
	for i, f := range findings {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, f.Message)
		if f.Example != "" {
			sb.WriteString("\n")
			sb.WriteString(indent(f.Example, "   "))
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
