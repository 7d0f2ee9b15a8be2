package heuristics

import (
	"regexp"
	"strings"
)

// RefactorSentinel is returned when no refactor rule fires.
const RefactorSentinel = "No refactoring suggestions found."

var (
	anyAnnotationRe   = regexp.MustCompile(`:\s*any\b|<any>`)
	asAnyCastRe       = regexp.MustCompile(`\bas\s+any\b`)
	functionShapeRe   = regexp.MustCompile(`\bfunction\s+\w*\s*\(|=>`)
	inlineShapeRe     = regexp.MustCompile(`\{\s*\w+\s*:`)
	rawPromiseRe      = regexp.MustCompile(`\bnew\s+Promise\b|\.then\s*\(|\bPromise<`)
	optionalChainRe   = regexp.MustCompile(`\?\.`)
	nullishCoalesceRe = regexp.MustCompile(`\?\?`)
	asyncRe           = regexp.MustCompile(`\basync\b`)
)

// refactorRules is the fixed, ordered refactor advisory table.
var refactorRules = []rule{
	{
		name:    "any_usage",
		matches: func(code string) bool { return anyAnnotationRe.MatchString(code) },
		finding: Finding{Message: "Replace 'any' with a specific type or 'unknown' to keep type checking"},
	},
	{
		name:    "unsafe_cast",
		matches: func(code string) bool { return asAnyCastRe.MatchString(code) },
		finding: Finding{Message: "Avoid 'as any' casts; cast to a specific interface or use a type guard"},
	},
	{
		name: "missing_return_types",
		matches: func(code string) bool {
			// Function-declaration shape present but the snippet carries no
			// colon annotation at all. Shape-based, not semantic.
			return functionShapeRe.MatchString(code) && !containsColon(code)
		},
		finding: Finding{Message: "Add explicit return type annotations to functions"},
	},
	{
		name: "optional_chain_no_fallback",
		matches: func(code string) bool {
			return optionalChainRe.MatchString(code) && !nullishCoalesceRe.MatchString(code)
		},
		finding: Finding{Message: "Pair optional chaining (?.) with a fallback (??) so undefined results are handled"},
	},
	{
		name: "repeated_inline_shapes",
		matches: func(code string) bool {
			return len(inlineShapeRe.FindAllString(code, 2)) >= 2
		},
		finding: Finding{Message: "Extract repeated inline object shapes into a named interface"},
	},
	{
		name: "raw_promise",
		matches: func(code string) bool {
			return rawPromiseRe.MatchString(code) && !asyncRe.MatchString(code)
		},
		finding: Finding{Message: "Use async/await instead of raw promise chains for clearer result types"},
	},
}

func containsColon(code string) bool {
	return strings.Contains(code, ":")
}

// Refactor evaluates the refactor advisory rules against code.
func Refactor(code string) []Finding {
	return evaluate(refactorRules, code)
}

// RefactorReport renders the refactor advisories as tool output text.
func RefactorReport(code string) string {
	return render("Refactoring suggestions", Refactor(code), RefactorSentinel)
}
