package heuristics

import "regexp"

// StrictSentinel is returned when no strict-mode rule fires.
const StrictSentinel = "Code appears strict-mode compliant."

var (
	explicitAnyRe  = regexp.MustCompile(`:\s*any\b`)
	varDeclRe      = regexp.MustCompile(`\b(let|const|var)\s+\w+\s*=`)
	nullLiteralRe  = regexp.MustCompile(`\bnull\b`)
	nullUnionRe    = regexp.MustCompile(`\|\s*null\b|\bnull\s*\|`)
	undefLiteralRe = regexp.MustCompile(`\bundefined\b`)
	undefUnionRe   = regexp.MustCompile(`\|\s*undefined\b|\bundefined\s*\|`)
)

// strictRules is the fixed, ordered strict-mode compliance table.
var strictRules = []rule{
	{
		name:    "explicit_any",
		matches: func(code string) bool { return explicitAnyRe.MatchString(code) },
		finding: Finding{Message: "Explicit 'any' annotation defeats strict type checking; use a concrete type or 'unknown'"},
	},
	{
		name:    "as_any_cast",
		matches: func(code string) bool { return asAnyCastRe.MatchString(code) },
		finding: Finding{Message: "'as any' cast bypasses the compiler; use a narrowing check instead"},
	},
	{
		name: "unannotated_variables",
		matches: func(code string) bool {
			// Coarse: variable declarations present, zero colon annotations
			// anywhere in the snippet.
			return varDeclRe.MatchString(code) && !containsColon(code)
		},
		finding: Finding{Message: "Variable declarations carry no type annotations; strict mode relies on inference alone here"},
	},
	{
		name: "unannotated_functions",
		matches: func(code string) bool {
			return functionShapeRe.MatchString(code) && !containsColon(code)
		},
		finding: Finding{Message: "Function parameters and return values appear unannotated"},
	},
	{
		name: "unreflected_null",
		matches: func(code string) bool {
			return nullLiteralRe.MatchString(code) && !nullUnionRe.MatchString(code)
		},
		finding: Finding{Message: "null is used but no type in the snippet includes '| null'"},
	},
	{
		name: "unreflected_undefined",
		matches: func(code string) bool {
			return undefLiteralRe.MatchString(code) && !undefUnionRe.MatchString(code)
		},
		finding: Finding{Message: "undefined is used but no type in the snippet includes '| undefined'"},
	},
}

// Strict evaluates the strict-mode compliance rules against code.
func Strict(code string) []Finding {
	return evaluate(strictRules, code)
}

// StrictReport renders the strict-mode compliance issues as tool output text.
func StrictReport(code string) string {
	return render("Strict mode issues", Strict(code), StrictSentinel)
}
