package heuristics

import "regexp"

// GenericsSentinel is returned when no generic-opportunity rule fires.
const GenericsSentinel = "No obvious generic opportunities found."

var (
	looseAnyWordRe    = regexp.MustCompile(`\bany\b`)
	functionKeywordRe = regexp.MustCompile(`\bfunction\b`)
	looseArrayRe      = regexp.MustCompile(`\bany\[\]|Array<any>`)
	interfaceExtendRe = regexp.MustCompile(`\binterface\b[\s\S]*\bextends\b`)
)

const identityExample = `function identity<T>(value: T): T {
  return value;
}`

const arrayExample = `function first<T>(items: T[]): T | undefined {
  return items[0];
}`

const baseInterfaceExample = `interface ApiResponse<T> {
  data: T;
  status: number;
}`

// genericRules is the fixed, ordered generic-opportunity table. Each finding
// carries a worked example, not just a message.
var genericRules = []rule{
	{
		name: "any_function",
		matches: func(code string) bool {
			return looseAnyWordRe.MatchString(code) && functionKeywordRe.MatchString(code)
		},
		finding: Finding{
			Message: "A function that takes or returns 'any' can usually become generic",
			Example: identityExample,
		},
	},
	{
		name:    "loose_array",
		matches: func(code string) bool { return looseArrayRe.MatchString(code) },
		finding: Finding{
			Message: "Loosely-typed arrays (any[] / Array<any>) can carry their element type as a parameter",
			Example: arrayExample,
		},
	},
	{
		name:    "interface_extension",
		matches: func(code string) bool { return interfaceExtendRe.MatchString(code) },
		finding: Finding{
			Message: "Extended interfaces can often share structure through a generic base",
			Example: baseInterfaceExample,
		},
	},
}

// Generics evaluates the generic-opportunity rules against code.
func Generics(code string) []Finding {
	return evaluate(genericRules, code)
}

// GenericsReport renders the generic-opportunity advisories as tool output text.
func GenericsReport(code string) string {
	return render("Generic opportunities", Generics(code), GenericsSentinel)
}
