// Package diagnose matches TypeScript compiler error messages against an
// ordered list of known error shapes and returns remediation suggestions.
//
// Matching is first-match-wins over the category table; a fallback category
// matches everything, so every input, including the empty string, yields a
// non-empty fix list.
package diagnose

import (
	"fmt"
	"regexp"
	"strings"
)

// Result is the outcome of analyzing one error message.
type Result struct {
	// Fixes is an ordered, never-empty list of remediation suggestions.
	Fixes []string
	// Explanation is a one-sentence description of the error shape.
	Explanation string
}

// Render formats the result as tool output text.
func (r Result) Render() string {
	var sb strings.Builder
	sb.WriteString("Suggested fixes:\n")
	for i, fix := range r.Fixes {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, fix)
	}
	sb.WriteString("\nExplanation: ")
	sb.WriteString(r.Explanation)
	return sb.String()
}

// category is one known error shape. match decides membership; build produces
// the result, capturing identifiers from the message where the shape allows.
type category struct {
	name  string
	match func(message string) bool
	build func(message string) Result
}

var (
	missingPropertyRe = regexp.MustCompile(`Property '([^']+)' does not exist on type '([^']+)'`)
	cannotFindNameRe  = regexp.MustCompile(`Cannot find name '([^']+)'`)
)

// categories is the ordered shape table. Order is load-bearing: the undefined
// union shape must win over the plain null shape, and the fallback must come
// last.
var categories = []category{
	{
		name: "undefined_not_assignable",
		match: func(m string) bool {
			return strings.Contains(m, "| undefined") && strings.Contains(m, "not assignable")
		},
		build: func(m string) Result {
			return Result{
				Fixes: []string{
					"Add an explicit check: if (value !== undefined) { ... }",
					"Use optional chaining: value?.property",
					"Provide a fallback with nullish coalescing: value ?? defaultValue",
					"Use a non-null assertion (value!) only when you can prove the value exists",
				},
				Explanation: "The value's type includes undefined, so it cannot be assigned where a defined value is required.",
			}
		},
	},
	{
		name: "null_not_assignable",
		match: func(m string) bool {
			return strings.Contains(m, "null") && strings.Contains(m, "not assignable")
		},
		build: func(m string) Result {
			return Result{
				Fixes: []string{
					"Add a null check: if (value !== null) { ... }",
					"Use optional chaining: value?.property",
					"Provide a default with nullish coalescing: value ?? defaultValue",
					"Widen the target type to include null: T | null",
				},
				Explanation: "The value may be null, and the target type does not accept null.",
			}
		},
	},
	{
		name: "missing_property",
		match: func(m string) bool {
			return strings.Contains(m, "does not exist on type")
		},
		build: func(m string) Result {
			fixes := []string{
				"Check the property name for typos",
				"Use a type guard before accessing the property",
				"Declare the property as optional if it may be absent",
			}
			explanation := "The property is not declared on the type it is accessed through."
			if caps := missingPropertyRe.FindStringSubmatch(m); caps != nil {
				property, typeName := caps[1], caps[2]
				fixes = append([]string{
					fmt.Sprintf("Add '%s' to the definition of type %s", property, typeName),
				}, fixes...)
				explanation = fmt.Sprintf("Type %s has no declared property '%s'.", typeName, property)
			}
			return Result{Fixes: fixes, Explanation: explanation}
		},
	},
	{
		name: "argument_mismatch",
		match: func(m string) bool {
			return strings.Contains(m, "Argument of type") && strings.Contains(m, "not assignable to parameter")
		},
		build: func(m string) Result {
			return Result{
				Fixes: []string{
					"Check the declared parameter type and pass a matching value",
					"Convert the argument to the expected type before the call",
					"Update the function signature if the parameter type is too narrow",
					"Consider a generic parameter if the function should accept multiple types",
				},
				Explanation: "The argument's type does not match the parameter type the function declares.",
			}
		},
	},
	{
		name: "any_escape",
		match: func(m string) bool {
			// Covers both explicit mentions and "implicitly has an 'any' type".
			return strings.Contains(m, "'any'")
		},
		build: func(m string) Result {
			return Result{
				Fixes: []string{
					"Add an explicit type annotation instead of relying on any",
					"Use unknown and narrow with type guards where the shape is truly dynamic",
					"Define an interface for the value's shape",
					"Enable noImplicitAny in tsconfig to surface every escape",
				},
				Explanation: "The code falls back to the unconstrained any type, which disables type checking for that value.",
			}
		},
	},
	{
		name: "cannot_find_name",
		match: func(m string) bool {
			return strings.Contains(m, "Cannot find name")
		},
		build: func(m string) Result {
			fixes := []string{
				"Check the identifier spelling",
				"Import the symbol from the module that declares it",
				"Install type declarations if it comes from a library: npm i -D @types/<package>",
			}
			explanation := "The identifier is not declared in the current scope."
			if caps := cannotFindNameRe.FindStringSubmatch(m); caps != nil {
				name := caps[1]
				fixes = append([]string{
					fmt.Sprintf("Declare '%s' before using it", name),
				}, fixes...)
				explanation = fmt.Sprintf("'%s' is not declared in the current scope.", name)
			}
			return Result{Fixes: fixes, Explanation: explanation}
		},
	},
	{
		name:  "fallback",
		match: func(m string) bool { return true },
		build: func(m string) Result {
			return Result{
				Fixes: []string{
					"Read the full error message; TypeScript usually names the exact mismatch",
					"Hover the symbol in your editor to inspect the inferred type",
					"Break complex expressions into smaller, explicitly typed steps",
					"Check tsconfig strictness flags; a stricter setting often pinpoints the cause",
				},
				Explanation: "The message did not match a known error shape; general type-debugging steps apply.",
			}
		},
	},
}

// Analyze matches message against the category table, first match wins.
func Analyze(message string) Result {
	for _, c := range categories {
		if c.match(message) {
			return c.build(message)
		}
	}
	// Unreachable: the fallback category matches everything.
	return categories[len(categories)-1].build(message)
}
