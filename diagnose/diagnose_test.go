package diagnose

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_UndefinedUnion(t *testing.T) {
	res := Analyze("Type 'string | undefined' is not assignable to type 'string'.")

	require.NotEmpty(t, res.Fixes)
	assert.Contains(t, res.Explanation, "undefined")
	assert.Contains(t, res.Fixes[0], "!== undefined")
}

func TestAnalyze_Null(t *testing.T) {
	res := Analyze("Type 'null' is not assignable to type 'string'.")

	require.NotEmpty(t, res.Fixes)
	assert.Contains(t, res.Explanation, "null")
	assert.Contains(t, res.Fixes[0], "!== null")
}

func TestAnalyze_UndefinedWinsOverNull(t *testing.T) {
	// Both shapes are present; the undefined-union category is earlier in the
	// table and must win.
	res := Analyze("Type 'string | null | undefined' is not assignable to type 'string'.")
	assert.Contains(t, res.Fixes[0], "!== undefined")
}

func TestAnalyze_MissingPropertyCapture(t *testing.T) {
	res := Analyze("Property 'email' does not exist on type 'User'.")

	require.NotEmpty(t, res.Fixes)
	assert.Contains(t, res.Fixes[0], "'email'")
	assert.Contains(t, res.Fixes[0], "User")
	assert.Contains(t, res.Explanation, "'email'")
}

func TestAnalyze_MissingPropertyNoCapture(t *testing.T) {
	// Category matches on the loose substring, but the quoted identifiers are
	// absent, so interpolation is silently omitted.
	res := Analyze("some property does not exist on type whatever")

	require.NotEmpty(t, res.Fixes)
	for _, fix := range res.Fixes {
		assert.NotContains(t, fix, "''")
	}
	assert.Equal(t, "The property is not declared on the type it is accessed through.", res.Explanation)
}

func TestAnalyze_ArgumentMismatch(t *testing.T) {
	res := Analyze("Argument of type 'number' is not assignable to parameter of type 'string'.")

	require.NotEmpty(t, res.Fixes)
	assert.Contains(t, res.Explanation, "parameter")
}

func TestAnalyze_AnyEscape(t *testing.T) {
	// Both the implicit-any form and a direct mention of the quoted type
	// resolve to the same category.
	messages := []string{
		"Variable 'x' implicitly has an 'any' type.",
		"Unsafe assignment of an 'any' value.",
	}
	for _, msg := range messages {
		res := Analyze(msg)
		require.NotEmpty(t, res.Fixes, "message %q", msg)
		assert.Contains(t, res.Explanation, "any")
	}
}

func TestAnalyze_CannotFindNameCapture(t *testing.T) {
	res := Analyze("Cannot find name 'useStaet'.")

	require.NotEmpty(t, res.Fixes)
	assert.Contains(t, res.Fixes[0], "'useStaet'")
	assert.Contains(t, res.Explanation, "'useStaet'")
}

func TestAnalyze_CannotFindNameNoCapture(t *testing.T) {
	res := Analyze("Cannot find name of that thing")

	require.NotEmpty(t, res.Fixes)
	assert.Equal(t, "The identifier is not declared in the current scope.", res.Explanation)
}

func TestAnalyze_FallbackNeverEmpty(t *testing.T) {
	inputs := []string{
		"",
		"completely unrelated text",
		"error TS9999: mystery",
	}
	for _, input := range inputs {
		res := Analyze(input)
		assert.NotEmpty(t, res.Fixes, "input %q must fall through to the fallback category", input)
		assert.NotEmpty(t, res.Explanation)
	}
}

func TestAnalyze_AnyDoesNotStealCannotFindName(t *testing.T) {
	// 'anybody' must not trigger the quoted-'any' category
	res := Analyze("Cannot find name 'anybody'.")
	assert.Contains(t, res.Fixes[0], "'anybody'")
}

func TestResultRender(t *testing.T) {
	res := Analyze("Cannot find name 'x'.")
	text := res.Render()

	assert.True(t, strings.HasPrefix(text, "Suggested fixes:\n1. "))
	assert.Contains(t, text, "\nExplanation: ")
}
