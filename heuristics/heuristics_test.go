package heuristics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefactor_AnyAnnotationFires(t *testing.T) {
	findings := Refactor(`const x: any = load();`)
	require.NotEmpty(t, findings)
	assert.Contains(t, findings[0].Message, "'any'")
}

func TestRefactor_AsAnyCast(t *testing.T) {
	findings := Refactor(`const user = data as any;`)

	var messages []string
	for _, f := range findings {
		messages = append(messages, f.Message)
	}
	assert.Contains(t, strings.Join(messages, "\n"), "as any")
}

func TestRefactor_MissingReturnTypesShapeBased(t *testing.T) {
	// Two structurally different snippets, both function-shaped with no colon
	// annotation anywhere, must produce the same advisory text.
	a := Refactor(`function add(a, b) { return a + b }`)
	b := Refactor(`function greet(name) { return "hi " + name }`)

	require.NotEmpty(t, a)
	require.NotEmpty(t, b)
	assert.Equal(t, a[0].Message, b[0].Message)
	assert.Contains(t, a[0].Message, "return type")
}

func TestRefactor_AnnotatedFunctionDoesNotFire(t *testing.T) {
	findings := Refactor(`function add(a: number, b: number): number { return a + b }`)
	for _, f := range findings {
		assert.NotContains(t, f.Message, "return type")
	}
}

func TestRefactor_OptionalChainingWithoutFallback(t *testing.T) {
	fired := Refactor(`const city = user?.address?.city;`)
	require.NotEmpty(t, fired)
	assert.Contains(t, fired[0].Message, "??")

	handled := Refactor(`const city = user?.address?.city ?? "unknown";`)
	for _, f := range handled {
		assert.NotContains(t, f.Message, "??")
	}
}

func TestRefactor_RawPromise(t *testing.T) {
	fired := Refactor(`fetchUser().then(u => render(u));`)
	require.NotEmpty(t, fired)
	assert.Contains(t, fired[len(fired)-1].Message, "async/await")

	notFired := Refactor(`async function load() { const u = await fetchUser(); }`)
	for _, f := range notFired {
		assert.NotContains(t, f.Message, "async/await")
	}
}

func TestRefactor_Sentinel(t *testing.T) {
	report := RefactorReport(`const n: number = 1;`)
	assert.Equal(t, RefactorSentinel, report)
}

func TestRefactor_NoEarlyExitAndOrder(t *testing.T) {
	// Snippet trips the any-annotation, as-any and raw-promise rules; all must
	// appear, in table order.
	code := `const x: any = p.then(v => v as any);`
	findings := Refactor(code)

	require.GreaterOrEqual(t, len(findings), 3)
	assert.Contains(t, findings[0].Message, "'any'")
	assert.Contains(t, findings[1].Message, "as any")
}

func TestGenerics_AnyFunction(t *testing.T) {
	findings := Generics(`function wrap(value: any) { return [value]; }`)
	require.NotEmpty(t, findings)
	assert.Contains(t, findings[0].Message, "generic")
	assert.Contains(t, findings[0].Example, "identity<T>")
}

func TestGenerics_LooseArray(t *testing.T) {
	findings := Generics(`const items: any[] = [];`)

	var hit *Finding
	for i := range findings {
		if strings.Contains(findings[i].Message, "arrays") {
			hit = &findings[i]
		}
	}
	require.NotNil(t, hit)
	assert.Contains(t, hit.Example, "first<T>")
}

func TestGenerics_InterfaceExtension(t *testing.T) {
	findings := Generics(`interface Admin extends User { level: number }`)
	require.NotEmpty(t, findings)
	assert.Contains(t, findings[0].Message, "generic base")
	assert.Contains(t, findings[0].Example, "ApiResponse<T>")
}

func TestGenerics_Sentinel(t *testing.T) {
	report := GenericsReport(`const n: number = 1;`)
	assert.Equal(t, GenericsSentinel, report)
}

func TestStrict_AnyAnnotationAlwaysFlagged(t *testing.T) {
	// A snippet containing ": any" produces at least one strict finding
	// and at least one refactor advisory.
	code := `const cfg: any = read();`

	strict := Strict(code)
	refactor := Refactor(code)

	assert.NotEmpty(t, strict)
	assert.NotEmpty(t, refactor)
}

func TestStrict_UnannotatedVariables(t *testing.T) {
	findings := Strict(`let count = 0;`)
	require.NotEmpty(t, findings)
	assert.Contains(t, findings[0].Message, "no type annotations")
}

func TestStrict_UnreflectedNull(t *testing.T) {
	fired := Strict(`let v: string = null;`)

	var messages []string
	for _, f := range fired {
		messages = append(messages, f.Message)
	}
	assert.Contains(t, strings.Join(messages, "\n"), "| null")

	reflected := Strict(`const v: string | null = maybe();`)
	for _, f := range reflected {
		assert.NotContains(t, f.Message, "'| null'")
	}
}

func TestStrict_UnreflectedUndefined(t *testing.T) {
	findings := Strict(`const v: string = input ?? undefined;`)

	var messages []string
	for _, f := range findings {
		messages = append(messages, f.Message)
	}
	assert.Contains(t, strings.Join(messages, "\n"), "| undefined")
}

func TestStrict_Sentinel(t *testing.T) {
	report := StrictReport(`const v: string | null = maybe();`)
	assert.Equal(t, StrictSentinel, report)
}

func TestRulesAreIndependent(t *testing.T) {
	// Same input evaluated twice by different sets must not interfere; the
	// sets share no state.
	code := `function f(x: any) { return x as any }`

	before := len(Strict(code))
	_ = Refactor(code)
	_ = Generics(code)
	after := len(Strict(code))

	assert.Equal(t, before, after)
}

func TestRenderNumbersFindings(t *testing.T) {
	report := RefactorReport(`const x: any = v as any;`)
	assert.Contains(t, report, "1. ")
	assert.Contains(t, report, "2. ")
	assert.True(t, strings.HasPrefix(report, "Refactoring suggestions ("))
}
