package inference

// reservedWords are TypeScript keywords that cannot appear as bare property
// names in a declaration without quoting.
var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true,
	"delete": true, "do": true, "else": true, "enum": true,
	"export": true, "extends": true, "false": true, "finally": true,
	"for": true, "function": true, "if": true, "import": true,
	"in": true, "instanceof": true, "new": true, "null": true,
	"return": true, "super": true, "switch": true, "this": true,
	"throw": true, "true": true, "try": true, "typeof": true,
	"var": true, "void": true, "while": true, "with": true,
	"implements": true, "interface": true, "let": true, "package": true,
	"private": true, "protected": true, "public": true, "static": true,
	"yield": true,
}

// isValidIdentifier reports whether s can be used unquoted as a property name.
// ASCII-only on purpose: anything fancier gets quoted, which is always safe.
func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, ch := range s {
		letter := (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '_' || ch == '$'
		digit := ch >= '0' && ch <= '9'
		if i == 0 {
			if !letter {
				return false
			}
		} else if !letter && !digit {
			return false
		}
	}
	return true
}
