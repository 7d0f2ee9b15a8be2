package inference

import (
	"net/mail"
	"net/url"
	"strings"

	googleuuid "github.com/google/uuid"
)

// StringFormat classifies the shape of a string value.
//
// Recognition is informational only: a recognized UUID, URL or email is still
// rendered as plain `string` in the generated declaration. The classification
// is surfaced via debug logging so the behavior stays observable without
// changing output.
type StringFormat string

const (
	FormatNone  StringFormat = ""
	FormatUUID  StringFormat = "uuid"
	FormatURL   StringFormat = "url"
	FormatEmail StringFormat = "email"
)

// DetectStringFormat returns the recognized shape of s, or FormatNone.
func DetectStringFormat(s string) StringFormat {
	if googleuuid.Validate(s) == nil {
		return FormatUUID
	}
	if u, err := url.Parse(s); err == nil && u.Scheme != "" && u.Host != "" {
		return FormatURL
	}
	if strings.Contains(s, "@") {
		if addr, err := mail.ParseAddress(s); err == nil && addr.Address == s {
			return FormatEmail
		}
	}
	return FormatNone
}
