// Package redact provides utilities for redacting sensitive information from
// strings before they are logged. This prevents the accidental leakage of
// credentials, connection strings, and tokens through error messages that
// originate deep in the database or auth layers.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedTokenPlaceholder      = "[REDACTED_TOKEN]"
)

// Precompiled regex patterns
var (
	// Database connection strings with inline credentials
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql|db|database)://[^@\s]+@`)

	// password=... / pwd:... style fragments
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?|['"]?[=:])[^'"&\s]{3,}`)

	// Bearer secrets and API keys
	secretRegex = regexp.MustCompile(`(?i)(secret|api[_-]?key|signing[_-]?key)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`)

	// Standard three-part base64url-encoded JWT tokens
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)
)

var placeholders = map[*regexp.Regexp]string{
	dbConnRegex:   RedactedCredentialPlaceholder,
	passwordRegex: RedactedCredentialPlaceholder,
	secretRegex:   RedactedCredentialPlaceholder,
	jwtTokenRegex: RedactedTokenPlaceholder,
}

// String returns a copy of s with any recognized sensitive fragments
// replaced by redaction placeholders.
func String(s string) string {
	for re, placeholder := range placeholders {
		s = re.ReplaceAllString(s, placeholder)
	}
	return s
}

// Error returns the redacted message of err, or an empty string for nil.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
