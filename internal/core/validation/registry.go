package validation

import "strings"

// FieldRule pairs a field's sanitizer with its validity predicate and the
// message shown when the predicate fails. Every screen that edits the same
// entity shape reuses the same entry.
type FieldRule struct {
	Sanitize func(string) string
	Validate func(string) bool
	Message  string
}

// Fields is the validator registry keyed by wire field name.
var Fields = map[string]FieldRule{
	"firstName": {
		Sanitize: SanitizeName,
		Validate: ValidName,
		Message:  MsgInvalidFirstName,
	},
	"lastName": {
		Sanitize: SanitizeName,
		Validate: ValidName,
		Message:  MsgInvalidLastName,
	},
	"identificacion": {
		Sanitize: SanitizeIdentification,
		Validate: ValidIdentification,
		Message:  MsgInvalidIdentification,
	},
	// The jersey number is only trimmed, never rewritten: the submitted
	// digits themselves must already be in range.
	"numjugador": {
		Sanitize: strings.TrimSpace,
		Validate: ValidJerseyNumber,
		Message:  MsgInvalidJerseyNumber,
	},
}
