package policy

import "fmt"

// ErrorKind classifies a policy-string parse failure.
type ErrorKind string

const (
	// KindMalformedSetting: a clause is not bisected by exactly one =.
	KindMalformedSetting ErrorKind = "malformed-setting"
	// KindMalformedValue: a value list with the wrong token count, an
	// empty token, or a token that fails numeric conversion.
	KindMalformedValue ErrorKind = "malformed-value"
	// KindInvalidPrefix: an enumerated tag (MMP, NP) whose value does
	// not start with C, Q or R.
	KindInvalidPrefix ErrorKind = "invalid-prefix"
	// KindUnknownTag: a tag outside the recognized set.
	KindUnknownTag ErrorKind = "unknown-tag"
)

// ParseError reports why a policy string was rejected. The whole parse
// aborts on the first error; no partial record is ever returned.
type ParseError struct {
	Kind    ErrorKind
	Setting int    // 1-based index of the offending setting
	Tag     string // offending tag, when one was recognized far enough to name
	Policy  string // the full original policy string
	Message string
}

func (e *ParseError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("alignment policy setting %d (%q): %s; policy: %q",
			e.Setting, e.Tag, e.Message, e.Policy)
	}
	return fmt.Sprintf("alignment policy setting %d: %s; policy: %q",
		e.Setting, e.Message, e.Policy)
}
