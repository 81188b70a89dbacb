package scbind

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes
const (
	CodeInvalidType          = "invalid_type"
	CodeRequired             = "required"
	CodeUnknownKey           = "unknown_key"
	CodeDuplicateKey         = "duplicate_key"
	CodeOverflow             = "overflow"
	CodeInvalidFormat        = "invalid_format"
	CodeDiscriminatorMissing = "discriminator_missing"
	CodeDiscriminatorUnknown = "discriminator_unknown"
	CodeParseError           = "parse_error"
	CodeTruncated            = "truncated"
)

// Issue represents a single decode or validation entry.
type Issue struct {
	Path     string // JSON Pointer (for example: /baseToken/decimals).
	Code     string // One of the codes listed above.
	Message  string
	Expected string // Declared type or format, when known.
	Actual   string // Observed kind of the offending value, when known.
	Cause    error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"format":"int32","got":"300"})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of decode errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path (expected string, got number)
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Expected != "" && it.Actual != "" {
			fmt.Fprintf(b, " (expected %s, got %s)", it.Expected, it.Actual)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Has reports whether any issue carries the given code.
func (iss Issues) Has(code string) bool {
	_, ok := iss.First(code)
	return ok
}

// First returns the first issue with the given code.
func (iss Issues) First(code string) (Issue, bool) {
	for _, it := range iss {
		if it.Code == code {
			return it, true
		}
	}
	return Issue{}, false
}

// Rebase moves every issue under base, so child issues reported at "/" or
// "/x" become base or base+"/x".
func (iss Issues) Rebase(base string) Issues {
	if len(iss) == 0 || base == "" || base == "/" {
		return iss
	}
	out := make(Issues, 0, len(iss))
	for _, it := range iss {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IsMissingField reports whether err carries a required-field issue.
func IsMissingField(err error) bool { return hasCode(err, CodeRequired) }

// IsTypeMismatch reports whether err carries an invalid-type issue.
func IsTypeMismatch(err error) bool { return hasCode(err, CodeInvalidType) }

// IsRangeError reports whether err carries an out-of-range numeric issue.
func IsRangeError(err error) bool { return hasCode(err, CodeOverflow) }

// IsUnknownKey reports whether err carries an unknown-key issue.
func IsUnknownKey(err error) bool { return hasCode(err, CodeUnknownKey) }

func hasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	return ok && iss.Has(code)
}
