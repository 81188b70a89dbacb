// Package wire serializes codec records as JSON.
package wire

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"

	scbind "github.com/reoring/scbind"
	"github.com/reoring/scbind/codec"
	"github.com/reoring/scbind/i18n"
)

// Options controls Unmarshal.
type Options struct {
	// RejectDuplicateKeys fails on objects that repeat a key instead of
	// keeping the last value.
	RejectDuplicateKeys bool
	// MaxIssues caps the duplicate-key issues reported; 0 means unlimited.
	MaxIssues int
}

// Marshal writes a Record, an Ordered record or any other JSON value.
func Marshal(v any) ([]byte, error) { return j.Marshal(v) }

// Unmarshal parses a JSON object into a Record. Numbers are kept as
// json.Number so integer width checks see the exact text.
func Unmarshal(data []byte, opts ...Options) (codec.Record, error) {
	var opt Options
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.RejectDuplicateKeys {
		if iss := duplicateKeys(data, opt.MaxIssues); len(iss) > 0 {
			return nil, iss
		}
	}
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var rec codec.Record
	if err := dec.Decode(&rec); err != nil {
		return nil, scbind.Issues{parseIssue("/", err)}
	}
	if rec == nil {
		return nil, scbind.Issues{{
			Path:     "/",
			Code:     scbind.CodeInvalidType,
			Message:  i18n.T(scbind.CodeInvalidType, nil),
			Expected: "object",
			Actual:   "null",
		}}
	}
	return rec, nil
}

// UnmarshalValue parses a single JSON value of any kind, keeping numbers as
// json.Number.
func UnmarshalValue(data []byte) (any, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, scbind.Issues{parseIssue("/", err)}
	}
	return v, nil
}

func parseIssue(path string, err error) scbind.Issue {
	return scbind.Issue{Path: path, Code: scbind.CodeParseError, Message: i18n.T(scbind.CodeParseError, nil), Cause: err}
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func escape(key string) string { return "/" + pointerEscaper.Replace(key) }

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	path         string
	nextIndex    int
	pendingKey   string
}

// duplicateKeys walks the token stream and reports every repeated object key
// with the JSON Pointer of the repeated member.
func duplicateKeys(data []byte, maxIssues int) scbind.Issues {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var iss scbind.Issues
	var stack []frame

	// childPath returns the path of the value that starts at the current token
	// and advances the parent frame past it.
	childPath := func() string {
		if len(stack) == 0 {
			return ""
		}
		top := &stack[len(stack)-1]
		if top.kind == kindArray {
			p := top.path + "/" + strconv.Itoa(top.nextIndex)
			top.nextIndex++
			return p
		}
		p := top.path + escape(top.pendingKey)
		top.expectingKey = true
		top.pendingKey = ""
		return p
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			iss = append(iss, parseIssue("/", err))
			break
		}
		switch v := tok.(type) {
		case j.Delim:
			switch v {
			case '{':
				p := childPath()
				stack = append(stack, frame{kind: kindObject, keys: map[string]struct{}{}, expectingKey: true, path: p})
			case '[':
				p := childPath()
				stack = append(stack, frame{kind: kindArray, path: p})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
			}
		case string:
			if len(stack) > 0 {
				top := &stack[len(stack)-1]
				if top.kind == kindObject && top.expectingKey {
					if _, dup := top.keys[v]; dup {
						iss = append(iss, scbind.Issue{
							Path:    top.path + escape(v),
							Code:    scbind.CodeDuplicateKey,
							Message: i18n.T(scbind.CodeDuplicateKey, nil),
							Actual:  v,
						})
						if maxIssues > 0 && len(iss) >= maxIssues {
							return append(iss, scbind.Issue{Path: "/", Code: scbind.CodeTruncated, Message: i18n.T(scbind.CodeTruncated, nil)})
						}
					}
					top.keys[v] = struct{}{}
					top.expectingKey = false
					top.pendingKey = v
					continue
				}
			}
			childPath()
		default:
			childPath()
		}
	}
	return iss
}
