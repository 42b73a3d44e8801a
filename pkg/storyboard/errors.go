package storyboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Issue is a single validation failure at a dotted, indexed field path,
// e.g. "scenes.1.dialog.0.character_id".
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Errors collects validation issues in document order. The zero value is
// ready to use.
type Errors struct {
	issues []Issue
}

func (e *Errors) add(msg string, path ...any) {
	e.issues = append(e.issues, Issue{Path: joinPath(path...), Message: msg})
}

func (e *Errors) addf(path []any, format string, args ...any) {
	e.issues = append(e.issues, Issue{Path: joinPath(path...), Message: fmt.Sprintf(format, args...)})
}

func joinPath(parts ...any) string {
	var b bytes.Buffer
	for i, p := range parts {
		if i > 0 {
			b.WriteByte('.')
		}
		switch v := p.(type) {
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(strconv.Itoa(v))
		default:
			fmt.Fprint(&b, v)
		}
	}
	return b.String()
}

// Empty reports whether no issues were recorded.
func (e *Errors) Empty() bool {
	return e == nil || len(e.issues) == 0
}

// Issues returns the recorded issues in document order.
func (e *Errors) Issues() []Issue {
	if e == nil {
		return nil
	}
	return e.issues
}

func (e *Errors) Error() string {
	if e.Empty() {
		return "no validation errors"
	}
	first := e.issues[0]
	if len(e.issues) == 1 {
		return fmt.Sprintf("%s: %s", first.Path, first.Message)
	}
	return fmt.Sprintf("%s: %s (and %d more)", first.Path, first.Message, len(e.issues)-1)
}

// MarshalJSON renders the issues as a path -> messages object, preserving
// document order of the paths instead of Go's sorted map order.
func (e *Errors) MarshalJSON() ([]byte, error) {
	var (
		order    []string
		messages = make(map[string][]string)
	)
	for _, issue := range e.Issues() {
		if _, seen := messages[issue.Path]; !seen {
			order = append(order, issue.Path)
		}
		messages[issue.Path] = append(messages[issue.Path], issue.Message)
	}

	var b bytes.Buffer
	b.WriteByte('{')
	for i, path := range order {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(path)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(messages[path])
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(val)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
