package reqgate

import "strings"

// Violation is a single schema failure: where in the value it occurred and
// why. Path is empty for failures of the section value as a whole (e.g. a
// body that is not valid JSON).
type Violation struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

// Violations is an ordered list of violations. A nil or empty list means the
// value was accepted.
type Violations []Violation

// Fail builds a single-violation list for the given path and message.
func Fail(message string, path ...string) Violations {
	if path == nil {
		path = []string{}
	}
	return Violations{{Path: path, Message: message}}
}

func (vs Violations) String() string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		if len(v.Path) == 0 {
			parts[i] = v.Message
			continue
		}
		parts[i] = strings.Join(v.Path, ".") + ": " + v.Message
	}
	return strings.Join(parts, "; ")
}
