package materialize

import (
	"bytes"
	"fmt"
	"regexp"
)

// placeholderPattern matches a {{key}} placeholder. Keys are identifiers;
// interior whitespace is allowed. Brace pairs that do not form a well-formed
// placeholder pass through unchanged.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// Render substitutes every {{key}} placeholder in content with the value of
// that key in props. Non-placeholder content is copied unchanged.
//
// A placeholder referencing a key absent from props is an error; the caller
// wraps it with the offending source path.
func Render(content []byte, props map[string]string) ([]byte, error) {
	matches := placeholderPattern.FindAllSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, nil
	}

	var buf bytes.Buffer
	buf.Grow(len(content))

	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		key := string(content[m[2]:m[3]])

		value, ok := props[key]
		if !ok {
			return nil, fmt.Errorf("undefined template variable %q", key)
		}

		buf.Write(content[last:start])
		buf.WriteString(value)
		last = end
	}
	buf.Write(content[last:])

	return buf.Bytes(), nil
}
