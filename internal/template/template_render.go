package template

import (
	"strings"
)

// Render substitutes every placeholder occurrence in content literally, in a
// single pass: text coming from a value is never expanded again.
// Unknown {tokens} are left untouched.
func Render(content string, v Values) string {
	r := strings.NewReplacer(
		PlaceholderFounderName, v.FounderName,
		PlaceholderToolName, v.ToolName,
		PlaceholderToolDescription, v.ToolDescription,
	)
	return r.Replace(content)
}
