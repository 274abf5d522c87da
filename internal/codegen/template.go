package codegen

import "strings"

// Marker is the comment in the base template replaced by the generated body.
const Marker = "// {!!}"

// Inject replaces Marker in template with body. When the template has no
// marker it is returned unchanged and found is false.
func Inject(template, body string) (text string, found bool) {
	if !strings.Contains(template, Marker) {
		return template, false
	}
	return strings.ReplaceAll(template, Marker, body), true
}
