package jsgen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// DefaultFactory is the Vite configuration factory the module exports.
const DefaultFactory = "defineConfig"

const moduleTemplate = `{{join .Imports "\n"}}

{{.Functions}}

export default {{.Factory}}((config) => ({{.Config}}));
`

var moduleTmpl = template.Must(template.New("module").
	Funcs(template.FuncMap{"join": strings.Join}).
	Option("missingkey=error").
	Parse(moduleTemplate))

// Module describes a generated ES module: import lines, helper function
// source, and a default export wrapping a serialized config object in a
// factory call.
type Module struct {
	Imports   []string
	Functions string
	Factory   string
	Config    string
}

// Render assembles the module source. Leading and trailing whitespace is
// trimmed, and Functions is trimmed before it is placed, so the helper
// block sits between single blank lines whatever surrounding whitespace
// Functions carries. Indented blank lines around the helpers are not
// reproduced.
func (m Module) Render() (string, error) {
	if m.Factory == "" {
		m.Factory = DefaultFactory
	}
	m.Functions = strings.TrimSpace(m.Functions)

	var buf bytes.Buffer
	if err := moduleTmpl.Execute(&buf, m); err != nil {
		return "", fmt.Errorf("executing module template: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}
