package encode

import (
	"github.com/signadot/litview/format"
	"github.com/signadot/litview/ir"
)

// Export renders node as a downloadable artifact and names the file it
// belongs in. Object-literal output is bound to a variable; unknown
// formats fall back to json text in data.txt.
func Export(node *ir.Node, f format.ExportFormat) (text, filename string, err error) {
	text, err = String(node, EncodeDialect(f.Dialect()))
	if err != nil {
		return "", "", err
	}
	if f == format.ExportJS {
		text = "const data = " + text + ";"
	}
	return text, f.Filename(), nil
}
