package resume

import "strings"

// sanitizer maps typographic Unicode to renderer-safe ASCII equivalents.
//
// The core PDF fonts (Helvetica and friends) only cover a latin subset;
// en/em dashes, curly quotes and glyph bullets show up as black boxes in
// the output, so everything in this table is rewritten before the text
// reaches the classifier.
var sanitizer = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
	"―", "-", // horizontal bar
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"•", "-", // bullet
	"…", "...", // ellipsis
	" ", " ", // non-breaking space
	"​", "", // zero-width space
	"­", "-", // soft hyphen
	"\uFEFF", "", // byte-order mark
	"‐", "-", // hyphen
	"‑", "-", // non-breaking hyphen
	"‒", "-", // figure dash
	"─", "-", // box drawing horizontal
	"▪", "-", // black small square
	"►", "-", // black right-pointing pointer
	"●", "-", // black circle
)

// Sanitize replaces problematic typographic characters with ASCII
// equivalents. It is pure and total — any string in, a string out, no
// errors. It is also idempotent: every replacement lands outside the
// table's domain, so a second pass is a no-op.
func Sanitize(text string) string {
	return sanitizer.Replace(text)
}
