// render.go — the paginating renderer: flow elements onto fixed A4 pages.
//
// We use gofpdf, the Go workhorse for programmatic PDF generation. The
// renderer streams the flow-element sequence top to bottom, measuring each
// element first and starting a new page whenever the remaining vertical
// space cannot hold it. Element order is preserved across page breaks.
package resume

import (
	"errors"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// ErrRenderFailed marks a failure inside the PDF renderer. Callers test
// for it with errors.Is to tell rendering failures apart from collaborator
// errors; a failed render is fatal to the call, there is no retry.
var ErrRenderFailed = errors.New("resume rendering failed")

// Generate runs the full pipeline — sanitize, classify, build, layout,
// render — and writes the finished PDF to w using the default style.
func Generate(candidateName, resumeText string, w io.Writer) error {
	return GenerateWithStyle(candidateName, resumeText, DefaultStyle(), w)
}

// GenerateWithStyle renders with an explicit style configuration.
func GenerateWithStyle(candidateName, resumeText string, style Style, w io.Writer) error {
	pdf, err := render(Parse(resumeText), candidateName, style)
	if err != nil {
		return err
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return nil
}

// GenerateFile renders straight to a file at path. The caller owns the
// file and its deletion.
func GenerateFile(candidateName, resumeText, path string) error {
	pdf, err := render(Parse(resumeText), candidateName, DefaultStyle())
	if err != nil {
		return err
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return nil
}

// renderer carries the cursor state for one render invocation.
type renderer struct {
	pdf    *gofpdf.Fpdf
	style  Style
	width  float64 // usable width between the side margins
	bottom float64 // y limit that forces a page break
}

func render(doc Document, candidateName string, style Style) (*gofpdf.Fpdf, error) {
	pdf := gofpdf.New("P", "mm", style.PageFormat, "")
	pdf.SetTitle("Resume - "+candidateName, true)
	pdf.SetAuthor(style.Author, true)
	pdf.SetCreationDate(style.CreationDate)
	// Resource catalogs (fonts) are emitted from maps; sort them so the
	// same input yields byte-identical output, as the fixed CreationDate
	// already promises.
	pdf.SetCatalogSort(true)
	pdf.SetMargins(style.MarginLeft, style.MarginTop, style.MarginRight)
	// Page breaks are decided per flow element, before drawing it.
	pdf.SetAutoPageBreak(false, style.MarginBottom)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	r := &renderer{
		pdf:    pdf,
		style:  style,
		width:  pageW - style.MarginLeft - style.MarginRight,
		bottom: pageH - style.MarginBottom,
	}

	for _, el := range buildFlow(doc) {
		r.draw(el)
	}

	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, pdf.Error())
	}
	return pdf, nil
}

func (r *renderer) draw(el flowElement) {
	st := r.style
	switch el.kind {
	case flowName:
		r.text(el.text, st.Name, st.SpaceAfterName)
	case flowContact:
		r.text(el.text, st.Contact, st.SpaceAfterContact)
	case flowSectionHeader:
		r.sectionHeader(el.text)
	case flowParagraph:
		r.text(el.text, st.Body, st.SpaceAfterBody)
	case flowJobTitle:
		r.advance(st.SpaceBeforeJobTitle)
		r.text(el.text, st.JobTitle, st.SpaceAfterJobTitle)
	case flowBullet:
		r.bullet(el.text)
	case flowTwoColRow:
		r.twoColRow(el.left, el.right)
	}
}

// setFont applies a text style to the PDF cursor state.
func (r *renderer) setFont(ts TextStyle) {
	r.pdf.SetFont(r.style.FontFamily, ts.Weight, ts.Size)
	r.pdf.SetTextColor(ts.Color.R, ts.Color.G, ts.Color.B)
}

// heightOf measures the wrapped height of text at the given style and
// width. Measurement uses the same font state as drawing, so the two
// always agree.
func (r *renderer) heightOf(text string, ts TextStyle, width float64) float64 {
	r.setFont(ts)
	lines := r.pdf.SplitText(text, width)
	if len(lines) == 0 {
		return ts.Leading
	}
	return float64(len(lines)) * ts.Leading
}

// breakIfNeeded starts a new page when fewer than need millimetres remain
// below the cursor.
func (r *renderer) breakIfNeeded(need float64) {
	if r.pdf.GetY()+need > r.bottom {
		r.pdf.AddPage()
	}
}

func (r *renderer) advance(gap float64) {
	if gap > 0 {
		r.pdf.SetY(r.pdf.GetY() + gap)
	}
}

// text draws one wrapped text block at the left margin, then advances by
// the trailing gap.
func (r *renderer) text(content string, ts TextStyle, after float64) {
	h := r.heightOf(content, ts, r.width)
	r.breakIfNeeded(h)
	r.pdf.SetX(r.style.MarginLeft)
	r.setFont(ts)
	r.pdf.MultiCell(r.width, ts.Leading, content, "", ts.Align, false)
	r.advance(after)
}

// sectionHeader draws the title row with a horizontal rule at its bottom.
// The rule spans the full usable width, underlining the whole section.
func (r *renderer) sectionHeader(title string) {
	st := r.style
	r.breakIfNeeded(st.SpaceBeforeSection + st.SectionHeaderHeight + st.SpaceAfterHeader)
	r.advance(st.SpaceBeforeSection)
	top := r.pdf.GetY()

	r.setFont(st.SectionTitle)
	r.pdf.SetXY(st.MarginLeft, top)
	r.pdf.CellFormat(r.width, st.SectionHeaderHeight, title, "", 0, "L", false, 0, "")

	y := top + st.SectionHeaderHeight
	r.pdf.SetDrawColor(st.RuleColor.R, st.RuleColor.G, st.RuleColor.B)
	r.pdf.SetLineWidth(st.RuleWidth)
	r.pdf.Line(st.MarginLeft, y, st.MarginLeft+r.width, y)

	r.pdf.SetY(y + st.SpaceAfterHeader)
}

// bullet draws a filled circle marker followed by indented, wrapped text.
func (r *renderer) bullet(text string) {
	st := r.style
	h := r.heightOf(text, st.Bullet, r.width-st.BulletIndent)
	r.breakIfNeeded(h)
	top := r.pdf.GetY()

	r.marker(st.MarginLeft, top)
	r.cell(text, st.MarginLeft, top, r.width-st.BulletIndent, st.Bullet.Align)

	r.pdf.SetY(top + h)
	r.advance(st.SpaceAfterBullet)
}

// twoColRow draws one row of the balanced skills table: two cells with
// bullet markers, top-aligned. An empty right cell is column padding.
func (r *renderer) twoColRow(left, right string) {
	st := r.style
	colW := (r.width - st.ColumnGap) / 2
	textW := colW - st.BulletIndent

	h := r.heightOf(left, st.Bullet, textW)
	if right != "" {
		if rh := r.heightOf(right, st.Bullet, textW); rh > h {
			h = rh
		}
	}
	r.breakIfNeeded(h)
	top := r.pdf.GetY()

	r.marker(st.MarginLeft, top)
	r.cell(left, st.MarginLeft, top, textW, "L")
	if right != "" {
		x := st.MarginLeft + colW + st.ColumnGap
		r.marker(x, top)
		r.cell(right, x, top, textW, "L")
	}

	r.pdf.SetY(top + h)
}

// marker draws the filled bullet circle aligned with the first text line.
func (r *renderer) marker(x, top float64) {
	st := r.style
	r.pdf.SetFillColor(st.BulletColor.R, st.BulletColor.G, st.BulletColor.B)
	r.pdf.Circle(x+st.BulletRadius+0.3, top+st.Bullet.Leading/2, st.BulletRadius, "F")
}

// cell draws wrapped text indented past a marker at x.
func (r *renderer) cell(text string, x, top, width float64, align string) {
	st := r.style
	r.setFont(st.Bullet)
	r.pdf.SetLeftMargin(x + st.BulletIndent)
	r.pdf.SetXY(x+st.BulletIndent, top)
	r.pdf.MultiCell(width, st.Bullet.Leading, text, "", align, false)
	r.pdf.SetLeftMargin(st.MarginLeft)
}
