// style.go — the immutable style configuration for layout and rendering.
//
// Everything visual lives here: page geometry, font roles, colors and
// spacing. The configuration is passed explicitly into the renderer —
// never read from process-wide state — so concurrent renders with
// different styles cannot interfere.
package resume

import "time"

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B int
}

// Theme colors, matching the executive résumé look: dark navy accents,
// near-black body text, gray secondary text.
var (
	colorPrimary   = RGB{R: 27, G: 42, B: 74}  // #1B2A4A
	colorText      = RGB{R: 44, G: 44, B: 44}  // #2C2C2C
	colorLightText = RGB{R: 85, G: 85, B: 85}  // #555555
)

// TextStyle describes one style role: weight, size, line height and color.
type TextStyle struct {
	Weight  string  // "" regular, "B" bold, "I" italic
	Size    float64 // font size in points
	Leading float64 // line height in millimetres
	Align   string  // "L" left, "J" justified
	Color   RGB
}

// Style is the full style configuration consumed by the layout engine and
// the renderer. Page geometry and spacing are in millimetres on A4.
type Style struct {
	PageFormat   string
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64

	FontFamily string

	Name         TextStyle
	Contact      TextStyle
	SectionTitle TextStyle
	Body         TextStyle
	JobTitle     TextStyle
	Bullet       TextStyle

	RuleColor   RGB
	RuleWidth   float64
	BulletColor RGB

	BulletIndent float64 // text indent for bullet items
	BulletRadius float64 // marker circle radius
	ColumnGap    float64 // gap between the two skill columns

	SectionHeaderHeight float64 // title row; the rule sits at its bottom
	SpaceBeforeSection  float64
	SpaceAfterHeader    float64
	SpaceAfterName      float64
	SpaceAfterContact   float64
	SpaceAfterBody      float64
	SpaceAfterBullet    float64
	SpaceBeforeJobTitle float64
	SpaceAfterJobTitle  float64

	// CreationDate is stamped into the PDF metadata. Keeping it fixed
	// makes rendering reproducible: identical input, identical bytes.
	CreationDate time.Time

	Author string
}

// DefaultStyle returns the standard résumé style: A4 with 2 cm side and
// 1.5 cm top/bottom margins, Helvetica throughout, navy section headers
// with a rule line, navy bullet markers.
func DefaultStyle() Style {
	return Style{
		PageFormat:   "A4",
		MarginLeft:   20,
		MarginRight:  20,
		MarginTop:    15,
		MarginBottom: 15,

		FontFamily: "Helvetica",

		Name:         TextStyle{Weight: "B", Size: 24, Leading: 9.9, Align: "L", Color: colorText},
		Contact:      TextStyle{Size: 9, Leading: 4.2, Align: "L", Color: colorLightText},
		SectionTitle: TextStyle{Weight: "B", Size: 11, Leading: 4.9, Align: "L", Color: colorPrimary},
		Body:         TextStyle{Size: 9.5, Leading: 4.6, Align: "J", Color: colorText},
		JobTitle:     TextStyle{Weight: "B", Size: 10, Leading: 4.6, Align: "L", Color: colorText},
		Bullet:       TextStyle{Size: 9.5, Leading: 4.6, Align: "J", Color: colorText},

		RuleColor:   colorPrimary,
		RuleWidth:   0.3,
		BulletColor: colorPrimary,

		BulletIndent: 4.9,
		BulletRadius: 0.8,
		ColumnGap:    4,

		SectionHeaderHeight: 7,
		SpaceBeforeSection:  1.4,
		SpaceAfterHeader:    2.1,
		SpaceAfterName:      0.7,
		SpaceAfterContact:   2.8,
		SpaceAfterBody:      1.4,
		SpaceAfterBullet:    0.7,
		SpaceBeforeJobTitle: 2.1,
		SpaceAfterJobTitle:  0.7,

		CreationDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),

		Author: "Resume AI",
	}
}
