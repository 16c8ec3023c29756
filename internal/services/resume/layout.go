// layout.go — the layout engine: Document blocks to styled flow elements.
package resume

import "strings"

// flowKind tags a renderable flow element. A small closed set of variants
// keeps the renderer a single dispatch loop instead of a type hierarchy.
type flowKind int

const (
	flowName flowKind = iota
	flowContact
	flowSectionHeader
	flowParagraph
	flowJobTitle
	flowBullet
	flowTwoColRow
)

// flowElement is the unit the paginating renderer consumes.
type flowElement struct {
	kind  flowKind
	text  string
	left  string // flowTwoColRow only
	right string // flowTwoColRow only; empty means a padding cell
}

// twoColumnThreshold is the minimum bullet count for the balanced
// two-column skills layout. Below it a vertical list reads better.
const twoColumnThreshold = 4

// skillKeywords mark section titles whose all-bullet content renders in
// two columns. Substring match on the accent-folded lower-case title.
var skillKeywords = []string{"skill", "competenc", "software", "tool", "habilidade", "ferramenta"}

func isSkillsTitle(title string) bool {
	folded := foldAccents(strings.ToLower(title))
	for _, kw := range skillKeywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}

// buildFlow maps the Document onto the ordered flow-element sequence the
// renderer will stream. The Document is read-only here.
func buildFlow(doc Document) []flowElement {
	var flow []flowElement
	for _, b := range doc.Blocks {
		switch b.Kind {
		case BlockName:
			flow = append(flow, flowElement{kind: flowName, text: strings.ToUpper(b.Content)})
		case BlockContact:
			flow = append(flow, flowElement{kind: flowContact, text: b.Content})
		case BlockSection:
			flow = append(flow, sectionFlow(b)...)
		}
	}
	return flow
}

func sectionFlow(b Block) []flowElement {
	var flow []flowElement
	if b.Title != "" {
		flow = append(flow, flowElement{kind: flowSectionHeader, text: strings.ToUpper(b.Title)})
	}

	if isSkillsTitle(b.Title) && len(b.Items) >= twoColumnThreshold && allBullets(b.Items) {
		return append(flow, twoColumnRows(b.Items)...)
	}

	for _, it := range b.Items {
		switch it.Kind {
		case ItemBullet:
			flow = append(flow, flowElement{kind: flowBullet, text: it.Text})
		case ItemJobTitle:
			flow = append(flow, flowElement{kind: flowJobTitle, text: it.Text})
		default:
			flow = append(flow, flowElement{kind: flowParagraph, text: it.Text})
		}
	}
	return flow
}

func allBullets(items []Item) bool {
	if len(items) == 0 {
		return false
	}
	for _, it := range items {
		if it.Kind != ItemBullet {
			return false
		}
	}
	return true
}

// twoColumnRows splits the items at ⌈n/2⌉: column A takes the first half
// rounded up, column B the remainder, padded with empty cells so both
// columns have equal rows. Rows pair columnA[i] with columnB[i], so
// concatenating column A then column B restores the source order — the
// list is split, not interleaved.
func twoColumnRows(items []Item) []flowElement {
	texts := make([]string, 0, len(items))
	for _, it := range items {
		if it.Text != "" {
			texts = append(texts, it.Text)
		}
	}

	mid := (len(texts) + 1) / 2
	colA, colB := texts[:mid], texts[mid:]

	rows := make([]flowElement, 0, mid)
	for i := range colA {
		row := flowElement{kind: flowTwoColRow, left: colA[i]}
		if i < len(colB) {
			row.right = colB[i]
		}
		rows = append(rows, row)
	}
	return rows
}
