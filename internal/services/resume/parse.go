// parse.go — the document builder: one linear pass from sanitized lines
// to a structured Document.
package resume

import (
	"strings"
	"unicode/utf8"
)

const (
	// maxContactLines bounds the contact phase: at most this many lines
	// after the name are ever merged into the contact block.
	maxContactLines = 3

	// maxContactLineLen is the cutoff for the "short ambiguous line"
	// contact rule during the bounded phase.
	maxContactLineLen = 120

	// contactSeparator joins absorbed contact lines into one block.
	contactSeparator = " | "
)

// Parse sanitizes raw résumé text and assembles the structured Document
// in a single linear pass with no backtracking. It is total: any input,
// including the empty string, yields a valid (possibly empty) Document.
//
// The pass runs a small state machine: expect the name first, then absorb
// a bounded contact block, then classify body lines into sections.
func Parse(text string) Document {
	lines := strings.Split(Sanitize(text), "\n")

	var doc Document
	idx := 0

	// Name: the first non-empty line, when present.
	for idx < len(lines) && strings.TrimSpace(lines[idx]) == "" {
		idx++
	}
	if idx < len(lines) {
		doc.Blocks = append(doc.Blocks, Block{Kind: BlockName, Content: strings.TrimSpace(lines[idx])})
		idx++
	}

	// Bounded contact phase. A line is absorbed when it is contact-like
	// (email, link, phone — any length) or short enough to plausibly be an
	// unmarked contact line. A header or bullet ends the phase at once; so
	// does the three-line bound, no matter how many short lines follow.
	var contact []string
	for idx < len(lines) && len(contact) < maxContactLines {
		line := strings.TrimSpace(lines[idx])
		if line == "" {
			idx++
			continue
		}
		if isSectionHeader(line) || isBullet(line) {
			break
		}
		if !isContactLine(line) && utf8.RuneCountInString(line) >= maxContactLineLen {
			break
		}
		contact = append(contact, line)
		idx++
	}
	if len(contact) > 0 {
		doc.Blocks = append(doc.Blocks, Block{Kind: BlockContact, Content: strings.Join(contact, contactSeparator)})
	}

	// Body: every remaining non-empty line lands in a section. The open
	// section is tracked as an index into the growing block slice.
	current := -1
	appendItem := func(it Item) {
		if current < 0 {
			// Content with no active header opens an implicit section.
			doc.Blocks = append(doc.Blocks, Block{Kind: BlockSection})
			current = len(doc.Blocks) - 1
		}
		doc.Blocks[current].Items = append(doc.Blocks[current].Items, it)
	}

	for ; idx < len(lines); idx++ {
		line := strings.TrimSpace(lines[idx])
		if line == "" {
			continue
		}

		switch classifyLine(line) {
		case lineHeader:
			title, inline := splitSectionTitle(line)
			doc.Blocks = append(doc.Blocks, Block{Kind: BlockSection, Title: title})
			current = len(doc.Blocks) - 1
			if inline != "" {
				appendItem(Item{Kind: ItemParagraph, Text: inline})
			}
		case lineBullet:
			appendItem(Item{Kind: ItemBullet, Text: trimBulletMarker(line)})
		case lineJobTitle:
			if current < 0 {
				// The pipe convention only means "job title" inside a
				// section; loose text before any header is a paragraph.
				appendItem(Item{Kind: ItemParagraph, Text: line})
				continue
			}
			appendItem(Item{Kind: ItemJobTitle, Text: line})
		default:
			appendItem(Item{Kind: ItemParagraph, Text: line})
		}
	}

	return doc
}
