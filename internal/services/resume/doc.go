// Package resume turns an unstructured block of résumé text into a
// professionally formatted, paginated PDF document.
//
// The pipeline is a strict sequential chain with no shared state:
//
//	raw text → Sanitize → Parse (classify + build) → Document
//	         → layout → flow elements → paginating renderer → PDF bytes
//
// Every stage is deterministic, so the same input text and style
// configuration always produce a byte-identical artifact. All state lives
// in the call — concurrent renders need no synchronization.
package resume

// BlockKind identifies a top-level structural unit of a parsed résumé.
type BlockKind string

const (
	BlockName    BlockKind = "name"
	BlockContact BlockKind = "contact"
	BlockSection BlockKind = "section"
)

// ItemKind identifies a content unit inside a section.
type ItemKind string

const (
	ItemParagraph ItemKind = "paragraph"
	ItemBullet    ItemKind = "bullet"
	ItemJobTitle  ItemKind = "job_title"
)

// Item is one content unit belonging to exactly one SectionBlock.
type Item struct {
	Kind ItemKind
	Text string
}

// Block is a tagged variant: name and contact blocks carry Content,
// section blocks carry Title and Items. A section with an empty Title is
// an implicit section, opened because content appeared before any header.
type Block struct {
	Kind    BlockKind
	Content string
	Title   string
	Items   []Item
}

// Document is the ordered sequence of blocks recognized in the source
// text. Block order always equals recognition order; nothing is ever
// reordered. A Document is built in one pass and never mutated afterwards.
type Document struct {
	Blocks []Block
}
