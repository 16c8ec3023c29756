// parse_test.go — Unit tests for the document builder.
package resume

import (
	"strings"
	"testing"
)

func TestParseBasicResume(t *testing.T) {
	doc := Parse("John Doe\njohn@mail.com\nEXPERIENCE\n- Built X\n- Built Y")

	want := []Block{
		{Kind: BlockName, Content: "John Doe"},
		{Kind: BlockContact, Content: "john@mail.com"},
		{Kind: BlockSection, Title: "EXPERIENCE", Items: []Item{
			{Kind: ItemBullet, Text: "Built X"},
			{Kind: ItemBullet, Text: "Built Y"},
		}},
	}

	assertBlocks(t, doc, want)
}

func TestParseInlineSectionContent(t *testing.T) {
	// Long content after the colon becomes an inline paragraph, not a
	// pile of separate bullets.
	doc := Parse("Jane Roe\nSkills: Python, Go, Rust, C++, Java")

	want := []Block{
		{Kind: BlockName, Content: "Jane Roe"},
		{Kind: BlockSection, Title: "Skills", Items: []Item{
			{Kind: ItemParagraph, Text: "Python, Go, Rust, C++, Java"},
		}},
	}

	assertBlocks(t, doc, want)
}

func TestParseImplicitSection(t *testing.T) {
	// A bullet before any header opens an implicit, untitled section.
	doc := Parse("John Doe\n- Led a team")

	want := []Block{
		{Kind: BlockName, Content: "John Doe"},
		{Kind: BlockSection, Title: "", Items: []Item{
			{Kind: ItemBullet, Text: "Led a team"},
		}},
	}

	assertBlocks(t, doc, want)
}

func TestParseContactAbsorptionBounded(t *testing.T) {
	// Five short lines follow the name; only the first three may be
	// merged into the contact block, whatever they look like.
	doc := Parse(strings.Join([]string{
		"John Doe",
		"john@mail.com",
		"linkedin.com/in/johndoe",
		"(11) 98765-4321",
		"Av. Paulista, 1000",
		"Willing to relocate",
	}, "\n"))

	if len(doc.Blocks) < 2 {
		t.Fatalf("expected name + contact blocks, got %d blocks", len(doc.Blocks))
	}
	contact := doc.Blocks[1]
	if contact.Kind != BlockContact {
		t.Fatalf("Blocks[1].Kind = %q, want %q", contact.Kind, BlockContact)
	}
	if got := strings.Count(contact.Content, " | "); got != 2 {
		t.Errorf("contact joined %d lines, want 3 (content: %q)", got+1, contact.Content)
	}

	// The overflow lines fall through to an implicit section.
	if len(doc.Blocks) != 3 || doc.Blocks[2].Kind != BlockSection {
		t.Fatalf("expected an implicit section after contact, got %+v", doc.Blocks[2:])
	}
	if got := len(doc.Blocks[2].Items); got != 2 {
		t.Errorf("implicit section has %d items, want 2", got)
	}
}

func TestParseJobTitleInsideSection(t *testing.T) {
	doc := Parse("John Doe\nEXPERIENCE\nSystems Analyst | Acme Corp\nOwned the data pipeline.")

	section := doc.Blocks[len(doc.Blocks)-1]
	want := []Item{
		{Kind: ItemJobTitle, Text: "Systems Analyst | Acme Corp"},
		{Kind: ItemParagraph, Text: "Owned the data pipeline."},
	}
	assertItems(t, section.Items, want)
}

func TestParseHeaderEndsContactPhase(t *testing.T) {
	// A short all-caps line right after the name is a header, not a
	// contact candidate: the header check comes first.
	doc := Parse("John Doe\nSUMMARY\nSeasoned engineer.")

	want := []Block{
		{Kind: BlockName, Content: "John Doe"},
		{Kind: BlockSection, Title: "SUMMARY", Items: []Item{
			{Kind: ItemParagraph, Text: "Seasoned engineer."},
		}},
	}
	assertBlocks(t, doc, want)
}

func TestParsePortugueseResume(t *testing.T) {
	doc := Parse(strings.Join([]string{
		"Maria Silva",
		"maria@mail.com",
		"Experiência Profissional",
		"Analista de Sistemas | Acme Brasil",
		"- Liderou a migração do faturamento",
		"Formação Acadêmica",
		"- Bacharelado em Ciência da Computação",
	}, "\n"))

	want := []Block{
		{Kind: BlockName, Content: "Maria Silva"},
		{Kind: BlockContact, Content: "maria@mail.com"},
		{Kind: BlockSection, Title: "Experiência Profissional", Items: []Item{
			{Kind: ItemJobTitle, Text: "Analista de Sistemas | Acme Brasil"},
			{Kind: ItemBullet, Text: "Liderou a migração do faturamento"},
		}},
		{Kind: BlockSection, Title: "Formação Acadêmica", Items: []Item{
			{Kind: ItemBullet, Text: "Bacharelado em Ciência da Computação"},
		}},
	}
	assertBlocks(t, doc, want)
}

func TestParseBlankLinesIgnored(t *testing.T) {
	doc := Parse("\n\n  John Doe  \n\n\nEXPERIENCE\n\n- Built X\n\n")

	want := []Block{
		{Kind: BlockName, Content: "John Doe"},
		{Kind: BlockSection, Title: "EXPERIENCE", Items: []Item{
			{Kind: ItemBullet, Text: "Built X"},
		}},
	}
	assertBlocks(t, doc, want)
}

// TestParseTotality verifies the classifier+builder never fail, whatever
// the input.
func TestParseTotality(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		"   ",
		":::",
		"|||",
		"- \n- \n- ",
		strings.Repeat("x", 10000),
		strings.Repeat("LINE\n", 500),
		"•–—\uFEFF",
	}

	for _, in := range inputs {
		doc := Parse(in) // must not panic
		for _, b := range doc.Blocks {
			if b.Kind == BlockSection {
				continue
			}
			if len(b.Items) != 0 {
				t.Errorf("non-section block carries items: %+v", b)
			}
		}
	}

	if got := Parse(""); len(got.Blocks) != 0 {
		t.Errorf("Parse(\"\") produced %d blocks, want 0", len(got.Blocks))
	}
}

func TestParseSanitizesInput(t *testing.T) {
	// Glyph bullets are rewritten by the sanitizer before classification,
	// so they still open list items.
	doc := Parse("John Doe\nEXPERIENCE\n• Shipped v2")

	section := doc.Blocks[len(doc.Blocks)-1]
	assertItems(t, section.Items, []Item{{Kind: ItemBullet, Text: "Shipped v2"}})
}

// --- helpers ---

func assertBlocks(t *testing.T, doc Document, want []Block) {
	t.Helper()
	if len(doc.Blocks) != len(want) {
		t.Fatalf("got %d blocks, want %d: %+v", len(doc.Blocks), len(want), doc.Blocks)
	}
	for i, w := range want {
		g := doc.Blocks[i]
		if g.Kind != w.Kind || g.Content != w.Content || g.Title != w.Title {
			t.Errorf("Blocks[%d] = %+v, want %+v", i, g, w)
			continue
		}
		assertItems(t, g.Items, w.Items)
	}
}

func assertItems(t *testing.T, got, want []Item) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d items, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Items[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
