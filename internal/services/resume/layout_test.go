// layout_test.go — Unit tests for the layout engine and column balancing.
package resume

import (
	"fmt"
	"testing"
)

func bullets(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{Kind: ItemBullet, Text: fmt.Sprintf("Skill %d", i+1)}
	}
	return items
}

// TestTwoColumnBalancing verifies the balancing law: column A gets
// ⌈n/2⌉ items, column B gets ⌊n/2⌋, and reading column A then column B
// reproduces the original order.
func TestTwoColumnBalancing(t *testing.T) {
	for n := 1; n <= 9; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			rows := twoColumnRows(bullets(n))

			wantRows := (n + 1) / 2
			if len(rows) != wantRows {
				t.Fatalf("got %d rows, want %d", len(rows), wantRows)
			}

			var colA, colB []string
			for _, row := range rows {
				colA = append(colA, row.left)
				if row.right != "" {
					colB = append(colB, row.right)
				}
			}
			if len(colA) != (n+1)/2 {
				t.Errorf("column A length = %d, want %d", len(colA), (n+1)/2)
			}
			if len(colB) != n/2 {
				t.Errorf("column B length = %d, want %d", len(colB), n/2)
			}

			// Concatenating A then B must restore the source order.
			combined := append(append([]string{}, colA...), colB...)
			for i, text := range combined {
				want := fmt.Sprintf("Skill %d", i+1)
				if text != want {
					t.Errorf("combined[%d] = %q, want %q", i, text, want)
				}
			}
		})
	}
}

// TestSkillsSectionThreshold: three bullets stay a vertical list, four
// switch to the two-column layout.
func TestSkillsSectionThreshold(t *testing.T) {
	three := Block{Kind: BlockSection, Title: "Skills", Items: bullets(3)}
	four := Block{Kind: BlockSection, Title: "Skills", Items: bullets(4)}

	if got := sectionFlow(three); countKind(got, flowTwoColRow) != 0 {
		t.Errorf("3 bullets produced two-column rows: %+v", got)
	}
	if got := countKind(sectionFlow(three), flowBullet); got != 3 {
		t.Errorf("3-bullet section produced %d bullet elements, want 3", got)
	}

	flow := sectionFlow(four)
	if got := countKind(flow, flowTwoColRow); got != 2 {
		t.Errorf("4 bullets produced %d two-column rows, want 2", got)
	}
	if got := countKind(flow, flowBullet); got != 0 {
		t.Errorf("4-bullet skills section still has %d stacked bullets", got)
	}
}

// TestSkillsSectionMixedItems: a paragraph among the bullets disables the
// two-column layout regardless of count.
func TestSkillsSectionMixedItems(t *testing.T) {
	items := append(bullets(4), Item{Kind: ItemParagraph, Text: "and more"})
	b := Block{Kind: BlockSection, Title: "Skills", Items: items}

	if got := countKind(sectionFlow(b), flowTwoColRow); got != 0 {
		t.Errorf("mixed-item skills section produced %d two-column rows, want 0", got)
	}
}

// TestNonSkillsTitleStacksBullets: the two-column layout is reserved for
// skills-like titles.
func TestNonSkillsTitleStacksBullets(t *testing.T) {
	b := Block{Kind: BlockSection, Title: "Experience", Items: bullets(6)}

	flow := sectionFlow(b)
	if got := countKind(flow, flowTwoColRow); got != 0 {
		t.Errorf("experience section produced %d two-column rows, want 0", got)
	}
	if got := countKind(flow, flowBullet); got != 6 {
		t.Errorf("experience section produced %d bullets, want 6", got)
	}
}

func TestIsSkillsTitle(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"Skills", true},
		{"Technical Skills", true},
		{"Competencies", true},
		{"Software & Tools", true},
		{"Habilidades", true},
		{"Ferramentas e Práticas", true},
		{"Experience", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := isSkillsTitle(tt.title); got != tt.want {
				t.Errorf("isSkillsTitle(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

// TestBuildFlowOrder: blocks map to flow elements in recognition order,
// with the name upper-cased and titled sections headed by a rule element.
func TestBuildFlowOrder(t *testing.T) {
	doc := Document{Blocks: []Block{
		{Kind: BlockName, Content: "John Doe"},
		{Kind: BlockContact, Content: "john@mail.com"},
		{Kind: BlockSection, Title: "Experience", Items: []Item{
			{Kind: ItemJobTitle, Text: "Engineer | Acme"},
			{Kind: ItemBullet, Text: "Built X"},
		}},
		{Kind: BlockSection, Title: "", Items: []Item{
			{Kind: ItemParagraph, Text: "Loose text"},
		}},
	}}

	flow := buildFlow(doc)
	wantKinds := []flowKind{flowName, flowContact, flowSectionHeader, flowJobTitle, flowBullet, flowParagraph}
	if len(flow) != len(wantKinds) {
		t.Fatalf("got %d flow elements, want %d: %+v", len(flow), len(wantKinds), flow)
	}
	for i, k := range wantKinds {
		if flow[i].kind != k {
			t.Errorf("flow[%d].kind = %v, want %v", i, flow[i].kind, k)
		}
	}

	if flow[0].text != "JOHN DOE" {
		t.Errorf("name element = %q, want upper-cased %q", flow[0].text, "JOHN DOE")
	}
	if flow[2].text != "EXPERIENCE" {
		t.Errorf("section header = %q, want %q", flow[2].text, "EXPERIENCE")
	}
}

func countKind(flow []flowElement, k flowKind) int {
	n := 0
	for _, el := range flow {
		if el.kind == k {
			n++
		}
	}
	return n
}
