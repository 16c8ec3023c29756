// classify.go — line-level heuristics for segmenting raw résumé text.
//
// Résumé text arrives as a flat run of lines with no markup. These
// predicates decide, deterministically, what each line most likely is:
// a section header, a list bullet, contact info, a "Position | Company"
// job title, or plain paragraph text. The builder in parse.go owns all
// state; everything here is a pure function of a single line.
package resume

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// lineKind is the classifier verdict for one body line.
type lineKind int

const (
	lineParagraph lineKind = iota
	lineHeader
	lineBullet
	lineJobTitle
)

// bulletMarkers are the characters that may open a list item. The
// sanitizer rewrites most glyph markers to "-" first, but text handed to
// the classifier without sanitizing is tolerated too.
const bulletMarkers = "•-–—*►▪●"

// maxHeaderLen bounds the all-caps header rule: a short shouted line is a
// header, a shouted paragraph is not.
const maxHeaderLen = 60

// maxJobTitleLen bounds the "Position | Company" heuristic.
const maxJobTitleLen = 120

// sectionNames is the curated, case-insensitive, accent-tolerant set of
// canonical résumé section titles, in English and Portuguese. Matching
// is by prefix on the folded title, so "Work Experience at Acme Corp"
// and "Certificações e Cursos" both open sections.
var sectionNames = []string{
	"professional summary",
	"summary",
	"experience",
	"work experience",
	"professional experience",
	"education",
	"academic background",
	"skills",
	"competencies",
	"software",
	"tools",
	"languages",
	"certifications",
	"courses",
	"projects",
	"objective",
	"additional info",
	"personal info",
	"links",
	"references",
	"activities",
	"volunteer",
	"resumo profissional",
	"experiencia profissional",
	"formacao academica",
	"habilidades",
	"competencias",
	"ferramentas",
	"idiomas",
	"certificacoes",
	"cursos",
	"projetos",
	"objetivo",
	"informacoes adicionais",
	"informacoes pessoais",
	"informacoes complementares",
	"referencias",
	"atividades",
	"trabalho voluntario",
	"voluntariado",
}

// contactKeywords flag a line as contact information regardless of length.
var contactKeywords = []string{"@", "linkedin", "github", "telefone", "tel:", "fone:", "celular"}

// phonePattern matches the "(NN) NNNN…" phone convention used in contact
// blocks.
var phonePattern = regexp.MustCompile(`\(\d{2}\)\s*\d{4,5}`)

// accentFolder strips diacritics: decompose (NFD), drop the combining
// marks, recompose. "Référências" folds to "Referencias".
var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldAccents(s string) string {
	folded, _, err := transform.String(accentFolder, s)
	if err != nil {
		return s
	}
	return folded
}

// bodyRules is the ordered dispatch table for body lines. Order is part
// of the contract: the header check precedes the bullet check, which
// precedes the job-title check. Anything unmatched is a paragraph.
var bodyRules = []struct {
	kind  lineKind
	match func(string) bool
}{
	{lineHeader, isSectionHeader},
	{lineBullet, isBullet},
	{lineJobTitle, isJobTitle},
}

// classifyLine assigns a body line its category. It is pure and
// backtrack-free; the name/contact phases and the open-section state live
// in the builder.
func classifyLine(line string) lineKind {
	for _, rule := range bodyRules {
		if rule.match(line) {
			return rule.kind
		}
	}
	return lineParagraph
}

// isSectionHeader reports whether a line looks like a résumé section
// title. Any ":"-delimited tail is stripped first; the remaining title
// must be non-empty and either short all-caps or a canonical section name.
func isSectionHeader(line string) bool {
	title := strings.TrimSpace(line)
	if i := strings.Index(title, ":"); i >= 0 {
		title = strings.TrimSpace(title[:i])
	}
	title = strings.TrimRight(title, ":")
	if title == "" {
		return false
	}
	if isAllUpper(title) && utf8.RuneCountInString(title) < maxHeaderLen {
		return true
	}
	folded := foldAccents(strings.ToLower(title))
	for _, name := range sectionNames {
		if strings.HasPrefix(folded, name) {
			return true
		}
	}
	return false
}

// isAllUpper reports whether s contains at least one letter and no
// lower-case letters. Digits and punctuation are neutral, so "SECTION 2"
// still counts.
func isAllUpper(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

// splitSectionTitle separates a header line into its title and any inline
// trailing content. "Tools: Git, Postman, VS Code" yields ("Tools",
// "Git, Postman, VS Code"); a colon tail of 10 characters or fewer stays
// part of the title, with trailing colons stripped.
func splitSectionTitle(line string) (title, inline string) {
	stripped := strings.TrimSpace(line)
	if i := strings.Index(stripped, ":"); i >= 0 {
		before := strings.TrimSpace(stripped[:i])
		after := strings.TrimSpace(stripped[i+1:])
		if utf8.RuneCountInString(after) > 10 {
			return before, after
		}
	}
	return strings.TrimRight(stripped, ":"), ""
}

// isBullet reports whether the first non-whitespace character is a list
// marker.
func isBullet(line string) bool {
	stripped := strings.TrimSpace(line)
	if stripped == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(stripped)
	return strings.ContainsRune(bulletMarkers, r)
}

// trimBulletMarker removes the leading list marker, if any, from a line.
func trimBulletMarker(line string) string {
	stripped := strings.TrimSpace(line)
	if stripped == "" {
		return stripped
	}
	r, size := utf8.DecodeRuneInString(stripped)
	if strings.ContainsRune(bulletMarkers, r) {
		return strings.TrimSpace(stripped[size:])
	}
	return stripped
}

// isContactLine detects email addresses, profile links and phone numbers.
func isContactLine(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range contactKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return phonePattern.MatchString(line)
}

// isJobTitle spots the "Position | Company" separator convention. Only
// meaningful inside an open section; the builder demotes the verdict to a
// paragraph otherwise.
func isJobTitle(line string) bool {
	return strings.Contains(line, "|") && utf8.RuneCountInString(line) < maxJobTitleLen
}
