package narrating

import (
	"regexp"
	"strings"
)

const (
	SectionHeadline           = "Headline"
	SectionExecutiveSummary   = "Executive Summary"
	SectionKeyRisks           = "Key Risks"
	SectionRecommendedActions = "Recommended Actions"
	SectionAnswer             = "Answer"
	SectionEvidence           = "Evidence"
	SectionNextChecks         = "What I would check next"
	SectionConfidence         = "Confidence Level"
	SectionPlan               = "Plan"
	SectionReasoningChain     = "Reasoning Chain"
)

var (
	executiveSections = []string{SectionHeadline, SectionExecutiveSummary, SectionKeyRisks, SectionRecommendedActions}
	analystSections   = []string{SectionAnswer, SectionEvidence, SectionNextChecks, SectionConfidence}
	agentSections     = []string{SectionPlan, SectionReasoningChain, SectionAnswer, SectionEvidence, SectionConfidence}

	numberedItem = regexp.MustCompile(`^\s*\d+\.\s*(.+)$`)
	bulletItem   = regexp.MustCompile(`^\s*[-•*]\s*(.+)$`)
	stepItem     = regexp.MustCompile(`(?i)^\s*Step\s+\d+\s*:\s*(.+)$`)

	markdownHeaders = strings.NewReplacer("###", "", "##", "", "#", "")
	escapedNewlines = strings.NewReplacer(`\n`, "\n", `\t`, "\t")
)

// Normalize limpa a resposta do modelo: remove aspas externas, expande \n e \t literais
// e retira os marcadores de título
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	s = escapedNewlines.Replace(s)
	s = markdownHeaders.Replace(s)
	return strings.TrimSpace(s)
}

func headerPattern(sections []string) *regexp.Regexp {
	quoted := make([]string, 0, len(sections))
	for _, s := range sections {
		quoted = append(quoted, regexp.QuoteMeta(s))
	}
	return regexp.MustCompile(`(?im)^\s*(` + strings.Join(quoted, "|") + `)\s*:\s*$`)
}

var (
	executivePattern = headerPattern(executiveSections)
	analystPattern   = headerPattern(analystSections)
	agentPattern     = headerPattern(agentSections)
)

// ParseSections separa o texto pelos cabeçalhos "<Seção>:" em linha própria. O conteúdo de
// cada seção vai até o próximo cabeçalho. Seções ausentes ficam vazias e, sem nenhum
// cabeçalho, o texto inteiro vai para a seção principal.
func ParseSections(text string, pattern *regexp.Regexp, sections []string, primary string) map[string]string {
	out := make(map[string]string, len(sections))
	for _, s := range sections {
		out[s] = ""
	}

	matches := pattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		out[primary] = strings.TrimSpace(text)
		return out
	}

	for i, m := range matches {
		name := canonicalSection(text[m[2]:m[3]], sections)
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		out[name] = strings.TrimSpace(text[m[1]:end])
	}

	return out
}

func canonicalSection(found string, sections []string) string {
	for _, s := range sections {
		if strings.EqualFold(strings.TrimSpace(found), s) {
			return s
		}
	}
	return found
}

func extractItems(block string, pattern *regexp.Regexp) []string {
	items := make([]string, 0)
	for _, line := range strings.Split(block, "\n") {
		if m := pattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			items = append(items, strings.TrimSpace(m[1]))
		}
	}
	return items
}

func NumberedItems(block string) []string {
	return extractItems(block, numberedItem)
}

func BulletItems(block string) []string {
	return extractItems(block, bulletItem)
}

func StepItems(block string) []string {
	return extractItems(block, stepItem)
}
