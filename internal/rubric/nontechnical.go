package rubric

import (
	"fmt"
	"regexp"
	"strings"

	"resumescope/internal/types"
)

// Criterion weights for the non-technical rubric. They sum to 100.
const (
	FormatLayoutMax  = 20
	FileTypeMax      = 10
	HeadingsMax      = 10
	JobTitleMax      = 10
	SkillsSectionMax = 10
	KeywordsMax      = 10
	ActionVerbsMax   = 10
	QuantifiableMax  = 10
	ConcisenessMax   = 10
	ContactMax       = 5
	ProofreadingMax  = 5
)

var (
	layoutArtifacts = regexp.MustCompile(`(?i)table|column|header|footer`)
	jobTitlePattern = regexp.MustCompile(`(?i)manager|assistant|executive|analyst|officer`)
	numberPattern   = regexp.MustCompile(`\d{1,3}(?:,\d{3})*(?:\.\d+)?`)
	runsOfSpace     = regexp.MustCompile(`\s{2,}`)
)

var softSkillKeywords = []string{
	"communication", "teamwork", "leadership", "customer service", "problem solving",
}

var actionVerbs = []string{
	"developed", "implemented", "optimized", "managed", "led", "organized", "achieved",
}

// NonTechnical scores a resume under the eleven-criterion non-technical rubric.
// The result always contains all eleven criteria in display order.
func NonTechnical(doc *types.ExtractedDocument) []types.CategoryScore {
	lower := strings.ToLower(doc.Text)

	return []types.CategoryScore{
		scoreFormatLayout(doc.Text, lower),
		scoreFileType(doc.Format),
		scoreHeadings(lower),
		scoreJobTitle(lower),
		scoreSkillsSection(lower),
		scoreKeywords(lower),
		scoreActionVerbs(lower),
		scoreQuantifiable(doc.Text),
		scoreConciseness(doc.WordCount),
		scoreContact(doc.Text),
		scoreProofreading(doc.Text),
	}
}

// ATSReadiness reduces a non-technical breakdown to a parsing-readiness
// percentage over the formatting-related criteria only. Keyword and content
// criteria measure job match, not machine readability, and are excluded.
func ATSReadiness(categories []types.CategoryScore) float64 {
	readiness := map[types.Category]bool{
		types.CategoryFormatLayout: true,
		types.CategoryFileType:     true,
		types.CategoryHeadings:     true,
		types.CategoryContact:      true,
		types.CategoryProofreading: true,
	}

	var earned, weight float64
	for _, c := range categories {
		if readiness[c.Category] {
			earned += c.Points
			weight += c.Max
		}
	}
	if weight == 0 {
		return 0
	}
	return earned / weight * 100
}

func scoreFormatLayout(text, lower string) types.CategoryScore {
	if !strings.Contains(text, "\t") && !layoutArtifacts.MatchString(lower) {
		return newScore(types.CategoryFormatLayout, FormatLayoutMax, FormatLayoutMax,
			[]string{"clean single-column layout"})
	}
	return newScore(types.CategoryFormatLayout, FormatLayoutMax/2, FormatLayoutMax,
		[]string{"tables, tabs, or header/footer artifacts detected"})
}

func scoreFileType(format types.DocumentFormat) types.CategoryScore {
	switch format {
	case types.FormatDOCX:
		return newScore(types.CategoryFileType, FileTypeMax, FileTypeMax,
			[]string{"DOCX parses cleanly in applicant tracking systems"})
	case types.FormatPDF:
		return newScore(types.CategoryFileType, float64(int(FileTypeMax*0.7)), FileTypeMax,
			[]string{"PDF is acceptable but DOCX parses more reliably"})
	default:
		return newScore(types.CategoryFileType, 0, FileTypeMax,
			[]string{"format not recognized by applicant tracking systems"})
	}
}

func scoreHeadings(lower string) types.CategoryScore {
	if containsAll(lower, []string{"work experience", "education", "skills"}) {
		return newScore(types.CategoryHeadings, HeadingsMax, HeadingsMax,
			[]string{"standard section headings present"})
	}
	return newScore(types.CategoryHeadings, HeadingsMax/2, HeadingsMax,
		[]string{"one or more standard headings missing"})
}

func scoreJobTitle(lower string) types.CategoryScore {
	if jobTitlePattern.MatchString(lower) {
		return newScore(types.CategoryJobTitle, JobTitleMax, JobTitleMax,
			[]string{"target job title present"})
	}
	return newScore(types.CategoryJobTitle, JobTitleMax/2, JobTitleMax,
		[]string{"no recognizable job title found"})
}

func scoreSkillsSection(lower string) types.CategoryScore {
	if strings.Contains(lower, "skills") {
		return newScore(types.CategorySkillsSection, SkillsSectionMax, SkillsSectionMax,
			[]string{"dedicated skills section present"})
	}
	return newScore(types.CategorySkillsSection, 0, SkillsSectionMax,
		[]string{"no skills section found"})
}

func scoreKeywords(lower string) types.CategoryScore {
	hits := countHits(lower, softSkillKeywords)
	points := min(float64(hits*2), KeywordsMax)
	return newScore(types.CategoryKeywords, points, KeywordsMax,
		[]string{keywordDetail(hits, "role keywords")})
}

func scoreActionVerbs(lower string) types.CategoryScore {
	hits := countHits(lower, actionVerbs)
	points := min(float64(hits*2), ActionVerbsMax)
	return newScore(types.CategoryActionVerbs, points, ActionVerbsMax,
		[]string{keywordDetail(hits, "action verbs")})
}

func scoreQuantifiable(text string) types.CategoryScore {
	if quantEvidence.MatchString(text) || numberPattern.MatchString(text) {
		return newScore(types.CategoryQuantifiable, QuantifiableMax, QuantifiableMax,
			[]string{"measurable results present"})
	}
	return newScore(types.CategoryQuantifiable, QuantifiableMax/2, QuantifiableMax,
		[]string{"no metrics or outcomes found"})
}

func scoreConciseness(wordCount int) types.CategoryScore {
	switch {
	case wordCount <= 800:
		return newScore(types.CategoryConciseness, ConcisenessMax, ConcisenessMax,
			[]string{"length fits comfortably in two pages"})
	case wordCount <= 1200:
		return newScore(types.CategoryConciseness, ConcisenessMax/2, ConcisenessMax,
			[]string{"slightly over the ideal length"})
	default:
		return newScore(types.CategoryConciseness, 0, ConcisenessMax,
			[]string{"far too long for a resume"})
	}
}

func scoreContact(text string) types.CategoryScore {
	if HasContact(text) {
		return newScore(types.CategoryContact, ContactMax, ContactMax,
			[]string{"phone and email present"})
	}
	return newScore(types.CategoryContact, 0, ContactMax,
		[]string{"phone or email missing"})
}

func scoreProofreading(text string) types.CategoryScore {
	if len(runsOfSpace.FindAllString(text, -1)) < 5 {
		return newScore(types.CategoryProofreading, ProofreadingMax, ProofreadingMax,
			[]string{"consistent spacing throughout"})
	}
	return newScore(types.CategoryProofreading, ProofreadingMax/2, ProofreadingMax,
		[]string{"inconsistent whitespace suggests formatting issues"})
}

func keywordDetail(hits int, what string) string {
	if hits == 0 {
		return "no " + what + " found"
	}
	return fmt.Sprintf("%s found: %d", what, hits)
}
