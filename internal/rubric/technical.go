// Package rubric turns extracted resume content and fetched platform signals
// into scored report categories. Scorers are pure functions over their inputs;
// all thresholds live in fixed tier tables rather than scattered conditionals.
package rubric

import (
	"fmt"
	"regexp"
	"strings"

	"resumescope/internal/types"
)

// Category point budgets for the technical rubric. They sum to 100.
const (
	GitHubMax        = 25
	LeetCodeMax      = 20
	PortfolioMax     = 20
	NetworkMax       = 15
	ResumeQualityMax = 10
	CertsMax         = 10
)

// tier maps a minimum observed value to awarded points. Tables are ordered
// highest threshold first; the first matching tier wins.
type tier struct {
	min    int
	points float64
}

func tierPoints(value int, tiers []tier) float64 {
	for _, t := range tiers {
		if value >= t.min {
			return t.points
		}
	}
	return 0
}

var (
	pinnedTiers   = []tier{{3, 5}, {1, 3}}
	pushTiers     = []tier{{5, 5}, {1, 3}}
	readmeTiers   = []tier{{5, 6}, {2, 4}, {1, 2}}
	keywordTiers  = []tier{{3, 6}, {2, 4}, {1, 2}}
	solvedTiers   = []tier{{200, 5}, {150, 4}, {100, 3}, {50, 1}}
	mediumTiers   = []tier{{120, 4}, {60, 3}, {20, 2}}
	contestTiers  = []tier{{6, 4}, {3, 3}, {1, 1}}
	topicTiers    = []tier{{8, 5}, {6, 4}, {4, 3}, {2, 1}}
	certEvidence  = regexp.MustCompile(`(?i)certification|certified|certificate|course`)
	quantEvidence = regexp.MustCompile(`\d+%`)
	phonePattern  = regexp.MustCompile(`\b\d{10}\b`)
	emailEvidence = regexp.MustCompile(`@\w+\.\w+`)
)

// HasContact reports whether the text carries both a ten-digit phone number
// and an email address.
func HasContact(text string) bool {
	return phonePattern.MatchString(text) && emailEvidence.MatchString(text)
}

// Technical scores a resume under the six-category technical rubric.
// The result always contains all six categories in display order.
func Technical(doc *types.ExtractedDocument, ids types.IdentifierSet, signals types.SignalBundle) []types.CategoryScore {
	return []types.CategoryScore{
		scoreGitHub(ids, signals.GitHub),
		scoreLeetCode(ids, signals.LeetCode),
		scorePortfolio(doc),
		scoreNetwork(doc),
		scoreResumeQuality(doc),
		scoreCertifications(doc),
	}
}

func scoreGitHub(ids types.IdentifierSet, s types.GitHubSignals) types.CategoryScore {
	var points float64
	var detail []string

	if ids.GitHubUser == "" {
		detail = append(detail, "no GitHub profile link detected")
		return newScore(types.CategoryGitHub, points, GitHubMax, detail)
	}

	points += 3
	detail = append(detail, "profile link present")

	if !s.ProfileExists {
		detail = append(detail, "profile activity unavailable")
		return newScore(types.CategoryGitHub, points, GitHubMax, detail)
	}

	points += tierPoints(s.PinnedRepos, pinnedTiers)
	points += tierPoints(s.RecentPushes, pushTiers)
	points += tierPoints(s.ReadmeRepos, readmeTiers)
	points += tierPoints(s.KeywordRepoHits, keywordTiers)
	detail = append(detail,
		fmt.Sprintf("pinned repositories: %d", s.PinnedRepos),
		fmt.Sprintf("recent pushes: %d", s.RecentPushes),
		fmt.Sprintf("repositories with a README: %d", s.ReadmeRepos),
		fmt.Sprintf("domain-relevant repositories: %d", s.KeywordRepoHits),
	)

	return newScore(types.CategoryGitHub, points, GitHubMax, detail)
}

func scoreLeetCode(ids types.IdentifierSet, s types.LeetCodeSignals) types.CategoryScore {
	var points float64
	var detail []string

	if ids.LeetCodeUser == "" {
		detail = append(detail, "no LeetCode profile link detected")
		return newScore(types.CategoryLeetCode, points, LeetCodeMax, detail)
	}

	points += 2
	points += tierPoints(s.TotalSolved, solvedTiers)
	points += tierPoints(s.MediumHardSolved, mediumTiers)
	points += tierPoints(s.ContestsAttended, contestTiers)
	points += tierPoints(s.TopicVariety, topicTiers)
	detail = append(detail,
		"profile link present",
		fmt.Sprintf("problems solved: %d", s.TotalSolved),
		fmt.Sprintf("medium/hard solved: %d", s.MediumHardSolved),
		fmt.Sprintf("contests attended: %d", s.ContestsAttended),
		fmt.Sprintf("topics practiced: %d", s.TopicVariety),
	)

	return newScore(types.CategoryLeetCode, points, LeetCodeMax, detail)
}

// techStackTerms is the vocabulary used to gauge the breadth of technologies
// a resume names for its portfolio projects.
var techStackTerms = []string{
	"python", "java", "javascript", "typescript", "go", "react", "angular",
	"vue", "node", "django", "flask", "spring", "docker", "kubernetes",
	"aws", "azure", "sql", "postgres", "mongodb", "redis",
}

func scorePortfolio(doc *types.ExtractedDocument) types.CategoryScore {
	var points float64
	var detail []string
	lower := strings.ToLower(doc.Text)

	if hasLink(doc, types.LinkPortfolio) {
		points += 5
		detail = append(detail, "portfolio link present")
	} else {
		detail = append(detail, "no portfolio link detected")
	}

	if strings.Contains(lower, "project") {
		points += 5
		detail = append(detail, "project write-ups mentioned")
	}
	if containsAny(lower, []string{"demo", "deployed", "live", "hosted"}) {
		points += 5
		detail = append(detail, "live demo or deployment mentioned")
	}
	if stackBreadth := countHits(lower, techStackTerms); stackBreadth >= 5 {
		points += 5
		detail = append(detail, fmt.Sprintf("broad technology stack (%d technologies)", stackBreadth))
	}

	return newScore(types.CategoryPortfolio, points, PortfolioMax, detail)
}

func scoreNetwork(doc *types.ExtractedDocument) types.CategoryScore {
	var points float64
	var detail []string
	lower := strings.ToLower(doc.Text)

	if hasLink(doc, types.LinkLinkedIn) {
		points += 5
		detail = append(detail, "LinkedIn link present")
	} else {
		detail = append(detail, "no LinkedIn link detected")
	}
	if containsAny(lower, []string{"summary", "objective", "profile"}) {
		points += 5
		detail = append(detail, "headline or summary section present")
	}
	if strings.Contains(lower, "experience") {
		points += 5
		detail = append(detail, "experience section present")
	}

	return newScore(types.CategoryNetwork, points, NetworkMax, detail)
}

func scoreResumeQuality(doc *types.ExtractedDocument) types.CategoryScore {
	var points float64
	var detail []string
	lower := strings.ToLower(doc.Text)

	if containsAll(lower, []string{"work experience", "education", "skills"}) {
		points += 3
		detail = append(detail, "standard section headings present")
	}
	if HasContact(doc.Text) {
		points += 3
		detail = append(detail, "phone and email present")
	}
	if quantEvidence.MatchString(doc.Text) {
		points += 2
		detail = append(detail, "quantified achievements present")
	}
	if doc.WordCount > 0 && doc.WordCount <= 800 {
		points += 2
		detail = append(detail, "concise length")
	}

	return newScore(types.CategoryResumeQuality, points, ResumeQualityMax, detail)
}

func scoreCertifications(doc *types.ExtractedDocument) types.CategoryScore {
	var points float64
	var detail []string

	hits := len(certEvidence.FindAllString(doc.Text, -1))
	switch {
	case hits >= 2:
		points = CertsMax
		detail = append(detail, fmt.Sprintf("certifications mentioned %d times", hits))
	case hits == 1:
		points = CertsMax / 2
		detail = append(detail, "one certification mention found")
	default:
		detail = append(detail, "no certifications detected")
	}

	return newScore(types.CategoryCerts, points, CertsMax, detail)
}

func newScore(cat types.Category, points, max float64, detail []string) types.CategoryScore {
	return types.CategoryScore{
		Category: cat,
		Label:    cat.Label(),
		Points:   points,
		Max:      max,
		Grade:    types.GradeFor(points, max),
		Detail:   detail,
	}
}

func hasLink(doc *types.ExtractedDocument, kind types.LinkKind) bool {
	for _, link := range doc.Links {
		if link.Kind == kind {
			return true
		}
	}
	return false
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func containsAll(text string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(text, term) {
			return false
		}
	}
	return true
}

func countHits(text string, terms []string) int {
	hits := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			hits++
		}
	}
	return hits
}
