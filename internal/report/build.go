// Package report aggregates scored categories into the final report: totals,
// overall grade, remediation suggestions, detections, certification
// recommendations, and the stable result key.
package report

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"resumescope/internal/rubric"
	"resumescope/internal/types"
)

// remediations maps each category to the fixed suggestion surfaced when the
// category scores below its Good band.
var remediations = map[types.Category]string{
	types.CategoryGitHub:        "Add your GitHub profile link and keep it active with recent commits.",
	types.CategoryLeetCode:      "Include a link to your LeetCode profile to showcase your problem-solving practice.",
	types.CategoryPortfolio:     "Create a professional portfolio website to showcase your projects.",
	types.CategoryNetwork:       "Add a public LinkedIn link to enhance recruiter visibility.",
	types.CategoryResumeQuality: "Tighten the resume structure: standard headings, contact details, and quantified bullets.",
	types.CategoryCerts:         "Obtain role-relevant certifications to stand out.",

	types.CategoryFormatLayout:  "Switch to a clean one-column layout with no tables or headers/footers.",
	types.CategoryFileType:      "Prefer DOC/DOCX unless PDF is explicitly accepted.",
	types.CategoryHeadings:      "Add standard section headings and keep reverse-chronological order.",
	types.CategoryJobTitle:      "Include the target job title and core skills in your headline or summary.",
	types.CategorySkillsSection: "Add a dedicated Skills or Core Competencies section.",
	types.CategoryKeywords:      "Integrate more role-specific keywords from job descriptions.",
	types.CategoryActionVerbs:   "Start bullet points with strong action verbs.",
	types.CategoryQuantifiable:  "Add measurable results and metrics to your achievements.",
	types.CategoryConciseness:   "Shorten the resume to under two pages with concise bullet points.",
	types.CategoryContact:       "Include phone, email, and name clearly at the top.",
	types.CategoryProofreading:  "Proofread for consistent formatting and spacing.",
}

// Builder assembles reports. The certification limit comes from config.
type Builder struct {
	certLimit int
}

func NewBuilder(certLimit int) *Builder {
	if certLimit <= 0 {
		certLimit = 6
	}
	return &Builder{certLimit: certLimit}
}

// Build assembles a report from a scored breakdown. The suggestions list
// contains one fixed remediation per category below its Good band, ordered
// worst ratio first; callers truncate for compact display.
func (b *Builder) Build(r types.Rubric, doc *types.ExtractedDocument, ids types.IdentifierSet, categories []types.CategoryScore) *types.Report {
	var total, max float64
	for _, c := range categories {
		total += c.Points
		max += c.Max
	}

	rep := &types.Report{
		Rubric:         r,
		Name:           doc.Name,
		Total:          total,
		Max:            max,
		Overall:        types.GradeFor(total, max),
		Categories:     categories,
		Suggestions:    suggestions(categories),
		Certifications: rubric.SuggestRoleCertifications(ids.DesiredRole, b.certLimit),
		Detections:     detections(doc, ids),
	}
	rep.ATSReadiness = atsReadiness(r, categories)
	rep.Key = resultKey(r, doc, ids)
	return rep
}

// atsReadiness derives the parsing-readiness percentage. The non-technical
// rubric computes it over its formatting criteria; the technical rubric
// normalizes the resume-quality category, display-capped at 89.
func atsReadiness(r types.Rubric, categories []types.CategoryScore) *float64 {
	var value float64
	switch r {
	case types.RubricNonTechnical:
		value = rubric.ATSReadiness(categories)
	case types.RubricTechnical:
		for _, c := range categories {
			if c.Category == types.CategoryResumeQuality && c.Max > 0 {
				value = c.Points / c.Max * 100
			}
		}
		if value > 89 {
			value = 89
		}
	default:
		return nil
	}
	return &value
}

func suggestions(categories []types.CategoryScore) []string {
	type weak struct {
		ratio float64
		text  string
	}

	var weaks []weak
	for _, c := range categories {
		if c.Max <= 0 {
			continue
		}
		ratio := c.Points / c.Max
		if ratio >= 0.70 {
			continue
		}
		if text, ok := remediations[c.Category]; ok {
			weaks = append(weaks, weak{ratio: ratio, text: text})
		}
	}

	sort.SliceStable(weaks, func(i, j int) bool { return weaks[i].ratio < weaks[j].ratio })

	out := make([]string, 0, len(weaks))
	for _, w := range weaks {
		out = append(out, w.text)
	}
	return out
}

func detections(doc *types.ExtractedDocument, ids types.IdentifierSet) map[string]bool {
	var github, linkedin bool
	for _, link := range doc.Links {
		switch link.Kind {
		case types.LinkGitHub:
			github = true
		case types.LinkLinkedIn:
			linkedin = true
		}
	}

	return map[string]bool{
		"contact":  rubric.HasContact(doc.Text),
		"github":   github || ids.GitHubUser != "",
		"linkedin": linkedin,
	}
}

// resultKey is a stable identifier for one scoring run: same rubric, role,
// resume content, and usernames always hash to the same key.
func resultKey(r types.Rubric, doc *types.ExtractedDocument, ids types.IdentifierSet) string {
	resumeHash := sha256.Sum256([]byte(doc.Text))
	payload, _ := json.Marshal(map[string]string{
		"rubric":   string(r),
		"role":     ids.DesiredRole,
		"resume":   hex.EncodeToString(resumeHash[:]),
		"github":   ids.GitHubUser,
		"leetcode": ids.LeetCodeUser,
	})
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
