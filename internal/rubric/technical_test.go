package rubric

import (
	"testing"

	"resumescope/internal/types"
)

func strongTechnicalDoc() *types.ExtractedDocument {
	text := "Alice Johnson\n" +
		"Summary\n" +
		"Work Experience\nEducation\nSkills\n" +
		"Developed services in python, java, javascript, react and docker\n" +
		"Project portfolio with a live demo deployed at https://alice.dev\n" +
		"Achieved 40% latency reduction\n" +
		"Certified Kubernetes Administrator, AWS certificate\n" +
		"Phone: 9876543210 Email: alice@example.com\n"
	return &types.ExtractedDocument{
		Text:      text,
		Format:    types.FormatPDF,
		WordCount: 45,
		Links: []types.Link{
			{URL: "https://github.com/alice", Kind: types.LinkGitHub},
			{URL: "https://linkedin.com/in/alice", Kind: types.LinkLinkedIn},
			{URL: "https://alice.dev", Kind: types.LinkPortfolio},
			{URL: "https://leetcode.com/u/alice", Kind: types.LinkLeetCode},
		},
	}
}

func findCategory(t *testing.T, scores []types.CategoryScore, cat types.Category) types.CategoryScore {
	t.Helper()
	for _, s := range scores {
		if s.Category == cat {
			return s
		}
	}
	t.Fatalf("category %q not found in breakdown", cat)
	return types.CategoryScore{}
}

func TestTechnicalFullSignals(t *testing.T) {
	doc := strongTechnicalDoc()
	ids := types.IdentifierSet{GitHubUser: "alice", LeetCodeUser: "alice"}
	signals := types.SignalBundle{
		GitHub: types.GitHubSignals{
			ProfileExists:   true,
			PinnedRepos:     4,
			RecentPushes:    2,
			ReadmeRepos:     1,
			KeywordRepoHits: 1,
		},
		LeetCode: types.LeetCodeSignals{
			TotalSolved:      230,
			MediumHardSolved: 130,
			ContestsAttended: 4,
			TopicVariety:     8,
		},
	}

	scores := Technical(doc, ids, signals)
	if len(scores) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(scores))
	}

	expected := map[types.Category]float64{
		types.CategoryGitHub:        15, // 3 + 5 + 3 + 2 + 2
		types.CategoryLeetCode:      19, // 2 + 5 + 4 + 3 + 5
		types.CategoryPortfolio:     20,
		types.CategoryNetwork:       15,
		types.CategoryResumeQuality: 10,
		types.CategoryCerts:         10,
	}
	for cat, want := range expected {
		got := findCategory(t, scores, cat)
		if got.Points != want {
			t.Errorf("%s: expected %.0f points, got %.0f", cat, want, got.Points)
		}
	}

	var total float64
	for _, s := range scores {
		total += s.Max
	}
	if total != 100 {
		t.Errorf("category budgets should sum to 100, got %.0f", total)
	}
}

func TestTechnicalNoProfiles(t *testing.T) {
	doc := &types.ExtractedDocument{Text: "plain resume", Format: types.FormatText, WordCount: 2}
	scores := Technical(doc, types.IdentifierSet{}, types.SignalBundle{})

	github := findCategory(t, scores, types.CategoryGitHub)
	if github.Points != 0 {
		t.Errorf("expected 0 GitHub points without a profile, got %.0f", github.Points)
	}
	if github.Grade != types.GradePoor {
		t.Errorf("expected Poor grade, got %s", github.Grade)
	}

	leetcode := findCategory(t, scores, types.CategoryLeetCode)
	if leetcode.Points != 0 {
		t.Errorf("expected 0 LeetCode points without a profile, got %.0f", leetcode.Points)
	}
}

func TestTechnicalProfileGateStopsSignalPoints(t *testing.T) {
	// A resolved username whose profile could not be fetched still earns
	// the link points but nothing signal-derived.
	doc := &types.ExtractedDocument{Text: "resume", Format: types.FormatPDF, WordCount: 1}
	ids := types.IdentifierSet{GitHubUser: "ghost"}
	signals := types.SignalBundle{
		GitHub: types.GitHubSignals{ProfileExists: false, PinnedRepos: 6, RecentPushes: 9},
	}

	github := findCategory(t, Technical(doc, ids, signals), types.CategoryGitHub)
	if github.Points != 3 {
		t.Errorf("expected 3 points for link only, got %.0f", github.Points)
	}
}

func TestGitHubTiers(t *testing.T) {
	tests := []struct {
		name    string
		signals types.GitHubSignals
		want    float64
	}{
		{"maximum activity", types.GitHubSignals{ProfileExists: true, PinnedRepos: 3, RecentPushes: 5, ReadmeRepos: 5, KeywordRepoHits: 3}, 25},
		{"modest activity", types.GitHubSignals{ProfileExists: true, PinnedRepos: 1, RecentPushes: 1, ReadmeRepos: 2, KeywordRepoHits: 2}, 17},
		{"bare profile", types.GitHubSignals{ProfileExists: true}, 3},
	}

	ids := types.IdentifierSet{GitHubUser: "alice"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreGitHub(ids, tt.signals)
			if got.Points != tt.want {
				t.Errorf("expected %.0f points, got %.0f", tt.want, got.Points)
			}
		})
	}
}

func TestLeetCodeTiers(t *testing.T) {
	tests := []struct {
		name    string
		signals types.LeetCodeSignals
		want    float64
	}{
		{"top band", types.LeetCodeSignals{TotalSolved: 200, MediumHardSolved: 120, ContestsAttended: 6, TopicVariety: 8}, 20},
		{"entry band", types.LeetCodeSignals{TotalSolved: 50, MediumHardSolved: 20, ContestsAttended: 1, TopicVariety: 2}, 7},
		{"below thresholds", types.LeetCodeSignals{TotalSolved: 49, MediumHardSolved: 19, TopicVariety: 1}, 2},
	}

	ids := types.IdentifierSet{LeetCodeUser: "alice"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreLeetCode(ids, tt.signals)
			if got.Points != tt.want {
				t.Errorf("expected %.0f points, got %.0f", tt.want, got.Points)
			}
		})
	}
}

func TestPortfolioContentChecks(t *testing.T) {
	doc := &types.ExtractedDocument{
		Text:      "Personal project with a live demo, built in go",
		Format:    types.FormatPDF,
		WordCount: 9,
	}

	got := scorePortfolio(doc)
	// No portfolio link, no broad stack: project mention plus demo mention.
	if got.Points != 10 {
		t.Errorf("expected 10 points, got %.0f", got.Points)
	}
}

func TestCertificationEvidence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"two mentions", "AWS certificate and Certified Kubernetes Administrator", 10},
		{"one mention", "completed a machine learning course", 5},
		{"none", "plain resume text", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreCertifications(&types.ExtractedDocument{Text: tt.text})
			if got.Points != tt.want {
				t.Errorf("expected %.0f points, got %.0f", tt.want, got.Points)
			}
		})
	}
}
