package types

// DocumentFormat identifies the source format of an uploaded resume.
type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatDOCX DocumentFormat = "docx"
	FormatText DocumentFormat = "txt"
)

// LinkKind classifies a hyperlink found in a resume.
type LinkKind string

const (
	LinkGitHub    LinkKind = "github"
	LinkLinkedIn  LinkKind = "linkedin"
	LinkPortfolio LinkKind = "portfolio"
	LinkLeetCode  LinkKind = "leetcode"
	LinkEmail     LinkKind = "email"
	LinkOther     LinkKind = "other"
)

// Link is a classified hyperlink extracted from a document.
type Link struct {
	URL  string   `json:"url"`
	Kind LinkKind `json:"kind"`
}

// ExtractedDocument is the normalized result of parsing an uploaded resume.
type ExtractedDocument struct {
	Text      string         `json:"text"`
	Format    DocumentFormat `json:"format"`
	Links     []Link         `json:"links"`
	Emails    []string       `json:"emails"`
	Name      string         `json:"name,omitempty"`
	WordCount int            `json:"wordCount"`
	PageCount int            `json:"pageCount,omitempty"`
}

// IdentifierSet carries the external identities resolved for a candidate.
type IdentifierSet struct {
	GitHubUser     string   `json:"githubUser,omitempty"`
	LeetCodeUser   string   `json:"leetcodeUser,omitempty"`
	DesiredRole    string   `json:"desiredRole,omitempty"`
	DomainKeywords []string `json:"domainKeywords,omitempty"`
}

// GitHubSignals holds the public activity fetched for a GitHub user.
// The zero value means "nothing could be fetched" and scores as zero.
type GitHubSignals struct {
	ProfileExists   bool `json:"profileExists"`
	PinnedRepos     int  `json:"pinnedRepos"`
	RecentPushes    int  `json:"recentPushes"`
	ReadmeRepos     int  `json:"readmeRepos"`
	KeywordRepoHits int  `json:"keywordRepoHits"`
}

// LeetCodeSignals holds problem-solving activity fetched for a LeetCode user.
// The zero value means "nothing could be fetched" and scores as zero.
type LeetCodeSignals struct {
	TotalSolved      int `json:"totalSolved"`
	MediumHardSolved int `json:"mediumHardSolved"`
	ContestsAttended int `json:"contestsAttended"`
	TopicVariety     int `json:"topicVariety"`
}

// SignalBundle groups everything fetched from external platforms.
type SignalBundle struct {
	GitHub   GitHubSignals   `json:"github"`
	LeetCode LeetCodeSignals `json:"leetcode"`
}

// Grade buckets a score ratio into a qualitative band.
type Grade string

const (
	GradeExcellent Grade = "Excellent"
	GradeGood      Grade = "Good"
	GradeAverage   Grade = "Average"
	GradePoor      Grade = "Poor"
)

// Color returns the chart color associated with a grade.
func (g Grade) Color() string {
	switch g {
	case GradeExcellent:
		return "#4CAF50"
	case GradeGood:
		return "#2196F3"
	case GradeAverage:
		return "#FF9800"
	default:
		return "#dc3545"
	}
}

// GradeFor buckets points/max into a grade band. A zero max grades as Poor.
func GradeFor(points, max float64) Grade {
	if max <= 0 {
		return GradePoor
	}
	ratio := points / max
	switch {
	case ratio >= 0.85:
		return GradeExcellent
	case ratio >= 0.70:
		return GradeGood
	case ratio >= 0.50:
		return GradeAverage
	default:
		return GradePoor
	}
}

// Category identifies a scoring category in either rubric.
type Category string

// Technical rubric categories.
const (
	CategoryGitHub        Category = "github"
	CategoryLeetCode      Category = "leetcode"
	CategoryPortfolio     Category = "portfolio"
	CategoryNetwork       Category = "network"
	CategoryResumeQuality Category = "resume_quality"
	CategoryCerts         Category = "certifications"
)

// Non-technical rubric categories.
const (
	CategoryFormatLayout  Category = "format_layout"
	CategoryFileType      Category = "file_type"
	CategoryHeadings      Category = "section_headings"
	CategoryJobTitle      Category = "job_title_match"
	CategorySkillsSection Category = "skills_section"
	CategoryKeywords      Category = "keyword_integration"
	CategoryActionVerbs   Category = "action_verbs"
	CategoryQuantifiable  Category = "quantifiable_results"
	CategoryConciseness   Category = "conciseness"
	CategoryContact       Category = "contact_info"
	CategoryProofreading  Category = "proofreading"
)

var categoryLabels = map[Category]string{
	CategoryGitHub:        "GitHub",
	CategoryLeetCode:      "LeetCode",
	CategoryPortfolio:     "Portfolio",
	CategoryNetwork:       "Professional Network",
	CategoryResumeQuality: "Resume Quality",
	CategoryCerts:         "Certifications",

	CategoryFormatLayout:  "Format & Layout",
	CategoryFileType:      "File Type",
	CategoryHeadings:      "Section Headings",
	CategoryJobTitle:      "Job Title Match",
	CategorySkillsSection: "Skills Section",
	CategoryKeywords:      "Keyword Integration",
	CategoryActionVerbs:   "Action Verbs",
	CategoryQuantifiable:  "Quantifiable Results",
	CategoryConciseness:   "Conciseness",
	CategoryContact:       "Contact Information",
	CategoryProofreading:  "Proofreading",
}

// Label returns the human-readable display name for a category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// CategoryScore is one scored row of a report.
type CategoryScore struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Points   float64  `json:"points"`
	Max      float64  `json:"max"`
	Grade    Grade    `json:"grade"`
	Detail   []string `json:"detail,omitempty"`
}

// Rubric names the scoring scheme a report was built under.
type Rubric string

const (
	RubricTechnical    Rubric = "technical"
	RubricNonTechnical Rubric = "non_technical"
)

// Report is the final scored result for a resume.
type Report struct {
	Rubric         Rubric          `json:"rubric"`
	Name           string          `json:"name,omitempty"`
	Total          float64         `json:"total"`
	Max            float64         `json:"max"`
	Overall        Grade           `json:"overall"`
	Categories     []CategoryScore `json:"categories"`
	ATSReadiness   *float64        `json:"atsReadiness,omitempty"`
	Suggestions    []string        `json:"suggestions,omitempty"`
	Certifications []string        `json:"certifications,omitempty"`
	Detections     map[string]bool `json:"detections,omitempty"`
	Insight        string          `json:"insight,omitempty"`
	ChartPNG       []byte          `json:"-"`
	Key            string          `json:"key,omitempty"`
}

// ScoreOptions carries caller-supplied overrides for a scoring run.
type ScoreOptions struct {
	GitHubUser     string   `json:"githubUser,omitempty"`
	LeetCodeUser   string   `json:"leetcodeUser,omitempty"`
	DesiredRole    string   `json:"desiredRole,omitempty"`
	DomainKeywords []string `json:"domainKeywords,omitempty"`
	Chart          bool     `json:"chart,omitempty"`
}

// ScoreResponse is the HTTP representation of a report.
type ScoreResponse struct {
	Report      *Report `json:"report"`
	ChartBase64 string  `json:"chart,omitempty"`
}

// SignupRequest starts or verifies the signup OTP flow.
type SignupRequest struct {
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
	Code   string `json:"code,omitempty"`
}

// LoginRequest starts or verifies the login OTP flow.
type LoginRequest struct {
	Email string `json:"email"`
	Code  string `json:"code,omitempty"`
}

// User is a registered account keyed by normalized email address.
type User struct {
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}

// PaymentProof is a manual payment submission awaiting review.
type PaymentProof struct {
	Name           string `json:"name"`
	UTR            string `json:"utr"`
	PlanID         int    `json:"planId"`
	Screenshot     []byte `json:"-"`
	ScreenshotName string `json:"-"`
	Resume         []byte `json:"-"`
	ResumeName     string `json:"-"`
}

// PaymentPlan is a purchasable package.
type PaymentPlan struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"` // INR
	Description string `json:"description"`
}
