package extract

import (
	"regexp"
	"strings"

	"resumescope/internal/types"
)

var (
	urlPattern   = regexp.MustCompile(`https?://[^\s\)>\]"}]+`)
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	portfolioHint = regexp.MustCompile(`(?i)portfolio|netlify|vercel|\.me|\.io|\.dev|\.app`)
)

// ClassifyLink buckets a raw URL by the platform it points at.
func ClassifyLink(rawURL string) types.LinkKind {
	lower := strings.ToLower(rawURL)
	switch {
	case strings.HasPrefix(lower, "mailto:"):
		return types.LinkEmail
	case strings.Contains(lower, "github.com"):
		return types.LinkGitHub
	case strings.Contains(lower, "linkedin.com"):
		return types.LinkLinkedIn
	case strings.Contains(lower, "leetcode.com"):
		return types.LinkLeetCode
	case portfolioHint.MatchString(lower):
		return types.LinkPortfolio
	default:
		return types.LinkOther
	}
}

// harvestLinks merges URLs found in the visible text with the embedded link
// targets pulled from the document container and the email addresses rendered
// as mailto: pseudo-URLs, classifies them, and deduplicates preserving
// first-seen order.
func harvestLinks(text string, embedded []string) []types.Link {
	seen := make(map[string]bool)
	var links []types.Link

	add := func(raw string) {
		raw = strings.TrimRight(raw, ".,;")
		if raw == "" || seen[raw] {
			return
		}
		seen[raw] = true
		links = append(links, types.Link{URL: raw, Kind: ClassifyLink(raw)})
	}

	for _, raw := range urlPattern.FindAllString(text, -1) {
		add(raw)
	}
	for _, raw := range embedded {
		add(raw)
	}
	for _, addr := range harvestEmails(text) {
		add("mailto:" + addr)
	}

	return links
}

// harvestEmails returns the deduplicated email addresses found in text.
func harvestEmails(text string) []string {
	seen := make(map[string]bool)
	var emails []string
	for _, addr := range emailPattern.FindAllString(text, -1) {
		if seen[addr] {
			continue
		}
		seen[addr] = true
		emails = append(emails, addr)
	}
	return emails
}

// guessName picks the applicant name from the top of the document: the first
// non-empty line that is not a link or email address and is at most five
// words long.
func guessName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if urlPattern.MatchString(line) || emailPattern.MatchString(line) {
			continue
		}
		if len(strings.Fields(line)) > 5 {
			continue
		}
		return line
	}
	return ""
}
