// Package identify resolves external platform usernames and role keywords
// for a candidate from their extracted document.
package identify

import (
	"regexp"
	"strings"

	"resumescope/internal/types"
)

var (
	githubUserPattern   = regexp.MustCompile(`github\.com/([A-Za-z0-9\-]+)`)
	leetcodeUserPattern = regexp.MustCompile(`leetcode\.com/(?:u/)?([\w-]+)`)
)

// Path heads under github.com that are never user profiles.
var githubReservedPaths = map[string]bool{
	"features": true,
	"topics":   true,
	"orgs":     true,
	"about":    true,
	"pricing":  true,
	"login":    true,
	"signup":   true,
}

// firstGitHubUser returns the first valid GitHub handle matched in s.
func firstGitHubUser(s string) string {
	for _, m := range githubUserPattern.FindAllStringSubmatch(s, -1) {
		user := strings.TrimSuffix(m[1], "/")
		if user == "" || githubReservedPaths[strings.ToLower(user)] {
			continue
		}
		return user
	}
	return ""
}

// firstLeetCodeUser returns the first valid LeetCode handle matched in s,
// handling both the /u/<name> and bare /<name> profile URL shapes.
func firstLeetCodeUser(s string) string {
	for _, m := range leetcodeUserPattern.FindAllStringSubmatch(s, -1) {
		user := strings.TrimSuffix(m[1], "/")
		if user == "" || strings.EqualFold(user, "problems") || strings.EqualFold(user, "contest") {
			continue
		}
		return user
	}
	return ""
}

// ResolveGitHub returns the first GitHub username found among the links,
// or empty when none is present.
func ResolveGitHub(links []types.Link) string {
	for _, link := range links {
		if link.Kind != types.LinkGitHub {
			continue
		}
		if user := firstGitHubUser(link.URL); user != "" {
			return user
		}
	}
	return ""
}

// ResolveLeetCode returns the first LeetCode username found among the links,
// or empty when none is present.
func ResolveLeetCode(links []types.Link) string {
	for _, link := range links {
		if link.Kind != types.LinkLeetCode {
			continue
		}
		if user := firstLeetCodeUser(link.URL); user != "" {
			return user
		}
	}
	return ""
}

// Resolve builds the identifier set for a scoring run. Explicit values in
// opts win over anything derived from the document. Links are scanned first;
// when they yield nothing the patterns run over the raw text, since rendered
// resumes often print profile addresses without a scheme.
func Resolve(doc *types.ExtractedDocument, opts types.ScoreOptions) types.IdentifierSet {
	ids := types.IdentifierSet{
		GitHubUser:     opts.GitHubUser,
		LeetCodeUser:   opts.LeetCodeUser,
		DesiredRole:    NormalizeRole(opts.DesiredRole),
		DomainKeywords: opts.DomainKeywords,
	}

	if ids.GitHubUser == "" {
		ids.GitHubUser = ResolveGitHub(doc.Links)
	}
	if ids.GitHubUser == "" {
		ids.GitHubUser = firstGitHubUser(doc.Text)
	}
	if ids.LeetCodeUser == "" {
		ids.LeetCodeUser = ResolveLeetCode(doc.Links)
	}
	if ids.LeetCodeUser == "" {
		ids.LeetCodeUser = firstLeetCodeUser(doc.Text)
	}
	if len(ids.DomainKeywords) == 0 {
		ids.DomainKeywords = RoleKeywords(ids.DesiredRole)
	}

	return ids
}

// NormalizeRole lowercases and trims a role name so it can be used as a
// lookup key.
func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}
