package extract

import (
	"reflect"
	"testing"

	"resumescope/internal/types"
)

func TestClassifyLink(t *testing.T) {
	tests := []struct {
		url  string
		want types.LinkKind
	}{
		{"https://github.com/alice", types.LinkGitHub},
		{"https://GitHub.com/alice/project", types.LinkGitHub},
		{"https://www.linkedin.com/in/alice", types.LinkLinkedIn},
		{"https://leetcode.com/u/alice/", types.LinkLeetCode},
		{"https://alice.dev", types.LinkPortfolio},
		{"https://my-portfolio.example.com", types.LinkPortfolio},
		{"https://alice.netlify.app", types.LinkPortfolio},
		{"https://alice.vercel.app", types.LinkPortfolio},
		{"mailto:alice@example.com", types.LinkEmail},
		{"https://example.com/blog", types.LinkOther},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := ClassifyLink(tt.url); got != tt.want {
				t.Errorf("ClassifyLink(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestHarvestLinksDedup(t *testing.T) {
	text := "See https://github.com/alice and again https://github.com/alice."
	embedded := []string{"https://github.com/alice", "https://alice.dev"}

	links := harvestLinks(text, embedded)

	want := []types.Link{
		{URL: "https://github.com/alice", Kind: types.LinkGitHub},
		{URL: "https://alice.dev", Kind: types.LinkPortfolio},
	}
	if !reflect.DeepEqual(links, want) {
		t.Errorf("harvestLinks = %+v, want %+v", links, want)
	}
}

func TestHarvestLinksStripsTrailingPunctuation(t *testing.T) {
	links := harvestLinks("visit https://alice.dev, then apply", nil)
	if len(links) != 1 || links[0].URL != "https://alice.dev" {
		t.Errorf("expected trailing comma stripped, got %+v", links)
	}
}

func TestHarvestLinksRendersEmailsAsMailto(t *testing.T) {
	links := harvestLinks("Alice Johnson\nalice@example.com\nhttps://github.com/alice", nil)

	want := []types.Link{
		{URL: "https://github.com/alice", Kind: types.LinkGitHub},
		{URL: "mailto:alice@example.com", Kind: types.LinkEmail},
	}
	if !reflect.DeepEqual(links, want) {
		t.Errorf("harvestLinks = %+v, want %+v", links, want)
	}
}

func TestHarvestEmails(t *testing.T) {
	text := "Contact alice@example.com or alice@example.com or bob.smith+jobs@mail.co"
	emails := harvestEmails(text)

	want := []string{"alice@example.com", "bob.smith+jobs@mail.co"}
	if !reflect.DeepEqual(emails, want) {
		t.Errorf("harvestEmails = %v, want %v", emails, want)
	}
}

func TestGuessName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain header",
			text: "Alice Johnson\nSoftware Engineer with 5 years of experience building things\nalice@example.com",
			want: "Alice Johnson",
		},
		{
			name: "skips contact lines",
			text: "alice@example.com\nhttps://alice.dev\nAlice Johnson",
			want: "Alice Johnson",
		},
		{
			name: "empty document",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := guessName(tt.text); got != tt.want {
				t.Errorf("guessName = %q, want %q", got, tt.want)
			}
		})
	}
}
