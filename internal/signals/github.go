package signals

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"resumescope/internal/config"
	"resumescope/internal/errors"
	"resumescope/internal/types"
)

// GitHubClient fetches public activity signals for a GitHub user. Every
// fetch degrades to the zero value on failure; callers never see an error.
type GitHubClient struct {
	cfg        config.GitHubProviderConfig
	httpClient *http.Client
	breaker    *Breaker[[]byte]
	logger     *errors.Logger
}

// NewGitHubClient creates a GitHub signal fetcher
func NewGitHubClient(cfg config.GitHubProviderConfig, logger *errors.Logger) *GitHubClient {
	return &GitHubClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    NewBreaker[[]byte]("github", cfg.CircuitBreaker, logger),
		logger:     logger,
	}
}

// Fetch collects all GitHub signals for user. keywords drives the repository
// relevance count; an empty slice leaves KeywordRepoHits at zero.
func (c *GitHubClient) Fetch(ctx context.Context, user string, keywords []string) types.GitHubSignals {
	var signals types.GitHubSignals
	if user == "" {
		return signals
	}

	// The profile gate: if the user cannot be resolved, nothing else can.
	if !c.profileExists(ctx, user) {
		return signals
	}
	signals.ProfileExists = true

	signals.PinnedRepos = c.pinnedRepoCount(ctx, user)
	signals.RecentPushes = c.recentPushCount(ctx, user)

	repos := c.recentRepos(ctx, user)
	signals.ReadmeRepos = c.readmeCount(ctx, repos)
	signals.KeywordRepoHits = keywordRepoHits(repos, keywords)

	return signals
}

func (c *GitHubClient) profileExists(ctx context.Context, user string) bool {
	_, err := c.getJSON(ctx, fmt.Sprintf("%s/users/%s", c.cfg.BaseURL, user))
	if err != nil {
		c.degraded("profile", user, err)
		return false
	}
	return true
}

const pinnedQuery = `query($login: String!) {
  user(login: $login) {
    pinnedItems(first: 6, types: REPOSITORY) {
      totalCount
    }
  }
}`

func (c *GitHubClient) pinnedRepoCount(ctx context.Context, user string) int {
	payload, err := json.Marshal(map[string]any{
		"query":     pinnedQuery,
		"variables": map[string]string{"login": user},
	})
	if err != nil {
		return 0
	}

	body, err := c.postJSON(ctx, c.cfg.GraphQLURL, payload)
	if err != nil {
		c.degraded("pinned", user, err)
		return 0
	}

	var resp struct {
		Data struct {
			User struct {
				PinnedItems struct {
					TotalCount int `json:"totalCount"`
				} `json:"pinnedItems"`
			} `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		c.malformed("pinned", user, err)
		return 0
	}

	return resp.Data.User.PinnedItems.TotalCount
}

func (c *GitHubClient) recentPushCount(ctx context.Context, user string) int {
	body, err := c.getJSON(ctx, fmt.Sprintf("%s/users/%s/events/public", c.cfg.BaseURL, user))
	if err != nil {
		c.degraded("events", user, err)
		return 0
	}

	var events []struct {
		Type      string    `json:"type"`
		CreatedAt time.Time `json:"created_at"`
	}
	if err := json.Unmarshal(body, &events); err != nil {
		c.malformed("events", user, err)
		return 0
	}

	recentDays := c.cfg.RecentDays
	if recentDays <= 0 {
		recentDays = 90
	}
	cutoff := time.Now().AddDate(0, 0, -recentDays)

	count := 0
	for _, ev := range events {
		if ev.Type == "PushEvent" && ev.CreatedAt.After(cutoff) {
			count++
		}
	}
	return count
}

type githubRepo struct {
	Name        string   `json:"name"`
	FullName    string   `json:"full_name"`
	Description string   `json:"description"`
	Topics      []string `json:"topics"`
}

func (c *GitHubClient) recentRepos(ctx context.Context, user string) []githubRepo {
	body, err := c.getJSON(ctx, fmt.Sprintf("%s/users/%s/repos?per_page=100&sort=updated", c.cfg.BaseURL, user))
	if err != nil {
		c.degraded("repos", user, err)
		return nil
	}

	var repos []githubRepo
	if err := json.Unmarshal(body, &repos); err != nil {
		c.malformed("repos", user, err)
		return nil
	}
	return repos
}

// readmeCount probes the 10 most recently updated repositories for a README.
func (c *GitHubClient) readmeCount(ctx context.Context, repos []githubRepo) int {
	probe := repos
	if len(probe) > 10 {
		probe = probe[:10]
	}

	count := 0
	for _, repo := range probe {
		if repo.FullName == "" {
			continue
		}
		if _, err := c.getJSON(ctx, fmt.Sprintf("%s/repos/%s/readme", c.cfg.BaseURL, repo.FullName)); err == nil {
			count++
		}
	}
	return count
}

// keywordRepoHits counts repositories whose description or topics mention
// any of the domain keywords.
func keywordRepoHits(repos []githubRepo, keywords []string) int {
	if len(keywords) == 0 {
		return 0
	}

	hits := 0
	for _, repo := range repos {
		haystack := strings.ToLower(repo.Description + " " + strings.Join(repo.Topics, " "))
		for _, kw := range keywords {
			if kw != "" && strings.Contains(haystack, strings.ToLower(kw)) {
				hits++
				break
			}
		}
	}
	return hits
}

func (c *GitHubClient) getJSON(ctx context.Context, url string) ([]byte, error) {
	return c.breaker.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		c.setHeaders(req)
		return c.do(req)
	})
}

func (c *GitHubClient) postJSON(ctx context.Context, url string, payload []byte) ([]byte, error) {
	return c.breaker.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		c.setHeaders(req)
		req.Header.Set("Content-Type", "application/json")
		return c.do(req)
	})
}

func (c *GitHubClient) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}
}

func (c *GitHubClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, req.URL.Path)
	}

	return io.ReadAll(resp.Body)
}

func (c *GitHubClient) degraded(step, user string, err error) {
	if c.logger == nil {
		return
	}
	appErr := errors.NewUpstreamError(errors.ErrCodeFetchDegraded, "github fetch degraded", err).
		WithContext("step", step).
		WithContext("user", user)
	c.logger.LogError(appErr, "GitHub signal fetch degraded to zero")
}

func (c *GitHubClient) malformed(step, user string, err error) {
	if c.logger == nil {
		return
	}
	appErr := errors.NewUpstreamError(errors.ErrCodeMalformedUpstream, "github response malformed", err).
		WithContext("step", step).
		WithContext("user", user)
	c.logger.LogError(appErr, "GitHub signal fetch degraded to zero")
}
