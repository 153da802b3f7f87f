// Package signals fetches public activity from external platforms. All
// fetches follow a degrade-to-zero policy: upstream failures are logged and
// absorbed, and the affected signals score as their zero value.
package signals

import (
	"context"

	"golang.org/x/sync/errgroup"

	"resumescope/internal/config"
	"resumescope/internal/errors"
	"resumescope/internal/types"
)

// Fetcher joins the per-platform clients behind one call.
type Fetcher struct {
	github   *GitHubClient
	leetcode *LeetCodeClient
}

// NewFetcher creates a signal fetcher for all configured platforms.
func NewFetcher(cfg config.ProvidersConfig, logger *errors.Logger) *Fetcher {
	return &Fetcher{
		github:   NewGitHubClient(cfg.GitHub, logger),
		leetcode: NewLeetCodeClient(cfg.LeetCode, logger),
	}
}

// FetchAll fetches every platform concurrently. Platforms without a
// resolved username are skipped and stay at their zero value.
func (f *Fetcher) FetchAll(ctx context.Context, ids types.IdentifierSet) types.SignalBundle {
	var bundle types.SignalBundle

	g, ctx := errgroup.WithContext(ctx)

	if ids.GitHubUser != "" {
		g.Go(func() error {
			bundle.GitHub = f.github.Fetch(ctx, ids.GitHubUser, ids.DomainKeywords)
			return nil
		})
	}
	if ids.LeetCodeUser != "" {
		g.Go(func() error {
			bundle.LeetCode = f.leetcode.Fetch(ctx, ids.LeetCodeUser)
			return nil
		})
	}

	// Fetches never return errors, they degrade to zero instead.
	_ = g.Wait()

	return bundle
}

// Stats reports circuit breaker state for each platform.
func (f *Fetcher) Stats() map[string]any {
	return map[string]any{
		"github":   f.github.breaker.GetStats(),
		"leetcode": f.leetcode.breaker.GetStats(),
	}
}

// IsHealthy reports whether all platform breakers are closed.
func (f *Fetcher) IsHealthy() bool {
	return f.github.breaker.IsHealthy() && f.leetcode.breaker.IsHealthy()
}
