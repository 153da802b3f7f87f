package signals

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"resumescope/internal/config"
	"resumescope/internal/errors"
	"resumescope/internal/types"
)

// LeetCodeClient fetches problem-solving signals from the public LeetCode
// GraphQL endpoint. A single query covers submissions, topic tags and
// contest history; any failure degrades to the zero value.
type LeetCodeClient struct {
	cfg        config.LeetCodeProviderConfig
	httpClient *http.Client
	breaker    *Breaker[[]byte]
	logger     *errors.Logger
}

// NewLeetCodeClient creates a LeetCode signal fetcher
func NewLeetCodeClient(cfg config.LeetCodeProviderConfig, logger *errors.Logger) *LeetCodeClient {
	return &LeetCodeClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    NewBreaker[[]byte]("leetcode", cfg.CircuitBreaker, logger),
		logger:     logger,
	}
}

const leetcodeQuery = `query($username: String!) {
  matchedUser(username: $username) {
    submitStats {
      acSubmissionNum {
        difficulty
        count
      }
    }
    tagProblemCounts {
      advanced {
        tagName
        problemsSolved
      }
    }
  }
  userContestRankingHistory(username: $username) {
    attended
  }
}`

type leetcodeResponse struct {
	Data struct {
		MatchedUser *struct {
			SubmitStats struct {
				AcSubmissionNum []struct {
					Difficulty string `json:"difficulty"`
					Count      int    `json:"count"`
				} `json:"acSubmissionNum"`
			} `json:"submitStats"`
			TagProblemCounts struct {
				Advanced []struct {
					TagName        string `json:"tagName"`
					ProblemsSolved int    `json:"problemsSolved"`
				} `json:"advanced"`
			} `json:"tagProblemCounts"`
		} `json:"matchedUser"`
		UserContestRankingHistory []struct {
			Attended bool `json:"attended"`
		} `json:"userContestRankingHistory"`
	} `json:"data"`
}

// Fetch collects all LeetCode signals for user.
func (c *LeetCodeClient) Fetch(ctx context.Context, user string) types.LeetCodeSignals {
	var signals types.LeetCodeSignals
	if user == "" {
		return signals
	}

	payload, err := json.Marshal(map[string]any{
		"query":     leetcodeQuery,
		"variables": map[string]string{"username": user},
	})
	if err != nil {
		return signals
	}

	body, err := c.post(ctx, payload)
	if err != nil {
		c.degraded(user, err)
		return signals
	}

	var resp leetcodeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.malformed(user, err)
		return signals
	}
	if resp.Data.MatchedUser == nil {
		c.degraded(user, fmt.Errorf("no matched user"))
		return signals
	}

	for _, bucket := range resp.Data.MatchedUser.SubmitStats.AcSubmissionNum {
		switch strings.ToLower(bucket.Difficulty) {
		case "all":
			signals.TotalSolved = bucket.Count
		case "medium", "hard":
			signals.MediumHardSolved += bucket.Count
		}
	}

	for _, tag := range resp.Data.MatchedUser.TagProblemCounts.Advanced {
		if tag.ProblemsSolved >= 3 {
			signals.TopicVariety++
		}
	}

	for _, contest := range resp.Data.UserContestRankingHistory {
		if contest.Attended {
			signals.ContestsAttended++
		}
	}

	return signals
}

func (c *LeetCodeClient) post(ctx context.Context, payload []byte) ([]byte, error) {
	return c.breaker.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.GraphQLURL, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Referer", "https://leetcode.com")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %d from leetcode", resp.StatusCode)
		}

		return io.ReadAll(resp.Body)
	})
}

func (c *LeetCodeClient) degraded(user string, err error) {
	if c.logger == nil {
		return
	}
	appErr := errors.NewUpstreamError(errors.ErrCodeFetchDegraded, "leetcode fetch degraded", err).
		WithContext("user", user)
	c.logger.LogError(appErr, "LeetCode signal fetch degraded to zero")
}

func (c *LeetCodeClient) malformed(user string, err error) {
	if c.logger == nil {
		return
	}
	appErr := errors.NewUpstreamError(errors.ErrCodeMalformedUpstream, "leetcode response malformed", err).
		WithContext("user", user)
	c.logger.LogError(appErr, "LeetCode signal fetch degraded to zero")
}
