package signals

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resumescope/internal/config"
	"resumescope/internal/types"
)

const leetcodeFixture = `{
  "data": {
    "matchedUser": {
      "submitStats": {
        "acSubmissionNum": [
          {"difficulty": "All", "count": 230},
          {"difficulty": "Easy", "count": 100},
          {"difficulty": "Medium", "count": 90},
          {"difficulty": "Hard", "count": 40}
        ]
      },
      "tagProblemCounts": {
        "advanced": [
          {"tagName": "dynamic-programming", "problemsSolved": 30},
          {"tagName": "graphs", "problemsSolved": 12},
          {"tagName": "tries", "problemsSolved": 2}
        ]
      }
    },
    "userContestRankingHistory": [
      {"attended": true},
      {"attended": false},
      {"attended": true},
      {"attended": true},
      {"attended": true}
    ]
  }
}`

func leetcodeTestConfig(url string) config.LeetCodeProviderConfig {
	return config.LeetCodeProviderConfig{
		GraphQLURL: url,
		Timeout:    5 * time.Second,
	}
}

func TestLeetCodeFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		fmt.Fprint(w, leetcodeFixture)
	}))
	defer srv.Close()

	client := NewLeetCodeClient(leetcodeTestConfig(srv.URL), nil)
	signals := client.Fetch(context.Background(), "alice")

	want := types.LeetCodeSignals{
		TotalSolved:      230,
		MediumHardSolved: 130,
		ContestsAttended: 4,
		TopicVariety:     2,
	}
	if signals != want {
		t.Errorf("Fetch = %+v, want %+v", signals, want)
	}
}

func TestLeetCodeFetchUnknownUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"matchedUser":null,"userContestRankingHistory":null}}`)
	}))
	defer srv.Close()

	client := NewLeetCodeClient(leetcodeTestConfig(srv.URL), nil)

	if signals := client.Fetch(context.Background(), "ghost"); signals != (types.LeetCodeSignals{}) {
		t.Errorf("expected zero signals for unknown user, got %+v", signals)
	}
}

func TestLeetCodeFetchUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "throttled", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewLeetCodeClient(leetcodeTestConfig(srv.URL), nil)

	if signals := client.Fetch(context.Background(), "alice"); signals != (types.LeetCodeSignals{}) {
		t.Errorf("expected zero signals on upstream error, got %+v", signals)
	}
}

func TestLeetCodeFetchMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>captcha</html>`)
	}))
	defer srv.Close()

	client := NewLeetCodeClient(leetcodeTestConfig(srv.URL), nil)

	if signals := client.Fetch(context.Background(), "alice"); signals != (types.LeetCodeSignals{}) {
		t.Errorf("expected zero signals on malformed response, got %+v", signals)
	}
}

func TestLeetCodeFetchEmptyUser(t *testing.T) {
	client := NewLeetCodeClient(leetcodeTestConfig("http://127.0.0.1:0"), nil)

	if signals := client.Fetch(context.Background(), ""); signals != (types.LeetCodeSignals{}) {
		t.Errorf("expected zero signals for empty user, got %+v", signals)
	}
}

func TestFetchAll(t *testing.T) {
	ghMux := http.NewServeMux()
	ghMux.HandleFunc("/users/alice", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"login":"alice"}`)
	})
	ghMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	})
	ghSrv := httptest.NewServer(ghMux)
	defer ghSrv.Close()

	lcSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, leetcodeFixture)
	}))
	defer lcSrv.Close()

	fetcher := NewFetcher(config.ProvidersConfig{
		GitHub:   githubTestConfig(ghSrv.URL),
		LeetCode: leetcodeTestConfig(lcSrv.URL),
	}, nil)

	bundle := fetcher.FetchAll(context.Background(), types.IdentifierSet{
		GitHubUser:   "alice",
		LeetCodeUser: "alice",
	})

	if !bundle.GitHub.ProfileExists {
		t.Error("expected github signals to be fetched")
	}
	if bundle.LeetCode.TotalSolved != 230 {
		t.Errorf("leetcode solved = %d, want 230", bundle.LeetCode.TotalSolved)
	}
}

func TestFetchAllSkipsUnresolved(t *testing.T) {
	fetcher := NewFetcher(config.ProvidersConfig{
		GitHub:   githubTestConfig("http://127.0.0.1:0"),
		LeetCode: leetcodeTestConfig("http://127.0.0.1:0"),
	}, nil)

	bundle := fetcher.FetchAll(context.Background(), types.IdentifierSet{})

	if bundle != (types.SignalBundle{}) {
		t.Errorf("expected zero bundle, got %+v", bundle)
	}
}
