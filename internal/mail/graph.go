package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"resumescope/internal/config"
	"resumescope/internal/errors"
	"resumescope/internal/store"
)

const (
	defaultLoginBase = "https://login.microsoftonline.com"
	defaultGraphBase = "https://graph.microsoft.com"

	// Tokens are refreshed this long before their reported expiry.
	tokenExpiryMargin = 60 * time.Second
)

// GraphSender sends mail through the Microsoft Graph sendMail endpoint using
// the client-credentials flow. Access tokens are cached until shortly before
// expiry.
type GraphSender struct {
	cfg        config.GraphMailConfig
	httpClient *http.Client
	tokens     *store.TTL[string]
	logger     *errors.Logger

	loginBase string
	graphBase string
}

func NewGraphSender(cfg config.GraphMailConfig, logger *errors.Logger) *GraphSender {
	return &GraphSender{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 20 * time.Second},
		tokens:     store.NewTTL[string](0),
		logger:     logger,
		loginBase:  defaultLoginBase,
		graphBase:  defaultGraphBase,
	}
}

type graphTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func (g *GraphSender) token(ctx context.Context) (string, error) {
	if tok, ok := g.tokens.Get("token"); ok {
		return tok, nil
	}

	form := url.Values{
		"client_id":     {g.cfg.ClientID},
		"client_secret": {g.cfg.ClientSecret},
		"scope":         {"https://graph.microsoft.com/.default"},
		"grant_type":    {"client_credentials"},
	}
	tokenURL := fmt.Sprintf("%s/%s/oauth2/v2.0/token", g.loginBase, g.cfg.TenantID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.NewNetworkError(errors.ErrCodeMailSendFailed, "Failed to build token request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", errors.NewNetworkError(errors.ErrCodeMailSendFailed, "Token request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.NewNetworkError(errors.ErrCodeMailSendFailed, "Failed to read token response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.NewNetworkError(errors.ErrCodeMailSendFailed,
			fmt.Sprintf("Token request returned status %d", resp.StatusCode), nil).
			WithContext("body", string(body))
	}

	var tok graphTokenResponse
	if err := json.Unmarshal(body, &tok); err != nil || tok.AccessToken == "" {
		return "", errors.NewNetworkError(errors.ErrCodeMailSendFailed, "Malformed token response", err)
	}

	expiresIn := time.Duration(tok.ExpiresIn) * time.Second
	if tok.ExpiresIn == 0 {
		expiresIn = time.Hour
	}
	ttl := expiresIn - tokenExpiryMargin
	if ttl > 0 {
		g.tokens.Set("token", tok.AccessToken, ttl)
	}

	return tok.AccessToken, nil
}

type graphMessage struct {
	Message struct {
		Subject string `json:"subject"`
		Body    struct {
			ContentType string `json:"contentType"`
			Content     string `json:"content"`
		} `json:"body"`
		ToRecipients []graphRecipient `json:"toRecipients"`
		From         graphRecipient   `json:"from"`
	} `json:"message"`
	SaveToSentItems string `json:"saveToSentItems"`
}

type graphRecipient struct {
	EmailAddress struct {
		Address string `json:"address"`
	} `json:"emailAddress"`
}

func recipient(address string) graphRecipient {
	var r graphRecipient
	r.EmailAddress.Address = address
	return r
}

// Send delivers a plain-text message as the configured sender mailbox.
func (g *GraphSender) Send(ctx context.Context, to, subject, body string) error {
	token, err := g.token(ctx)
	if err != nil {
		return err
	}

	var msg graphMessage
	msg.Message.Subject = subject
	msg.Message.Body.ContentType = "Text"
	msg.Message.Body.Content = body
	msg.Message.ToRecipients = []graphRecipient{recipient(to)}
	msg.Message.From = recipient(g.cfg.Sender)
	msg.SaveToSentItems = "true"

	payload, err := json.Marshal(msg)
	if err != nil {
		return errors.NewInternalError(errors.ErrCodeMailSendFailed, "Failed to encode mail payload", err)
	}

	sendURL := fmt.Sprintf("%s/v1.0/users/%s/sendMail", g.graphBase, g.cfg.Sender)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendURL, bytes.NewReader(payload))
	if err != nil {
		return errors.NewNetworkError(errors.ErrCodeMailSendFailed, "Failed to build sendMail request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return errors.NewNetworkError(errors.ErrCodeMailSendFailed, "sendMail request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(resp.Body)
		return errors.NewNetworkError(errors.ErrCodeMailSendFailed,
			fmt.Sprintf("Graph sendMail failed with status %d", resp.StatusCode), nil).
			WithContext("body", string(detail))
	}

	g.logger.Debug("Mail sent through Microsoft Graph", "to", to, "subject", subject)
	return nil
}
