package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"strings"
	"testing"

	"resumescope/internal/config"
	"resumescope/internal/errors"
)

func testLogger() *errors.Logger {
	return errors.NewLogger(slog.LevelError)
}

func TestNewSenderDispatch(t *testing.T) {
	tests := []struct {
		provider string
		wantErr  bool
	}{
		{"graph", false},
		{"smtp", false},
		{"none", false},
		{"", false},
		{"pigeon", true},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			s, err := NewSender(config.MailConfig{Provider: tt.provider}, testLogger())
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error for unknown provider")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSender: %v", err)
			}
			if s == nil {
				t.Fatal("expected a sender")
			}
		})
	}
}

func TestLogSender(t *testing.T) {
	s, err := NewSender(config.MailConfig{Provider: "none"}, testLogger())
	if err != nil {
		t.Fatalf("NewSender: %v", err)
	}
	if err := s.Send(context.Background(), "a@example.com", "Hi", "Body"); err != nil {
		t.Fatalf("Send: %v", err)
	}
}

func TestGraphSenderSend(t *testing.T) {
	var tokenCalls, sendCalls int

	login := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		if got, want := r.URL.Path, "/test-tenant/oauth2/v2.0/token"; got != want {
			t.Errorf("token path = %q, want %q", got, want)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		if got := r.Form.Get("grant_type"); got != "client_credentials" {
			t.Errorf("grant_type = %q", got)
		}
		if got := r.Form.Get("scope"); got != "https://graph.microsoft.com/.default" {
			t.Errorf("scope = %q", got)
		}
		fmt.Fprint(w, `{"access_token":"tok-123","expires_in":3600}`)
	}))
	defer login.Close()

	graph := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sendCalls++
		if got, want := r.URL.Path, "/v1.0/users/noreply@example.com/sendMail"; got != want {
			t.Errorf("sendMail path = %q, want %q", got, want)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("Authorization = %q", got)
		}

		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("payload: %v", err)
		}
		if payload["saveToSentItems"] != "true" {
			t.Errorf("saveToSentItems = %v", payload["saveToSentItems"])
		}
		msg := payload["message"].(map[string]any)
		if msg["subject"] != "Your OTP" {
			t.Errorf("subject = %v", msg["subject"])
		}
		mailBody := msg["body"].(map[string]any)
		if mailBody["contentType"] != "Text" {
			t.Errorf("contentType = %v", mailBody["contentType"])
		}

		w.WriteHeader(http.StatusAccepted)
	}))
	defer graph.Close()

	s := NewGraphSender(config.GraphMailConfig{
		TenantID:     "test-tenant",
		ClientID:     "client",
		ClientSecret: "secret",
		Sender:       "noreply@example.com",
	}, testLogger())
	s.loginBase = login.URL
	s.graphBase = graph.URL

	ctx := context.Background()
	if err := s.Send(ctx, "user@example.com", "Your OTP", "Your OTP is 123456."); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if err := s.Send(ctx, "user@example.com", "Your OTP", "Your OTP is 654321."); err != nil {
		t.Fatalf("second Send: %v", err)
	}

	if tokenCalls != 1 {
		t.Errorf("token endpoint called %d times, want 1 (cached)", tokenCalls)
	}
	if sendCalls != 2 {
		t.Errorf("sendMail called %d times, want 2", sendCalls)
	}
}

func TestGraphSenderSendFailure(t *testing.T) {
	login := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"access_token":"tok","expires_in":3600}`)
	}))
	defer login.Close()

	graph := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":{"code":"ErrorAccessDenied"}}`)
	}))
	defer graph.Close()

	s := NewGraphSender(config.GraphMailConfig{TenantID: "t", Sender: "x@example.com"}, testLogger())
	s.loginBase = login.URL
	s.graphBase = graph.URL

	err := s.Send(context.Background(), "user@example.com", "Hi", "Body")
	if err == nil {
		t.Fatal("expected error on 403")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeMailSendFailed {
		t.Errorf("code = %q", appErr.Code)
	}
}

func TestGraphSenderTokenFailure(t *testing.T) {
	login := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"invalid_client"}`)
	}))
	defer login.Close()

	s := NewGraphSender(config.GraphMailConfig{TenantID: "t", Sender: "x@example.com"}, testLogger())
	s.loginBase = login.URL

	if err := s.Send(context.Background(), "user@example.com", "Hi", "Body"); err == nil {
		t.Fatal("expected error when token request fails")
	}
}

func TestSMTPSender(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	s := NewSMTPSender(config.SMTPConfig{
		Host: "mail.example.com",
		Port: 587,
		From: "noreply@example.com",
	}, testLogger())
	s.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	if err := s.Send(context.Background(), "user@example.com", "Hello", "Body text"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	if gotAddr != "mail.example.com:587" {
		t.Errorf("addr = %q", gotAddr)
	}
	if gotFrom != "noreply@example.com" {
		t.Errorf("from = %q", gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != "user@example.com" {
		t.Errorf("to = %v", gotTo)
	}
	if !strings.Contains(string(gotMsg), "Subject: Hello") {
		t.Errorf("message missing subject header: %q", gotMsg)
	}
}

func TestSMTPSenderFailure(t *testing.T) {
	s := NewSMTPSender(config.SMTPConfig{Host: "mail.example.com", Port: 25}, testLogger())
	s.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		return fmt.Errorf("connection refused")
	}

	if err := s.Send(context.Background(), "user@example.com", "Hi", "Body"); err == nil {
		t.Fatal("expected error")
	}
}
