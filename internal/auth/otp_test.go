package auth

import (
	"context"
	"log/slog"
	"regexp"
	"sync"
	"testing"
	"time"

	"resumescope/internal/config"
	"resumescope/internal/errors"
	"resumescope/internal/types"
)

// captureSender records outgoing mail so tests can read codes back out.
type captureSender struct {
	mu   sync.Mutex
	sent []capturedMail
	err  error
}

type capturedMail struct {
	To      string
	Subject string
	Body    string
}

func (c *captureSender) Send(ctx context.Context, to, subject, body string) error {
	if c.err != nil {
		return c.err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, capturedMail{To: to, Subject: subject, Body: body})
	return nil
}

var otpPattern = regexp.MustCompile(`\b(\d{6})\b`)

func (c *captureSender) lastCode(t *testing.T) string {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.sent) == 0 {
		t.Fatal("no mail captured")
	}
	m := otpPattern.FindStringSubmatch(c.sent[len(c.sent)-1].Body)
	if m == nil {
		t.Fatalf("no OTP in body %q", c.sent[len(c.sent)-1].Body)
	}
	return m[1]
}

func newTestService(sender *captureSender) *Service {
	return NewService(config.AuthConfig{OTPTTL: 5 * time.Minute}, sender, errors.NewLogger(slog.LevelError))
}

func signup(t *testing.T, s *Service, sender *captureSender, email, mobile string) {
	t.Helper()
	req := types.SignupRequest{Email: email, Mobile: mobile}
	if err := s.StartSignup(context.Background(), req); err != nil {
		t.Fatalf("StartSignup: %v", err)
	}
	req.Code = sender.lastCode(t)
	if err := s.VerifySignup(req); err != nil {
		t.Fatalf("VerifySignup: %v", err)
	}
}

func TestSignupFlow(t *testing.T) {
	sender := &captureSender{}
	s := newTestService(sender)
	defer s.Close()

	signup(t, s, sender, "Alice@Example.com ", "+91 98765-43210")

	// Email is normalized before registration.
	if !s.IsRegistered("alice@example.com") {
		t.Error("expected normalized email to be registered")
	}
	if sender.sent[0].To != "alice@example.com" {
		t.Errorf("mail to = %q", sender.sent[0].To)
	}
}

func TestSignupWrongCode(t *testing.T) {
	sender := &captureSender{}
	s := newTestService(sender)
	defer s.Close()

	req := types.SignupRequest{Email: "bob@example.com", Mobile: "9876543210"}
	if err := s.StartSignup(context.Background(), req); err != nil {
		t.Fatalf("StartSignup: %v", err)
	}

	req.Code = "000000"
	err := s.VerifySignup(req)
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeInvalidOTP {
		t.Fatalf("expected INVALID_OTP, got %v", err)
	}

	// The stored code survives a wrong guess.
	req.Code = sender.lastCode(t)
	if err := s.VerifySignup(req); err != nil {
		t.Fatalf("VerifySignup with correct code: %v", err)
	}
}

func TestSignupCodeConsumedOnSuccess(t *testing.T) {
	sender := &captureSender{}
	s := newTestService(sender)
	defer s.Close()

	signup(t, s, sender, "carol@example.com", "9876543210")

	req := types.SignupRequest{Email: "carol@example.com", Mobile: "9876543210", Code: sender.lastCode(t)}
	err := s.VerifySignup(req)
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeOTPExpired {
		t.Fatalf("expected OTP_EXPIRED after consumption, got %v", err)
	}
}

func TestSignupAlreadyRegistered(t *testing.T) {
	sender := &captureSender{}
	s := newTestService(sender)
	defer s.Close()

	signup(t, s, sender, "dan@example.com", "9876543210")

	err := s.StartSignup(context.Background(), types.SignupRequest{Email: "dan@example.com", Mobile: "1112223333"})
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeAlreadyRegistered {
		t.Fatalf("expected ALREADY_REGISTERED, got %v", err)
	}
}

func TestSignupMissingFields(t *testing.T) {
	sender := &captureSender{}
	s := newTestService(sender)
	defer s.Close()

	if err := s.StartSignup(context.Background(), types.SignupRequest{Email: "x@example.com"}); err == nil {
		t.Error("expected error without mobile")
	}
	if err := s.StartSignup(context.Background(), types.SignupRequest{Mobile: "9876543210"}); err == nil {
		t.Error("expected error without email")
	}
}

func TestSignupMailFailureDropsCode(t *testing.T) {
	sender := &captureSender{err: errors.NewNetworkError(errors.ErrCodeMailSendFailed, "down", nil)}
	s := newTestService(sender)
	defer s.Close()

	req := types.SignupRequest{Email: "eve@example.com", Mobile: "9876543210"}
	if err := s.StartSignup(context.Background(), req); err == nil {
		t.Fatal("expected mail failure")
	}
	if s.otps.Len() != 0 {
		t.Error("code should not linger when delivery fails")
	}
}

func TestLoginFlow(t *testing.T) {
	sender := &captureSender{}
	s := newTestService(sender)
	defer s.Close()

	signup(t, s, sender, "fay@example.com", "9876543210")

	req := types.LoginRequest{Email: "FAY@example.com"}
	if err := s.StartLogin(context.Background(), req); err != nil {
		t.Fatalf("StartLogin: %v", err)
	}
	req.Code = sender.lastCode(t)

	user, err := s.VerifyLogin(req)
	if err != nil {
		t.Fatalf("VerifyLogin: %v", err)
	}
	if user.Email != "fay@example.com" {
		t.Errorf("user email = %q", user.Email)
	}
	if user.Mobile != "9876543210" {
		t.Errorf("user mobile = %q", user.Mobile)
	}
}

func TestLoginUnregistered(t *testing.T) {
	sender := &captureSender{}
	s := newTestService(sender)
	defer s.Close()

	err := s.StartLogin(context.Background(), types.LoginRequest{Email: "ghost@example.com"})
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeNotRegistered {
		t.Fatalf("expected NOT_REGISTERED, got %v", err)
	}
}

func TestLoginExpiredCode(t *testing.T) {
	sender := &captureSender{}
	s := NewService(config.AuthConfig{OTPTTL: time.Millisecond}, sender, errors.NewLogger(slog.LevelError))
	defer s.Close()

	// Register with a generous TTL store path by verifying quickly.
	req := types.SignupRequest{Email: "gus@example.com", Mobile: "9876543210"}
	if err := s.StartSignup(context.Background(), req); err != nil {
		t.Fatalf("StartSignup: %v", err)
	}
	req.Code = sender.lastCode(t)
	time.Sleep(10 * time.Millisecond)

	err := s.VerifySignup(req)
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeOTPExpired {
		t.Fatalf("expected OTP_EXPIRED, got %v", err)
	}
}

func TestGenerateOTPRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := generateOTP()
		if err != nil {
			t.Fatalf("generateOTP: %v", err)
		}
		if len(code) != 6 || code[0] == '0' {
			t.Fatalf("code %q outside [100000, 999999]", code)
		}
	}
}

func TestNormalizeMobile(t *testing.T) {
	if got := normalizeMobile("+91 (987) 654-3210"); got != "919876543210" {
		t.Errorf("normalizeMobile = %q", got)
	}
}
