// Package auth implements the one-time-password onboarding flow. Accounts
// are identified by normalized email address and verified through a 6-digit
// code delivered over mail before any session is granted.
package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"resumescope/internal/config"
	"resumescope/internal/errors"
	"resumescope/internal/mail"
	"resumescope/internal/store"
	"resumescope/internal/types"
)

const defaultOTPTTL = 5 * time.Minute

// Service issues and verifies signup and login OTPs. Pending codes live in a
// TTL store so an unverified code simply ages out.
type Service struct {
	cfg    config.AuthConfig
	otps   *store.TTL[string]
	sender mail.Sender
	logger *errors.Logger

	mu    sync.RWMutex
	users map[string]types.User
}

func NewService(cfg config.AuthConfig, sender mail.Sender, logger *errors.Logger) *Service {
	if cfg.OTPTTL <= 0 {
		cfg.OTPTTL = defaultOTPTTL
	}
	return &Service{
		cfg:    cfg,
		otps:   store.NewTTL[string](time.Minute),
		sender: sender,
		logger: logger,
		users:  make(map[string]types.User),
	}
}

// Close releases the underlying code store.
func (s *Service) Close() {
	s.otps.Close()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeMobile(mobile string) string {
	var b strings.Builder
	for _, r := range mobile {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// generateOTP returns a uniformly random 6-digit code.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", errors.NewInternalError(errors.ErrCodeInvalidOTP, "Failed to generate OTP", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func signupKey(email, mobile string) string {
	return fmt.Sprintf("signup_otp:%s:%s", email, mobile)
}

func loginKey(email string) string {
	return fmt.Sprintf("login_otp:%s", email)
}

// StartSignup issues a signup OTP and mails it to the candidate address.
func (s *Service) StartSignup(ctx context.Context, req types.SignupRequest) error {
	email := normalizeEmail(req.Email)
	mobile := normalizeMobile(req.Mobile)
	if email == "" || mobile == "" {
		return errors.NewValidationError(errors.ErrCodeInvalidRequest, "Email and mobile are required", nil)
	}

	s.mu.RLock()
	_, exists := s.users[email]
	s.mu.RUnlock()
	if exists {
		return errors.NewValidationError(errors.ErrCodeAlreadyRegistered, "Account already exists", nil).
			WithContext("email", email)
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}
	s.otps.Set(signupKey(email, mobile), code, s.cfg.OTPTTL)

	body := fmt.Sprintf("Your OTP is %s. It will expire in %d minutes.", code, int(s.cfg.OTPTTL.Minutes()))
	if err := s.sender.Send(ctx, email, "Your ResumeScope Signup OTP", body); err != nil {
		s.otps.Delete(signupKey(email, mobile))
		return err
	}

	s.logger.Info("Signup OTP issued", "email", email)
	return nil
}

// VerifySignup checks the submitted code and registers the account. The
// stored code is consumed whether or not anything else succeeds afterwards.
func (s *Service) VerifySignup(req types.SignupRequest) error {
	email := normalizeEmail(req.Email)
	mobile := normalizeMobile(req.Mobile)
	key := signupKey(email, mobile)

	stored, ok := s.otps.Get(key)
	if !ok {
		return errors.NewValidationError(errors.ErrCodeOTPExpired, "OTP expired or never issued", nil)
	}
	if stored != strings.TrimSpace(req.Code) {
		return errors.NewValidationError(errors.ErrCodeInvalidOTP, "Incorrect OTP", nil)
	}
	s.otps.Delete(key)

	s.mu.Lock()
	s.users[email] = types.User{Email: email, Mobile: mobile}
	s.mu.Unlock()

	s.logger.Info("Account registered", "email", email)
	return nil
}

// StartLogin issues a login OTP for an existing account.
func (s *Service) StartLogin(ctx context.Context, req types.LoginRequest) error {
	email := normalizeEmail(req.Email)
	if email == "" {
		return errors.NewValidationError(errors.ErrCodeInvalidRequest, "Email is required", nil)
	}

	s.mu.RLock()
	_, exists := s.users[email]
	s.mu.RUnlock()
	if !exists {
		return errors.NewValidationError(errors.ErrCodeNotRegistered, "No account for this email", nil).
			WithContext("email", email)
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}
	s.otps.Set(loginKey(email), code, s.cfg.OTPTTL)

	body := fmt.Sprintf("Your OTP is %s. It will expire in %d minutes.", code, int(s.cfg.OTPTTL.Minutes()))
	if err := s.sender.Send(ctx, email, "Your ResumeScope Login OTP", body); err != nil {
		s.otps.Delete(loginKey(email))
		return err
	}

	s.logger.Info("Login OTP issued", "email", email)
	return nil
}

// VerifyLogin checks the submitted code and returns the account on success.
func (s *Service) VerifyLogin(req types.LoginRequest) (types.User, error) {
	email := normalizeEmail(req.Email)
	key := loginKey(email)

	stored, ok := s.otps.Get(key)
	if !ok {
		return types.User{}, errors.NewValidationError(errors.ErrCodeOTPExpired, "OTP expired or never issued", nil)
	}
	if stored != strings.TrimSpace(req.Code) {
		return types.User{}, errors.NewValidationError(errors.ErrCodeInvalidOTP, "Incorrect OTP", nil)
	}
	s.otps.Delete(key)

	s.mu.RLock()
	user, exists := s.users[email]
	s.mu.RUnlock()
	if !exists {
		return types.User{}, errors.NewValidationError(errors.ErrCodeNotRegistered, "No account for this email", nil)
	}

	s.logger.Info("Login verified", "email", email)
	return user, nil
}

// IsRegistered reports whether an account exists for the email.
func (s *Service) IsRegistered(email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[normalizeEmail(email)]
	return ok
}
