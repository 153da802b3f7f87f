package payments

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"resumescope/internal/errors"
	"resumescope/internal/types"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(t.TempDir(), errors.NewLogger(slog.LevelError))
}

func TestSubmitStoresFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewService(dir, errors.NewLogger(slog.LevelError))

	plan, err := s.Submit(types.PaymentProof{
		Name:           "Alice Johnson",
		UTR:            "AXIS12345678",
		PlanID:         2,
		Screenshot:     []byte("png-bytes"),
		ScreenshotName: "proof.png",
		Resume:         []byte("pdf-bytes"),
		ResumeName:     "alice.pdf",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if plan.Name != "Resume + Profile Portfolio" || plan.Price != 999 {
		t.Errorf("plan = %+v", plan)
	}

	base := filepath.Join(dir, "submissions", "AXIS12345678")
	for _, name := range []string{"proof.png", "alice.pdf"} {
		if _, err := os.Stat(filepath.Join(base, name)); err != nil {
			t.Errorf("missing stored file %s: %v", name, err)
		}
	}
}

func TestSubmitWithoutResume(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Submit(types.PaymentProof{
		UTR:        "HDFC00998877",
		PlanID:     1,
		Screenshot: []byte("png"),
	}); err != nil {
		t.Fatalf("Submit without resume: %v", err)
	}
}

func TestSubmitInvalidPlan(t *testing.T) {
	s := newTestService(t)
	_, err := s.Submit(types.PaymentProof{UTR: "AXIS12345678", PlanID: 9, Screenshot: []byte("x")})
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeInvalidPlan {
		t.Fatalf("expected INVALID_PLAN, got %v", err)
	}
}

func TestSubmitInvalidUTR(t *testing.T) {
	s := newTestService(t)
	for _, utr := range []string{"", "short", "has spaces in it", "way-too-long-" + string(make([]byte, 40))} {
		if _, err := s.Submit(types.PaymentProof{UTR: utr, PlanID: 1, Screenshot: []byte("x")}); err == nil {
			t.Errorf("UTR %q accepted", utr)
		}
	}
}

func TestSubmitMissingScreenshot(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Submit(types.PaymentProof{UTR: "AXIS12345678", PlanID: 1}); err == nil {
		t.Fatal("expected error without screenshot")
	}
}

func TestSubmitStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	s := NewService(dir, errors.NewLogger(slog.LevelError))

	if _, err := s.Submit(types.PaymentProof{
		UTR:            "ICIC55667788",
		PlanID:         3,
		Screenshot:     []byte("png"),
		ScreenshotName: "../../escape.png",
	}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "submissions", "ICIC55667788", "escape.png")); err != nil {
		t.Errorf("sanitized file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "escape.png")); !os.IsNotExist(err) {
		t.Error("file escaped the submission directory")
	}
}

func TestPlans(t *testing.T) {
	got := Plans()
	if len(got) != 3 {
		t.Fatalf("len(Plans()) = %d", len(got))
	}
	want := map[int]int{1: 499, 2: 999, 3: 2999}
	for _, p := range got {
		if want[p.ID] != p.Price {
			t.Errorf("plan %d price = %d", p.ID, p.Price)
		}
	}
}
