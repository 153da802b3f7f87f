// Package payments accepts manual payment-proof submissions. There is no
// gateway integration; candidates pay by UPI and upload a screenshot plus
// their resume, filed under the transaction reference for manual review.
package payments

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"resumescope/internal/errors"
	"resumescope/internal/types"
)

var plans = []types.PaymentPlan{
	{ID: 1, Name: "Applywizz Resume", Price: 499,
		Description: "Builds a resume with the highest ATS score."},
	{ID: 2, Name: "Resume + Profile Portfolio", Price: 999,
		Description: "Includes Resume building and a professional Portfolio Website."},
	{ID: 3, Name: "All-in-One Package", Price: 2999,
		Description: "Includes Resume, Portfolio, and applying to jobs on your behalf."},
}

// UTRs are bank transaction references, 10 to 30 alphanumerics.
var utrPattern = regexp.MustCompile(`^[A-Za-z0-9]{10,30}$`)

// Service files payment proofs on local disk.
type Service struct {
	storageDir string
	logger     *errors.Logger
}

func NewService(storageDir string, logger *errors.Logger) *Service {
	return &Service{storageDir: storageDir, logger: logger}
}

// Plans returns the purchasable packages.
func Plans() []types.PaymentPlan {
	out := make([]types.PaymentPlan, len(plans))
	copy(out, plans)
	return out
}

// PlanByID returns the plan with the given id.
func PlanByID(id int) (types.PaymentPlan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return types.PaymentPlan{}, false
}

// Submit validates and stores a payment proof under submissions/{utr}/.
func (s *Service) Submit(proof types.PaymentProof) (types.PaymentPlan, error) {
	plan, ok := PlanByID(proof.PlanID)
	if !ok {
		return types.PaymentPlan{}, errors.NewValidationError(errors.ErrCodeInvalidPlan,
			fmt.Sprintf("Unknown plan id %d", proof.PlanID), nil)
	}

	utr := strings.TrimSpace(proof.UTR)
	if !utrPattern.MatchString(utr) {
		return types.PaymentPlan{}, errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"UTR must be 10 to 30 alphanumeric characters", nil)
	}
	if len(proof.Screenshot) == 0 {
		return types.PaymentPlan{}, errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"Payment screenshot is required", nil)
	}

	dir := filepath.Join(s.storageDir, "submissions", utr)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return types.PaymentPlan{}, errors.NewIOError(errors.ErrCodeFileNotReadable,
			"Failed to create submission directory", err).WithContext("utr", utr)
	}

	shotName := safeName(proof.ScreenshotName, "screenshot.png")
	if err := os.WriteFile(filepath.Join(dir, shotName), proof.Screenshot, 0o644); err != nil {
		return types.PaymentPlan{}, errors.NewIOError(errors.ErrCodeFileNotReadable,
			"Failed to store screenshot", err).WithContext("utr", utr)
	}

	if len(proof.Resume) > 0 {
		resumeName := safeName(proof.ResumeName, "resume.pdf")
		if err := os.WriteFile(filepath.Join(dir, resumeName), proof.Resume, 0o644); err != nil {
			return types.PaymentPlan{}, errors.NewIOError(errors.ErrCodeFileNotReadable,
				"Failed to store resume", err).WithContext("utr", utr)
		}
	}

	s.logger.Info("Payment proof filed",
		"utr", utr,
		"plan", plan.Name,
		"name", proof.Name,
	)
	return plan, nil
}

// safeName strips any path components from an uploaded filename.
func safeName(name, fallback string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return fallback
	}
	return name
}
