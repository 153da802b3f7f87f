package cli

import (
	"fmt"
	"strings"

	"resumescope/internal/rubric"

	"github.com/spf13/cobra"
)

var certsLimit int

var certsCmd = &cobra.Command{
	Use:   "certs [role]",
	Short: "List certification suggestions for a role",
	Long: `List certification suggestions for a desired role. The role is matched
case-insensitively against known role families; unknown roles fall back
to a general set of certifications.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCerts,
}

func init() {
	certsCmd.Flags().IntVar(&certsLimit, "limit", 10, "Maximum number of suggestions to print")
}

func runCerts(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	role := strings.Join(args, " ")
	if certsLimit <= 0 {
		return fmt.Errorf("limit must be a positive number, got %d", certsLimit)
	}

	certs := rubric.SuggestRoleCertifications(role, certsLimit)
	logger.Debug("Resolved certification suggestions", "role", role, "count", len(certs))

	fmt.Printf("Certifications for %q:\n", role)
	for _, cert := range certs {
		fmt.Printf("  - %s\n", cert)
	}
	return nil
}
