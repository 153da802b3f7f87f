package cli

import (
	"context"
	"fmt"

	"resumescope/internal/common"
	"resumescope/internal/score"
	"resumescope/internal/types"

	"github.com/spf13/cobra"
)

var generalCmd = &cobra.Command{
	Use:   "score-general [resume-file]",
	Short: "Score a resume against the general rubric",
	Long: `Score a resume against the general (non-technical) rubric, which
weighs presentation, contact details, education, experience and other
criteria that apply to any profession.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if generalConfig.OutputFormat == "" {
			generalConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(generalConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runGeneral,
}

var generalConfig common.CommandConfig
var generalOpts types.ScoreOptions

func init() {
	generalCmd.Flags().StringVarP(&generalConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	generalCmd.Flags().StringVar(&generalConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	generalCmd.Flags().StringVar(&generalConfig.ChartFile, "chart", "", "Write the category pie chart PNG to this file")
	generalCmd.Flags().StringVar(&generalOpts.DesiredRole, "role", "", "Desired role, used for certification suggestions")

	// Add completion for format flag
	_ = generalCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runGeneral(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	scorer, err := score.NewService(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create scoring service: %w", err)
	}

	opts := generalOpts
	opts.Chart = generalConfig.ChartFile != ""

	logDetails := func(filename string, size int, cmdCfg common.CommandConfig) {
		logger.Info("Starting general scoring",
			"filename", filename,
			"resume_bytes", size,
			"output_format", cmdCfg.OutputFormat)
	}

	scoreOperation := func(ctx context.Context, data []byte, filename string) (*types.Report, error) {
		return scorer.ScoreNonTechnical(ctx, data, filename, opts)
	}

	err = common.RunScoreCommand(
		cmd.Context(),
		logger,
		generalConfig,
		args[0],
		scoreOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}
	logger.Info("General scoring completed successfully")
	return nil
}
