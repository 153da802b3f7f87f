package cli

import (
	"context"
	"fmt"

	"resumescope/internal/common"
	"resumescope/internal/score"
	"resumescope/internal/types"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [resume-file]",
	Short: "Score a technical resume",
	Long: `Score a resume against the technical rubric. The resume may be a PDF,
DOCX or plain-text file. GitHub and LeetCode usernames are detected from
links in the resume, or can be supplied explicitly. Signal fetches that
fail degrade to zero rather than failing the run.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if scoreConfig.OutputFormat == "" {
			scoreConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(scoreConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScore,
}

var scoreConfig common.CommandConfig
var scoreOpts types.ScoreOptions

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	scoreCmd.Flags().StringVar(&scoreConfig.ChartFile, "chart", "", "Write the category pie chart PNG to this file")
	scoreCmd.Flags().StringVar(&scoreOpts.GitHubUser, "github", "", "GitHub username (overrides detection from resume links)")
	scoreCmd.Flags().StringVar(&scoreOpts.LeetCodeUser, "leetcode", "", "LeetCode username (overrides detection from resume links)")
	scoreCmd.Flags().StringVar(&scoreOpts.DesiredRole, "role", "", "Desired role, used for certification suggestions")
	scoreCmd.Flags().StringSliceVar(&scoreOpts.DomainKeywords, "keywords", nil, "Domain keywords to match against GitHub repositories")

	// Add completion for format flag
	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	scorer, err := score.NewService(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create scoring service: %w", err)
	}

	opts := scoreOpts
	opts.Chart = scoreConfig.ChartFile != ""

	logDetails := func(filename string, size int, cmdCfg common.CommandConfig) {
		logger.Info("Starting technical scoring",
			"filename", filename,
			"resume_bytes", size,
			"output_format", cmdCfg.OutputFormat)
	}

	scoreOperation := func(ctx context.Context, data []byte, filename string) (*types.Report, error) {
		return scorer.ScoreTechnical(ctx, data, filename, opts)
	}

	err = common.RunScoreCommand(
		cmd.Context(),
		logger,
		scoreConfig,
		args[0],
		scoreOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}
	logger.Info("Technical scoring completed successfully")
	return nil
}
