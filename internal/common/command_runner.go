package common

import (
	"context"
	"fmt"

	"resumescope/internal/errors"
	"resumescope/internal/types"
)

// ScoreOperationFunc runs a scoring operation against resume file bytes.
type ScoreOperationFunc func(ctx context.Context, data []byte, filename string) (*types.Report, error)

// LogDetailsFunc logs the start of an operation.
type LogDetailsFunc func(filename string, size int, cfg CommandConfig)

// RunScoreCommand encapsulates the common logic for file-based CLI commands:
// read the resume, run the scoring operation, format and write the report.
func RunScoreCommand(
	ctx context.Context,
	logger *errors.Logger,
	cmdConfig CommandConfig,
	resumePath string,
	scoreOperation ScoreOperationFunc,
	logDetails LogDetailsFunc,
) error {
	fileProcessor := NewFileProcessor(logger)
	outputHandler := NewOutputHandler(logger)

	data, filename, err := fileProcessor.ValidateAndReadResume(resumePath)
	if err != nil {
		return err
	}

	logDetails(filename, len(data), cmdConfig)

	report, err := scoreOperation(ctx, data, filename)
	if err != nil {
		return err
	}

	if err := outputHandler.HandleOutput(report, cmdConfig); err != nil {
		return err
	}

	if len(report.ChartPNG) > 0 && cmdConfig.ChartFile != "" {
		if err := fileProcessor.WriteBinaryFile(cmdConfig.ChartFile, report.ChartPNG); err != nil {
			return err
		}
		logger.Info("Chart written", "file", cmdConfig.ChartFile)
	}

	return nil
}

// ValidateRubric checks a rubric name against the known rubrics.
func ValidateRubric(rubric string) error {
	switch types.Rubric(rubric) {
	case types.RubricTechnical, types.RubricNonTechnical:
		return nil
	default:
		return fmt.Errorf("unknown rubric '%s' (expected %s or %s)",
			rubric, types.RubricTechnical, types.RubricNonTechnical)
	}
}
