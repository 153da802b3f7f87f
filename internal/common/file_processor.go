package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"resumescope/internal/errors"
	"resumescope/internal/utils"
)

// FileProcessor handles common file operations
type FileProcessor struct {
	logger *errors.Logger
}

// NewFileProcessor creates a new file processor instance
func NewFileProcessor(logger *errors.Logger) *FileProcessor {
	return &FileProcessor{logger: logger}
}

// ReadFileBytes reads raw content from a file with proper error handling
func (fp *FileProcessor) ReadFileBytes(filename string) ([]byte, error) {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewIOError(errors.ErrCodeFileNotFound,
				fmt.Sprintf("File not found: %s", filename), err)
		}
		return nil, errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("Cannot read file: %s", filename), err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			// Log the error but don't override the main operation result
			if fp.logger != nil {
				fp.logger.Warn("Failed to close file", "filename", filename, "error", err)
			}
		}
	}()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("Failed to read file content: %s", filename), err)
	}

	return content, nil
}

// WriteFile writes text content to a file with directory creation
func (fp *FileProcessor) WriteFile(filename, content string) error {
	return fp.WriteBinaryFile(filename, []byte(content))
}

// WriteBinaryFile writes raw content to a file with directory creation
func (fp *FileProcessor) WriteBinaryFile(filename string, content []byte) error {
	dir := filepath.Dir(filename)
	if dir != "." {
		err := os.MkdirAll(dir, 0750)
		if err != nil {
			return errors.NewIOError("DIRECTORY_CREATE_FAILED",
				fmt.Sprintf("Cannot create directory: %s", dir), err)
		}
	}

	err := os.WriteFile(filename, content, 0600)
	if err != nil {
		return errors.NewIOError("FILE_WRITE_FAILED",
			fmt.Sprintf("Cannot write file: %s", filename), err)
	}

	return nil
}

// ValidateAndReadResume validates a resume path and reads its content.
// Returns the bytes and the base filename, which carries the format hint.
func (fp *FileProcessor) ValidateAndReadResume(path string) ([]byte, string, error) {
	if err := utils.ValidateInputFile(path); err != nil {
		return nil, "", errors.NewValidationError("INVALID_INPUT_FILE",
			fmt.Sprintf("Invalid file %s", path), err)
	}

	if !utils.IsResumeFile(path) {
		if fp.logger != nil {
			fp.logger.Warn("File may not be a supported resume format",
				"filename", path)
		} else {
			fmt.Fprintf(os.Stderr, "Warning: %s may not be a supported resume format\n", path)
		}
	}

	content, err := fp.ReadFileBytes(path)
	if err != nil {
		return nil, "", err // Error already wrapped by ReadFileBytes
	}

	return content, filepath.Base(path), nil
}

// ValidateOutputFile validates output file path
func (fp *FileProcessor) ValidateOutputFile(filename string) error {
	if filename == "" {
		return nil // stdout is valid
	}

	if err := utils.ValidateOutputFile(filename); err != nil {
		return errors.NewValidationError("INVALID_OUTPUT_FILE",
			fmt.Sprintf("Invalid output file: %s", filename), err)
	}

	return nil
}
