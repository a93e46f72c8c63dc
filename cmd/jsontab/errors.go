package main

import (
	"errors"
	"fmt"

	"github.com/jsontab/jsontab/internal/loader"
)

// errSave marks failures while writing the -o output file.
var errSave = errors.New("saving output")

// userMessage turns an error into the single line printed to stderr,
// classified the way the converter has always reported failures.
func userMessage(path string, err error) string {
	switch {
	case errors.Is(err, loader.ErrFileNotFound):
		return fmt.Sprintf("Error: File '%s' does not exist.", path)
	case errors.Is(err, loader.ErrSyntax):
		return fmt.Sprintf("Error: Invalid JSON format - %v", err)
	case errors.Is(err, loader.ErrEmptyInput),
		errors.Is(err, loader.ErrNotRegular),
		errors.Is(err, loader.ErrTooLarge):
		return fmt.Sprintf("Error reading file: %v", err)
	case errors.Is(err, errSave):
		return fmt.Sprintf("Error %v", err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
