package core

import (
	"fmt"
	"path/filepath"
	"strings"
)

// validateName checks the length constraints of a stored name.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrInvalidName, len(name), MaxNameLength)
	}
	return nil
}

// unsafeReason describes why name cannot be restored as a plain file inside
// an output directory, or returns "" for a safe name. Pack and Unpack share
// it so everything Pack stores can be extracted again.
func unsafeReason(name string) string {
	switch {
	case name == "." || name == "..":
		return "is a directory reference"
	case strings.ContainsAny(name, "/\\\x00"):
		return "contains a path separator or NUL"
	case filepath.IsAbs(name) || filepath.VolumeName(name) != "":
		return "is an absolute path"
	}
	return ""
}

// baseName resolves the name an input file is stored under.
func baseName(path string) (string, error) {
	name := filepath.Base(path)
	if name == string(filepath.Separator) {
		return "", fmt.Errorf("%w: %q has no file name", ErrInvalidName, path)
	}
	if err := validateName(name); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	if reason := unsafeReason(name); reason != "" {
		return "", fmt.Errorf("%w: %q %s", ErrInvalidName, name, reason)
	}
	return name, nil
}

// checkExtractName rejects stored names that would escape the output
// directory or could not be created as a plain file in it.
func checkExtractName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if reason := unsafeReason(name); reason != "" {
		return fmt.Errorf("%w: %q %s", ErrUnsafeName, name, reason)
	}
	return nil
}
