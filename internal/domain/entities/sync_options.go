package entities

import (
	"fmt"
)

const bytesPerGigabyte = 1073741824

// OverwritePolicy controls what happens when the destination directory
// already exists in the output repo.
type OverwritePolicy string

const (
	// OverwriteMerge overlays the copy onto the existing directory,
	// overwriting files that collide (the `cp -R` behavior).
	OverwriteMerge OverwritePolicy = "merge"
	// OverwriteFail aborts the copy if the destination already exists.
	OverwriteFail OverwritePolicy = "fail"
	// OverwriteReplace removes the existing destination before copying.
	OverwriteReplace OverwritePolicy = "replace"
)

// ParseOverwritePolicy validates a policy string from config or flags.
func ParseOverwritePolicy(raw string) (OverwritePolicy, error) {
	switch OverwritePolicy(raw) {
	case OverwriteMerge, OverwriteFail, OverwriteReplace:
		return OverwritePolicy(raw), nil
	default:
		return "", fmt.Errorf(
			"invalid overwrite policy %q (expected merge, fail, or replace)", raw,
		)
	}
}

// GigabytesToBytes converts a fractional gigabyte ceiling to whole bytes.
func GigabytesToBytes(gigabytes float64) int64 {
	return int64(gigabytes * bytesPerGigabyte)
}

// SyncOptions holds runtime options for a sync run.
type SyncOptions struct {
	InputRepo           string
	OutputRepo          string
	DryRun              bool
	Verbose             bool
	MaxGigabytes        float64
	ReservedDirectories []string
	RequirementsFile    string
	OverwritePolicy     OverwritePolicy
	Commit              bool
	CommitMessage       string
}

// CheckOptions holds runtime options for the validation-only mode.
type CheckOptions struct {
	RepoDir             string
	MaxGigabytes        float64
	ReservedDirectories []string
}
