package entities

import (
	"strings"
)

// Visibility classifies an immediate child directory of a repository root.
type Visibility string

const (
	// VisibilityHidden marks directories whose name starts with ".".
	VisibilityHidden Visibility = "hidden"
	// VisibilityPrivate marks directories whose name starts with "_".
	VisibilityPrivate Visibility = "private"
	// VisibilityReserved marks directories whose name is reserved for
	// test suites (e.g. "tests").
	VisibilityReserved Visibility = "reserved"
	// VisibilityPublic marks directories eligible for sharing.
	VisibilityPublic Visibility = "public"
)

// CandidateDirectory is one immediate child directory of a repository root,
// tagged with its visibility.
type CandidateDirectory struct {
	Name       string
	Visibility Visibility
}

// ClassifyDirectory returns the visibility of a single child directory name.
// Hidden and private prefixes win over the reserved-name check.
func ClassifyDirectory(name string, reserved []string) Visibility {
	switch {
	case strings.HasPrefix(name, "."):
		return VisibilityHidden
	case strings.HasPrefix(name, "_"):
		return VisibilityPrivate
	}
	for _, r := range reserved {
		if name == r {
			return VisibilityReserved
		}
	}
	return VisibilityPublic
}

// ClassifyDirectories classifies a list of child directory names, preserving
// their order.
func ClassifyDirectories(names []string, reserved []string) []CandidateDirectory {
	candidates := make([]CandidateDirectory, 0, len(names))
	for _, name := range names {
		candidates = append(candidates, CandidateDirectory{
			Name:       name,
			Visibility: ClassifyDirectory(name, reserved),
		})
	}
	return candidates
}

// LocatePublicDirectory returns the name of the single public candidate.
// Zero or multiple public candidates violate the narrow-scope precondition
// and yield a *DirectoryResolutionError listing the offending names; the
// input repo has to be restructured before the tool can be used on it.
func LocatePublicDirectory(repoPath string, candidates []CandidateDirectory) (string, error) {
	var public []string
	for _, c := range candidates {
		if c.Visibility == VisibilityPublic {
			public = append(public, c.Name)
		}
	}

	if len(public) != 1 {
		return "", &DirectoryResolutionError{RepoPath: repoPath, Candidates: public}
	}
	return public[0], nil
}
