package entities

import (
	"sort"
	"strings"
)

// versionOperators are the characters that start a version constraint in a
// requirements manifest line. Everything before the first occurrence is the
// declared package name.
const versionOperators = "=<>"

// Requirement is one line of a requirements manifest. Raw preserves the
// original text (without its trailing newline), including any version
// constraint and incidental whitespace.
type Requirement struct {
	Raw string
}

// Name returns the canonical package-name key of the declaration: the
// substring before the first version operator, whitespace-trimmed. Two
// declarations describe the same requirement iff their names are equal,
// regardless of version or operator.
func (r Requirement) Name() string {
	name := r.Raw
	if i := strings.IndexAny(name, versionOperators); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

// ParseManifest splits manifest content into an ordered requirement sequence.
// A trailing newline does not produce an empty final requirement.
func ParseManifest(content string) []Requirement {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	reqs := make([]Requirement, 0, len(lines))
	for _, line := range lines {
		reqs = append(reqs, Requirement{Raw: line})
	}
	return reqs
}

// RenderManifest is the inverse of ParseManifest: every requirement becomes
// one newline-terminated line.
func RenderManifest(reqs []Requirement) string {
	var b strings.Builder
	for _, r := range reqs {
		b.WriteString(r.Raw)
		b.WriteString("\n")
	}
	return b.String()
}

// MergeRequirements computes the set-union of two manifests keyed by package
// name. Input declarations whose name is not already declared in the output
// are the wanted additions (input order preserved); the merged result is the
// additions followed by the original output declarations, sorted
// lexicographically by raw line. Lines without a name (blank lines) never
// count as declarations. An empty added slice means the merge is a no-op.
func MergeRequirements(input, output []Requirement) (merged, added []Requirement) {
	outputNames := make(map[string]struct{}, len(output))
	for _, r := range output {
		if name := r.Name(); name != "" {
			outputNames[name] = struct{}{}
		}
	}

	for _, r := range input {
		name := r.Name()
		if name == "" {
			continue
		}
		if _, exists := outputNames[name]; !exists {
			added = append(added, r)
		}
	}

	if len(added) == 0 {
		return output, nil
	}

	merged = make([]Requirement, 0, len(added)+len(output))
	merged = append(merged, added...)
	merged = append(merged, output...)
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Raw < merged[j].Raw
	})
	return merged, added
}

// RequirementNames returns the canonical names of the given declarations,
// preserving order. Used for progress messages.
func RequirementNames(reqs []Requirement) []string {
	names := make([]string, 0, len(reqs))
	for _, r := range reqs {
		names = append(names, r.Name())
	}
	return names
}
