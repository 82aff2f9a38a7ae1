//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/psessford/srcsync/internal/domain/entities"
)

// RequirementBuilder helps create test requirement declarations with a
// fluent interface.
type RequirementBuilder struct {
	*testkit.BaseBuilder
	name     string
	operator string
	version  string
}

// NewRequirementBuilder creates a new requirement builder with sensible defaults.
func NewRequirementBuilder() *RequirementBuilder {
	return &RequirementBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "requests",
		operator:    "==",
		version:     "2.0",
	}
}

// WithName sets the declared package name.
func (b *RequirementBuilder) WithName(name string) *RequirementBuilder {
	b.name = name
	return b
}

// WithOperator sets the version-constraint operator.
func (b *RequirementBuilder) WithOperator(operator string) *RequirementBuilder {
	b.operator = operator
	return b
}

// WithVersion sets the version constraint.
func (b *RequirementBuilder) WithVersion(version string) *RequirementBuilder {
	b.version = version
	return b
}

// Unversioned drops the version constraint, leaving a bare package name.
func (b *RequirementBuilder) Unversioned() *RequirementBuilder {
	b.operator = ""
	b.version = ""
	return b
}

// Build creates the requirement (satisfies testkit.Builder interface).
func (b *RequirementBuilder) Build() interface{} {
	return b.BuildRequirement()
}

// BuildRequirement creates the requirement with a concrete return type.
func (b *RequirementBuilder) BuildRequirement() entities.Requirement {
	if b.operator == "" {
		return entities.Requirement{Raw: b.name}
	}
	return entities.Requirement{
		Raw: fmt.Sprintf("%s%s%s", b.name, b.operator, b.version),
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RequirementBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "requests"
	b.operator = "=="
	b.version = "2.0"
	return b
}

// Clone creates a deep copy of the RequirementBuilder.
func (b *RequirementBuilder) Clone() testkit.Builder {
	return &RequirementBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		operator:    b.operator,
		version:     b.version,
	}
}
