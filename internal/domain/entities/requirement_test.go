//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psessford/srcsync/internal/domain/entities"
	"github.com/psessford/srcsync/test/domain/entitybuilders"
)

func TestRequirementName(t *testing.T) {
	t.Parallel()

	t.Run("should strip at the first version operator", func(t *testing.T) {
		t.Parallel()

		// given
		raws := []string{"foo>=1.0", "foo==1.0", "foo<2", "foo"}

		// when / then
		for _, raw := range raws {
			assert.Equal(t, "foo", entities.Requirement{Raw: raw}.Name(), "raw: %s", raw)
		}
	})

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		// given
		req := entities.Requirement{Raw: "  foo >= 1.0"}

		// when
		name := req.Name()

		// then
		assert.Equal(t, "foo", name)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		t.Parallel()

		// given
		req := entitybuilders.NewRequirementBuilder().
			WithName("six").WithOperator(">=").WithVersion("1.1").
			BuildRequirement()

		// when
		once := req.Name()
		twice := entities.Requirement{Raw: once}.Name()

		// then
		assert.Equal(t, once, twice)
	})

	t.Run("should return empty for a blank line", func(t *testing.T) {
		t.Parallel()

		// given
		req := entities.Requirement{Raw: "   "}

		// when
		name := req.Name()

		// then
		assert.Empty(t, name)
	})
}

func TestParseManifest(t *testing.T) {
	t.Parallel()

	t.Run("should preserve order and raw lines", func(t *testing.T) {
		t.Parallel()

		// given
		content := "requests==2.0\nsix==1.1\n"

		// when
		reqs := entities.ParseManifest(content)

		// then
		require.Len(t, reqs, 2)
		assert.Equal(t, "requests==2.0", reqs[0].Raw)
		assert.Equal(t, "six==1.1", reqs[1].Raw)
	})

	t.Run("should return nothing for empty content", func(t *testing.T) {
		t.Parallel()

		// given
		content := ""

		// when
		reqs := entities.ParseManifest(content)

		// then
		assert.Empty(t, reqs)
	})

	t.Run("should round-trip through RenderManifest", func(t *testing.T) {
		t.Parallel()

		// given
		content := "requests==2.0\nsix==1.1\n"

		// when
		rendered := entities.RenderManifest(entities.ParseManifest(content))

		// then
		assert.Equal(t, content, rendered)
	})

	t.Run("should keep a line without trailing newline", func(t *testing.T) {
		t.Parallel()

		// given
		content := "requests==2.0"

		// when
		reqs := entities.ParseManifest(content)

		// then
		require.Len(t, reqs, 1)
		assert.Equal(t, "requests==2.0", reqs[0].Raw)
	})
}

func TestMergeRequirements(t *testing.T) {
	t.Parallel()

	t.Run("should union by name with input-priority selection", func(t *testing.T) {
		t.Parallel()

		// given
		input := entities.ParseManifest("b==2.0\nc==3.0\n")
		output := entities.ParseManifest("a==1.0\nb==1.0\n")

		// when
		merged, added := entities.MergeRequirements(input, output)

		// then
		require.Len(t, added, 1)
		assert.Equal(t, "c==3.0", added[0].Raw)
		assert.Equal(t, []entities.Requirement{
			{Raw: "a==1.0"}, {Raw: "b==1.0"}, {Raw: "c==3.0"},
		}, merged)
	})

	t.Run("should treat differing operators as the same requirement", func(t *testing.T) {
		t.Parallel()

		// given
		input := []entities.Requirement{
			entitybuilders.NewRequirementBuilder().WithName("foo").WithOperator(">=").WithVersion("1.0").BuildRequirement(),
		}
		output := []entities.Requirement{
			entitybuilders.NewRequirementBuilder().WithName("foo").WithOperator("==").WithVersion("2.0").BuildRequirement(),
		}

		// when
		_, added := entities.MergeRequirements(input, output)

		// then
		assert.Empty(t, added)
	})

	t.Run("should be a no-op when every input name is declared", func(t *testing.T) {
		t.Parallel()

		// given
		input := entities.ParseManifest("a==1.0\n")
		output := entities.ParseManifest("a==0.9\nb==1.0\n")

		// when
		merged, added := entities.MergeRequirements(input, output)

		// then
		assert.Empty(t, added)
		assert.Equal(t, output, merged)
	})

	t.Run("should sort the merged manifest lexicographically", func(t *testing.T) {
		t.Parallel()

		// given
		input := entities.ParseManifest("zeta==1.0\nalpha==1.0\n")
		var output []entities.Requirement

		// when
		merged, added := entities.MergeRequirements(input, output)

		// then
		require.Len(t, added, 2)
		assert.Equal(t, "alpha==1.0", merged[0].Raw)
		assert.Equal(t, "zeta==1.0", merged[1].Raw)
	})

	t.Run("should never add blank lines as declarations", func(t *testing.T) {
		t.Parallel()

		// given
		input := entities.ParseManifest("\nrequests==2.0\n\n")
		output := entities.ParseManifest("six==1.1\n")

		// when
		_, added := entities.MergeRequirements(input, output)

		// then
		require.Len(t, added, 1)
		assert.Equal(t, "requests==2.0", added[0].Raw)
	})
}
