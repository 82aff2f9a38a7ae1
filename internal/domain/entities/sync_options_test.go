//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psessford/srcsync/internal/domain/entities"
)

func TestParseOverwritePolicy(t *testing.T) {
	t.Parallel()

	t.Run("should accept the three known policies", func(t *testing.T) {
		t.Parallel()

		// given
		raws := []string{"merge", "fail", "replace"}

		// when / then
		for _, raw := range raws {
			policy, err := entities.ParseOverwritePolicy(raw)
			require.NoError(t, err, "raw: %s", raw)
			assert.Equal(t, entities.OverwritePolicy(raw), policy)
		}
	})

	t.Run("should reject anything else", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "clobber"

		// when
		_, err := entities.ParseOverwritePolicy(raw)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "clobber")
	})
}

func TestGigabytesToBytes(t *testing.T) {
	t.Parallel()

	t.Run("should convert the default ceiling to roughly one megabyte", func(t *testing.T) {
		t.Parallel()

		// given
		gigabytes := 0.001

		// when
		bytes := entities.GigabytesToBytes(gigabytes)

		// then
		assert.Equal(t, int64(1073741), bytes)
	})

	t.Run("should convert whole gigabytes exactly", func(t *testing.T) {
		t.Parallel()

		// given
		gigabytes := 2.0

		// when
		bytes := entities.GigabytesToBytes(gigabytes)

		// then
		assert.Equal(t, int64(2147483648), bytes)
	})
}
