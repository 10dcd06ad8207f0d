package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEquipment(t *testing.T) {
	t.Run("player and mixer present", func(t *testing.T) {
		err := ValidateEquipment([]Equipment{
			{ID: "p1", Category: CategoryPlayer},
			{ID: "m1", Category: CategoryMixer},
		})
		require.NoError(t, err)
	})

	t.Run("extras do not satisfy the invariant", func(t *testing.T) {
		err := ValidateEquipment([]Equipment{
			{ID: "p1", Category: CategoryPlayer},
			{ID: "e1", Category: CategoryExtra},
		})
		assert.ErrorIs(t, err, ErrMissingEquipment)
	})

	t.Run("missing player", func(t *testing.T) {
		err := ValidateEquipment([]Equipment{{ID: "m1", Category: CategoryMixer}})
		assert.ErrorIs(t, err, ErrMissingEquipment)
	})

	t.Run("empty list", func(t *testing.T) {
		assert.ErrorIs(t, ValidateEquipment(nil), ErrMissingEquipment)
	})
}

func TestHasCategory(t *testing.T) {
	items := []Equipment{
		{ID: "p1", Category: CategoryPlayer},
		{ID: "e1", Category: CategoryExtra},
	}

	assert.True(t, HasCategory(items, CategoryPlayer))
	assert.True(t, HasCategory(items, CategoryExtra))
	assert.False(t, HasCategory(items, CategoryMixer))
}
