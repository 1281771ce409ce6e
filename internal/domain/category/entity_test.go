//go:build unit

package category_test

import (
	"testing"

	"rentimade/internal/domain/category"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Run("explicit slug", func(t *testing.T) {
		c, err := category.NewCategory("Bridal Lehengas", "bridal-lehengas", 1)
		require.NoError(t, err)
		assert.Equal(t, "Bridal Lehengas", c.Name())
		assert.Equal(t, "bridal-lehengas", c.Slug())
	})

	t.Run("slug derived from name", func(t *testing.T) {
		c, err := category.NewCategory("Indo-Western Gowns", "", 2)
		require.NoError(t, err)
		assert.Equal(t, "indo-western-gowns", c.Slug())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := category.NewCategory("  ", "x", 0)
		require.ErrorIs(t, err, category.ErrEmptyName)
	})

	t.Run("bad slug rejected", func(t *testing.T) {
		_, err := category.NewCategory("Sarees", "Sarees!", 0)
		require.ErrorIs(t, err, category.ErrInvalidSlug)
	})
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Bridal Lehengas":    "bridal-lehengas",
		"  Indo-Western  ":   "indo-western",
		"Men's Sherwanis":    "men-s-sherwanis",
		"Sarees & Blouses":   "sarees-blouses",
		"UPPER case   Words": "upper-case-words",
	}
	for input, want := range cases {
		assert.Equal(t, want, category.Slugify(input), input)
	}
}
