//go:build unit

package review_test

import (
	"testing"
	"time"

	"rentimade/internal/domain/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()
	orderID := uuid.New()
	now := time.Now()

	t.Run("basic success case", func(t *testing.T) {
		actual, err := review.NewReview(uuid.Nil, userID, productID, orderID, 5, "Gorgeous fit, arrived on time", now)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, now, actual.CreatedAt())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.Equal(t, 5, actual.Rating().Value())
	})

	t.Run("rating validation", func(t *testing.T) {
		cases := []struct {
			name   string
			rating int
			errIs  error
		}{
			{name: "below minimum", rating: 0, errIs: review.ErrInvalidRating},
			{name: "minimum valid", rating: 1},
			{name: "maximum valid", rating: 5},
			{name: "above maximum", rating: 6, errIs: review.ErrInvalidRating},
			{name: "negative", rating: -1, errIs: review.ErrInvalidRating},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := review.NewReview(uuid.Nil, userID, productID, orderID, tc.rating, "fine", now)
				if tc.errIs == nil {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, tc.errIs)
				}
			})
		}
	})

	t.Run("comment validation", func(t *testing.T) {
		_, err := review.NewReview(uuid.Nil, userID, productID, orderID, 4, "   ", now)
		require.ErrorIs(t, err, review.ErrEmptyComment)

		long := make([]byte, review.MaxCommentLength+1)
		for i := range long {
			long[i] = 'a'
		}
		_, err = review.NewReview(uuid.Nil, userID, productID, orderID, 4, string(long), now)
		require.ErrorIs(t, err, review.ErrCommentTooLong)
	})

	t.Run("comment trimming", func(t *testing.T) {
		actual, err := review.NewReview(uuid.Nil, userID, productID, orderID, 4, "  Lovely blouse  ", now)
		require.NoError(t, err)
		assert.Equal(t, "Lovely blouse", actual.Comment().String())
	})
}
