package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinates(t *testing.T) {
	t.Run("should accept bounds", func(t *testing.T) {
		for _, tc := range []struct{ lat, lon float64 }{
			{-90, -180}, {90, 180}, {0, 0}, {52.52, 13.405},
		} {
			c, err := kernel.NewCoordinates(tc.lat, tc.lon)

			require.NoError(t, err)
			require.NoError(t, c.Validate())
			assert.InDelta(t, tc.lat, c.Latitude(), 1e-9)
			assert.InDelta(t, tc.lon, c.Longitude(), 1e-9)
		}
	})

	t.Run("should reject out of range latitude", func(t *testing.T) {
		_, err := kernel.NewCoordinates(90.5, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "latitude")
	})

	t.Run("should report both invalid axes", func(t *testing.T) {
		_, err := kernel.NewCoordinates(-91, 181)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var c kernel.Coordinates
		assert.Equal(t, kernel.ErrCoordinatesAreNotConstructed, c.Validate())
	})
}
