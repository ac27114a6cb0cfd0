package rider_test

import (
	"testing"
	"time"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/rider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRider(t *testing.T) {
	t.Run("should create rider starting offline", func(t *testing.T) {
		r, err := rider.NewRider(kernel.NewUUID(), "Juma", "0754123456")

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, "Juma", r.Name())
		assert.Equal(t, "0754123456", r.Phone())
		assert.False(t, r.IsAvailable())
		assert.Nil(t, r.LastLocation())
	})

	t.Run("should reject blank name", func(t *testing.T) {
		_, err := rider.NewRider(kernel.NewUUID(), "  ", "0754123456")

		require.Error(t, err)
	})

	t.Run("should reject missing or malformed phone", func(t *testing.T) {
		for _, phone := range []string{"", "  ", "not-a-phone", "0754 123"} {
			_, err := rider.NewRider(kernel.NewUUID(), "Juma", phone)
			require.Error(t, err, "phone %q", phone)
		}
	})

	t.Run("should accept E.164 phone", func(t *testing.T) {
		r, err := rider.NewRider(kernel.NewUUID(), "Juma", "+255754123456")

		require.NoError(t, err)
		assert.Equal(t, "+255754123456", r.Phone())
	})
}

func TestRider_Availability(t *testing.T) {
	t.Run("should toggle availability", func(t *testing.T) {
		r, err := rider.NewRider(kernel.NewUUID(), "Juma", "0754123456")
		require.NoError(t, err)

		r.GoOnline()
		assert.True(t, r.IsAvailable())

		r.GoOffline()
		assert.False(t, r.IsAvailable())
	})
}

func TestRider_ReportLocation(t *testing.T) {
	t.Run("should record the last sample", func(t *testing.T) {
		r, err := rider.NewRider(kernel.NewUUID(), "Juma", "0754123456")
		require.NoError(t, err)
		point, err := kernel.NewGeoPoint(-6.7924, 39.2083)
		require.NoError(t, err)
		reportedAt := time.Now().UTC()

		require.NoError(t, r.ReportLocation(point, reportedAt))

		sample := r.LastLocation()
		require.NotNil(t, sample)
		assert.True(t, sample.Point.IsEqual(point))
		assert.Equal(t, reportedAt, sample.ReportedAt)
	})

	t.Run("should reject unconstructed point", func(t *testing.T) {
		r, err := rider.NewRider(kernel.NewUUID(), "Juma", "0754123456")
		require.NoError(t, err)

		require.Error(t, r.ReportLocation(kernel.GeoPoint{}, time.Now()))
		assert.Nil(t, r.LastLocation())
	})
}

func TestRider_IsStale(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should treat riders without reports as stale", func(t *testing.T) {
		r, err := rider.NewRider(kernel.NewUUID(), "Juma", "0754123456")
		require.NoError(t, err)

		assert.True(t, r.IsStale(now, 5*time.Minute))
	})

	t.Run("should compare report age against the threshold", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(-6.7924, 39.2083)
		require.NoError(t, err)

		r, err := rider.NewRider(kernel.NewUUID(), "Juma", "0754123456")
		require.NoError(t, err)
		require.NoError(t, r.ReportLocation(point, now.Add(-2*time.Minute)))

		assert.False(t, r.IsStale(now, 5*time.Minute))
		assert.True(t, r.IsStale(now, time.Minute))
	})
}

func TestRestoreRider(t *testing.T) {
	t.Run("should restore availability and last location", func(t *testing.T) {
		id := kernel.NewUUID()
		point, err := kernel.NewGeoPoint(-6.7924, 39.2083)
		require.NoError(t, err)
		sample := &rider.LocationSample{Point: point, ReportedAt: time.Now().UTC()}

		r, err := rider.RestoreRider(id, "Juma", "+255754123456", true, sample)

		require.NoError(t, err)
		assert.True(t, r.IsAvailable())
		require.NotNil(t, r.LastLocation())
		assert.True(t, r.LastLocation().Point.IsEqual(point))
	})
}
