//go:build integration

package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warelane/shipment-service/internal/domain/model"
)

func TestSettingsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewSettingsRepository(db)

	t.Run("missing company reports not found", func(t *testing.T) {
		_, err := repo.GetByCompany(ctx, "company-without-settings")
		assert.ErrorIs(t, err, ErrSettingsNotFound)
	})

	t.Run("create then read back", func(t *testing.T) {
		companyID := "company-settings-1"
		created, err := repo.Create(ctx, model.DefaultShipmentSettings(companyID, time.Now()))
		require.NoError(t, err)
		assert.False(t, created.ID.IsZero())

		got, err := repo.GetByCompany(ctx, companyID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.True(t, got.AllowPartialRelease)
		assert.Equal(t, 1, got.PartialReleaseMin)
	})

	t.Run("second create returns the existing document", func(t *testing.T) {
		companyID := "company-settings-2"
		first, err := repo.Create(ctx, model.DefaultShipmentSettings(companyID, time.Now()))
		require.NoError(t, err)

		second, err := repo.Create(ctx, model.DefaultShipmentSettings(companyID, time.Now()))
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("concurrent first use converges on one document", func(t *testing.T) {
		companyID := "company-settings-race"

		const writers = 8
		var wg sync.WaitGroup
		results := make(chan *model.ShipmentSettings, writers)
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				settings, err := repo.Create(ctx, model.DefaultShipmentSettings(companyID, time.Now()))
				assert.NoError(t, err)
				results <- settings
			}()
		}
		wg.Wait()
		close(results)

		var winner *model.ShipmentSettings
		for settings := range results {
			require.NotNil(t, settings)
			if winner == nil {
				winner = settings
				continue
			}
			assert.Equal(t, winner.ID, settings.ID)
		}
	})
}
