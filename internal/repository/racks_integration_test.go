//go:build integration

package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/warelane/shipment-service/internal/domain/model"
)

func TestRacksRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewRacksRepository(db)
	companyID := "company-racks"

	t.Run("create and get by id", func(t *testing.T) {
		rack := &model.Rack{CompanyID: companyID, Code: "A-01", CapacityTotal: 10}
		require.NoError(t, repo.Create(ctx, rack))
		assert.False(t, rack.ID.IsZero())
		assert.Equal(t, model.RackStatusActive, rack.Status)

		got, err := repo.GetByID(ctx, companyID, rack.ID)
		require.NoError(t, err)
		assert.Equal(t, "A-01", got.Code)
		assert.Equal(t, 10, got.CapacityTotal)
		assert.Equal(t, 0, got.CapacityUsed)
	})

	t.Run("duplicate code per company is rejected", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &model.Rack{CompanyID: companyID, Code: "A-02", CapacityTotal: 5}))
		err := repo.Create(ctx, &model.Rack{CompanyID: companyID, Code: "A-02", CapacityTotal: 5})
		assert.ErrorIs(t, err, ErrDuplicateRackCode)
	})

	t.Run("same code in another company is fine", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &model.Rack{CompanyID: companyID, Code: "A-03", CapacityTotal: 5}))
		assert.NoError(t, repo.Create(ctx, &model.Rack{CompanyID: "other-company", Code: "A-03", CapacityTotal: 5}))
	})

	t.Run("get by id is company scoped", func(t *testing.T) {
		rack := &model.Rack{CompanyID: companyID, Code: "A-04", CapacityTotal: 5}
		require.NoError(t, repo.Create(ctx, rack))

		_, err := repo.GetByID(ctx, "other-company", rack.ID)
		assert.ErrorIs(t, err, ErrRackNotFound)
	})

	t.Run("list returns racks ordered by code", func(t *testing.T) {
		listCompany := "company-racks-list"
		require.NoError(t, repo.Create(ctx, &model.Rack{CompanyID: listCompany, Code: "B-02", CapacityTotal: 5}))
		require.NoError(t, repo.Create(ctx, &model.Rack{CompanyID: listCompany, Code: "B-01", CapacityTotal: 5}))

		racks, err := repo.List(ctx, listCompany)
		require.NoError(t, err)
		require.Len(t, racks, 2)
		assert.Equal(t, "B-01", racks[0].Code)
		assert.Equal(t, "B-02", racks[1].Code)
	})

	t.Run("reserve increments the counter while capacity holds", func(t *testing.T) {
		rack := &model.Rack{CompanyID: companyID, Code: "C-01", CapacityTotal: 10}
		require.NoError(t, repo.Create(ctx, rack))

		updated, err := repo.Reserve(ctx, companyID, rack.ID, 4)
		require.NoError(t, err)
		assert.Equal(t, 4, updated.CapacityUsed)

		updated, err = repo.Reserve(ctx, companyID, rack.ID, 6)
		require.NoError(t, err)
		assert.Equal(t, 10, updated.CapacityUsed)
	})

	t.Run("reserve beyond capacity is rejected", func(t *testing.T) {
		rack := &model.Rack{CompanyID: companyID, Code: "C-02", CapacityTotal: 3}
		require.NoError(t, repo.Create(ctx, rack))

		_, err := repo.Reserve(ctx, companyID, rack.ID, 4)
		assert.ErrorIs(t, err, ErrInsufficientCapacity)

		// The failed reservation must not move the counter.
		got, err := repo.GetByID(ctx, companyID, rack.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.CapacityUsed)
	})

	t.Run("reserve on an unknown rack reports not found", func(t *testing.T) {
		_, err := repo.Reserve(ctx, companyID, primitive.NewObjectID(), 1)
		assert.ErrorIs(t, err, ErrRackNotFound)
	})

	t.Run("concurrent reservations never oversell", func(t *testing.T) {
		rack := &model.Rack{CompanyID: companyID, Code: "C-03", CapacityTotal: 10}
		require.NoError(t, repo.Create(ctx, rack))

		const workers = 20
		var wg sync.WaitGroup
		results := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.Reserve(ctx, companyID, rack.ID, 1)
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		succeeded := 0
		for err := range results {
			if err == nil {
				succeeded++
			} else {
				assert.ErrorIs(t, err, ErrInsufficientCapacity)
			}
		}
		assert.Equal(t, 10, succeeded)

		got, err := repo.GetByID(ctx, companyID, rack.ID)
		require.NoError(t, err)
		assert.Equal(t, 10, got.CapacityUsed)
	})

	t.Run("free returns units and floors at zero", func(t *testing.T) {
		rack := &model.Rack{CompanyID: companyID, Code: "D-01", CapacityTotal: 10}
		require.NoError(t, repo.Create(ctx, rack))
		_, err := repo.Reserve(ctx, companyID, rack.ID, 5)
		require.NoError(t, err)

		updated, err := repo.Free(ctx, rack.ID, 3)
		require.NoError(t, err)
		assert.Equal(t, 2, updated.CapacityUsed)

		updated, err = repo.Free(ctx, rack.ID, 100)
		require.NoError(t, err)
		assert.Equal(t, 0, updated.CapacityUsed)
	})

	t.Run("free on an unknown rack reports not found", func(t *testing.T) {
		_, err := repo.Free(ctx, primitive.NewObjectID(), 1)
		assert.ErrorIs(t, err, ErrRackNotFound)
	})
}
