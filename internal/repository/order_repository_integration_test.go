//go:build integration

package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tribelet/kit-service/internal/domain/model"
)

func samplePayload(orderID string) *model.OrderPayload {
	return &model.OrderPayload{
		OrderID:       orderID,
		CustomerEmail: "buyer@example.com",
		CustomerName:  "Sam Buyer",
		KitType:       model.KitPolo,
		TeamwearColor: "navy",
		EmblemColor:   "white",
		TeamName:      "Thunder Bolts",
		Quantities:    model.OrderLine{"M": 2, "L": 1},
		Subtotal:      75.00,
		Tax:           7.50,
		Total:         82.50,
	}
}

func TestOrderRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, samplePayload("TBL-ABC123XYZ")))

	doc, err := repo.FindByOrderID(ctx, "TBL-ABC123XYZ")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "TBL-ABC123XYZ", doc.OrderID)
	assert.Equal(t, "navy", doc.Payload.TeamwearColor)
	assert.Equal(t, 82.50, doc.Payload.Total)
	assert.False(t, doc.PlacedAt.IsZero())
}

func TestOrderRepository_FindByOrderID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)

	doc, err := repo.FindByOrderID(context.Background(), "TBL-NOPE00000")
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestOrderRepository_Save_DuplicateOrderIDRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, samplePayload("TBL-DUP000000")))
	assert.Error(t, repo.Save(ctx, samplePayload("TBL-DUP000000")))
}

func TestOrderRepository_ListRecent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Save(ctx, samplePayload(fmt.Sprintf("TBL-ORDER000%d", i))))
	}

	docs, err := repo.ListRecent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, docs, 3)
}
