package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"pharmatrade/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawAmountUnmarshal(t *testing.T) {
	tests := []struct {
		body string
		want RawAmount
	}{
		{body: `{"total_value_usd": "1,250.00"}`, want: "1,250.00"},
		{body: `{"total_value_usd": 1250.5}`, want: "1250.5"},
		{body: `{"total_value_usd": 12}`, want: "12"},
		{body: `{"total_value_usd": null}`, want: ""},
		{body: `{}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var p ShipmentPayload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))
			assert.Equal(t, tt.want, p.TotalValueUSD)
		})
	}

	var p ShipmentPayload
	assert.Error(t, json.Unmarshal([]byte(`{"total_value_usd": true}`), &p))
}

func newShipmentService(repo *fakeShipmentRepo) (ShipmentService, *fakeTxManager, *fakeInvalidator, *fakePublisher) {
	tx := &fakeTxManager{}
	inv := &fakeInvalidator{}
	pub := &fakePublisher{}
	return NewShipmentService(repo, tx, inv, pub), tx, inv, pub
}

func TestImportShipments(t *testing.T) {
	repo := &fakeShipmentRepo{}
	svc, tx, inv, pub := newShipmentService(repo)

	res, err := svc.ImportShipments(context.Background(), ImportShipmentsRequest{Shipments: []ShipmentPayload{
		{SupplierName: "Cipla Ltd", BuyerName: "Foo Inc", CountryOfDestination: "USA", TotalValueUSD: "100"},
		{SupplierName: "Lupin Ltd", BuyerName: "N/A", CountryOfDestination: "UK", TotalValueUSD: "abc"},
	}})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Inserted)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 1, inv.calls)
	require.Len(t, repo.created, 2)
	assert.Equal(t, "abc", repo.created[1].TotalValueUSD)

	require.Len(t, pub.events, 1)
	assert.Equal(t, EventShipmentsImported, pub.events[0].name)
	assert.Equal(t, map[string]interface{}{"inserted": 2}, pub.events[0].data)
}

func TestImportShipmentsValidation(t *testing.T) {
	svc, tx, inv, pub := newShipmentService(&fakeShipmentRepo{})

	_, err := svc.ImportShipments(context.Background(), ImportShipmentsRequest{})
	assert.ErrorIs(t, err, ErrInvalidImport)

	_, err = svc.ImportShipments(context.Background(), ImportShipmentsRequest{
		Shipments: make([]ShipmentPayload, MaxImportBatch+1),
	})
	assert.ErrorIs(t, err, ErrInvalidImport)
	assert.True(t, IsBadRequest(err))

	assert.Zero(t, tx.calls)
	assert.Zero(t, inv.calls)
	assert.Empty(t, pub.events)
}

func TestImportShipmentsStoreFailure(t *testing.T) {
	svc, _, inv, pub := newShipmentService(&fakeShipmentRepo{err: errors.New("disk full")})

	_, err := svc.ImportShipments(context.Background(), ImportShipmentsRequest{
		Shipments: []ShipmentPayload{{SupplierName: "Cipla Ltd"}},
	})
	require.Error(t, err)
	assert.False(t, IsBadRequest(err))
	assert.Zero(t, inv.calls)
	assert.Empty(t, pub.events)
}

func TestListShipments(t *testing.T) {
	repo := &fakeShipmentRepo{shipments: []model.Shipment{
		{SupplierName: "A"}, {SupplierName: "B"}, {SupplierName: "C"},
	}}
	svc, _, _, _ := newShipmentService(repo)

	page, total, err := svc.ListShipments(context.Background(), 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 1)
	assert.Equal(t, "C", page[0].SupplierName)

	page, _, err = svc.ListShipments(context.Background(), 9, 2)
	require.NoError(t, err)
	assert.NotNil(t, page)
	assert.Empty(t, page)
}
