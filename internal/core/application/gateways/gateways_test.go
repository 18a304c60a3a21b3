package gateways_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"orders/internal/adapters/out/memory"
	"orders/internal/core/application/gateways"
	"orders/internal/core/application/result"
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T, price string, quantity int, note string) order.Item {
	t.Helper()
	m, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), m)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), p, quantity, note)
	require.NoError(t, err)
	return item
}

func newOrder(t *testing.T, status order.Status, items ...order.Item) *order.Order {
	t.Helper()
	createdAt, err := order.NewCreatedAt(time.Now().Add(-time.Minute))
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), createdAt, status, customer.NewDefaultCustomer(), items)
	require.NoError(t, err)
	return o
}

func assertSameOrder(t *testing.T, expected, actual *order.Order) {
	t.Helper()
	assert.True(t, expected.ID().IsEqual(actual.ID()))
	assert.Equal(t, expected.Status(), actual.Status())
	assert.True(t, expected.Customer().IsEqual(actual.Customer()))
	assert.True(t, expected.CreatedAt().Time().Equal(actual.CreatedAt().Time()))
	assert.True(t, expected.Total().IsEqual(actual.Total()))

	require.Len(t, actual.Items(), len(expected.Items()))
	for _, want := range expected.Items() {
		got, ok := actual.FindItem(want.ID())
		require.True(t, ok)
		assert.Equal(t, want.Quantity(), got.Quantity())
		assert.Equal(t, want.Note(), got.Note())
		assert.True(t, want.Value().IsEqual(got.Value()))
		assert.True(t, want.Product().ID().IsEqual(got.Product().ID()))
	}
}

func TestOrderRecordRoundTrip(t *testing.T) {
	o := newOrder(t, order.InPreparation, newItem(t, "9.90", 2, "extra cheese"), newItem(t, "4.00", 1, ""))

	record := gateways.OrderToRecord(o)
	restored, err := gateways.OrderFromRecord(record)

	require.NoError(t, err)
	assertSameOrder(t, o, restored)
	assert.Equal(t, 4, record.Status)
	assert.True(t, decimal.RequireFromString("19.80").Equal(record.Items[0].Value))
}

func TestOrderFromRecord_Invalid(t *testing.T) {
	record := gateways.OrderToRecord(newOrder(t, order.Started, newItem(t, "1.00", 1, "")))

	t.Run("unknown status", func(t *testing.T) {
		bad := record
		bad.Status = 12

		_, err := gateways.OrderFromRecord(bad)
		require.ErrorIs(t, err, errs.ErrCorruptRecord)
		assert.False(t, errs.IsValidation(err))
	})

	t.Run("invalid item", func(t *testing.T) {
		bad := record
		bad.Items = []ports.OrderItemRecord{{ID: uuid.New(), ProductID: uuid.New(), UnitPrice: decimal.NewFromInt(1), Quantity: 0}}

		_, err := gateways.OrderFromRecord(bad)
		assert.ErrorContains(t, err, "quantity")
		assert.False(t, errs.IsValidation(err))
	})

	t.Run("created at ahead of the local clock", func(t *testing.T) {
		skewed := record
		skewed.CreatedAt = time.Now().Add(5 * time.Second)

		o, err := gateways.OrderFromRecord(skewed)
		require.NoError(t, err)
		assert.True(t, o.CreatedAt().Time().Equal(skewed.CreatedAt))
	})

	t.Run("invalid customer", func(t *testing.T) {
		bad := record
		bad.Customer.Cpf = "11111111111"

		_, err := gateways.OrderFromRecord(bad)
		require.ErrorIs(t, err, errs.ErrCorruptRecord)
		assert.False(t, errs.IsValidation(err))
	})

	t.Run("stored value is recomputed", func(t *testing.T) {
		tampered := record
		tampered.Items = []ports.OrderItemRecord{record.Items[0]}
		tampered.Items[0].Value = decimal.NewFromInt(999)

		o, err := gateways.OrderFromRecord(tampered)
		require.NoError(t, err)
		assert.Equal(t, "1.00", o.Total().String())
	})
}

func TestCustomerGateway(t *testing.T) {
	ctx := t.Context()
	gw := gateways.NewCustomerGateway(memory.NewSeededStore())

	c, err := customer.NewCustomer(kernel.NewUUID(), "Ana", "ana@mail.com", "52998224725")
	require.NoError(t, err)

	ok, err := gw.Register(ctx, c)
	require.NoError(t, err)
	assert.True(t, ok)

	byCpf, err := gw.FindByCpf(ctx, c.Cpf())
	require.NoError(t, err)
	assert.True(t, c.IsEqual(byCpf))

	byEmail, err := gw.FindByEmail(ctx, c.Email())
	require.NoError(t, err)
	assert.True(t, c.IsEqual(byEmail))

	byID, err := gw.FindByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, "Ana", byID.Name().String())

	missing, err := gw.FindByID(ctx, kernel.NewUUID())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestOrderGateway(t *testing.T) {
	ctx := t.Context()
	gw := gateways.NewOrderGateway(memory.NewSeededStore())

	started := newOrder(t, order.Started, newItem(t, "5.00", 1, ""))
	ready := newOrder(t, order.Ready, newItem(t, "7.00", 2, ""))
	for _, o := range []*order.Order{started, ready} {
		ok, err := gw.Register(ctx, o)
		require.NoError(t, err)
		require.True(t, ok)
	}

	t.Run("find by id round-trips", func(t *testing.T) {
		found, err := gw.FindByID(ctx, ready.ID())

		require.NoError(t, err)
		assertSameOrder(t, ready, found)
	})

	t.Run("find by status", func(t *testing.T) {
		found, err := gw.FindByStatus(ctx, order.ActiveStatuses()...)

		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.True(t, ready.IsEqual(found[0]))
	})

	t.Run("find by customer", func(t *testing.T) {
		found, err := gw.FindByCustomer(ctx, started.Customer().ID())

		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("update status and items", func(t *testing.T) {
		require.NoError(t, started.ReplaceItems([]order.Item{newItem(t, "2.50", 4, "x")}))
		require.NoError(t, started.CloseForPayment())

		ok, err := gw.UpdateItems(ctx, started)
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = gw.UpdateStatus(ctx, started)
		require.NoError(t, err)
		assert.True(t, ok)

		found, err := gw.FindByID(ctx, started.ID())
		require.NoError(t, err)
		assertSameOrder(t, started, found)
	})

	t.Run("missing order", func(t *testing.T) {
		found, err := gw.FindByID(ctx, kernel.NewUUID())

		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

type fakeProductAPI struct {
	res result.Result[ports.ProductRecord]
}

func (f fakeProductAPI) GetProduct(_ context.Context, _ uuid.UUID) result.Result[ports.ProductRecord] {
	return f.res
}

func TestProductGateway_Fetch(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("success", func(t *testing.T) {
		gw := gateways.NewProductGateway(fakeProductAPI{res: result.Success(ports.ProductRecord{
			ID: id.Bytes(), Name: "X-Burger", Price: decimal.RequireFromString("21.90"),
		})})

		res := gw.Fetch(t.Context(), id)

		require.True(t, res.IsSuccess())
		assert.True(t, res.Data().ID().IsEqual(id))
		assert.Equal(t, "21.90", res.Data().Price().String())
	})

	t.Run("failures pass through", func(t *testing.T) {
		logical := gateways.NewProductGateway(fakeProductAPI{res: result.LogicalFailure[ports.ProductRecord]("not found")})
		fault := errors.New("timeout")
		internal := gateways.NewProductGateway(fakeProductAPI{res: result.InternalFailure[ports.ProductRecord](fault)})

		assert.Equal(t, "not found", logical.Fetch(t.Context(), id).Message())
		assert.Same(t, fault, internal.Fetch(t.Context(), id).Fault())
	})

	t.Run("price is rounded to cents", func(t *testing.T) {
		tests := []struct{ price, want string }{
			{"3.333", "3.33"},
			{"3.335", "3.34"},
			{"10", "10.00"},
		}
		for _, tt := range tests {
			gw := gateways.NewProductGateway(fakeProductAPI{res: result.Success(ports.ProductRecord{
				ID: id.Bytes(), Name: "X-Burger", Price: decimal.RequireFromString(tt.price),
			})})

			res := gw.Fetch(t.Context(), id)

			require.True(t, res.IsSuccess())
			assert.True(t, decimal.RequireFromString(tt.want).Equal(res.Data().Price().Decimal()), tt.price)
		}
	})

	t.Run("invalid catalog record is internal", func(t *testing.T) {
		gw := gateways.NewProductGateway(fakeProductAPI{res: result.Success(ports.ProductRecord{
			ID: id.Bytes(), Price: decimal.NewFromInt(-5),
		})})

		assert.True(t, gw.Fetch(t.Context(), id).IsInternalFailure())
	})
}

type recordingPaymentAPI struct {
	request ports.PaymentRequest
}

func (r *recordingPaymentAPI) CreatePayment(_ context.Context, request ports.PaymentRequest) result.Result[ports.PaymentReceipt] {
	r.request = request
	return result.Success(ports.PaymentReceipt{ID: "pay-1", QRCode: "qr", Total: decimal.NewFromInt(10)})
}

func TestPaymentGateway_CreatePayment(t *testing.T) {
	item := newItem(t, "5.00", 2, "")
	o := newOrder(t, order.AwaitingPayment, item)
	api := &recordingPaymentAPI{}

	res := gateways.NewPaymentGateway(api).CreatePayment(t.Context(), o)

	require.True(t, res.IsSuccess())
	assert.Equal(t, "qr", res.Data().QRCode)
	assert.Equal(t, o.ID().String(), api.request.OrderID)
	assert.Equal(t, customer.DefaultEmail, api.request.Customer.Email)
	require.Len(t, api.request.Items, 1)
	assert.Equal(t, item.ID().String(), api.request.Items[0].ItemID)
	assert.True(t, decimal.NewFromInt(10).Equal(api.request.Items[0].Value))
}

func TestProductFromRecord_SubCentPriceSurvivesReload(t *testing.T) {
	p, err := gateways.ProductFromRecord(ports.ProductRecord{ID: uuid.New(), Price: decimal.RequireFromString("3.333")})
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), p, 3, "")
	require.NoError(t, err)
	o := newOrder(t, order.Started, item)

	record := gateways.OrderToRecord(o)
	assert.Equal(t, "3.33", record.Items[0].UnitPrice.StringFixed(2))
	assert.True(t, record.Items[0].UnitPrice.Equal(record.Items[0].UnitPrice.Round(2)))

	restored, err := gateways.OrderFromRecord(record)
	require.NoError(t, err)
	assert.Equal(t, "9.99", restored.Total().String())
	assert.True(t, o.Total().IsEqual(restored.Total()))
}
