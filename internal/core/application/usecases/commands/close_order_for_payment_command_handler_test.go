package commands_test

import (
	"errors"
	"testing"

	"orders/internal/core/application/result"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCloseOrderForPaymentCommandHandler_Handle(t *testing.T) {
	t.Run("payment disabled returns an empty reference", func(t *testing.T) {
		f := newFixture()
		o := f.storeOrder(t, order.Started, "10.00")
		h := commands.NewCloseOrderForPaymentCommandHandler(f.orders, nil)

		res := h.Handle(t.Context(), commands.NewOrderIDCommand(o.ID().String()))

		require.True(t, res.IsSuccess(), res.Message())
		assert.Empty(t, res.Data().QRCode)
		assert.Equal(t, order.AwaitingPayment.Code(), res.Data().Status)
		assert.Equal(t, "10.00", res.Data().Total)
		assert.Equal(t, order.AwaitingPayment, f.reload(t, o).Status())
	})

	t.Run("payment success attaches the qr code", func(t *testing.T) {
		f := newFixture()
		o := f.storeOrder(t, order.Started, "10.00")
		payments := new(MockPaymentGateway)
		payments.On("CreatePayment", mock.Anything, mock.MatchedBy(func(p *order.Order) bool {
			return p.IsEqual(o) && p.Status() == order.AwaitingPayment
		})).Return(result.Success(ports.PaymentReceipt{QRCode: "00020126"})).Once()
		h := commands.NewCloseOrderForPaymentCommandHandler(f.orders, payments)

		res := h.Handle(t.Context(), commands.NewOrderIDCommand(o.ID().String()))

		require.True(t, res.IsSuccess())
		assert.Equal(t, "00020126", res.Data().QRCode)
		payments.AssertExpectations(t)
	})

	t.Run("payment failures keep the order awaiting payment", func(t *testing.T) {
		fault := errors.New("provider timeout")
		cases := map[string]result.Result[ports.PaymentReceipt]{
			"logical":  result.LogicalFailure[ports.PaymentReceipt]("card declined"),
			"internal": result.InternalFailure[ports.PaymentReceipt](fault),
		}

		for name, payment := range cases {
			t.Run(name, func(t *testing.T) {
				f := newFixture()
				o := f.storeOrder(t, order.Started, "10.00")
				payments := new(MockPaymentGateway)
				payments.On("CreatePayment", mock.Anything, mock.Anything).Return(payment)
				h := commands.NewCloseOrderForPaymentCommandHandler(f.orders, payments)

				res := h.Handle(t.Context(), commands.NewOrderIDCommand(o.ID().String()))

				assert.Equal(t, payment.Kind(), res.Kind())
				assert.Equal(t, payment.Message(), res.Message())
				assert.Equal(t, order.AwaitingPayment, f.reload(t, o).Status())
			})
		}
	})

	t.Run("domain rejections are logical failures", func(t *testing.T) {
		f := newFixture()
		empty := f.storeOrder(t, order.Started)
		free := f.storeOrder(t, order.Started, "0.00")
		received := f.storeOrder(t, order.Received, "3.00")
		h := commands.NewCloseOrderForPaymentCommandHandler(f.orders, nil)

		for o, msg := range map[*order.Order]string{
			empty:    "at least one item",
			free:     "greater than zero",
			received: "order must be Started",
		} {
			res := h.Handle(t.Context(), commands.NewOrderIDCommand(o.ID().String()))

			require.True(t, res.IsLogicalFailure())
			assert.Contains(t, res.Message(), msg)
			assert.Equal(t, o.Status(), f.reload(t, o).Status())
		}
	})

	t.Run("status not persisted", func(t *testing.T) {
		f := newFixture()
		o := f.storeOrder(t, order.Started, "10.00")
		orders := new(MockOrderGateway)
		orders.On("FindByID", mock.Anything, o.ID()).Return(o, nil)
		orders.On("UpdateStatus", mock.Anything, o).Return(false, nil)
		payments := new(MockPaymentGateway)
		h := commands.NewCloseOrderForPaymentCommandHandler(orders, payments)

		res := h.Handle(t.Context(), commands.NewOrderIDCommand(o.ID().String()))

		assert.True(t, res.IsLogicalFailure())
		payments.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
	})
}
