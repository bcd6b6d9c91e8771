package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/enum"
	"github.com/noid254/qaribu-api/pkg/share"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderService() *OrderService {
	items := newMockOrderItemRepo()
	return NewOrderService(newMockOrderRepo(items), items)
}

func TestCreateOrderComputesTotalsServerSide(t *testing.T) {
	ctx := context.Background()
	svc := newOrderService()
	vendorID := uuid.New()

	order, err := svc.CreateOrder(ctx, vendorID, &CreateOrderInput{
		CustomerName: "Atieno Odhiambo",
		TaxRate:      16,
		Items: []OrderItemInput{
			{Description: "Nyama choma platter", Quantity: 2, UnitPrice: 850},
			{Description: "Ugali", Quantity: 2, UnitPrice: 100},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "ORD-000001", order.Reference)
	assert.InDelta(t, 1900.0, order.Subtotal, 1e-9)
	assert.InDelta(t, 304.0, order.TaxAmount, 1e-9)
	assert.InDelta(t, 2204.0, order.Total, 1e-9)
	assert.Equal(t, enum.OrderStatusPlaced, order.Status)
	require.Len(t, order.Items, 2)
	assert.InDelta(t, 1700.0, order.Items[0].SubTotal, 1e-9)
}

func TestCreateOrderReferenceIncrementsPerVendor(t *testing.T) {
	ctx := context.Background()
	svc := newOrderService()
	vendorID := uuid.New()

	input := &CreateOrderInput{
		CustomerName: "Atieno Odhiambo",
		Items:        []OrderItemInput{{Description: "Chai", Quantity: 1, UnitPrice: 50}},
	}

	first, err := svc.CreateOrder(ctx, vendorID, input)
	require.NoError(t, err)
	second, err := svc.CreateOrder(ctx, vendorID, input)
	require.NoError(t, err)
	other, err := svc.CreateOrder(ctx, uuid.New(), input)
	require.NoError(t, err)

	assert.Equal(t, "ORD-000001", first.Reference)
	assert.Equal(t, "ORD-000002", second.Reference)
	assert.Equal(t, "ORD-000001", other.Reference)
}

func TestCreateOrderValidatesItems(t *testing.T) {
	ctx := context.Background()
	svc := newOrderService()

	_, err := svc.CreateOrder(ctx, uuid.New(), &CreateOrderInput{CustomerName: "Atieno Odhiambo"})
	assert.Error(t, err, "an order needs items")

	_, err = svc.CreateOrder(ctx, uuid.New(), &CreateOrderInput{
		CustomerName: "Atieno Odhiambo",
		Items:        []OrderItemInput{{Description: "", Quantity: 0, UnitPrice: -5}},
	})
	assert.Error(t, err)
}

func TestShareOrderBuildsWhatsAppLink(t *testing.T) {
	ctx := context.Background()
	svc := newOrderService()
	vendorID := uuid.New()

	order, err := svc.CreateOrder(ctx, vendorID, &CreateOrderInput{
		CustomerName: "Atieno Odhiambo",
		Items:        []OrderItemInput{{Description: "Chai", Quantity: 2, UnitPrice: 50}},
	})
	require.NoError(t, err)

	link, err := svc.ShareOrder(ctx, vendorID, order.ID, &ShareOrderInput{
		RecipientPhone: "0722000111",
		Channel:        share.ChannelWhatsApp,
	})
	require.NoError(t, err)

	assert.Equal(t, share.ChannelWhatsApp, link.Channel)
	assert.True(t, strings.HasPrefix(link.URL, "https://wa.me/254722000111?text="))
	assert.Contains(t, link.URL, "ORD-000001")
}
