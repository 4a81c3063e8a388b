package service

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/TourBooker/internal/domain"
	"github.com/stpnv0/TourBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartMocks struct {
	carts        *mocks.MockCartRepo
	reservations *mocks.MockReservationRepo
	holds        *mocks.MockReservationManager
	items        *mocks.MockItemRepo
	users        *mocks.MockUserRepo
	notifier     *mocks.MockReservationNotifier
}

func newCartService(t *testing.T) (*CartService, cartMocks) {
	m := cartMocks{
		carts:        mocks.NewMockCartRepo(t),
		reservations: mocks.NewMockReservationRepo(t),
		holds:        mocks.NewMockReservationManager(t),
		items:        mocks.NewMockItemRepo(t),
		users:        mocks.NewMockUserRepo(t),
		notifier:     mocks.NewMockReservationNotifier(t),
	}
	svc := NewCartService(
		m.carts, m.reservations, m.holds, m.items, m.users, passthroughTx(t), m.notifier,
		newTestLogger(t), domain.TierC,
	)
	return svc, m
}

var cartItem = &domain.BookableItem{
	ID: "i1", Kind: domain.ItemKindTransport, Name: "Ferry",
	Prices: domain.Prices{A: 3000, B: 2000, C: 1000},
}

func addInput(tier domain.Tier) domain.AddCartItemInput {
	return domain.AddCartItemInput{ItemID: "i1", Date: testDay, Time: testNine, Quantity: 2, Tier: tier}
}

func TestCartService_AddItem_ExplicitTier(t *testing.T) {
	svc, m := newCartService(t)

	m.items.EXPECT().GetByID(mock.Anything, "i1").Return(cartItem, nil)
	m.carts.EXPECT().GetOrCreate(mock.Anything, "u1").Return(&domain.Cart{ID: "c1", UserID: "u1"}, nil)
	m.holds.EXPECT().Reserve(mock.Anything, mock.MatchedBy(func(in domain.ReserveInput) bool {
		return in.CartID == "c1" && in.Tier == domain.TierA && in.Quantity == 2
	})).Return(&domain.Reservation{
		ID: "r1", CartID: "c1", ItemID: "i1", Date: testDay, Time: testNine,
		Quantity: 2, Tier: domain.TierA, Status: domain.ReservationStatusHeld,
	}, nil)

	view, err := svc.AddItem(context.Background(), "u1", addInput(domain.TierA))

	require.NoError(t, err)
	assert.Equal(t, int64(3000), view.UnitPrice)
	assert.Equal(t, int64(6000), view.Total)
	assert.Equal(t, "Ferry", view.ItemName)
}

func TestCartService_AddItem_UserTier(t *testing.T) {
	svc, m := newCartService(t)

	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Tier: domain.TierB}, nil)
	m.items.EXPECT().GetByID(mock.Anything, "i1").Return(cartItem, nil)
	m.carts.EXPECT().GetOrCreate(mock.Anything, "u1").Return(&domain.Cart{ID: "c1"}, nil)
	m.holds.EXPECT().Reserve(mock.Anything, mock.MatchedBy(func(in domain.ReserveInput) bool {
		return in.Tier == domain.TierB
	})).Return(&domain.Reservation{ID: "r1", ItemID: "i1", Quantity: 2, Tier: domain.TierB}, nil)

	view, err := svc.AddItem(context.Background(), "u1", addInput(""))

	require.NoError(t, err)
	assert.Equal(t, int64(4000), view.Total)
}

func TestCartService_AddItem_DefaultTierForUnknownUser(t *testing.T) {
	svc, m := newCartService(t)

	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(nil, domain.ErrUserNotFound)
	m.items.EXPECT().GetByID(mock.Anything, "i1").Return(cartItem, nil)
	m.carts.EXPECT().GetOrCreate(mock.Anything, "u1").Return(&domain.Cart{ID: "c1"}, nil)
	m.holds.EXPECT().Reserve(mock.Anything, mock.MatchedBy(func(in domain.ReserveInput) bool {
		return in.Tier == domain.TierC
	})).Return(&domain.Reservation{ID: "r1", ItemID: "i1", Quantity: 2, Tier: domain.TierC}, nil)

	view, err := svc.AddItem(context.Background(), "u1", addInput(""))

	require.NoError(t, err)
	assert.Equal(t, int64(2000), view.Total)
}

func TestCartService_AddItem_InvalidTier(t *testing.T) {
	svc, _ := newCartService(t)

	_, err := svc.AddItem(context.Background(), "u1", addInput("X"))

	assert.ErrorIs(t, err, domain.ErrInvalidTier)
}

func TestCartService_AddItem_SlotUnavailable(t *testing.T) {
	svc, m := newCartService(t)

	m.items.EXPECT().GetByID(mock.Anything, "i1").Return(cartItem, nil)
	m.carts.EXPECT().GetOrCreate(mock.Anything, "u1").Return(&domain.Cart{ID: "c1"}, nil)
	m.holds.EXPECT().Reserve(mock.Anything, mock.Anything).Return(nil, domain.ErrSlotUnavailable)

	_, err := svc.AddItem(context.Background(), "u1", addInput(domain.TierA))

	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestCartService_RemoveItem_ForeignCart(t *testing.T) {
	svc, m := newCartService(t)

	m.carts.EXPECT().GetByUser(mock.Anything, "u1").Return(&domain.Cart{ID: "c1"}, nil)
	m.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Reservation{ID: "r1", CartID: "c2"}, nil)

	err := svc.RemoveItem(context.Background(), "u1", "r1")

	assert.ErrorIs(t, err, domain.ErrCartItemNotFound)
}

func TestCartService_RemoveItem_Success(t *testing.T) {
	svc, m := newCartService(t)

	m.carts.EXPECT().GetByUser(mock.Anything, "u1").Return(&domain.Cart{ID: "c1"}, nil)
	m.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Reservation{ID: "r1", CartID: "c1"}, nil)
	m.holds.EXPECT().Release(mock.Anything, "r1").Return(&domain.Reservation{ID: "r1"}, nil)

	err := svc.RemoveItem(context.Background(), "u1", "r1")

	require.NoError(t, err)
}

func TestCartService_ListItems_NoCart(t *testing.T) {
	svc, m := newCartService(t)

	m.carts.EXPECT().GetByUser(mock.Anything, "u1").Return(nil, domain.ErrCartNotFound)

	views, err := svc.ListItems(context.Background(), "u1")

	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestCartService_Checkout_EmptyCart(t *testing.T) {
	svc, m := newCartService(t)

	m.carts.EXPECT().GetByUser(mock.Anything, "u1").Return(&domain.Cart{ID: "c1"}, nil)
	m.reservations.EXPECT().ListByCart(mock.Anything, "c1", mock.Anything).Return(nil, nil)

	_, err := svc.Checkout(context.Background(), "u1")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCartService_Checkout_ConfirmsAndNotifies(t *testing.T) {
	svc, m := newCartService(t)
	held := &domain.Reservation{ID: "r1", CartID: "c1", ItemID: "i1", Quantity: 2, Tier: domain.TierB}
	user := &domain.User{ID: "u1"}

	m.carts.EXPECT().GetByUser(mock.Anything, "u1").Return(&domain.Cart{ID: "c1"}, nil)
	m.reservations.EXPECT().ListByCart(mock.Anything, "c1", mock.Anything).Return([]*domain.Reservation{held}, nil)
	m.holds.EXPECT().Confirm(mock.Anything, "r1").Return(withStatus(held, domain.ReservationStatusConfirmed), nil)
	m.items.EXPECT().GetByID(mock.Anything, "i1").Return(cartItem, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	notified := make(chan []domain.CartItemView, 1)
	m.notifier.EXPECT().NotifyCheckoutConfirmed(mock.Anything, user, mock.Anything).
		Run(func(_ context.Context, _ *domain.User, items []domain.CartItemView) {
			notified <- items
		}).Return()

	views, err := svc.Checkout(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, domain.ReservationStatusConfirmed, views[0].Status)
	assert.Equal(t, int64(4000), views[0].Total)

	select {
	case items := <-notified:
		assert.Len(t, items, 1)
	case <-time.After(time.Second):
		t.Fatal("checkout notification not sent")
	}
}

func TestCartService_Flow(t *testing.T) {
	h := newHarness(t, 10)
	ctx := context.Background()

	view, err := h.carts.AddItem(ctx, "u1", domain.AddCartItemInput{
		ItemID: h.item.ID, Date: testDay, Time: testNine, Quantity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TierC, view.Tier)
	assert.Equal(t, int64(3000), view.Total)

	_, err = h.carts.AddItem(ctx, "u1", domain.AddCartItemInput{
		ItemID: h.item.ID, Date: testDay, Time: domain.NewTimeOfDay(10, 0), Quantity: 1, Tier: domain.TierA,
	})
	require.NoError(t, err)

	views, err := h.carts.ListItems(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, views, 2)

	require.NoError(t, h.carts.RemoveItem(ctx, "u1", view.ID))
	assert.Equal(t, 10, h.remaining(t))

	err = h.carts.RemoveItem(ctx, "u2", view.ID)
	assert.ErrorIs(t, err, domain.ErrCartItemNotFound)

	confirmed, err := h.carts.Checkout(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, int64(3000), confirmed[0].Total)

	views, err = h.carts.ListItems(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, views)

	n, err := h.carts.Clear(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, n)
}
