package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"laundrypro/internal/catalog"
	"laundrypro/internal/models"
	"laundrypro/internal/services"
	"laundrypro/internal/store"
	"laundrypro/internal/validation"
)

func newOrderService(t *testing.T, cat *catalog.Catalog) (*services.OrderService, *store.MemoryStore) {
	t.Helper()
	if cat == nil {
		cat = catalog.Default()
	}
	st := store.NewMemoryStore()
	return services.NewOrderService(st, cat, validation.New(), zap.NewNop()), st
}

func validDraftInput() ([]models.OrderLine, models.Address, models.Schedule) {
	lines := []models.OrderLine{
		{ServiceID: "wash-and-fold", Quantity: 3, Unit: "kg"},
		{ServiceID: "ironing", Quantity: 5, Unit: "pcs", SpecialInstructions: "low heat"},
	}
	address := models.Address{Street: "12 MG Road", City: "Pune", Pincode: "411001"}
	schedule := models.Schedule{
		PickupDate:   "2026-09-01",
		PickupTime:   "10:00",
		DeliveryDate: "2026-09-03",
		DeliveryTime: "18:00",
	}
	return lines, address, schedule
}

func TestToggleService(t *testing.T) {
	orders, _ := newOrderService(t, nil)

	selection := orders.ToggleService(nil, "wash-and-fold")
	assert.Equal(t, []string{"wash-and-fold"}, selection)

	selection = orders.ToggleService(selection, "ironing")
	assert.Equal(t, []string{"wash-and-fold", "ironing"}, selection)

	selection = orders.ToggleService(selection, "wash-and-fold")
	assert.Equal(t, []string{"ironing"}, selection)
}

func TestToggleServiceCopiesOnRemove(t *testing.T) {
	orders, _ := newOrderService(t, nil)

	backing := []string{"wash-and-fold", "ironing", "dry-cleaning"}
	selection := backing[:2]

	updated := orders.ToggleService(selection, "wash-and-fold")
	assert.Equal(t, []string{"ironing"}, updated)

	// The caller's slices must be left alone.
	assert.Equal(t, []string{"wash-and-fold", "ironing"}, selection)
	assert.Equal(t, []string{"wash-and-fold", "ironing", "dry-cleaning"}, backing)
}

func TestValidateSelection(t *testing.T) {
	orders, _ := newOrderService(t, nil)

	assert.ErrorIs(t, orders.ValidateSelection(nil), services.ErrEmptySelection)
	assert.ErrorIs(t, orders.ValidateSelection([]string{}), services.ErrEmptySelection)
	assert.ErrorIs(t, orders.ValidateSelection([]string{"shoe-shining"}), services.ErrUnknownService)
	assert.NoError(t, orders.ValidateSelection([]string{"wash-and-fold", "dry-cleaning"}))
}

func TestBuildDraftPersistsCurrentOrder(t *testing.T) {
	orders, st := newOrderService(t, nil)
	lines, address, schedule := validDraftInput()

	draft, err := orders.BuildDraft(lines, address, schedule)
	require.NoError(t, err)
	assert.NotEmpty(t, draft.ID)
	assert.Equal(t, models.StatusPending, draft.Status)
	assert.NotEmpty(t, draft.Timestamp)

	current, err := st.CurrentOrder()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, draft.ID, current.ID)
}

func TestBuildDraftValidation(t *testing.T) {
	orders, st := newOrderService(t, nil)

	lines, address, schedule := validDraftInput()
	_, err := orders.BuildDraft(nil, address, schedule)
	assert.ErrorIs(t, err, services.ErrEmptySelection)

	bad := append([]models.OrderLine{}, lines...)
	bad[0].Quantity = 0
	_, err = orders.BuildDraft(bad, address, schedule)
	assert.ErrorIs(t, err, services.ErrValidation)

	bad[0].Quantity = 1000
	_, err = orders.BuildDraft(bad, address, schedule)
	assert.ErrorIs(t, err, services.ErrValidation)

	noCity := address
	noCity.City = ""
	_, err = orders.BuildDraft(lines, noCity, schedule)
	assert.ErrorIs(t, err, services.ErrValidation)
	assert.Contains(t, err.Error(), "city")

	noPickup := schedule
	noPickup.PickupTime = ""
	_, err = orders.BuildDraft(lines, address, noPickup)
	assert.ErrorIs(t, err, services.ErrValidation)
	assert.Contains(t, err.Error(), "pickup time")

	current, err := st.CurrentOrder()
	require.NoError(t, err)
	assert.Nil(t, current, "failed drafts must not persist")
}

func TestComputeTotal(t *testing.T) {
	orders, _ := newOrderService(t, nil)

	order := &models.Order{Services: []models.OrderLine{
		{ServiceID: "wash-and-fold", Quantity: 3, Unit: "kg"}, // 3 x 15
		{ServiceID: "dry-cleaning", Quantity: 2, Unit: "pcs"}, // 2 x 50
		{ServiceID: "ironing", Quantity: 4, Unit: "pcs"},      // 4 x 20
	}}
	total, err := orders.ComputeTotal(order)
	require.NoError(t, err)
	assert.Equal(t, 225.0, total)
}

func TestComputeTotalScenario(t *testing.T) {
	// Quantity 3 at 150 per kg prices out at exactly 450.00.
	cat := catalog.New(models.Service{ID: "wash-and-fold", Name: "Wash & Fold", UnitPrice: 150, Unit: "kg"})
	orders, _ := newOrderService(t, cat)

	total, err := orders.ComputeTotal(&models.Order{Services: []models.OrderLine{
		{ServiceID: "wash-and-fold", Quantity: 3, Unit: "kg"},
	}})
	require.NoError(t, err)
	assert.Equal(t, 450.00, total)
}

func TestComputeTotalIsLinear(t *testing.T) {
	orders, _ := newOrderService(t, nil)

	base := &models.Order{Services: []models.OrderLine{
		{ServiceID: "wash-and-fold", Quantity: 7, Unit: "kg"},
		{ServiceID: "ironing", Quantity: 2, Unit: "pcs"},
	}}
	doubled := &models.Order{Services: []models.OrderLine{
		{ServiceID: "wash-and-fold", Quantity: 14, Unit: "kg"},
		{ServiceID: "ironing", Quantity: 2, Unit: "pcs"},
	}}

	baseTotal, err := orders.ComputeTotal(base)
	require.NoError(t, err)
	doubledTotal, err := orders.ComputeTotal(doubled)
	require.NoError(t, err)

	// Doubling one line's quantity doubles that line's contribution only.
	assert.Equal(t, baseTotal+7*15, doubledTotal)
}

func TestComputeTotalUnknownService(t *testing.T) {
	orders, _ := newOrderService(t, nil)

	_, err := orders.ComputeTotal(&models.Order{Services: []models.OrderLine{
		{ServiceID: "shoe-shining", Quantity: 1, Unit: "pcs"},
	}})
	assert.ErrorIs(t, err, services.ErrUnknownService)
}

func TestPayRoundTrip(t *testing.T) {
	orders, _ := newOrderService(t, nil)
	lines, address, schedule := validDraftInput()

	draft, err := orders.BuildDraft(lines, address, schedule)
	require.NoError(t, err)

	paid, err := orders.Pay(services.Payment{
		Method:     services.MethodCard,
		CardNumber: "4111 1111 1111 1111",
		CardExpiry: "12/39",
		CardCVV:    "123",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, paid.Status)
	assert.Equal(t, draft.ID, paid.ID)

	history, err := orders.ListOrders()
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, draft.ID, history[0].ID)
	assert.Equal(t, models.StatusPaid, history[0].Status)
}

func TestPayUpi(t *testing.T) {
	orders, _ := newOrderService(t, nil)
	lines, address, schedule := validDraftInput()

	_, err := orders.BuildDraft(lines, address, schedule)
	require.NoError(t, err)

	_, err = orders.Pay(services.Payment{Method: services.MethodUpi, UpiID: "bad"})
	assert.ErrorIs(t, err, services.ErrValidation)

	paid, err := orders.Pay(services.Payment{Method: services.MethodUpi, UpiID: "example@upi"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, paid.Status)
}

func TestPayValidationLeavesHistoryUntouched(t *testing.T) {
	orders, st := newOrderService(t, nil)
	lines, address, schedule := validDraftInput()

	_, err := orders.BuildDraft(lines, address, schedule)
	require.NoError(t, err)

	_, err = orders.Pay(services.Payment{
		Method:     services.MethodCard,
		CardNumber: "4111",
		CardExpiry: "12/39",
		CardCVV:    "123",
	})
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = orders.Pay(services.Payment{Method: "cash"})
	assert.ErrorIs(t, err, services.ErrValidation)

	history, err := orders.ListOrders()
	require.NoError(t, err)
	assert.Empty(t, history)

	current, err := st.CurrentOrder()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, models.StatusPending, current.Status, "failed payment leaves the draft Pending")
}

func TestPayTwiceRejectsPaidDraft(t *testing.T) {
	orders, _ := newOrderService(t, nil)
	lines, address, schedule := validDraftInput()

	_, err := orders.BuildDraft(lines, address, schedule)
	require.NoError(t, err)

	payment := services.Payment{Method: services.MethodUpi, UpiID: "example@upi"}
	_, err = orders.Pay(payment)
	require.NoError(t, err)

	// A second confirmation must not append the order to history again.
	_, err = orders.Pay(payment)
	assert.ErrorIs(t, err, services.ErrNotFound)

	history, err := orders.ListOrders()
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestPayWithoutDraft(t *testing.T) {
	orders, _ := newOrderService(t, nil)

	_, err := orders.Pay(services.Payment{Method: services.MethodUpi, UpiID: "example@upi"})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestListOrdersEmpty(t *testing.T) {
	orders, _ := newOrderService(t, nil)

	history, err := orders.ListOrders()
	assert.NoError(t, err)
	assert.Empty(t, history)
}

func TestTrackOrder(t *testing.T) {
	orders, _ := newOrderService(t, nil)
	lines, address, schedule := validDraftInput()

	draft, err := orders.BuildDraft(lines, address, schedule)
	require.NoError(t, err)
	_, err = orders.Pay(services.Payment{Method: services.MethodUpi, UpiID: "example@upi"})
	require.NoError(t, err)

	found, err := orders.TrackOrder(draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, found.ID)

	_, err = orders.TrackOrder("missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
