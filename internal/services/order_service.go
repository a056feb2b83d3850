package services

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"laundrypro/internal/catalog"
	"laundrypro/internal/models"
	"laundrypro/internal/store"
	"laundrypro/internal/validation"
)

// PaymentMethod selects which payment fields apply.
type PaymentMethod string

const (
	MethodCard PaymentMethod = "card"
	MethodUpi  PaymentMethod = "upi"
)

// Payment carries the fields of a payment attempt. Card fields are read for
// MethodCard, UpiID for MethodUpi.
type Payment struct {
	Method     PaymentMethod
	CardNumber string
	CardExpiry string
	CardCVV    string
	UpiID      string
}

// OrderService handles service selection, order drafts, pricing, payment and
// order history.
type OrderService struct {
	store    store.Store
	catalog  *catalog.Catalog
	validate *validation.Validator
	logger   *zap.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(st store.Store, cat *catalog.Catalog, validate *validation.Validator, logger *zap.Logger) *OrderService {
	return &OrderService{
		store:    st,
		catalog:  cat,
		validate: validate,
		logger:   logger,
	}
}

// Catalog exposes the service catalog for the selection view.
func (s *OrderService) Catalog() *catalog.Catalog {
	return s.catalog
}

// ToggleService flips membership of id in the selection set and returns the
// updated selection. Nothing is persisted until the draft is built.
func (s *OrderService) ToggleService(selection []string, id string) []string {
	for i, sel := range selection {
		if sel == id {
			updated := make([]string, 0, len(selection)-1)
			updated = append(updated, selection[:i]...)
			return append(updated, selection[i+1:]...)
		}
	}
	return append(selection, id)
}

// ValidateSelection checks the selection is non-empty and only references
// catalog entries. Called when the user continues past the selection view.
func (s *OrderService) ValidateSelection(selection []string) error {
	if len(selection) == 0 {
		return fmt.Errorf("%w: select at least one service to continue", ErrEmptySelection)
	}
	for _, id := range selection {
		if _, ok := s.catalog.Lookup(id); !ok {
			s.logger.Error("selection references unknown service", zap.String("serviceId", id))
			return fmt.Errorf("%w: %s", ErrUnknownService, id)
		}
	}
	return nil
}

// BuildDraft validates the order form and persists the resulting draft as
// the current order. The first missing or out-of-range field is reported.
// The per-field rules live as struct tags on the order model; only the
// checks that need the catalog stay here.
func (s *OrderService) BuildDraft(lines []models.OrderLine, address models.Address, schedule models.Schedule) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: select at least one service", ErrEmptySelection)
	}
	for _, line := range lines {
		if _, ok := s.catalog.Lookup(line.ServiceID); !ok {
			s.logger.Error("draft references unknown service", zap.String("serviceId", line.ServiceID))
			return nil, fmt.Errorf("%w: %s", ErrUnknownService, line.ServiceID)
		}
	}

	order := &models.Order{
		ID:        uuid.New().String(),
		Services:  lines,
		Address:   address,
		Schedule:  schedule,
		Status:    models.StatusPending,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if res := s.validate.CheckStruct(order); !res.OK {
		return nil, fmt.Errorf("%w: %s", ErrValidation, res.Reason)
	}
	if err := s.store.SaveCurrentOrder(order); err != nil {
		return nil, err
	}
	s.logger.Info("order draft created",
		zap.String("orderId", order.ID),
		zap.Int("services", len(order.Services)))
	return order, nil
}

// CurrentDraft returns the draft awaiting payment, or nil when there is
// none.
func (s *OrderService) CurrentDraft() (*models.Order, error) {
	return s.store.CurrentOrder()
}

// ComputeTotal sums quantity times unit price over the order's lines, with
// unit prices looked up from the catalog. The result carries two-decimal
// currency rounding.
func (s *OrderService) ComputeTotal(order *models.Order) (float64, error) {
	var total float64
	for _, line := range order.Services {
		svc, ok := s.catalog.Lookup(line.ServiceID)
		if !ok {
			s.logger.Error("order references unknown service",
				zap.String("orderId", order.ID),
				zap.String("serviceId", line.ServiceID))
			return 0, fmt.Errorf("%w: %s", ErrUnknownService, line.ServiceID)
		}
		total += float64(line.Quantity) * svc.UnitPrice
	}
	return math.Round(total*100) / 100, nil
}

// Pay validates the payment fields for the chosen method, marks the current
// draft Paid and appends it to the order history.
func (s *OrderService) Pay(payment Payment) (*models.Order, error) {
	order, err := s.store.CurrentOrder()
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: there is no order awaiting payment", ErrNotFound)
	}
	if order.Status != models.StatusPending {
		return nil, fmt.Errorf("%w: order %s is already %s", ErrNotFound, order.ID, order.Status)
	}

	switch payment.Method {
	case MethodCard:
		if res := s.validate.CheckCard(payment.CardNumber, payment.CardExpiry, payment.CardCVV); !res.OK {
			return nil, fmt.Errorf("%w: %s", ErrValidation, res.Reason)
		}
	case MethodUpi:
		if res := s.validate.CheckUpi(payment.UpiID); !res.OK {
			return nil, fmt.Errorf("%w: %s", ErrValidation, res.Reason)
		}
	default:
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, payment.Method)
	}

	order.Status = models.StatusPaid
	if err := s.store.SaveCurrentOrder(order); err != nil {
		return nil, err
	}
	orders, err := s.store.Orders()
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveOrders(append(orders, *order)); err != nil {
		return nil, err
	}
	s.logger.Info("order paid",
		zap.String("orderId", order.ID),
		zap.String("method", string(payment.Method)))
	return order, nil
}

// ListOrders returns the order history in insertion order. It never fails on
// an empty history.
func (s *OrderService) ListOrders() ([]models.Order, error) {
	return s.store.Orders()
}

// TrackOrder finds an order in the history by its ID.
func (s *OrderService) TrackOrder(id string) (*models.Order, error) {
	orders, err := s.store.Orders()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, fmt.Errorf("%w: no order with ID %s", ErrNotFound, id)
}
