package views

import (
	"strconv"

	"laundrypro/internal/models"
	"laundrypro/internal/services"
)

// OrderViews renders the dashboard and the order flow: service selection,
// order details, payment, history and tracking. The selection set lives here
// between the selection and details views; nothing is persisted until the
// details form is submitted.
type OrderViews struct {
	orders    *services.OrderService
	ui        *UI
	selection []string
}

// NewOrderViews creates the order screens. preselect seeds the selection the
// way a service deep link does.
func NewOrderViews(orders *services.OrderService, ui *UI, preselect ...string) *OrderViews {
	v := &OrderViews{orders: orders, ui: ui}
	for _, id := range preselect {
		if _, ok := orders.Catalog().Lookup(id); ok {
			v.selection = orders.ToggleService(v.selection, id)
		}
	}
	return v
}

// Dashboard is the hub for logged-in users.
func (v *OrderViews) Dashboard() string {
	v.ui.Say("")
	v.ui.Say("Dashboard")
	v.ui.Say("  1) Place an order")
	v.ui.Say("  2) My orders")
	v.ui.Say("  3) Track an order")
	v.ui.Say("  4) Profile")
	v.ui.Say("  0) Log out")
	switch v.ui.Prompt("Choose") {
	case "1":
		return "services"
	case "2":
		return "my-orders"
	case "3":
		return "track"
	case "4":
		return "profile"
	case "0":
		return "logout"
	default:
		if v.ui.Closed() {
			return RouteExit
		}
		return "dashboard"
	}
}

// ServiceSelection toggles catalog services in and out of the selection set.
func (v *OrderViews) ServiceSelection() string {
	v.ui.Say("")
	v.ui.Say("Choose your services (toggle by number, 'c' to continue, 'b' for back):")
	for i, svc := range v.orders.Catalog().All() {
		mark := " "
		if v.isSelected(svc.ID) {
			mark = "x"
		}
		v.ui.Say("  [%s] %d) %s - %.0f per %s. %s", mark, i+1, svc.Name, svc.UnitPrice, svc.Unit, svc.Description)
	}

	choice := v.ui.Prompt("Choose")
	switch choice {
	case "b":
		return "dashboard"
	case "c":
		if err := v.orders.ValidateSelection(v.selection); err != nil {
			v.ui.Fail(err)
			return "services"
		}
		return "order-details"
	}
	if v.ui.Closed() {
		return RouteExit
	}
	if n, err := strconv.Atoi(choice); err == nil {
		all := v.orders.Catalog().All()
		if n >= 1 && n <= len(all) {
			v.selection = v.orders.ToggleService(v.selection, all[n-1].ID)
		}
	}
	return "services"
}

// OrderDetails captures quantities, address and schedule, then builds the
// draft and moves on to payment.
func (v *OrderViews) OrderDetails() string {
	var lines []models.OrderLine
	for _, id := range v.selection {
		svc, ok := v.orders.Catalog().Lookup(id)
		if !ok {
			continue
		}
		v.ui.Say("%s (%s):", svc.Name, svc.Unit)
		quantity, _ := strconv.Atoi(v.ui.Prompt("  Quantity"))
		instructions := v.ui.Prompt("  Special instructions (optional)")
		lines = append(lines, models.OrderLine{
			ServiceID:           id,
			Quantity:            quantity,
			Unit:                svc.Unit,
			SpecialInstructions: instructions,
		})
	}

	address := models.Address{
		Street:  v.ui.Prompt("Street"),
		City:    v.ui.Prompt("City"),
		Pincode: v.ui.Prompt("Pincode"),
	}
	schedule := models.Schedule{
		PickupDate:   v.ui.Prompt("Pickup date (YYYY-MM-DD)"),
		PickupTime:   v.ui.Prompt("Pickup time (HH:MM)"),
		DeliveryDate: v.ui.Prompt("Delivery date (YYYY-MM-DD)"),
		DeliveryTime: v.ui.Prompt("Delivery time (HH:MM)"),
	}

	order, err := v.orders.BuildDraft(lines, address, schedule)
	if err != nil {
		v.ui.Fail(err)
		return "order-details"
	}
	v.ui.Say("Order %s created.", order.ID)
	return "payment"
}

// Payment shows the total and takes card or UPI details.
func (v *OrderViews) Payment() string {
	total := v.currentTotal()
	v.ui.Say("")
	v.ui.Say("Total to pay: %.2f", total)

	payment := services.Payment{}
	switch v.ui.Prompt("Payment method (card/upi)") {
	case "card":
		payment.Method = services.MethodCard
		payment.CardNumber = v.ui.Prompt("Card number")
		payment.CardExpiry = v.ui.Prompt("Expiry (MM/YY)")
		payment.CardCVV = v.ui.Prompt("CVV")
	case "upi":
		payment.Method = services.MethodUpi
		payment.UpiID = v.ui.Prompt("UPI ID")
	default:
		if v.ui.Closed() {
			return RouteExit
		}
		v.ui.Say("Pick card or upi.")
		return "payment"
	}

	order, err := v.orders.Pay(payment)
	if err != nil {
		v.ui.Fail(err)
		return "payment"
	}
	v.selection = nil
	v.ui.Say("Payment of %.2f successful! Order %s is %s.", total, order.ID, order.Status)
	return "dashboard"
}

// MyOrders lists the order history.
func (v *OrderViews) MyOrders() string {
	orders, err := v.orders.ListOrders()
	if err != nil {
		v.ui.Fail(err)
		return "dashboard"
	}
	if len(orders) == 0 {
		v.ui.Say("No orders yet.")
		return "dashboard"
	}
	v.ui.Say("")
	v.ui.Say("Your orders:")
	for _, order := range orders {
		v.printOrder(&order)
	}
	return "dashboard"
}

// TrackOrders looks an order up by ID.
func (v *OrderViews) TrackOrders() string {
	id := v.ui.Prompt("Order ID")
	order, err := v.orders.TrackOrder(id)
	if err != nil {
		v.ui.Fail(err)
		return "dashboard"
	}
	v.printOrder(order)
	return "dashboard"
}

func (v *OrderViews) printOrder(order *models.Order) {
	v.ui.Say("- %s [%s] placed %s", order.ID, order.Status, order.Timestamp)
	for _, line := range order.Services {
		v.ui.Say("    %s x%d %s", line.ServiceID, line.Quantity, line.Unit)
	}
}

func (v *OrderViews) isSelected(id string) bool {
	for _, sel := range v.selection {
		if sel == id {
			return true
		}
	}
	return false
}

// currentTotal prices the draft awaiting payment; a missing draft shows as
// zero and Pay reports the real error.
func (v *OrderViews) currentTotal() float64 {
	order, err := v.orders.CurrentDraft()
	if err != nil || order == nil {
		return 0
	}
	total, err := v.orders.ComputeTotal(order)
	if err != nil {
		return 0
	}
	return total
}
