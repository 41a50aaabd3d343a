// Package checkout drives the order placement flow as an explicit state
// machine: pick the order type, fill the customer form, submit, see the
// confirmation, done.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"kapehan/internal/logger"
	"kapehan/internal/models"
)

// State is a step of the checkout flow.
type State string

const (
	StateSelectingType State = "selecting_type"
	StateFillingForm   State = "filling_form"
	StateSubmitting    State = "submitting"
	StateConfirmed     State = "confirmed"
	StateClosed        State = "closed"
)

// ErrEmptyCart is returned when Submit is called with no items.
var ErrEmptyCart = errors.New("cannot submit an empty order")

// TransitionError reports an operation attempted in the wrong state.
type TransitionError struct {
	From State
	Op   string
}

func (e TransitionError) Error() string {
	return fmt.Sprintf("cannot %s while in state %s", e.Op, e.From)
}

// Form holds the fields the customer fills in before submitting.
type Form struct {
	Name        string
	Phone       string
	Address     string
	TableNumber string
	Notes       string
	GcashNumber string
}

// Flow is one run of the checkout. It starts closed; Open moves it to the
// order type selection. Submission and confirmation delays are configurable
// so tests do not sleep.
type Flow struct {
	logger            *logger.Logger
	processingDelay   time.Duration
	confirmationDelay time.Duration
	deliveryFee       float64
	onConfirm         func(models.Order)
	onClose           func()

	mu        sync.Mutex
	state     State
	orderType models.OrderType
	payment   models.PaymentMethod
	form      Form
}

// Option configures a Flow.
type Option func(*Flow)

// WithDelays sets the submit processing delay and the confirmation display
// delay.
func WithDelays(processing, confirmation time.Duration) Option {
	return func(f *Flow) {
		f.processingDelay = processing
		f.confirmationDelay = confirmation
	}
}

// WithDeliveryFee overrides the flat delivery fee.
func WithDeliveryFee(fee float64) Option {
	return func(f *Flow) { f.deliveryFee = fee }
}

// OnConfirm registers a callback invoked with the finalized order when a
// submission succeeds.
func OnConfirm(fn func(models.Order)) Option {
	return func(f *Flow) { f.onConfirm = fn }
}

// OnClose registers a callback invoked when the flow finishes its
// confirmation display and resets.
func OnClose(fn func()) Option {
	return func(f *Flow) { f.onClose = fn }
}

// New creates a closed flow.
func New(log *logger.Logger, opts ...Option) *Flow {
	f := &Flow{
		logger:            log,
		processingDelay:   2 * time.Second,
		confirmationDelay: 3 * time.Second,
		deliveryFee:       models.DefaultDeliveryFee,
		state:             StateClosed,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// State returns the current step.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Open starts a new checkout from the type selection step.
func (f *Flow) Open() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateClosed {
		return TransitionError{From: f.state, Op: "open"}
	}
	f.reset(StateSelectingType)
	return nil
}

// SelectType picks dine-in or delivery and moves to the form. The payment
// method is preset to the default for the type: cod for delivery, cash for
// dine-in.
func (f *Flow) SelectType(orderType models.OrderType) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateSelectingType {
		return TransitionError{From: f.state, Op: "select order type"}
	}
	if orderType != models.DineIn && orderType != models.Delivery {
		return models.ValidationError{Field: "orderType", Message: fmt.Sprintf("unknown order type %q", orderType)}
	}

	f.orderType = orderType
	f.payment = models.DefaultPaymentMethod(orderType)
	f.state = StateFillingForm
	return nil
}

// Back returns from the form to the type selection, clearing the chosen
// type and payment method but keeping the typed form fields.
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateFillingForm {
		return TransitionError{From: f.state, Op: "go back"}
	}
	f.orderType = ""
	f.payment = ""
	f.state = StateSelectingType
	return nil
}

// SetForm replaces the form fields. Valid only while filling the form.
func (f *Flow) SetForm(form Form) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateFillingForm {
		return TransitionError{From: f.state, Op: "edit the form"}
	}
	f.form = form
	return nil
}

// SetPaymentMethod changes the payment method. Valid only while filling the
// form, and only to a method the selected order type allows.
func (f *Flow) SetPaymentMethod(method models.PaymentMethod) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateFillingForm {
		return TransitionError{From: f.state, Op: "change payment method"}
	}
	if !models.ValidPaymentMethod(f.orderType, method) {
		return models.ValidationError{Field: "paymentMethod", Message: fmt.Sprintf("payment method %q is not available for %s orders", method, f.orderType)}
	}
	f.payment = method
	return nil
}

// OrderType returns the selected order type.
func (f *Flow) OrderType() models.OrderType {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.orderType
}

// PaymentMethod returns the current payment method.
func (f *Flow) PaymentMethod() models.PaymentMethod {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.payment
}

// Submit validates the form, waits out the processing delay, assembles the
// final order and hands it to the confirm callback. On success the flow
// lands in the confirmed state.
func (f *Flow) Submit(ctx context.Context, items []models.CartLine) error {
	f.mu.Lock()
	if f.state != StateFillingForm {
		f.mu.Unlock()
		return TransitionError{From: f.state, Op: "submit"}
	}
	if len(items) == 0 {
		f.mu.Unlock()
		return ErrEmptyCart
	}
	if err := f.validateLocked(); err != nil {
		f.mu.Unlock()
		return err
	}
	f.state = StateSubmitting
	order := f.buildOrderLocked(items)
	f.mu.Unlock()

	if err := wait(ctx, f.processingDelay); err != nil {
		f.mu.Lock()
		f.state = StateFillingForm
		f.mu.Unlock()
		return err
	}

	f.mu.Lock()
	f.state = StateConfirmed
	f.mu.Unlock()

	f.logger.Info("order_submitted", "",
		fmt.Sprintf("%s order submitted, total %.2f", order.OrderType, order.Total))
	if f.onConfirm != nil {
		f.onConfirm(order)
	}
	return nil
}

// FinishConfirmation waits out the confirmation display delay, then resets
// the flow and fires the close callback.
func (f *Flow) FinishConfirmation(ctx context.Context) error {
	f.mu.Lock()
	if f.state != StateConfirmed {
		f.mu.Unlock()
		return TransitionError{From: f.state, Op: "finish confirmation"}
	}
	f.mu.Unlock()

	if err := wait(ctx, f.confirmationDelay); err != nil {
		return err
	}

	f.mu.Lock()
	f.reset(StateClosed)
	f.mu.Unlock()

	if f.onClose != nil {
		f.onClose()
	}
	return nil
}

// Close abandons the checkout from any state without firing the close
// callback.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset(StateClosed)
}

// reset clears all collected state. Callers hold the lock.
func (f *Flow) reset(to State) {
	f.state = to
	f.orderType = ""
	f.payment = ""
	f.form = Form{}
}

// validateLocked checks the form against the selected order type. Callers
// hold the lock.
func (f *Flow) validateLocked() error {
	if f.form.Name == "" {
		return models.ValidationError{Field: "name", Message: "customer name is required"}
	}
	switch f.orderType {
	case models.Delivery:
		if f.form.Phone == "" {
			return models.ValidationError{Field: "phone", Message: "phone number is required for delivery orders"}
		}
		if f.form.Address == "" {
			return models.ValidationError{Field: "address", Message: "delivery address is required for delivery orders"}
		}
	case models.DineIn:
		if f.form.TableNumber == "" {
			return models.ValidationError{Field: "tableNumber", Message: "table number is required for dine-in orders"}
		}
	}
	if f.payment == models.PaymentGcash && f.form.GcashNumber == "" {
		return models.ValidationError{Field: "gcashNumber", Message: "gcash number is required when paying with gcash"}
	}
	return nil
}

// buildOrderLocked assembles the final order from the form and cart lines.
// The delivery fee applies only to delivery orders, and the gcash number is
// carried only when gcash is the payment method. Callers hold the lock.
func (f *Flow) buildOrderLocked(items []models.CartLine) models.Order {
	subtotal := 0.0
	for _, line := range items {
		subtotal += line.Product.Price * float64(line.Quantity)
	}

	fee := 0.0
	if f.orderType == models.Delivery {
		fee = f.deliveryFee
	}

	order := models.Order{
		OrderType: f.orderType,
		CustomerInfo: models.CustomerInfo{
			Name:        f.form.Name,
			Phone:       f.form.Phone,
			Address:     f.form.Address,
			TableNumber: f.form.TableNumber,
			Notes:       f.form.Notes,
		},
		PaymentMethod: f.payment,
		Items:         items,
		Subtotal:      subtotal,
		DeliveryFee:   fee,
		Total:         subtotal + fee,
	}
	if f.payment == models.PaymentGcash {
		order.GcashNumber = f.form.GcashNumber
	}
	return order
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
