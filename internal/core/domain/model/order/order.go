package order

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a customer order. It owns the resolved
// lines, the derived total, the lifecycle status, and the payment state.
//
// Invariants:
//   - Must have a valid identifier and a valid owning customer
//   - Lines are never empty
//   - total equals TotalOf(lines) after every mutation
//   - Status and payment status change only through the methods below,
//     gated by the status transition table
type Order struct {
	id            kernel.UUID
	customerID    kernel.UUID
	lines         []Line
	date          time.Time
	total         kernel.Money
	status        Status
	paymentMethod PaymentMethod
	paymentStatus PaymentStatus

	isConstructed bool
}

// NewOrder creates an order in Pending status from resolved lines.
// A zero date defaults to the current time, mirroring the persistence-time
// defaulting of the creation date. The total is computed from the lines;
// it is never client-supplied.
func NewOrder(id, customerID kernel.UUID, lines []Line, date time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		paymentMethod: UnknownPaymentMethod,
		paymentStatus: NoPayment,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	if date.IsZero() {
		date = time.Now()
	}
	o.date = date

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its full state.
// The stored total is trusted as-is; repositories persist only totals the
// aggregate computed itself.
func RestoreOrder(
	id, customerID kernel.UUID,
	lines []Line,
	date time.Time,
	total kernel.Money,
	status Status,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(id, customerID, lines, date)
	if err != nil {
		return nil, err
	}

	o.total = total
	o.status = status
	o.paymentMethod = paymentMethod
	o.paymentStatus = paymentStatus
	return o, nil
}

// Validate ensures the order was created through a constructor.
// Called by repositories before persisting an aggregate.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Lines returns the resolved order lines in request order.
// The returned slice is a copy; mutating it does not affect the order.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Date returns the order's creation date.
func (o *Order) Date() time.Time {
	return o.date
}

// Total returns the derived order total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns the chosen payment method, or
// UnknownPaymentMethod when none was provided.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the current payment status, or NoPayment when
// the order never went through checkout.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// StartProcessing moves a pending order into Processing as part of
// checkout. The payment method is mandatory here; the payment status is
// set to PaymentPending exactly once.
//
// Returns a ValueIsRequiredError when the method is absent and an
// InvalidStateTransitionError when the order is not Pending.
func (o *Order) StartProcessing(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Apply(ActionProcess)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paymentMethod = method
	o.paymentStatus = PaymentPending
	return nil
}

// ReplaceLines swaps the order's lines for a newly resolved set and
// recomputes the total. Rejected on terminal orders.
func (o *Order) ReplaceLines(lines []Line) error {
	if _, err := o.status.Apply(ActionUpdate); err != nil {
		return err
	}
	return o.setLines(lines)
}

// Reassign moves the order to another customer. Rejected on terminal
// orders.
func (o *Order) Reassign(customerID kernel.UUID) error {
	if _, err := o.status.Apply(ActionUpdate); err != nil {
		return err
	}
	return o.setCustomerID(customerID)
}

// Reschedule changes the order's date. Rejected on terminal orders;
// a zero date is rejected rather than re-defaulted.
func (o *Order) Reschedule(date time.Time) error {
	if _, err := o.status.Apply(ActionUpdate); err != nil {
		return err
	}
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	o.date = date
	return nil
}

// Cancel moves the order to Cancelled via the transition table. The total
// is left untouched. Cancelling an already cancelled order succeeds as a
// no-op; cancelling a completed order fails.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Apply(ActionCancel)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	o.total = TotalOf(o.lines)
	return nil
}
