package order

import (
	"errors"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/process"
	"progress/internal/pkg/errs"
)

const (
	MaxOrderNoLength     = 30
	MaxProductNameLength = 200
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a tracked production order.
type Order struct {
	id             kernel.UUID
	orderNo        string
	productName    string
	quantity       int
	dueDate        time.Time
	currentProcess *kernel.UUID
	status         Status
	createdAt      time.Time

	events []Transition

	isConstructed bool
}

// NewOrder registers a new order. The current process is the first process of
// seq (nil when the registry is empty) and the status is NotStarted.
//
// Parameters:
//   - id: identifier of the new order
//   - orderNo: business number, trimmed, unique across orders
//   - productName: what is being produced, trimmed, required
//   - quantity: units to produce, zero allowed, never negative
//   - dueDate: truncated to a calendar day
//   - seq: the registry at registration time
//   - now: creation timestamp, stored in UTC
//
// Returns:
//   - *Order: the registered order
//   - error: every invalid field, joined with errors.Join
//
// Example:
//
//	seq := process.NewSequence(processes)
//	o, err := order.NewOrder(kernel.NewUUID(), "O-100", "Bracket", 20, due, seq, time.Now())
func NewOrder(
	id kernel.UUID,
	orderNo, productName string,
	quantity int,
	dueDate time.Time,
	seq process.Sequence,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        NotStarted,
		createdAt:     now.UTC(),
		isConstructed: true,
	}

	if first, ok := seq.First(); ok {
		o.currentProcess = first.ID().Ptr()
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNo(orderNo),
		o.setProductName(productName),
		o.setQuantity(quantity),
		o.setDueDate(dueDate),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage. The current process may
// reference a process that no longer exists.
func RestoreOrder(
	id kernel.UUID,
	orderNo, productName string,
	quantity int,
	dueDate time.Time,
	currentProcess *kernel.UUID,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		currentProcess: currentProcess,
		createdAt:      createdAt,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNo(orderNo),
		o.setProductName(productName),
		o.setQuantity(quantity),
		o.setDueDate(dueDate),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) OrderNo() string {
	return o.orderNo
}

func (o *Order) ProductName() string {
	return o.productName
}

func (o *Order) Quantity() int {
	return o.quantity
}

func (o *Order) DueDate() time.Time {
	return o.dueDate
}

// CurrentProcess returns the process the order is working on or about to
// start. Nil means no process has been registered yet or it was deleted.
func (o *Order) CurrentProcess() *kernel.UUID {
	if o.currentProcess == nil {
		return nil
	}
	return o.currentProcess.Ptr()
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// MarkStarted points the order at a process that has just been started.
//
// Parameters:
//   - processID: the process whose entry was opened
//
// Returns:
//   - error: an invalid identifier or a status that cannot move to InProgress;
//     the order is unchanged on failure
//
// Example:
//
//	entry, err := engine.Start(in) // calls MarkStarted on success
//	if err != nil {
//	    return err
//	}
//	fmt.Println(in.Order.Status()) // in_progress
func (o *Order) MarkStarted(processID kernel.UUID) error {
	if err := processID.Validate(); err != nil {
		return err
	}

	next, err := o.status.Start()
	if err != nil {
		return err
	}

	o.currentProcess = processID.Ptr()
	o.status = next
	return nil
}

// Advance recomputes the projection after the current process was completed.
//
//   - current process missing from seq (deleted or never set): Completed
//   - a next process exists: move to it, InProgress
//   - current process is the last one: Completed, pointer unchanged
func (o *Order) Advance(seq process.Sequence) {
	if o.currentProcess == nil {
		o.status = Completed
		return
	}

	if !seq.Contains(*o.currentProcess) {
		o.status = Completed
		return
	}

	if next, ok := seq.Next(*o.currentProcess); ok {
		o.currentProcess = next.ID().Ptr()
		o.status = InProgress
		return
	}

	o.status = Completed
}

// ProgressPercentage is the position of the current process within seq,
// scaled to 0..100. It reads 100 as soon as the last process is current, even
// before that process is closed, so it can disagree with Status.
func (o *Order) ProgressPercentage(seq process.Sequence) int {
	return PositionPercentage(seq, o.currentProcess)
}

// PositionPercentage computes the progress of an order pointing at current.
// It is shared with read models that do not hydrate the aggregate.
//
// Parameters:
//   - seq: the registry, already sorted
//   - current: the current process, nil for none
//
// Returns:
//   - int: round(index / (len-1) * 100); 0 for an empty registry, a nil or
//     unknown process; a single process registry reads 0
//
// Example:
//
//	// Cut, Weld, Paint with Weld current
//	order.PositionPercentage(seq, weldID.Ptr()) // 50
func PositionPercentage(seq process.Sequence, current *kernel.UUID) int {
	if seq.IsEmpty() || current == nil {
		return 0
	}

	idx, ok := seq.IndexOf(*current)
	if !ok {
		return 0
	}

	denominator := max(seq.Len()-1, 1)
	return int(math.Round(float64(idx) / float64(denominator) * 100))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNo(orderNo string) error {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return errs.NewValueIsRequiredError("order_no")
	}
	if n := utf8.RuneCountInString(orderNo); n > MaxOrderNoLength {
		return errs.NewValueIsOutOfRangeError("order_no length", n, 1, MaxOrderNoLength)
	}
	o.orderNo = orderNo
	return nil
}

func (o *Order) setProductName(productName string) error {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return errs.NewValueIsRequiredError("product_name")
	}
	if n := utf8.RuneCountInString(productName); n > MaxProductNameLength {
		return errs.NewValueIsOutOfRangeError("product_name length", n, 1, MaxProductNameLength)
	}
	o.productName = productName
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, math.MaxInt32)
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setDueDate(dueDate time.Time) error {
	if dueDate.IsZero() {
		return errs.NewValueIsRequiredError("due_date")
	}
	y, m, d := dueDate.Date()
	o.dueDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return nil
}
