package commands

import (
	"errors"
	"strings"
	"time"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/pkg/guard"
)

var (
	ErrRegisterOrderCommandIsNotConstructed = errors.New(
		"RegisterOrderCommand must be created via NewRegisterOrderCommand constructor",
	)
	ErrOrderNoIsRequired     = errors.New("order_no is required")
	ErrProductNameIsRequired = errors.New("product_name is required")
	ErrQuantityIsInvalid     = errors.New("quantity must not be negative")
	ErrDueDateIsRequired     = errors.New("due_date is required")
)

// RegisterOrderCommand represents a request to register a new production order.
//
// Example:
//
//	cmd, err := NewRegisterOrderCommand(kernel.NewUUID(), "O-100", "Bracket", 20, due)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); errors.Is(err, ErrDuplicateOrderNo) {
//	    // order_no is taken
//	}
type RegisterOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	orderNo     string
	productName string
	quantity    int
	dueDate     time.Time

	guard guard.ConstructorGuard
}

// NewRegisterOrderCommand checks the request shape. Length limits and the
// uniqueness of orderNo are checked later by the aggregate and the handler.
//
// Parameters:
//   - orderID: identifier of the new order
//   - orderNo: required business number
//   - productName: required
//   - quantity: never negative
//   - dueDate: required
//
// Returns:
//   - RegisterOrderCommand: the validated command
//   - error: ErrOrderNoIsRequired, ErrProductNameIsRequired,
//     ErrQuantityIsInvalid and ErrDueDateIsRequired, joined
//
// Example:
//
//	cmd, err := commands.NewRegisterOrderCommand(kernel.NewUUID(), "O-100", "Bracket", 20, due)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
func NewRegisterOrderCommand(
	orderID kernel.UUID,
	orderNo, productName string,
	quantity int,
	dueDate time.Time,
) (RegisterOrderCommand, error) {
	cmd := RegisterOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderNo(orderNo),
		cmd.setProductName(productName),
		cmd.setQuantity(quantity),
		cmd.setDueDate(dueDate),
	); err != nil {
		return RegisterOrderCommand{}, err
	}

	return cmd, nil
}

func (c RegisterOrderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterOrderCommandIsNotConstructed)
}

func (c RegisterOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RegisterOrderCommand) OrderNo() string {
	return c.orderNo
}

func (c RegisterOrderCommand) ProductName() string {
	return c.productName
}

func (c RegisterOrderCommand) Quantity() int {
	return c.quantity
}

func (c RegisterOrderCommand) DueDate() time.Time {
	return c.dueDate
}

func (c *RegisterOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *RegisterOrderCommand) setOrderNo(orderNo string) error {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return ErrOrderNoIsRequired
	}
	c.orderNo = orderNo
	return nil
}

func (c *RegisterOrderCommand) setProductName(productName string) error {
	if strings.TrimSpace(productName) == "" {
		return ErrProductNameIsRequired
	}
	c.productName = productName
	return nil
}

func (c *RegisterOrderCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}

func (c *RegisterOrderCommand) setDueDate(dueDate time.Time) error {
	if dueDate.IsZero() {
		return ErrDueDateIsRequired
	}
	c.dueDate = dueDate
	return nil
}
