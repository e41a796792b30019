package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"progress/internal/core/domain/model/order"
	"progress/internal/pkg/errs"
)

// ErrDuplicateOrderNo is returned when an order with the same order_no exists.
var ErrDuplicateOrderNo = errors.New("order_no already exists")

// RegisterOrderCommandHandler creates an order pointing at the first process
// of the registry, in NotStarted status.
type RegisterOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewRegisterOrderCommandHandler(uowFactory OrderUoWFactory) RegisterOrderCommandHandler {
	return RegisterOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle checks order_no up front and again through the unique index, so a
// concurrent registration of the same number also ends in ErrDuplicateOrderNo.
func (h *RegisterOrderCommandHandler) Handle(ctx context.Context, cmd RegisterOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	exists, err := orderRepo.ExistsByOrderNo(ctx, cmd.OrderNo())
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrDuplicateOrderNo, cmd.OrderNo())
	}

	seq, err := uow.ProcessRepository().Sequence(ctx)
	if err != nil {
		return err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OrderNo(),
		cmd.ProductName(),
		cmd.Quantity(),
		cmd.DueDate(),
		seq,
		h.now(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return fmt.Errorf("%w: %s", ErrDuplicateOrderNo, cmd.OrderNo())
		}
		return err
	}

	return uow.Commit(ctx)
}
