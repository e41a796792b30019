package http

import (
	"errors"
	"net/http"

	"progress/internal/core/application/usecases/commands"
	"progress/internal/core/domain/services"
	"progress/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var (
	errInvalidOrderID   = errors.New("invalid order id")
	errInvalidProcessID = errors.New("invalid process id")
	errInvalidWorkerID  = errors.New("invalid worker id")
)

var conflictErrors = []error{
	services.ErrAlreadyInProgress,
	services.ErrPrecedingProcessIncomplete,
	services.ErrNotStarted,
	services.ErrProcessMismatch,
	commands.ErrDuplicateOrderNo,
	commands.ErrDuplicateEmployeeID,
	errs.ErrObjectAlreadyExists,
}

var validationErrors = []error{
	errs.ErrValueIsInvalid,
	errs.ErrValueIsRequired,
	errs.ErrValueIsOutOfRange,
	commands.ErrOrderNoIsRequired,
	commands.ErrProductNameIsRequired,
	commands.ErrQuantityIsInvalid,
	commands.ErrDueDateIsRequired,
	commands.ErrProcessNameIsRequired,
	commands.ErrProcessPositionInvalid,
	commands.ErrEmployeeIDIsRequired,
	commands.ErrWorkerNameIsRequired,
	commands.ErrPasswordIsRequired,
}

// statusOf maps a use case error to its HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case isAny(err, conflictErrors):
		return http.StatusConflict
	case isAny(err, validationErrors):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// fail writes err as an Error body. Unexpected errors are logged and their
// text is not sent to the client.
func (s *Server) fail(ctx echo.Context, err error, action string) error {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Failed to "+action, "error", err)
		return ctx.JSON(status, Error{
			Code:    status,
			Message: "Failed to " + action,
		})
	}
	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
