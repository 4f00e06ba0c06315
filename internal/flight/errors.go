package flight

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"flightservice/pkg/apperror"
)

// ValidationError reports the first search parameter rule that failed.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) AppError() *apperror.AppError {
	return apperror.New(http.StatusBadRequest, apperror.CodeValidation, e.Reason)
}

func invalid(reason string) error {
	return &ValidationError{Reason: reason}
}

type Leg string

const (
	LegOutbound Leg = "outbound"
	LegInbound  Leg = "inbound"
)

// UpstreamError wraps a failed fetch or an unusable payload for one leg.
type UpstreamError struct {
	Leg Leg
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s leg: %v", e.Leg, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func (e *UpstreamError) AppError() *apperror.AppError {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return apperror.Wrap(e, http.StatusGatewayTimeout, apperror.CodeTimeout,
			fmt.Sprintf("flight search timed out fetching the %s leg", e.Leg))
	}
	return apperror.Wrap(e, http.StatusBadGateway, apperror.CodeUpstreamFailure,
		fmt.Sprintf("flight search failed fetching the %s leg", e.Leg))
}
