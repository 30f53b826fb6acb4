package cli

import (
	"errors"
	"fmt"

	"github.com/vfg2006/ads-insights-gateway/internal/domain"
)

const (
	ExitCodeUnknown = 1
	ExitCodeConfig  = 2
	ExitCodeInput   = 4
	ExitCodeAPI     = 5
)

type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("command failed with exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func WrapExit(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: code, Err: err}
}

// reportExit classifica erros de relatório em códigos de saída
func reportExit(err error) error {
	var upstreamErr *domain.UpstreamError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrInvalidDays):
		return WrapExit(ExitCodeInput, err)
	case errors.As(err, &upstreamErr),
		errors.Is(err, domain.ErrUpstreamInvalid),
		errors.Is(err, domain.ErrUpstreamTimeout),
		errors.Is(err, domain.ErrUpstreamUnavailable):
		return WrapExit(ExitCodeAPI, err)
	default:
		return WrapExit(ExitCodeUnknown, err)
	}
}
