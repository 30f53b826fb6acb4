package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDays         = errors.New("days must be between 1 and 60")
	ErrUpstreamInvalid     = errors.New("meta response invalid")
	ErrUpstreamTimeout     = errors.New("meta request timed out")
	ErrUpstreamUnavailable = errors.New("meta request failed")
)

// UpstreamError é um status de erro devolvido pela API da Meta.
// Body guarda o JSON recebido sem alterações.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("meta api returned status %d: %s", e.StatusCode, e.Body)
}
