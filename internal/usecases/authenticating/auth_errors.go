package authenticating

import (
	"errors"
	"fmt"
)

// Erros de autenticação
var (
	ErrMissingCredentials   = errors.New("missing authorization header")
	ErrMalformedCredentials = errors.New("invalid authorization header")
	ErrInvalidAPIKey        = errors.New("invalid api key")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Policy  string // Política que rejeitou o header
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsUnauthenticated indica falhas que devem responder 401
func IsUnauthenticated(err error) bool {
	return errors.Is(err, ErrMissingCredentials) ||
		errors.Is(err, ErrMalformedCredentials)
}

// IsForbidden indica falhas que devem responder 403
func IsForbidden(err error) bool {
	return errors.Is(err, ErrInvalidAPIKey)
}

func newAuthError(baseErr error, policy string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Policy:  policy,
		Details: details,
	}
}
