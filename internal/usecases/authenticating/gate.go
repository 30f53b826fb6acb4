package authenticating

//go:generate mockgen -source=gate.go -destination=mocks/mock_gate.go -package=mocks

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/vfg2006/ads-insights-gateway/internal/config"
)

// Credential é o token que será repassado à Meta
type Credential struct {
	AccessToken string
	Policy      string
}

// Gate valida o header Authorization de uma requisição
type Gate interface {
	Authorize(header string) (*Credential, error)
}

// NewGate escolhe a política configurada em AUTH_POLICY
func NewGate(cfg *config.Config) (Gate, error) {
	switch cfg.Auth.Policy {
	case config.AuthPolicyAPIKey:
		return NewAPIKeyGate(cfg.Auth.APIKey, cfg.Meta.AccessToken), nil
	case config.AuthPolicyBearer:
		return NewBearerGate(), nil
	default:
		return nil, fmt.Errorf("authenticating: unknown auth policy %q", cfg.Auth.Policy)
	}
}

// APIKeyGate aceita "<qualquer esquema> <API_KEY>" e usa o token configurado da Meta
type APIKeyGate struct {
	apiKey      []byte
	accessToken string
}

func NewAPIKeyGate(apiKey, accessToken string) *APIKeyGate {
	return &APIKeyGate{
		apiKey:      []byte(apiKey),
		accessToken: accessToken,
	}
}

func (g *APIKeyGate) Authorize(header string) (*Credential, error) {
	value, err := splitHeader(header, config.AuthPolicyAPIKey)
	if err != nil {
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(value[1]), g.apiKey) != 1 {
		return nil, newAuthError(ErrInvalidAPIKey, config.AuthPolicyAPIKey, "")
	}

	return &Credential{AccessToken: g.accessToken, Policy: config.AuthPolicyAPIKey}, nil
}

// BearerGate repassa o token do chamador; a validação fica com a Meta
type BearerGate struct{}

func NewBearerGate() *BearerGate {
	return &BearerGate{}
}

func (g *BearerGate) Authorize(header string) (*Credential, error) {
	value, err := splitHeader(header, config.AuthPolicyBearer)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(value[0], "bearer") {
		return nil, newAuthError(ErrMalformedCredentials, config.AuthPolicyBearer, "expected Bearer scheme")
	}

	return &Credential{AccessToken: value[1], Policy: config.AuthPolicyBearer}, nil
}

func splitHeader(header, policy string) ([]string, error) {
	if strings.TrimSpace(header) == "" {
		return nil, newAuthError(ErrMissingCredentials, policy, "")
	}

	parts := strings.Fields(header)
	if len(parts) != 2 {
		return nil, newAuthError(ErrMalformedCredentials, policy, fmt.Sprintf("expected 2 parts, got %d", len(parts)))
	}

	return parts, nil
}
