package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/vfg2006/ads-insights-gateway/internal/usecases/authenticating"
	"github.com/vfg2006/ads-insights-gateway/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-gateway/pkg/log"
)

type contextKey string

const (
	ContextKeyCredential contextKey = "credential"
)

// AuthMiddleware aplica o gate configurado e guarda a credencial no contexto
func AuthMiddleware(gate authenticating.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			credential, err := gate.Authorize(r.Header.Get("Authorization"))
			if err != nil {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"path":  r.URL.Path,
					"error": err.Error(),
				}).Warn("auth: request rejected")

				writeAuthError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyCredential, credential)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CredentialFromContext retorna a credencial resolvida pelo AuthMiddleware
func CredentialFromContext(ctx context.Context) (*authenticating.Credential, bool) {
	credential, ok := ctx.Value(ContextKeyCredential).(*authenticating.Credential)
	return credential, ok && credential != nil
}

func writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case authenticating.IsForbidden(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidAPIKey, "Invalid API key", nil)
	case errors.Is(err, authenticating.ErrMissingCredentials):
		apiErrors.WriteError(w, apiErrors.ErrMissingCredentials, "Missing Authorization header", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrMalformedCredentials, "Invalid Authorization header", nil)
	}
}
