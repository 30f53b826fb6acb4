package handler

import (
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-insights-gateway/internal/domain"
	"github.com/vfg2006/ads-insights-gateway/internal/usecases/insighting"
	"github.com/vfg2006/ads-insights-gateway/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-gateway/pkg/log"
	"github.com/vfg2006/ads-insights-gateway/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func GetSpendToday(service insighting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("report", "spend")

		credential, ok := middleware.CredentialFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingCredentials, "Missing Authorization header", nil)
			return
		}

		spend, err := service.GetSpendToday(r.Context(), credential.AccessToken)
		if err != nil {
			writeReportError(w, logger, err)
			return
		}

		logger.Info("insights: account spend retrieved")
		writeJSON(w, logger, spend)
	})
}

func GetCampaignInsights(service insighting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("report", "campaigns")

		credential, ok := middleware.CredentialFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingCredentials, "Missing Authorization header", nil)
			return
		}

		days, err := parseDays(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("insights: invalid days parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "days must be an integer", nil)
			return
		}

		report, err := service.GetCampaignInsights(r.Context(), credential.AccessToken, days)
		if err != nil {
			writeReportError(w, logger.WithField("days", days), err)
			return
		}

		logger.WithFields(log.Fields{
			"days":      days,
			"campaigns": len(report.Campaigns),
		}).Info("insights: campaign insights retrieved")
		writeJSON(w, logger, report)
	})
}

func GetAdInsights(service insighting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("report", "ads")

		credential, ok := middleware.CredentialFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingCredentials, "Missing Authorization header", nil)
			return
		}

		days, err := parseDays(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("insights: invalid days parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "days must be an integer", nil)
			return
		}

		report, err := service.GetAdInsights(r.Context(), credential.AccessToken, days)
		if err != nil {
			writeReportError(w, logger.WithField("days", days), err)
			return
		}

		logger.WithFields(log.Fields{
			"days": days,
			"ads":  len(report.Ads),
		}).Info("insights: ad insights retrieved")
		writeJSON(w, logger, report)
	})
}

// parseDays lê ?days=N; ausente vale DefaultDays. O intervalo é validado no serviço.
func parseDays(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return insighting.DefaultDays, nil
	}
	return strconv.Atoi(raw)
}

// writeReportError traduz os erros do relatório para status HTTP.
// Erros reportados pela Meta são repassados com o status e o corpo originais.
func writeReportError(w http.ResponseWriter, logger log.Logger, err error) {
	var upstreamErr *domain.UpstreamError
	if errors.As(err, &upstreamErr) {
		logger.WithFields(log.Fields{
			"status_code": upstreamErr.StatusCode,
			"error":       err.Error(),
		}).Warn("insights: relaying meta error")
		apiErrors.WriteRaw(w, upstreamErr.StatusCode, upstreamErr.Body)
		return
	}

	logger = logger.WithField("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrInvalidDays):
		logger.Warn("insights: days out of range")
		apiErrors.WriteError(w, apiErrors.ErrInvalidDays, domain.ErrInvalidDays.Error(), nil)
	case errors.Is(err, domain.ErrUpstreamInvalid):
		logger.Error("insights: invalid meta response")
		apiErrors.WriteError(w, apiErrors.ErrUpstreamInvalid, "Meta response invalid", nil)
	case errors.Is(err, domain.ErrUpstreamTimeout):
		logger.Error("insights: meta request timed out")
		apiErrors.WriteError(w, apiErrors.ErrUpstreamTimeout, "Meta request timed out", nil)
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		logger.Error("insights: meta unavailable")
		apiErrors.WriteError(w, apiErrors.ErrUpstreamUnavailable, "Meta unavailable", nil)
	default:
		logger.Error("insights: unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error", nil)
	}
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithField("error", err.Error()).Error("insights: failed to encode response")
	}
}
