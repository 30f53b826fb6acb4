package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-insights-gateway/internal/api/handler/router"
	"github.com/vfg2006/ads-insights-gateway/internal/domain"
	"github.com/vfg2006/ads-insights-gateway/internal/usecases/authenticating"
	"github.com/vfg2006/ads-insights-gateway/internal/usecases/insighting/mocks"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockReporter) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	gate := authenticating.NewAPIKeyGate("secret", "meta-token")

	rt := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Insights(reporter, gate)...),
	)
	return rt, reporter
}

func doRequest(handler http.Handler, target, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestGetSpendToday(t *testing.T) {
	rt, reporter := newTestRouter(t)
	currency := "USD"

	reporter.EXPECT().
		GetSpendToday(gomock.Any(), "meta-token").
		Return(&domain.AccountSpend{Amount: 12.5, Currency: &currency}, nil)

	rec := doRequest(rt, "/spend/today", "Bearer secret")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"amount":12.5,"currency":"USD"}`, rec.Body.String())
}

func TestGetSpendToday_NullCurrency(t *testing.T) {
	rt, reporter := newTestRouter(t)

	reporter.EXPECT().GetSpendToday(gomock.Any(), gomock.Any()).Return(&domain.AccountSpend{}, nil)

	rec := doRequest(rt, "/spend/today", "Bearer secret")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"amount":0,"currency":null}`, rec.Body.String())
}

func TestGetCampaignInsights_DefaultDays(t *testing.T) {
	rt, reporter := newTestRouter(t)
	cpl := 5.0

	reporter.EXPECT().
		GetCampaignInsights(gomock.Any(), "meta-token", 7).
		Return(&domain.CampaignReport{
			Since: "2026-10-09",
			Until: "2026-10-15",
			Campaigns: []domain.CampaignMetrics{{
				CampaignID:   "1",
				CampaignName: "C",
				Objective:    "LEADS",
				Metrics:      domain.Metrics{Spend: 20, Leads: 4, CPL: &cpl},
			}},
		}, nil)

	rec := doRequest(rt, "/insights/campaigns", "Bearer secret")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-10-09", body["since"])
	assert.Equal(t, "2026-10-15", body["until"])

	campaigns := body["campaigns"].([]any)
	require.Len(t, campaigns, 1)
	row := campaigns[0].(map[string]any)
	assert.Equal(t, "1", row["campaign_id"])
	assert.Equal(t, float64(4), row["leads"])
	assert.Equal(t, 5.0, row["cpl"])
}

func TestGetAdInsights_ExplicitDays(t *testing.T) {
	rt, reporter := newTestRouter(t)

	reporter.EXPECT().
		GetAdInsights(gomock.Any(), "meta-token", 30).
		Return(&domain.AdReport{Since: "2026-09-16", Until: "2026-10-15", Ads: []domain.AdMetrics{}}, nil)

	rec := doRequest(rt, "/insights/ads?days=30", "Bearer secret")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"since":"2026-09-16","until":"2026-10-15","ads":[]}`, rec.Body.String())
}

func TestInsights_DaysNotInteger(t *testing.T) {
	rt, _ := newTestRouter(t)

	rec := doRequest(rt, "/insights/ads?days=abc", "Bearer secret")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_003")
}

func TestInsights_Unauthorized(t *testing.T) {
	rt, _ := newTestRouter(t)

	assert.Equal(t, http.StatusUnauthorized, doRequest(rt, "/insights/campaigns", "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(rt, "/insights/campaigns", "Bearer").Code)
	assert.Equal(t, http.StatusForbidden, doRequest(rt, "/spend/today", "Bearer nope").Code)
}

func TestHealthcheckIsPublic(t *testing.T) {
	rt, _ := newTestRouter(t)

	rec := doRequest(rt, "/healthcheck", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestWriteReportError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "erro da meta repassado",
			err:        &domain.UpstreamError{StatusCode: http.StatusBadRequest, Body: []byte(`{"error":"bad token"}`)},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"bad token"}`,
		},
		{
			name:       "days fora do intervalo",
			err:        errors.Wrap(domain.ErrInvalidDays, "got 61"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"code":"VAL_002","message":"days must be between 1 and 60"}`,
		},
		{
			name:       "resposta inválida",
			err:        errors.Wrap(domain.ErrUpstreamInvalid, "status 200"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"code":"SRV_002","message":"Meta response invalid"}`,
		},
		{
			name:       "indisponível",
			err:        errors.Wrap(domain.ErrUpstreamUnavailable, "connection refused"),
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"code":"SRV_003","message":"Meta unavailable"}`,
		},
		{
			name:       "timeout",
			err:        errors.Wrap(domain.ErrUpstreamTimeout, context.DeadlineExceeded.Error()),
			wantStatus: http.StatusGatewayTimeout,
			wantBody:   `{"code":"SRV_004","message":"Meta request timed out"}`,
		},
		{
			name:       "inesperado",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"code":"SRV_001","message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, reporter := newTestRouter(t)
			reporter.EXPECT().GetAdInsights(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := doRequest(rt, "/insights/ads", "Bearer secret")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
