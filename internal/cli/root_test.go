package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-insights-gateway/internal/domain"
	"github.com/vfg2006/ads-insights-gateway/internal/usecases/insighting"
	"github.com/vfg2006/ads-insights-gateway/internal/usecases/insighting/mocks"
	"go.uber.org/mock/gomock"
)

func runCommand(t *testing.T, reporter insighting.Reporter, args ...string) (string, error) {
	factory := func(flags *GlobalFlags) (insighting.Reporter, string, error) {
		token := flags.Token
		if token == "" {
			token = "env-token"
		}
		return reporter, token, nil
	}

	root := NewRootCommand(factory)
	stdout := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), err
}

func TestSpendCommand_JSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	currency := "BRL"

	reporter.EXPECT().
		GetSpendToday(gomock.Any(), "env-token").
		Return(&domain.AccountSpend{Amount: 42.1, Currency: &currency}, nil)

	out, err := runCommand(t, reporter, "spend")
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":42.1,"currency":"BRL"}`, out)
}

func TestCampaignsCommand_YAML(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	cpl := 5.0

	reporter.EXPECT().
		GetCampaignInsights(gomock.Any(), "cli-token", 14).
		Return(&domain.CampaignReport{
			Since: "2026-10-02",
			Until: "2026-10-15",
			Campaigns: []domain.CampaignMetrics{{
				CampaignID: "1",
				Metrics:    domain.Metrics{Leads: 4, Spend: 20, CPL: &cpl},
			}},
		}, nil)

	out, err := runCommand(t, reporter, "campaigns", "--days", "14", "--token", "cli-token", "--output", "yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "2026-10-02")
	assert.Contains(t, out, "campaign_id:")
	assert.Contains(t, out, "leads: 4")
	assert.Contains(t, out, "cpl: 5")
}

func TestAdsCommand_DefaultDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)

	reporter.EXPECT().
		GetAdInsights(gomock.Any(), "env-token", insighting.DefaultDays).
		Return(&domain.AdReport{Ads: []domain.AdMetrics{}}, nil)

	_, err := runCommand(t, reporter, "ads")
	require.NoError(t, err)
}

func TestCommand_ExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "days inválido", err: domain.ErrInvalidDays, wantCode: ExitCodeInput},
		{name: "erro da meta", err: &domain.UpstreamError{StatusCode: 400, Body: []byte(`{}`)}, wantCode: ExitCodeAPI},
		{name: "timeout", err: domain.ErrUpstreamTimeout, wantCode: ExitCodeAPI},
		{name: "desconhecido", err: errors.New("boom"), wantCode: ExitCodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reporter := mocks.NewMockReporter(ctrl)
			reporter.EXPECT().GetAdInsights(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			_, err := runCommand(t, reporter, "ads", "--days", "61")

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, tt.wantCode, exitErr.Code)
		})
	}
}

func TestInvalidOutputFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)

	_, err := runCommand(t, reporter, "spend", "--output", "csv")

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitCodeInput, exitErr.Code)
}
