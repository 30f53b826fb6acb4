package metaclient

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

import (
	"context"
	"net/http"
	"strings"

	metadomain "github.com/vfg2006/ads-insights-gateway/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-gateway/internal/config"
	"github.com/vfg2006/ads-insights-gateway/internal/domain"
)

const (
	LevelCampaign = "campaign"
	LevelAd       = "ad"
)

type Client interface {
	GetInsights(ctx context.Context, req InsightsRequest) (*metadomain.InsightsResponse, error)
}

// HTTPClient permite trocar o transporte nos testes
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// InsightsRequest descreve uma consulta ao endpoint /insights de uma conta
type InsightsRequest struct {
	AccessToken string
	TimeRange   domain.DateRange
	Level       string // vazio para o nível de conta
	Fields      []string
}

type MetaClient struct {
	Cfg  *config.Config
	HTTP HTTPClient
}

func NewClient(cfg *config.Config, httpClient HTTPClient) Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &MetaClient{
		Cfg:  cfg,
		HTTP: httpClient,
	}
}

// NormalizeAccountID garante o prefixo act_ exigido pela Graph API
func NormalizeAccountID(accountID string) string {
	accountID = strings.TrimSpace(accountID)
	if strings.HasPrefix(accountID, "act_") {
		return accountID
	}
	return "act_" + accountID
}
