package insighting

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"

	"github.com/vfg2006/ads-insights-gateway/internal/domain"
)

// MetaReporter define a interface para obter relatórios de insights da Meta
type MetaReporter interface {
	// GetAccountSpend obtém o gasto da conta de anúncios no período
	GetAccountSpend(ctx context.Context, accessToken string, dateRange domain.DateRange) (*domain.AccountSpend, error)

	// GetCampaignMetrics obtém as métricas normalizadas por campanha
	GetCampaignMetrics(ctx context.Context, accessToken string, dateRange domain.DateRange) ([]domain.CampaignMetrics, error)

	// GetAdMetrics obtém as métricas normalizadas por anúncio
	GetAdMetrics(ctx context.Context, accessToken string, dateRange domain.DateRange) ([]domain.AdMetrics, error)
}

// Reporter é a interface exposta para os handlers HTTP e a CLI
type Reporter interface {
	// GetSpendToday retorna o gasto de hoje da conta configurada
	GetSpendToday(ctx context.Context, accessToken string) (*domain.AccountSpend, error)

	// GetCampaignInsights retorna as métricas por campanha dos últimos N dias
	GetCampaignInsights(ctx context.Context, accessToken string, days int) (*domain.CampaignReport, error)

	// GetAdInsights retorna as métricas por anúncio dos últimos N dias
	GetAdInsights(ctx context.Context, accessToken string, days int) (*domain.AdReport, error)
}
