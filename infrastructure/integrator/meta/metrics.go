package meta

import (
	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-insights-gateway/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-gateway/internal/domain"
)

// FactoryAccountSpend converte a resposta de gasto da conta. Sem linhas, o gasto é zero
// e a moeda fica ausente.
func FactoryAccountSpend(rows []metadomain.InsightRow) (*domain.AccountSpend, error) {
	if len(rows) == 0 {
		return &domain.AccountSpend{}, nil
	}

	row := rows[0]

	spend, err := floatField("spend", row.Spend)
	if err != nil {
		return nil, err
	}

	return &domain.AccountSpend{
		Amount:   spend,
		Currency: row.AccountCurrency,
	}, nil
}

func FactoryCampaignMetrics(row *metadomain.InsightRow) (*domain.CampaignMetrics, error) {
	metrics, err := factoryMetrics(row)
	if err != nil {
		return nil, err
	}

	return &domain.CampaignMetrics{
		CampaignID:   row.CampaignID,
		CampaignName: row.CampaignName,
		Objective:    row.Objective,
		Metrics:      metrics,
	}, nil
}

func FactoryAdMetrics(row *metadomain.InsightRow) (*domain.AdMetrics, error) {
	metrics, err := factoryMetrics(row)
	if err != nil {
		return nil, err
	}

	return &domain.AdMetrics{
		AdID:    row.AdID,
		AdName:  row.AdName,
		Metrics: metrics,
	}, nil
}

// factoryMetrics aplica 0 para campos ausentes ou null. Um valor presente e
// inválido é erro de resposta da Meta; só as ações são toleradas.
func factoryMetrics(row *metadomain.InsightRow) (domain.Metrics, error) {
	var (
		metrics domain.Metrics
		err     error
	)

	if metrics.Impressions, err = intField("impressions", row.Impressions); err != nil {
		return domain.Metrics{}, err
	}
	if metrics.Reach, err = intField("reach", row.Reach); err != nil {
		return domain.Metrics{}, err
	}
	if metrics.Clicks, err = intField("clicks", row.Clicks); err != nil {
		return domain.Metrics{}, err
	}
	if metrics.Spend, err = floatField("spend", row.Spend); err != nil {
		return domain.Metrics{}, err
	}
	if metrics.CPC, err = floatField("cpc", row.CPC); err != nil {
		return domain.Metrics{}, err
	}
	if metrics.CPM, err = floatField("cpm", row.CPM); err != nil {
		return domain.Metrics{}, err
	}
	if metrics.CTR, err = floatField("ctr", row.CTR); err != nil {
		return domain.Metrics{}, err
	}

	metrics.Leads = metadomain.SumActions(row.Actions, metadomain.ActionTypeLead)
	metrics.VideoViews = metadomain.SumActions(row.Actions, metadomain.ActionTypeVideoView)
	metrics.CPL = domain.CostPerLead(metrics.Spend, metrics.Leads)

	return metrics, nil
}

func intField(name string, value metadomain.Numeric) (int, error) {
	parsed, err := value.Int()
	if err != nil {
		return 0, errors.Wrapf(domain.ErrUpstreamInvalid, "field %s=%q is not an integer", name, value.String())
	}
	return parsed, nil
}

func floatField(name string, value metadomain.Numeric) (float64, error) {
	parsed, err := value.Float()
	if err != nil {
		return 0, errors.Wrapf(domain.ErrUpstreamInvalid, "field %s=%q is not a number", name, value.String())
	}
	return parsed, nil
}
