package meta

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-gateway/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-insights-gateway/internal/config"
	"github.com/vfg2006/ads-insights-gateway/internal/domain"
)

var (
	accountSpendFields = []string{"spend", "account_currency"}

	campaignFields = []string{
		"campaign_id",
		"campaign_name",
		"objective",
		"impressions",
		"reach",
		"clicks",
		"spend",
		"cpc",
		"cpm",
		"ctr",
		"actions", // leads e video views
	}

	adFields = []string{
		"ad_id",
		"ad_name",
		"impressions",
		"reach",
		"clicks",
		"spend",
		"cpc",
		"cpm",
		"ctr",
		"actions",
	}
)

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetAccountSpend retorna o gasto da conta no período, usando só a primeira linha
func (s *MetaIntegrator) GetAccountSpend(ctx context.Context, accessToken string, dateRange domain.DateRange) (*domain.AccountSpend, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Meta.SpendTimeout)
	defer cancel()

	resp, err := s.Client.GetInsights(ctx, metaclient.InsightsRequest{
		AccessToken: accessToken,
		TimeRange:   dateRange,
		Fields:      accountSpendFields,
	})
	if err != nil {
		logrus.WithError(err).Error("insights: failed to get account spend from API")
		return nil, err
	}

	if len(resp.Data) > 1 {
		logrus.WithField("rows", len(resp.Data)).Debug("insights: account spend returned more than one row, using the first")
	}

	return FactoryAccountSpend(resp.Data)
}

func (s *MetaIntegrator) GetCampaignMetrics(ctx context.Context, accessToken string, dateRange domain.DateRange) ([]domain.CampaignMetrics, error) {
	ctx, cancel := context.WithTimeout(ctx, s.reportTimeout())
	defer cancel()

	resp, err := s.Client.GetInsights(ctx, metaclient.InsightsRequest{
		AccessToken: accessToken,
		TimeRange:   dateRange,
		Level:       metaclient.LevelCampaign,
		Fields:      campaignFields,
	})
	if err != nil {
		logrus.WithError(err).Error("insights: failed to get campaign insights from API")
		return nil, err
	}

	campaigns := make([]domain.CampaignMetrics, 0, len(resp.Data))
	for i := range resp.Data {
		campaign, err := FactoryCampaignMetrics(&resp.Data[i])
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": resp.Data[i].CampaignID,
				"error":       err.Error(),
			}).Error("insights: failed to normalize campaign row")
			return nil, err
		}
		campaigns = append(campaigns, *campaign)
	}

	logrus.WithField("campaigns", len(campaigns)).Debug("insights: campaign metrics normalized")

	return campaigns, nil
}

func (s *MetaIntegrator) GetAdMetrics(ctx context.Context, accessToken string, dateRange domain.DateRange) ([]domain.AdMetrics, error) {
	ctx, cancel := context.WithTimeout(ctx, s.reportTimeout())
	defer cancel()

	resp, err := s.Client.GetInsights(ctx, metaclient.InsightsRequest{
		AccessToken: accessToken,
		TimeRange:   dateRange,
		Level:       metaclient.LevelAd,
		Fields:      adFields,
	})
	if err != nil {
		logrus.WithError(err).Error("insights: failed to get ad insights from API")
		return nil, err
	}

	ads := make([]domain.AdMetrics, 0, len(resp.Data))
	for i := range resp.Data {
		ad, err := FactoryAdMetrics(&resp.Data[i])
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"ad_id": resp.Data[i].AdID,
				"error": err.Error(),
			}).Error("insights: failed to normalize ad row")
			return nil, err
		}
		ads = append(ads, *ad)
	}

	logrus.WithField("ads", len(ads)).Debug("insights: ad metrics normalized")

	return ads, nil
}

func (s *MetaIntegrator) reportTimeout() time.Duration {
	return s.cfg.Meta.ReportTimeout
}
