package insighting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-gateway/internal/domain"
)

const (
	MinDays     = 1
	MaxDays     = 60
	DefaultDays = 7
)

// Service valida os parâmetros de cada relatório e delega a consulta à Meta.
// Não guarda estado entre requisições.
type Service struct {
	metaService MetaReporter
	now         func() time.Time
}

// NewService cria uma nova instância do serviço de insights
func NewService(metaService MetaReporter) *Service {
	return &Service{
		metaService: metaService,
		now:         time.Now,
	}
}

// WithClock troca o relógio usado para calcular o período
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) GetSpendToday(ctx context.Context, accessToken string) (*domain.AccountSpend, error) {
	dateRange := domain.NewDateRange(s.now(), 1)

	spend, err := s.metaService.GetAccountSpend(ctx, accessToken, dateRange)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"date":   dateRange.UntilString(),
		"amount": spend.Amount,
	}).Debug("insights: account spend retrieved")

	return spend, nil
}

func (s *Service) GetCampaignInsights(ctx context.Context, accessToken string, days int) (*domain.CampaignReport, error) {
	dateRange, err := s.dateRange(days)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.metaService.GetCampaignMetrics(ctx, accessToken, dateRange)
	if err != nil {
		return nil, err
	}

	return &domain.CampaignReport{
		Since:     dateRange.SinceString(),
		Until:     dateRange.UntilString(),
		Campaigns: campaigns,
	}, nil
}

func (s *Service) GetAdInsights(ctx context.Context, accessToken string, days int) (*domain.AdReport, error) {
	dateRange, err := s.dateRange(days)
	if err != nil {
		return nil, err
	}

	ads, err := s.metaService.GetAdMetrics(ctx, accessToken, dateRange)
	if err != nil {
		return nil, err
	}

	return &domain.AdReport{
		Since: dateRange.SinceString(),
		Until: dateRange.UntilString(),
		Ads:   ads,
	}, nil
}

// dateRange valida days antes de qualquer chamada à Meta
func (s *Service) dateRange(days int) (domain.DateRange, error) {
	if days < MinDays || days > MaxDays {
		return domain.DateRange{}, errors.Wrapf(domain.ErrInvalidDays, "got %d", days)
	}

	return domain.NewDateRange(s.now(), days), nil
}
