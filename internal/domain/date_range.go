package domain

import (
	"time"

	"github.com/vfg2006/ads-insights-gateway/pkg/utils"
)

// DateRange representa um intervalo fechado de datas de calendário
type DateRange struct {
	Since time.Time
	Until time.Time
}

// NewDateRange retorna os últimos N dias terminando na data de now (inclusive).
// O chamador garante days >= 1.
func NewDateRange(now time.Time, days int) DateRange {
	until := utils.StartOfDay(now)
	return DateRange{
		Since: until.AddDate(0, 0, -(days - 1)),
		Until: until,
	}
}

func (d DateRange) SinceString() string {
	return utils.FormatDate(d.Since)
}

func (d DateRange) UntilString() string {
	return utils.FormatDate(d.Until)
}
