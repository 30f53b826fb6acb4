package domain

// Metrics contém os campos comuns das linhas normalizadas de campanha e anúncio
type Metrics struct {
	Impressions int      `json:"impressions" yaml:"impressions"`
	Reach       int      `json:"reach" yaml:"reach"`
	Clicks      int      `json:"clicks" yaml:"clicks"`
	Spend       float64  `json:"spend" yaml:"spend"`
	CPC         float64  `json:"cpc" yaml:"cpc"`
	CPM         float64  `json:"cpm" yaml:"cpm"`
	CTR         float64  `json:"ctr" yaml:"ctr"`
	Leads       int      `json:"leads" yaml:"leads"`
	CPL         *float64 `json:"cpl" yaml:"cpl"` // nil quando não há leads
	VideoViews  int      `json:"video_views" yaml:"video_views"`
}

type CampaignMetrics struct {
	CampaignID   string `json:"campaign_id" yaml:"campaign_id"`
	CampaignName string `json:"campaign_name" yaml:"campaign_name"`
	Objective    string `json:"objective" yaml:"objective"`
	Metrics      `yaml:",inline"`
}

type AdMetrics struct {
	AdID    string `json:"ad_id" yaml:"ad_id"`
	AdName  string `json:"ad_name" yaml:"ad_name"`
	Metrics `yaml:",inline"`
}

// AccountSpend é o gasto consolidado da conta de anúncios
type AccountSpend struct {
	Amount   float64 `json:"amount" yaml:"amount"`
	Currency *string `json:"currency" yaml:"currency"`
}

type CampaignReport struct {
	Since     string            `json:"since" yaml:"since"`
	Until     string            `json:"until" yaml:"until"`
	Campaigns []CampaignMetrics `json:"campaigns" yaml:"campaigns"`
}

type AdReport struct {
	Since string      `json:"since" yaml:"since"`
	Until string      `json:"until" yaml:"until"`
	Ads   []AdMetrics `json:"ads" yaml:"ads"`
}

// CostPerLead retorna spend/leads, ou nil quando leads é zero
func CostPerLead(spend float64, leads int) *float64 {
	if leads <= 0 {
		return nil
	}

	cpl := spend / float64(leads)
	return &cpl
}
