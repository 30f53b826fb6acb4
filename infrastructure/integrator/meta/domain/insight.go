package metadomain

// InsightRow é uma linha do endpoint /insights. Só os campos lidos pela
// normalização são mapeados; o conjunto preenchido depende do level pedido.
type InsightRow struct {
	AccountCurrency *string  `json:"account_currency"`
	AdID            string   `json:"ad_id"`
	AdName          string   `json:"ad_name"`
	Actions         []Action `json:"actions"`
	CampaignID      string   `json:"campaign_id"`
	CampaignName    string   `json:"campaign_name"`
	Clicks          Numeric  `json:"clicks"`
	CPC             Numeric  `json:"cpc"`
	CPM             Numeric  `json:"cpm"`
	CTR             Numeric  `json:"ctr"`
	DateStart       string   `json:"date_start"`
	DateStop        string   `json:"date_stop"`
	Impressions     Numeric  `json:"impressions"`
	Objective       string   `json:"objective"`
	Reach           Numeric  `json:"reach"`
	Spend           Numeric  `json:"spend"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}

type InsightsResponse struct {
	Data   []InsightRow `json:"data"`
	Paging Paging       `json:"paging"`
}

// HasNextPage indica que a Meta tem mais linhas além desta página
func (r *InsightsResponse) HasNextPage() bool {
	return r.Paging.Next != ""
}
