package domain

// AccountDrilldown agrega as métricas de uma conta (ou do conjunto de contas,
// no caso do Google) para o período inteiro, com os derivados calculados por
// razão de somas: uma única divisão sobre os totais, nunca média de razões
// por linha.
type AccountDrilldown struct {
	AccountID   string  `json:"account_id"`
	AccountName string  `json:"account_name"`
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	CPM         float64 `json:"cpm"`
	Conversions float64 `json:"conversions"`
}

// DrilldownResponse combina o drilldown das duas plataformas. O lado Google
// vem consolidado em um único registro (identidades concatenadas); o lado Meta
// traz um registro por conta de anúncio.
type DrilldownResponse struct {
	Google *AccountDrilldown  `json:"google"`
	Meta   []AccountDrilldown `json:"meta"`
}
