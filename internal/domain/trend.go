package domain

// TrendRow é uma linha da série diária reconciliada entre as três origens
// (spend Meta, spend Google, ledger de pedidos), alinhada por data via
// full outer join. Data presente em uma origem só aparece com as demais zeradas.
type TrendRow struct {
	Date       string  `json:"date"`
	TotalSpend float64 `json:"total_spend"`
	NetRevenue float64 `json:"net_revenue"`
	OrderCount int     `json:"order_count"`
}

// TrendSummary são os totais do período. AverageDailyMER mantém o nome do
// contrato da API embora seja receita total / spend total do período, e não uma
// média de MERs diários.
type TrendSummary struct {
	TotalSpend      float64 `json:"total_spend"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalOrders     int     `json:"total_orders"`
	AverageDailyMER float64 `json:"average_daily_mer"`
}

// TrendResponse é a resposta do endpoint de tendência diária
type TrendResponse struct {
	Data    []TrendRow   `json:"data"`
	Summary TrendSummary `json:"summary"`
}
