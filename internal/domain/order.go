package domain

// OrderRow é um pedido do ledger já normalizado. Datas resolvidas para
// YYYY-MM-DD ou vazias quando ausentes/inválidas; valores monetários parseados
// com fallback 0 (uma linha suja não pode derrubar a agregação inteira).
type OrderRow struct {
	ID                   string
	OrderNumber          string
	CreatedDate          string
	ProcessedDate        string
	Confirmed            bool
	TotalPrice           float64
	SubtotalPrice        float64
	TotalDiscounts       float64
	TotalTax             float64
	CurrentSubtotalPrice float64
	FinancialStatus      string
	FulfillmentStatus    string
	PaymentGatewayNames  any
	Refunds              any
	ShopURL              string
	CustomerEmail        string
}

// ResolvedDate retorna a data de referência do pedido: processed_at quando
// presente, senão created_at
func (o OrderRow) ResolvedDate() string {
	if o.ProcessedDate != "" {
		return o.ProcessedDate
	}
	return o.CreatedDate
}

// ConfirmedInRange indica se o pedido conta para os totais de pedidos/receita
func (o OrderRow) ConfirmedInRange(startDate, endDate string) bool {
	date := o.ResolvedDate()
	return o.Confirmed && date != "" && date >= startDate && date <= endDate
}

// OrderTotals é a resposta do KPI de pedidos confirmados
type OrderTotals struct {
	TotalOrders int `json:"total_orders"`
}

// RevenueTotals é a resposta do KPI de receita líquida
type RevenueTotals struct {
	NetRevenue float64 `json:"net_revenue"`
}

// ReturnTotals é a resposta do KPI de pedidos devolvidos
type ReturnTotals struct {
	ReturnOrders int `json:"return_orders"`
}

// MERBreakdown detalha o MER do período com os componentes do cálculo
type MERBreakdown struct {
	MER         float64 `json:"mer"`
	NetRevenue  float64 `json:"net_revenue"`
	TotalSpend  float64 `json:"total_spend"`
	MetaSpend   float64 `json:"meta_spend"`
	GoogleSpend float64 `json:"google_spend"`
}

// DailyOrderMetrics agrega receita e quantidade de pedidos confirmados por dia
type DailyOrderMetrics struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// OrderExportRecord é o registro plano por pedido para tabela/exportação
type OrderExportRecord struct {
	CreatedAt         string  `json:"created_at"`
	ProcessedAt       string  `json:"processed_at"`
	ID                string  `json:"id"`
	OrderNumber       string  `json:"order_number"`
	TotalPrice        float64 `json:"total_price"`
	SubtotalPrice     float64 `json:"subtotal_price"`
	TotalDiscounts    float64 `json:"total_discounts"`
	TotalTax          float64 `json:"total_tax"`
	FinancialStatus   string  `json:"financial_status"`
	FulfillmentStatus string  `json:"fulfillment_status"`
	PaymentGateway    string  `json:"payment_gateway"`
	RefundAmount      float64 `json:"refund_amount"`
	ShopURL           string  `json:"shop_url"`
	CustomerEmail     string  `json:"customer_email"`
}

// OrderExportResponse embrulha os registros de exportação
type OrderExportResponse struct {
	Success     bool                `json:"success"`
	TotalOrders int                 `json:"total_orders"`
	Data        []OrderExportRecord `json:"data"`
}

// Refund é a subestrutura JSON embutida na coluna refunds do pedido. Mantida
// isolada do parse da linha externa: JSON malformado aqui vira zero, nunca erro.
type Refund struct {
	OrderAdjustments []OrderAdjustment `json:"order_adjustments"`
}

// OrderAdjustment carrega o valor de um ajuste de devolução. O amount chega
// como string decimal no ledger.
type OrderAdjustment struct {
	Amount any `json:"amount"`
}
