package normalizing

import (
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/warehouse"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

// GoogleRowFromValues constrói a linha normalizada a partir do schema do
// account_performance_report (campos metrics_* e segments_date, custo em
// micros). Retorna ok=false quando a data não resolve — a linha é descartada.
func GoogleRowFromValues(row warehouse.Row) (domain.AdMetricRow, bool) {
	date, ok := NormalizeDate(row["segments_date"])
	if !ok {
		return domain.AdMetricRow{}, false
	}

	return domain.AdMetricRow{
		Platform:    domain.PlatformGoogle,
		Date:        date,
		Spend:       MicrosToStandard(row["metrics_cost_micros"]),
		Clicks:      ToInt(row["metrics_clicks"]),
		Impressions: ToInt(row["metrics_impressions"]),
		Conversions: ToFloat(row["metrics_conversions"]),
		AccountID:   ToString(row["customer_id"]),
		AccountName: ToString(row["customer_descriptive_name"]),
	}, true
}

// MetaRowFromValues constrói a linha normalizada a partir do schema do
// ads_insights (date_start, spend em unidade padrão — sem conversão de micros)
func MetaRowFromValues(row warehouse.Row) (domain.AdMetricRow, bool) {
	date, ok := NormalizeDate(row["date_start"])
	if !ok {
		return domain.AdMetricRow{}, false
	}

	return domain.AdMetricRow{
		Platform:    domain.PlatformMeta,
		Date:        date,
		Spend:       ToFloat(row["spend"]),
		Clicks:      ToInt(row["clicks"]),
		Impressions: ToInt(row["impressions"]),
		Conversions: ToFloat(row["conversions"]),
		AccountID:   ToString(row["account_id"]),
		AccountName: ToString(row["account_name"]),
	}, true
}

// AdRowsFromValues aplica o parser da plataforma linha a linha, descartando as
// que não têm data resolvível
func AdRowsFromValues(rows []warehouse.Row, platform domain.Platform) []domain.AdMetricRow {
	parse := GoogleRowFromValues
	if platform == domain.PlatformMeta {
		parse = MetaRowFromValues
	}

	parsed := make([]domain.AdMetricRow, 0, len(rows))
	for _, row := range rows {
		adRow, ok := parse(row)
		if !ok {
			continue
		}
		parsed = append(parsed, adRow)
	}

	return parsed
}

// OrderRowFromValues constrói o pedido normalizado. Diferente das linhas de
// mídia, pedido sem data resolvível é mantido (datas vazias), porque a
// classificação em intervalo acontece depois, por operação.
func OrderRowFromValues(row warehouse.Row) domain.OrderRow {
	createdDate, _ := NormalizeDate(row["created_at"])
	processedDate, _ := NormalizeDate(row["processed_at"])

	orderNumber := ToString(row["order_number"])
	if orderNumber == "" {
		orderNumber = ToString(row["number"])
	}

	customerEmail := ToString(row["email"])
	if customerEmail == "" {
		customerEmail = ToString(row["contact_email"])
	}

	return domain.OrderRow{
		ID:                   ToString(row["id"]),
		OrderNumber:          orderNumber,
		CreatedDate:          createdDate,
		ProcessedDate:        processedDate,
		Confirmed:            ToBool(row["confirmed"]),
		TotalPrice:           ToFloat(row["total_price"]),
		SubtotalPrice:        ToFloat(row["subtotal_price"]),
		TotalDiscounts:       ToFloat(row["total_discounts"]),
		TotalTax:             ToFloat(row["total_tax"]),
		CurrentSubtotalPrice: ToFloat(row["current_subtotal_price"]),
		FinancialStatus:      ToString(row["financial_status"]),
		FulfillmentStatus:    ToString(row["fulfillment_status"]),
		PaymentGatewayNames:  row["payment_gateway_names"],
		Refunds:              row["refunds"],
		ShopURL:              ToString(row["shop_url"]),
		CustomerEmail:        customerEmail,
	}
}

// OrderRowsFromValues normaliza o ledger inteiro
func OrderRowsFromValues(rows []warehouse.Row) []domain.OrderRow {
	orders := make([]domain.OrderRow, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, OrderRowFromValues(row))
	}

	return orders
}
