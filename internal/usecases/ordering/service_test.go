package ordering_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/marketing-dashboard-api/infrastructure/warehouse"
	whmocks "github.com/vfg2006/marketing-dashboard-api/infrastructure/warehouse/mocks"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	insmocks "github.com/vfg2006/marketing-dashboard-api/internal/usecases/insighting/mocks"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/ordering"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.BigQuery.OrdersTable = "shopify_orders"
	return cfg
}

func orderRow(processedAt string, confirmed bool, currentSubtotal string) warehouse.Row {
	return warehouse.Row{
		"id":                     "1001",
		"order_number":           "2001",
		"created_at":             processedAt,
		"processed_at":           processedAt,
		"confirmed":              confirmed,
		"total_price":            "249.99",
		"subtotal_price":         "229.99",
		"total_discounts":        "30.00",
		"total_tax":              "20.00",
		"current_subtotal_price": currentSubtotal,
		"financial_status":       "paid",
		"refunds":                "[]",
	}
}

func TestService_Orders_CountsOnlyConfirmedInRange(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	source := whmocks.NewMockSource(ctrl)
	insighter := insmocks.NewMockInsighter(ctrl)

	source.EXPECT().
		FetchAllRows(gomock.Any(), "shopify_orders").
		Return([]warehouse.Row{
			orderRow("2025-03-01T10:00:00+05:30", true, "100"),
			orderRow("2025-03-02T10:00:00+05:30", false, "100"),
			orderRow("2025-04-01T10:00:00+05:30", true, "100"),
			orderRow("", true, "100"),
		}, nil)

	service := ordering.NewService(newTestConfig(), source, insighter)

	totals, err := service.Orders(context.Background(), "2025-03-01", "2025-03-31")
	require.NoError(t, err)

	assert.Equal(t, 1, totals.TotalOrders)
}

func TestService_Orders_FallsBackToCreatedDate(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	source := whmocks.NewMockSource(ctrl)
	insighter := insmocks.NewMockInsighter(ctrl)

	// Pedido sem processed_at conta pela data de criação
	row := orderRow("", true, "100")
	row["created_at"] = "2025-03-10T08:00:00+05:30"

	source.EXPECT().
		FetchAllRows(gomock.Any(), "shopify_orders").
		Return([]warehouse.Row{row}, nil)

	service := ordering.NewService(newTestConfig(), source, insighter)

	totals, err := service.Orders(context.Background(), "2025-03-01", "2025-03-31")
	require.NoError(t, err)

	assert.Equal(t, 1, totals.TotalOrders)
}

func TestService_NetRevenue_UsesCurrentSubtotalPrice(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	source := whmocks.NewMockSource(ctrl)
	insighter := insmocks.NewMockInsighter(ctrl)

	// total_price é 249.99; a receita líquida vem do current_subtotal_price
	source.EXPECT().
		FetchAllRows(gomock.Any(), "shopify_orders").
		Return([]warehouse.Row{
			orderRow("2025-03-01T10:00:00+05:30", true, "199.99"),
		}, nil)

	service := ordering.NewService(newTestConfig(), source, insighter)

	revenue, err := service.NetRevenue(context.Background(), "2025-03-01", "2025-03-31")
	require.NoError(t, err)

	assert.Equal(t, 199.99, revenue.NetRevenue)
}

func TestService_NetRevenue_MalformedAmountContributesZero(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	source := whmocks.NewMockSource(ctrl)
	insighter := insmocks.NewMockInsighter(ctrl)

	source.EXPECT().
		FetchAllRows(gomock.Any(), "shopify_orders").
		Return([]warehouse.Row{
			orderRow("2025-03-01T10:00:00+05:30", true, "abc"),
			orderRow("2025-03-01T10:00:00+05:30", true, "50.5"),
		}, nil)

	service := ordering.NewService(newTestConfig(), source, insighter)

	revenue, err := service.NetRevenue(context.Background(), "2025-03-01", "2025-03-31")
	require.NoError(t, err)

	assert.Equal(t, 50.5, revenue.NetRevenue)
}

func TestService_ReturnOrders_NonEmptyRefundsCounts(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	source := whmocks.NewMockSource(ctrl)
	insighter := insmocks.NewMockInsighter(ctrl)

	returned := orderRow("2025-03-05T10:00:00+05:30", true, "100")
	returned["refunds"] = `[{"order_adjustments":[{"amount":"0"}]}]`

	notReturned := orderRow("2025-03-06T10:00:00+05:30", true, "100")
	notReturned["refunds"] = `[]`

	// Devolução independe de confirmed
	unconfirmedReturn := orderRow("2025-03-07T10:00:00+05:30", false, "100")
	unconfirmedReturn["refunds"] = `[{"id": 9}]`

	source.EXPECT().
		FetchAllRows(gomock.Any(), "shopify_orders").
		Return([]warehouse.Row{returned, notReturned, unconfirmedReturn}, nil)

	service := ordering.NewService(newTestConfig(), source, insighter)

	totals, err := service.ReturnOrders(context.Background(), "2025-03-01", "2025-03-31")
	require.NoError(t, err)

	assert.Equal(t, 2, totals.ReturnOrders)
}

func TestService_MER(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	source := whmocks.NewMockSource(ctrl)
	insighter := insmocks.NewMockInsighter(ctrl)

	source.EXPECT().
		FetchAllRows(gomock.Any(), "shopify_orders").
		Return([]warehouse.Row{
			orderRow("2025-03-01T10:00:00+05:30", true, "500"),
		}, nil)

	insighter.EXPECT().
		SpendByDate(gomock.Any(), domain.PlatformMeta, "2025-03-01", "2025-03-31").
		Return(map[string]float64{"2025-03-01": 60, "2025-03-02": 40}, nil)

	insighter.EXPECT().
		SpendByDate(gomock.Any(), domain.PlatformGoogle, "2025-03-01", "2025-03-31").
		Return(map[string]float64{"2025-03-01": 150}, nil)

	service := ordering.NewService(newTestConfig(), source, insighter)

	breakdown, err := service.MER(context.Background(), "2025-03-01", "2025-03-31")
	require.NoError(t, err)

	assert.Equal(t, 2.0, breakdown.MER)
	assert.Equal(t, 500.0, breakdown.NetRevenue)
	assert.Equal(t, 250.0, breakdown.TotalSpend)
	assert.Equal(t, 100.0, breakdown.MetaSpend)
	assert.Equal(t, 150.0, breakdown.GoogleSpend)
}

func TestService_MER_ZeroSpendIsZero(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	source := whmocks.NewMockSource(ctrl)
	insighter := insmocks.NewMockInsighter(ctrl)

	source.EXPECT().
		FetchAllRows(gomock.Any(), "shopify_orders").
		Return([]warehouse.Row{
			orderRow("2025-03-01T10:00:00+05:30", true, "500"),
		}, nil)

	insighter.EXPECT().
		SpendByDate(gomock.Any(), domain.PlatformMeta, "2025-03-01", "2025-03-31").
		Return(map[string]float64{}, nil)

	insighter.EXPECT().
		SpendByDate(gomock.Any(), domain.PlatformGoogle, "2025-03-01", "2025-03-31").
		Return(map[string]float64{}, nil)

	service := ordering.NewService(newTestConfig(), source, insighter)

	breakdown, err := service.MER(context.Background(), "2025-03-01", "2025-03-31")
	require.NoError(t, err)

	assert.Equal(t, 0.0, breakdown.MER)
	assert.Equal(t, 0.0, breakdown.TotalSpend)
}

func TestService_MER_PropagatesSpendError(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	source := whmocks.NewMockSource(ctrl)
	insighter := insmocks.NewMockInsighter(ctrl)

	source.EXPECT().
		FetchAllRows(gomock.Any(), "shopify_orders").
		Return([]warehouse.Row{}, nil)

	insighter.EXPECT().
		SpendByDate(gomock.Any(), domain.PlatformMeta, "2025-03-01", "2025-03-31").
		Return(nil, errors.New("query timeout"))

	insighter.EXPECT().
		SpendByDate(gomock.Any(), domain.PlatformGoogle, "2025-03-01", "2025-03-31").
		Return(map[string]float64{}, nil)

	service := ordering.NewService(newTestConfig(), source, insighter)

	_, err := service.MER(context.Background(), "2025-03-01", "2025-03-31")
	assert.Error(t, err)
}

func TestService_DailyMetrics_SortedByDate(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	source := whmocks.NewMockSource(ctrl)
	insighter := insmocks.NewMockInsighter(ctrl)

	source.EXPECT().
		FetchAllRows(gomock.Any(), "shopify_orders").
		Return([]warehouse.Row{
			orderRow("2025-03-05T10:00:00+05:30", true, "100.10"),
			orderRow("2025-03-02T10:00:00+05:30", true, "50"),
			orderRow("2025-03-05T12:00:00+05:30", true, "100.15"),
			orderRow("2025-03-02T12:00:00+05:30", false, "999"),
		}, nil)

	service := ordering.NewService(newTestConfig(), source, insighter)

	daily, err := service.DailyMetrics(context.Background(), "2025-03-01", "2025-03-31")
	require.NoError(t, err)

	require.Len(t, daily, 2)
	assert.Equal(t, domain.DailyOrderMetrics{Date: "2025-03-02", Revenue: 50, Orders: 1}, daily[0])
	assert.Equal(t, domain.DailyOrderMetrics{Date: "2025-03-05", Revenue: 200.25, Orders: 2}, daily[1])
}

func TestService_Export(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	source := whmocks.NewMockSource(ctrl)
	insighter := insmocks.NewMockInsighter(ctrl)

	second := orderRow("2025-03-10T10:00:00+05:30", true, "100")
	second["created_at"] = "2025-03-10T10:00:00+05:30"
	second["id"] = "2"
	second["payment_gateway_names"] = `["razorpay"]`
	second["refunds"] = `[{"order_adjustments":[{"amount":"10.5"},{"amount":"5"}]}]`

	first := orderRow("2025-03-02T10:00:00+05:30", true, "100")
	first["created_at"] = "2025-03-02T10:00:00+05:30"
	first["id"] = "1"

	outOfRange := orderRow("2025-04-02T10:00:00+05:30", true, "100")
	outOfRange["created_at"] = "2025-04-02T10:00:00+05:30"

	source.EXPECT().
		FetchAllRows(gomock.Any(), "shopify_orders").
		Return([]warehouse.Row{second, first, outOfRange}, nil)

	service := ordering.NewService(newTestConfig(), source, insighter)

	export, err := service.Export(context.Background(), "2025-03-01", "2025-03-31")
	require.NoError(t, err)

	assert.True(t, export.Success)
	assert.Equal(t, 2, export.TotalOrders)
	require.Len(t, export.Data, 2)

	// Ordenado pela data de criação
	assert.Equal(t, "1", export.Data[0].ID)
	assert.Equal(t, "2", export.Data[1].ID)

	assert.Equal(t, "2025-03-10", export.Data[1].CreatedAt)
	assert.Equal(t, "razorpay", export.Data[1].PaymentGateway)
	assert.Equal(t, 15.5, export.Data[1].RefundAmount)
	assert.Equal(t, 249.99, export.Data[1].TotalPrice)
	assert.Equal(t, "paid", export.Data[1].FinancialStatus)
}

func TestService_InvalidRange(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	source := whmocks.NewMockSource(ctrl)
	insighter := insmocks.NewMockInsighter(ctrl)

	service := ordering.NewService(newTestConfig(), source, insighter)

	_, err := service.Orders(context.Background(), "2025-03-31", "2025-03-01")
	assert.Error(t, err)

	_, err = service.Export(context.Background(), "", "2025-03-01")
	assert.Error(t, err)
}
