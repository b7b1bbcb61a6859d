package insighting_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/marketing-dashboard-api/infrastructure/warehouse"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/warehouse/mocks"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.BigQuery.GoogleTable = "account_performance_report"
	cfg.BigQuery.MetaTable = "ads_insights"
	return cfg
}

func googleRow(date any, costMicros, clicks, impressions any) warehouse.Row {
	return warehouse.Row{
		"segments_date":             date,
		"metrics_cost_micros":       costMicros,
		"metrics_clicks":            clicks,
		"metrics_impressions":       impressions,
		"metrics_conversions":       float64(0),
		"customer_id":               "1234567890",
		"customer_descriptive_name": "Conta Principal",
	}
}

func TestService_MetricSeries_GoogleSpendConvertsMicros(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)

	source.EXPECT().
		FetchAllRows(gomock.Any(), "account_performance_report").
		Return([]warehouse.Row{
			googleRow("2025-03-01", int64(2500000), int64(10), int64(100)),
			googleRow("2025-03-01", int64(1500000), int64(5), int64(50)),
			googleRow("2025-03-02", int64(1000000), int64(2), int64(20)),
		}, nil)

	service := insighting.NewService(newTestConfig(), source)

	series, err := service.MetricSeries(context.Background(), domain.PlatformGoogle, domain.MetricSpend, "2025-03-01", "2025-03-02")
	require.NoError(t, err)

	assert.Equal(t, domain.PlatformGoogle, series.Platform)
	assert.Equal(t, domain.MetricSpend, series.Metric)
	assert.Equal(t, 5.0, series.Total)
	require.Len(t, series.Daily, 2)
	assert.Equal(t, domain.DatePoint{Date: "2025-03-01", Value: 4.0}, series.Daily[0])
	assert.Equal(t, domain.DatePoint{Date: "2025-03-02", Value: 1.0}, series.Daily[1])
}

func TestService_MetricSeries_MetaSpendNotDividedByMicros(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)

	source.EXPECT().
		FetchAllRows(gomock.Any(), "ads_insights").
		Return([]warehouse.Row{
			{
				"date_start":  "2025-03-01",
				"spend":       "2.5",
				"clicks":      "10",
				"impressions": "100",
				"account_id":  "act_1",
			},
			{
				"date_start":  "2025-03-01",
				"spend":       "1.5",
				"clicks":      "2",
				"impressions": "30",
				"account_id":  "act_2",
			},
		}, nil)

	service := insighting.NewService(newTestConfig(), source)

	series, err := service.MetricSeries(context.Background(), domain.PlatformMeta, domain.MetricSpend, "2025-03-01", "2025-03-01")
	require.NoError(t, err)

	assert.Equal(t, 4.0, series.Total)
	require.Len(t, series.Daily, 1)
	assert.Equal(t, 4.0, series.Daily[0].Value)
}

func TestService_MetricSeries_RangeIsInclusive(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)

	source.EXPECT().
		FetchAllRows(gomock.Any(), "account_performance_report").
		Return([]warehouse.Row{
			googleRow("2025-02-28", int64(1000000), int64(1), int64(10)),
			googleRow("2025-03-01", int64(2000000), int64(2), int64(20)),
			googleRow("2025-03-05", int64(3000000), int64(3), int64(30)),
			googleRow("2025-03-06", int64(4000000), int64(4), int64(40)),
		}, nil)

	service := insighting.NewService(newTestConfig(), source)

	series, err := service.MetricSeries(context.Background(), domain.PlatformGoogle, domain.MetricSpend, "2025-03-01", "2025-03-05")
	require.NoError(t, err)

	// As bordas do intervalo entram; os dias fora ficam de fora
	require.Len(t, series.Daily, 2)
	assert.Equal(t, "2025-03-01", series.Daily[0].Date)
	assert.Equal(t, "2025-03-05", series.Daily[1].Date)
	assert.Equal(t, 5.0, series.Total)
}

func TestService_MetricSeries_DiscardsUnparseableDates(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)

	source.EXPECT().
		FetchAllRows(gomock.Any(), "account_performance_report").
		Return([]warehouse.Row{
			googleRow("2025-03-01", int64(1000000), int64(1), int64(10)),
			googleRow("data inválida", int64(9000000), int64(9), int64(90)),
			googleRow(nil, int64(9000000), int64(9), int64(90)),
		}, nil)

	service := insighting.NewService(newTestConfig(), source)

	series, err := service.MetricSeries(context.Background(), domain.PlatformGoogle, domain.MetricSpend, "2025-03-01", "2025-03-31")
	require.NoError(t, err)

	require.Len(t, series.Daily, 1)
	assert.Equal(t, 1.0, series.Total)
}

func TestService_CTRSeries_RatioOfSumsNotRowAverage(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)

	// Duas linhas no mesmo dia com CTRs individuais de 50% e 1%.
	// A média das razões daria 25.5; a razão das somas dá
	// (10+10)/(20+1000) = 1.96%.
	source.EXPECT().
		FetchAllRows(gomock.Any(), "account_performance_report").
		Return([]warehouse.Row{
			googleRow("2025-03-01", int64(0), int64(10), int64(20)),
			googleRow("2025-03-01", int64(0), int64(10), int64(1000)),
		}, nil)

	service := insighting.NewService(newTestConfig(), source)

	series, err := service.MetricSeries(context.Background(), domain.PlatformGoogle, domain.MetricCTR, "2025-03-01", "2025-03-01")
	require.NoError(t, err)

	require.Len(t, series.Daily, 1)
	assert.Equal(t, 1.96, series.Daily[0].Value)
	assert.Equal(t, 1.96, series.Total)
}

func TestService_CTRSeries_ZeroImpressionsIsZero(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)

	source.EXPECT().
		FetchAllRows(gomock.Any(), "account_performance_report").
		Return([]warehouse.Row{
			googleRow("2025-03-01", int64(0), int64(5), int64(0)),
		}, nil)

	service := insighting.NewService(newTestConfig(), source)

	series, err := service.MetricSeries(context.Background(), domain.PlatformGoogle, domain.MetricCTR, "2025-03-01", "2025-03-01")
	require.NoError(t, err)

	require.Len(t, series.Daily, 1)
	assert.Equal(t, 0.0, series.Daily[0].Value)
	assert.Equal(t, 0.0, series.Total)
}

func TestService_MetricSeries_InvalidRange(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)

	service := insighting.NewService(newTestConfig(), source)

	_, err := service.MetricSeries(context.Background(), domain.PlatformGoogle, domain.MetricSpend, "2025-03-10", "2025-03-01")
	assert.Error(t, err)

	_, err = service.MetricSeries(context.Background(), domain.PlatformGoogle, domain.MetricSpend, "", "2025-03-01")
	assert.Error(t, err)
}

func TestService_MetricSeries_WarehouseError(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)

	source.EXPECT().
		FetchAllRows(gomock.Any(), "account_performance_report").
		Return(nil, errors.New("query timeout"))

	service := insighting.NewService(newTestConfig(), source)

	_, err := service.MetricSeries(context.Background(), domain.PlatformGoogle, domain.MetricSpend, "2025-03-01", "2025-03-02")
	assert.Error(t, err)
}

func TestService_SpendByDate_ReturnsUnroundedBuckets(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)

	source.EXPECT().
		FetchAllRows(gomock.Any(), "ads_insights").
		Return([]warehouse.Row{
			{"date_start": "2025-03-01", "spend": "1.111", "clicks": int64(0), "impressions": int64(0)},
			{"date_start": "2025-03-01", "spend": "2.222", "clicks": int64(0), "impressions": int64(0)},
		}, nil)

	service := insighting.NewService(newTestConfig(), source)

	spend, err := service.SpendByDate(context.Background(), domain.PlatformMeta, "2025-03-01", "2025-03-02")
	require.NoError(t, err)

	require.Len(t, spend, 1)
	assert.InDelta(t, 3.333, spend["2025-03-01"], 1e-9)
}

func TestService_Drilldown(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)

	source.EXPECT().
		FetchAllRows(gomock.Any(), "account_performance_report").
		Return([]warehouse.Row{
			{
				"segments_date":             "2025-03-01",
				"metrics_cost_micros":       int64(10_000_000),
				"metrics_clicks":            int64(100),
				"metrics_impressions":       int64(1000),
				"metrics_conversions":       float64(4),
				"customer_id":               "111",
				"customer_descriptive_name": "Loja A",
			},
			{
				"segments_date":             "2025-03-02",
				"metrics_cost_micros":       int64(5_000_000),
				"metrics_clicks":            int64(50),
				"metrics_impressions":       int64(500),
				"metrics_conversions":       float64(1),
				"customer_id":               "222",
				"customer_descriptive_name": "Loja B",
			},
		}, nil)

	source.EXPECT().
		FetchAllRows(gomock.Any(), "ads_insights").
		Return([]warehouse.Row{
			{
				"date_start":   "2025-03-01",
				"spend":        "20",
				"clicks":       "200",
				"impressions":  "4000",
				"conversions":  "8",
				"account_id":   "act_b",
				"account_name": "Meta B",
			},
			{
				"date_start":   "2025-03-01",
				"spend":        "10",
				"clicks":       "100",
				"impressions":  "1000",
				"conversions":  "2",
				"account_id":   "act_a",
				"account_name": "Meta A",
			},
			{
				"date_start":   "2025-03-02",
				"spend":        "10",
				"clicks":       "100",
				"impressions":  "1000",
				"conversions":  "3",
				"account_id":   "act_a",
				"account_name": "Meta A",
			},
		}, nil)

	service := insighting.NewService(newTestConfig(), source)

	result, err := service.Drilldown(context.Background(), "2025-03-01", "2025-03-02")
	require.NoError(t, err)

	// Google consolidado em registro único, identidades concatenadas
	require.NotNil(t, result.Google)
	assert.Equal(t, "111, 222", result.Google.AccountID)
	assert.Equal(t, "Loja A, Loja B", result.Google.AccountName)
	assert.Equal(t, 15.0, result.Google.Spend)
	assert.Equal(t, int64(150), result.Google.Clicks)
	assert.Equal(t, int64(1500), result.Google.Impressions)
	assert.Equal(t, 10.0, result.Google.CTR)
	assert.Equal(t, 0.1, result.Google.CPC)
	assert.Equal(t, 10.0, result.Google.CPM)
	assert.Equal(t, 5.0, result.Google.Conversions)

	// Meta por conta, ordenado por account_id
	require.Len(t, result.Meta, 2)
	assert.Equal(t, "act_a", result.Meta[0].AccountID)
	assert.Equal(t, 20.0, result.Meta[0].Spend)
	assert.Equal(t, int64(200), result.Meta[0].Clicks)
	assert.Equal(t, 5.0, result.Meta[0].Conversions)
	assert.Equal(t, "act_b", result.Meta[1].AccountID)
	assert.Equal(t, 20.0, result.Meta[1].Spend)
	assert.Equal(t, 5.0, result.Meta[1].CTR)
}

func TestService_Drilldown_MetaAlwaysSlice(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)

	source.EXPECT().
		FetchAllRows(gomock.Any(), "account_performance_report").
		Return([]warehouse.Row{}, nil)
	source.EXPECT().
		FetchAllRows(gomock.Any(), "ads_insights").
		Return([]warehouse.Row{}, nil)

	service := insighting.NewService(newTestConfig(), source)

	result, err := service.Drilldown(context.Background(), "2025-03-01", "2025-03-02")
	require.NoError(t, err)

	assert.NotNil(t, result.Meta)
	assert.Len(t, result.Meta, 0)
}
