package trending

import (
	"context"
	"sort"
	"sync"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/ordering"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

// Trender reconcilia as três origens (spend Meta, spend Google, ledger de
// pedidos) em uma série diária única
type Trender interface {
	DailyTrend(ctx context.Context, startDate, endDate string) (*domain.TrendResponse, error)
}

type Service struct {
	insighter insighting.Insighter
	orderer   ordering.Orderer
}

func NewService(insighter insighting.Insighter, orderer ordering.Orderer) *Service {
	return &Service{
		insighter: insighter,
		orderer:   orderer,
	}
}

// DailyTrend busca as três origens em paralelo e faz o full outer join por data
func (s *Service) DailyTrend(ctx context.Context, startDate, endDate string) (*domain.TrendResponse, error) {
	if err := utils.ValidateDateRange(startDate, endDate); err != nil {
		return nil, err
	}

	var (
		metaSpend   map[string]float64
		googleSpend map[string]float64
		orders      map[string]domain.DailyOrderMetrics
		metaErr     error
		googleErr   error
		ordersErr   error
	)

	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		metaSpend, metaErr = s.insighter.SpendByDate(ctx, domain.PlatformMeta, startDate, endDate)
	}()

	go func() {
		defer wg.Done()
		googleSpend, googleErr = s.insighter.SpendByDate(ctx, domain.PlatformGoogle, startDate, endDate)
	}()

	go func() {
		defer wg.Done()
		orders, ordersErr = s.orderer.DailyMetricsByDate(ctx, startDate, endDate)
	}()

	wg.Wait()

	for _, err := range []error{metaErr, googleErr, ordersErr} {
		if err != nil {
			return nil, err
		}
	}

	return reconcileDaily(metaSpend, googleSpend, orders), nil
}

// reconcileDaily alinha as origens por data: a série final cobre a UNIÃO das
// datas, e data ausente em uma origem aparece com aquele componente zerado.
// Os spends das duas plataformas se somam no total_spend do dia.
func reconcileDaily(
	metaSpend map[string]float64,
	googleSpend map[string]float64,
	orders map[string]domain.DailyOrderMetrics,
) *domain.TrendResponse {
	dates := make(map[string]bool)
	for date := range metaSpend {
		dates[date] = true
	}
	for date := range googleSpend {
		dates[date] = true
	}
	for date := range orders {
		dates[date] = true
	}

	sorted := make([]string, 0, len(dates))
	for date := range dates {
		sorted = append(sorted, date)
	}
	sort.Strings(sorted)

	summary := domain.TrendSummary{}
	totalSpend := 0.0
	totalRevenue := 0.0

	data := make([]domain.TrendRow, 0, len(sorted))
	for _, date := range sorted {
		spend := metaSpend[date] + googleSpend[date]
		day := orders[date]

		totalSpend += spend
		totalRevenue += day.Revenue
		summary.TotalOrders += day.Orders

		data = append(data, domain.TrendRow{
			Date:       date,
			TotalSpend: utils.RoundWithTwoDecimalPlace(spend),
			NetRevenue: utils.RoundWithTwoDecimalPlace(day.Revenue),
			OrderCount: day.Orders,
		})
	}

	// O MER do resumo é a razão dos totais do período, não média dos dias
	summary.TotalSpend = utils.RoundWithTwoDecimalPlace(totalSpend)
	summary.TotalRevenue = utils.RoundWithTwoDecimalPlace(totalRevenue)
	summary.AverageDailyMER = domain.RoundedMER(totalRevenue, totalSpend)

	return &domain.TrendResponse{
		Data:    data,
		Summary: summary,
	}
}
