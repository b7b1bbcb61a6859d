package ordering

import (
	"context"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/warehouse"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/normalizing"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

// Orderer expõe os KPIs derivados do ledger de pedidos da loja
type Orderer interface {
	// Orders conta os pedidos confirmados no intervalo
	Orders(ctx context.Context, startDate, endDate string) (*domain.OrderTotals, error)

	// NetRevenue soma o current_subtotal_price dos pedidos confirmados
	NetRevenue(ctx context.Context, startDate, endDate string) (*domain.RevenueTotals, error)

	// ReturnOrders conta os pedidos com devolução no intervalo
	ReturnOrders(ctx context.Context, startDate, endDate string) (*domain.ReturnTotals, error)

	// MER calcula receita líquida / spend total (Meta + Google) do período
	MER(ctx context.Context, startDate, endDate string) (*domain.MERBreakdown, error)

	// DailyMetrics devolve receita e quantidade de pedidos confirmados por dia,
	// ordenado por data
	DailyMetrics(ctx context.Context, startDate, endDate string) ([]domain.DailyOrderMetrics, error)

	// DailyMetricsByDate é a variante indexada por data para a reconciliação
	DailyMetricsByDate(ctx context.Context, startDate, endDate string) (map[string]domain.DailyOrderMetrics, error)

	// Export devolve os pedidos criados no intervalo, achatados para exportação
	Export(ctx context.Context, startDate, endDate string) (*domain.OrderExportResponse, error)
}

type Service struct {
	cfg       *config.Config
	source    warehouse.Source
	insighter insighting.Insighter
}

func NewService(cfg *config.Config, source warehouse.Source, insighter insighting.Insighter) *Service {
	return &Service{
		cfg:       cfg,
		source:    source,
		insighter: insighter,
	}
}

func (s *Service) fetchOrders(ctx context.Context, startDate, endDate string) ([]domain.OrderRow, error) {
	if err := utils.ValidateDateRange(startDate, endDate); err != nil {
		return nil, err
	}

	rows, err := s.source.FetchAllRows(ctx, s.cfg.BigQuery.OrdersTable)
	if err != nil {
		logrus.WithError(err).WithField("table", s.cfg.BigQuery.OrdersTable).
			Error("orders: erro ao buscar pedidos do warehouse")
		return nil, err
	}

	return normalizing.OrderRowsFromValues(rows), nil
}

func (s *Service) Orders(ctx context.Context, startDate, endDate string) (*domain.OrderTotals, error) {
	orders, err := s.fetchOrders(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, order := range orders {
		if order.ConfirmedInRange(startDate, endDate) {
			total++
		}
	}

	return &domain.OrderTotals{TotalOrders: total}, nil
}

func (s *Service) NetRevenue(ctx context.Context, startDate, endDate string) (*domain.RevenueTotals, error) {
	orders, err := s.fetchOrders(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	total := 0.0
	for _, order := range orders {
		if order.ConfirmedInRange(startDate, endDate) {
			total += order.CurrentSubtotalPrice
		}
	}

	return &domain.RevenueTotals{NetRevenue: utils.RoundWithTwoDecimalPlace(total)}, nil
}

func (s *Service) ReturnOrders(ctx context.Context, startDate, endDate string) (*domain.ReturnTotals, error) {
	orders, err := s.fetchOrders(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, order := range orders {
		date := order.ResolvedDate()
		if date == "" || date < startDate || date > endDate {
			continue
		}
		if isReturned(order.Refunds) {
			total++
		}
	}

	return &domain.ReturnTotals{ReturnOrders: total}, nil
}

// MER busca receita e os spends das duas plataformas em paralelo e divide a
// receita líquida pelo spend combinado do período
func (s *Service) MER(ctx context.Context, startDate, endDate string) (*domain.MERBreakdown, error) {
	if err := utils.ValidateDateRange(startDate, endDate); err != nil {
		return nil, err
	}

	var (
		revenue     *domain.RevenueTotals
		metaSpend   map[string]float64
		googleSpend map[string]float64
		revenueErr  error
		metaErr     error
		googleErr   error
	)

	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		revenue, revenueErr = s.NetRevenue(ctx, startDate, endDate)
	}()

	go func() {
		defer wg.Done()
		metaSpend, metaErr = s.insighter.SpendByDate(ctx, domain.PlatformMeta, startDate, endDate)
	}()

	go func() {
		defer wg.Done()
		googleSpend, googleErr = s.insighter.SpendByDate(ctx, domain.PlatformGoogle, startDate, endDate)
	}()

	wg.Wait()

	for _, err := range []error{revenueErr, metaErr, googleErr} {
		if err != nil {
			return nil, err
		}
	}

	totalMeta := sumSpend(metaSpend)
	totalGoogle := sumSpend(googleSpend)
	totalSpend := totalMeta + totalGoogle

	return &domain.MERBreakdown{
		MER:         domain.RoundedMER(revenue.NetRevenue, totalSpend),
		NetRevenue:  revenue.NetRevenue,
		TotalSpend:  utils.RoundWithTwoDecimalPlace(totalSpend),
		MetaSpend:   utils.RoundWithTwoDecimalPlace(totalMeta),
		GoogleSpend: utils.RoundWithTwoDecimalPlace(totalGoogle),
	}, nil
}

func sumSpend(daily map[string]float64) float64 {
	total := 0.0
	for _, spend := range daily {
		total += spend
	}
	return total
}

func (s *Service) DailyMetrics(ctx context.Context, startDate, endDate string) ([]domain.DailyOrderMetrics, error) {
	byDate, err := s.DailyMetricsByDate(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	daily := make([]domain.DailyOrderMetrics, 0, len(dates))
	for _, date := range dates {
		day := byDate[date]
		day.Revenue = utils.RoundWithTwoDecimalPlace(day.Revenue)
		daily = append(daily, day)
	}

	return daily, nil
}

func (s *Service) DailyMetricsByDate(ctx context.Context, startDate, endDate string) (map[string]domain.DailyOrderMetrics, error) {
	orders, err := s.fetchOrders(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]domain.DailyOrderMetrics)
	for _, order := range orders {
		if !order.ConfirmedInRange(startDate, endDate) {
			continue
		}

		date := order.ResolvedDate()
		day := byDate[date]
		day.Date = date
		day.Revenue += order.CurrentSubtotalPrice
		day.Orders++
		byDate[date] = day
	}

	return byDate, nil
}

// Export filtra pelo created_at (não pela data resolvida: o relatório é sobre
// quando o pedido entrou) e devolve em ordem cronológica de criação
func (s *Service) Export(ctx context.Context, startDate, endDate string) (*domain.OrderExportResponse, error) {
	orders, err := s.fetchOrders(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	records := make([]domain.OrderExportRecord, 0)
	for _, order := range orders {
		if order.CreatedDate == "" || order.CreatedDate < startDate || order.CreatedDate > endDate {
			continue
		}

		records = append(records, domain.OrderExportRecord{
			CreatedAt:         order.CreatedDate,
			ProcessedAt:       order.ProcessedDate,
			ID:                order.ID,
			OrderNumber:       order.OrderNumber,
			TotalPrice:        order.TotalPrice,
			SubtotalPrice:     order.SubtotalPrice,
			TotalDiscounts:    order.TotalDiscounts,
			TotalTax:          order.TotalTax,
			FinancialStatus:   order.FinancialStatus,
			FulfillmentStatus: order.FulfillmentStatus,
			PaymentGateway:    paymentGateway(order.PaymentGatewayNames),
			RefundAmount:      refundAmount(order.Refunds),
			ShopURL:           order.ShopURL,
			CustomerEmail:     order.CustomerEmail,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt < records[j].CreatedAt
	})

	return &domain.OrderExportResponse{
		Success:     true,
		TotalOrders: len(records),
		Data:        records,
	}, nil
}
