package insighting

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/warehouse"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/normalizing"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

// Service implementa Insighter fazendo o fold das linhas cruas do warehouse.
// Sem estado mutável compartilhado: cada chamada constrói seu próprio
// acumulador e é segura para execução concorrente.
type Service struct {
	cfg    *config.Config
	source warehouse.Source
}

func NewService(cfg *config.Config, source warehouse.Source) *Service {
	return &Service{
		cfg:    cfg,
		source: source,
	}
}

// tableFor resolve a tabela do warehouse para a plataforma
func (s *Service) tableFor(platform domain.Platform) (string, error) {
	switch platform {
	case domain.PlatformGoogle:
		return s.cfg.BigQuery.GoogleTable, nil
	case domain.PlatformMeta:
		return s.cfg.BigQuery.MetaTable, nil
	}

	return "", fmt.Errorf("plataforma desconhecida: %s", platform)
}

// fetchAdRows busca a tabela inteira da plataforma e normaliza linha a linha.
// Linhas com data inválida são descartadas aqui, nunca atribuídas a um dia
// default.
func (s *Service) fetchAdRows(ctx context.Context, platform domain.Platform) ([]domain.AdMetricRow, error) {
	table, err := s.tableFor(platform)
	if err != nil {
		return nil, err
	}

	rows, err := s.source.FetchAllRows(ctx, table)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"platform": platform,
			"table":    table,
		}).Error("insights: erro ao buscar linhas do warehouse")
		return nil, err
	}

	return normalizing.AdRowsFromValues(rows, platform), nil
}

// aggregateDaily é o fold genérico por data: filtra ao intervalo inclusivo
// (comparação lexicográfica vale para YYYY-MM-DD), extrai o valor da métrica e
// soma no balde da data. Linha com data válida e métrica suja contribui 0 —
// o balde da data ainda existe, o que importa para o outer join do trend.
func aggregateDaily(
	rows []domain.AdMetricRow,
	startDate, endDate string,
	extract func(domain.AdMetricRow) float64,
) map[string]float64 {
	buckets := make(map[string]float64)

	for _, row := range rows {
		if row.Date < startDate || row.Date > endDate {
			continue
		}
		buckets[row.Date] += extract(row)
	}

	return buckets
}

// extractors por métrica simples (CTR é derivada, tratada à parte)
var extractors = map[domain.Metric]func(domain.AdMetricRow) float64{
	domain.MetricSpend:       func(r domain.AdMetricRow) float64 { return r.Spend },
	domain.MetricClicks:      func(r domain.AdMetricRow) float64 { return float64(r.Clicks) },
	domain.MetricImpressions: func(r domain.AdMetricRow) float64 { return float64(r.Impressions) },
	domain.MetricConversions: func(r domain.AdMetricRow) float64 { return r.Conversions },
}

func (s *Service) MetricSeries(
	ctx context.Context,
	platform domain.Platform,
	metric domain.Metric,
	startDate, endDate string,
) (*domain.MetricSeries, error) {
	if err := utils.ValidateDateRange(startDate, endDate); err != nil {
		return nil, err
	}

	rows, err := s.fetchAdRows(ctx, platform)
	if err != nil {
		return nil, err
	}

	if metric == domain.MetricCTR {
		return ctrSeries(rows, platform, startDate, endDate), nil
	}

	extract, ok := extractors[metric]
	if !ok {
		return nil, fmt.Errorf("métrica desconhecida: %s", metric)
	}

	buckets := aggregateDaily(rows, startDate, endDate, extract)
	return seriesFromBuckets(buckets, platform, metric), nil
}

// seriesFromBuckets ordena por data (lexicográfica == cronológica) e arredonda
// só aqui, na exposição. O total soma os valores brutos antes de arredondar
// para não compor erro dia a dia.
func seriesFromBuckets(buckets map[string]float64, platform domain.Platform, metric domain.Metric) *domain.MetricSeries {
	dates := sortedDates(buckets)

	total := 0.0
	daily := make([]domain.DatePoint, 0, len(dates))
	for _, date := range dates {
		total += buckets[date]
		daily = append(daily, domain.DatePoint{
			Date:  date,
			Value: utils.RoundWithTwoDecimalPlace(buckets[date]),
		})
	}

	return &domain.MetricSeries{
		Platform: platform,
		Metric:   metric,
		Total:    utils.RoundWithTwoDecimalPlace(total),
		Daily:    daily,
	}
}

// ctrSeries calcula CTR por razão de somas: cliques e impressões são somados
// por data e o CTR sai de uma única divisão por dia; o total divide as somas
// do período inteiro. Nunca é média dos CTRs reportados por linha.
func ctrSeries(rows []domain.AdMetricRow, platform domain.Platform, startDate, endDate string) *domain.MetricSeries {
	clicks := aggregateDaily(rows, startDate, endDate, extractors[domain.MetricClicks])
	impressions := aggregateDaily(rows, startDate, endDate, extractors[domain.MetricImpressions])

	dates := sortedDates(clicks)

	totalClicks := 0.0
	totalImpressions := 0.0
	daily := make([]domain.DatePoint, 0, len(dates))

	for _, date := range dates {
		totalClicks += clicks[date]
		totalImpressions += impressions[date]
		daily = append(daily, domain.DatePoint{
			Date:  date,
			Value: domain.RoundedCTR(clicks[date], impressions[date]),
		})
	}

	return &domain.MetricSeries{
		Platform: platform,
		Metric:   domain.MetricCTR,
		Total:    domain.RoundedCTR(totalClicks, totalImpressions),
		Daily:    daily,
	}
}

func sortedDates(buckets map[string]float64) []string {
	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

func (s *Service) SpendByDate(
	ctx context.Context,
	platform domain.Platform,
	startDate, endDate string,
) (map[string]float64, error) {
	if err := utils.ValidateDateRange(startDate, endDate); err != nil {
		return nil, err
	}

	rows, err := s.fetchAdRows(ctx, platform)
	if err != nil {
		return nil, err
	}

	return aggregateDaily(rows, startDate, endDate, extractors[domain.MetricSpend]), nil
}

// accountAccumulator acompanha os totais de uma conta durante o drilldown
type accountAccumulator struct {
	accountID   string
	accountName string
	spend       float64
	impressions int64
	clicks      int64
	conversions float64
}

func (a *accountAccumulator) add(row domain.AdMetricRow) {
	a.spend += row.Spend
	a.impressions += row.Impressions
	a.clicks += row.Clicks
	a.conversions += row.Conversions
}

// drilldown converte o acumulador no registro final, com CTR/CPC/CPM por
// razão de somas sobre os totais da conta
func (a *accountAccumulator) drilldown() domain.AccountDrilldown {
	return domain.AccountDrilldown{
		AccountID:   a.accountID,
		AccountName: a.accountName,
		Spend:       utils.RoundWithTwoDecimalPlace(a.spend),
		Impressions: a.impressions,
		Clicks:      a.clicks,
		CTR:         domain.RoundedCTR(float64(a.clicks), float64(a.impressions)),
		CPC:         domain.RoundedCPC(a.spend, float64(a.clicks)),
		CPM:         domain.RoundedCPM(a.spend, float64(a.impressions)),
		Conversions: a.conversions,
	}
}

// Drilldown busca as duas plataformas em paralelo e consolida por conta:
// Google em um único registro (identidades concatenadas), Meta um registro por
// conta de anúncio.
func (s *Service) Drilldown(ctx context.Context, startDate, endDate string) (*domain.DrilldownResponse, error) {
	if err := utils.ValidateDateRange(startDate, endDate); err != nil {
		return nil, err
	}

	var (
		googleRows []domain.AdMetricRow
		metaRows   []domain.AdMetricRow
		googleErr  error
		metaErr    error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		googleRows, googleErr = s.fetchAdRows(ctx, domain.PlatformGoogle)
	}()

	go func() {
		defer wg.Done()
		metaRows, metaErr = s.fetchAdRows(ctx, domain.PlatformMeta)
	}()

	wg.Wait()

	if googleErr != nil {
		return nil, googleErr
	}
	if metaErr != nil {
		return nil, metaErr
	}

	return &domain.DrilldownResponse{
		Google: googleDrilldown(googleRows, startDate, endDate),
		Meta:   metaDrilldown(metaRows, startDate, endDate),
	}, nil
}

// googleDrilldown agrega todas as contas do Google em um registro único. Os
// conjuntos de customer_id e nome preservam a ordem de primeira aparição.
func googleDrilldown(rows []domain.AdMetricRow, startDate, endDate string) *domain.AccountDrilldown {
	acc := &accountAccumulator{}
	ids := newOrderedSet()
	names := newOrderedSet()

	for _, row := range rows {
		if row.Date < startDate || row.Date > endDate {
			continue
		}

		ids.add(row.AccountID)
		names.add(row.AccountName)
		acc.add(row)
	}

	acc.accountID = ids.join(", ")
	acc.accountName = names.join(", ")

	result := acc.drilldown()
	return &result
}

// metaDrilldown agrega por conta de anúncio, ordenado por account_id
func metaDrilldown(rows []domain.AdMetricRow, startDate, endDate string) []domain.AccountDrilldown {
	accounts := make(map[string]*accountAccumulator)

	for _, row := range rows {
		if row.Date < startDate || row.Date > endDate {
			continue
		}
		if row.AccountID == "" {
			continue
		}

		acc, exists := accounts[row.AccountID]
		if !exists {
			acc = &accountAccumulator{
				accountID:   row.AccountID,
				accountName: row.AccountName,
			}
			accounts[row.AccountID] = acc
		}

		acc.add(row)
	}

	results := make([]domain.AccountDrilldown, 0, len(accounts))
	for _, acc := range accounts {
		results = append(results, acc.drilldown())
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].AccountID < results[j].AccountID
	})

	return results
}

// orderedSet acumula valores únicos preservando a ordem de inserção
type orderedSet struct {
	seen   map[string]bool
	values []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]bool)}
}

func (o *orderedSet) add(value string) {
	if value == "" || o.seen[value] {
		return
	}
	o.seen[value] = true
	o.values = append(o.values, value)
}

func (o *orderedSet) join(sep string) string {
	result := ""
	for i, v := range o.values {
		if i > 0 {
			result += sep
		}
		result += v
	}
	return result
}
