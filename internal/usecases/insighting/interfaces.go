package insighting

import (
	"context"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

// Insighter expõe as agregações de mídia paga por plataforma. Todas as
// operações recebem o intervalo inclusivo [startDate, endDate] em YYYY-MM-DD
// e recomputam a partir das linhas cruas a cada chamada — nada é cacheado.
type Insighter interface {
	// MetricSeries agrega a métrica pedida por data e devolve o formato
	// canônico {total, daily}
	MetricSeries(ctx context.Context, platform domain.Platform, metric domain.Metric, startDate, endDate string) (*domain.MetricSeries, error)

	// SpendByDate devolve o investimento bruto (sem arredondamento) por data,
	// para consumo da reconciliação e do MER
	SpendByDate(ctx context.Context, platform domain.Platform, startDate, endDate string) (map[string]float64, error)

	// Drilldown consolida as métricas por conta das duas plataformas
	Drilldown(ctx context.Context, startDate, endDate string) (*domain.DrilldownResponse, error)
}
