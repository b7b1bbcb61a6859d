package domain

import "github.com/vfg2006/marketing-dashboard-api/pkg/utils"

// Platform identifica a origem dos dados de mídia paga
type Platform string

const (
	PlatformGoogle Platform = "google"
	PlatformMeta   Platform = "meta"
)

// Metric identifica a métrica agregada por data
type Metric string

const (
	MetricSpend       Metric = "spend"
	MetricClicks      Metric = "clicks"
	MetricImpressions Metric = "impressions"
	MetricConversions Metric = "conversions"
	MetricCTR         Metric = "ctr"
)

// DatePoint é um ponto da série diária (data no formato YYYY-MM-DD)
type DatePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// MetricSeries é o formato canônico de resposta por métrica: total do período
// mais a série diária ordenada por data
type MetricSeries struct {
	Platform Platform    `json:"platform"`
	Metric   Metric      `json:"metric"`
	Total    float64     `json:"total"`
	Daily    []DatePoint `json:"daily"`
}

// AdMetricRow é a linha de mídia paga já normalizada (unidades padrão, data
// resolvida). Linhas com data inválida nunca chegam aqui.
type AdMetricRow struct {
	Platform    Platform
	Date        string
	Spend       float64
	Clicks      int64
	Impressions int64
	Conversions float64
	AccountID   string
	AccountName string
}

// CTR calcula a taxa de cliques em porcentagem. Denominador zero resulta em 0,
// nunca NaN ou Inf.
func CTR(clicks, impressions float64) float64 {
	if impressions <= 0 {
		return 0
	}
	return clicks / impressions * 100
}

// CPC calcula o custo por clique
func CPC(spend, clicks float64) float64 {
	if clicks <= 0 {
		return 0
	}
	return spend / clicks
}

// CPM calcula o custo por mil impressões
func CPM(spend, impressions float64) float64 {
	if impressions <= 0 {
		return 0
	}
	return spend / impressions * 1000
}

// MER calcula o Marketing Efficiency Ratio (receita líquida / investimento)
func MER(netRevenue, totalSpend float64) float64 {
	if totalSpend <= 0 {
		return 0
	}
	return netRevenue / totalSpend
}

// RoundedCTR e afins arredondam apenas no ponto de exposição externa. A soma
// intermediária nunca é arredondada para não acumular erro ao longo do período.
func RoundedCTR(clicks, impressions float64) float64 {
	return utils.RoundWithTwoDecimalPlace(CTR(clicks, impressions))
}

func RoundedCPC(spend, clicks float64) float64 {
	return utils.RoundWithTwoDecimalPlace(CPC(spend, clicks))
}

func RoundedCPM(spend, impressions float64) float64 {
	return utils.RoundWithTwoDecimalPlace(CPM(spend, impressions))
}

func RoundedMER(netRevenue, totalSpend float64) float64 {
	return utils.RoundWithTwoDecimalPlace(MER(netRevenue, totalSpend))
}
