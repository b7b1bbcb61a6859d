package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
)

// MetricSeriesHandler atende os endpoints de série diária de uma métrica de
// mídia paga. Plataforma e métrica são fixadas na rota; o corpo traz só o
// intervalo de datas.
func MetricSeriesHandler(service insighting.Insighter, platform domain.Platform, metric domain.Metric) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeDateRange(w, r)
		if !ok {
			return
		}

		series, err := service.MetricSeries(r.Context(), platform, metric, req.StartDate, req.EndDate)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"platform": platform,
				"metric":   metric,
			}).Error("handler: erro ao montar série de métrica")
			apiErrors.WriteError(w, apiErrors.ErrWarehouseQuery, "Erro ao consultar métricas", nil)
			return
		}

		writeJSON(w, series)
	}
}
