package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/trending"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
)

func GetDailyTrend(service trending.Trender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeDateRange(w, r)
		if !ok {
			return
		}

		trend, err := service.DailyTrend(r.Context(), req.StartDate, req.EndDate)
		if err != nil {
			logrus.WithError(err).Error("handler: erro ao montar tendência diária")
			apiErrors.WriteError(w, apiErrors.ErrWarehouseQuery, "Erro ao consultar tendência diária", nil)
			return
		}

		writeJSON(w, trend)
	}
}
