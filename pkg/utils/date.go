package utils

import (
	"fmt"
	"time"
)

// ParseDate interpreta uma data no formato YYYY-MM-DD vinda da query/body
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ValidateDateRange garante que as duas datas estão presentes, no formato
// YYYY-MM-DD e em ordem. Agregações nunca rodam com intervalo aberto.
func ValidateDateRange(startDate, endDate string) error {
	if startDate == "" || endDate == "" {
		return fmt.Errorf("startDate e endDate são obrigatórios")
	}

	start, err := time.Parse(time.DateOnly, startDate)
	if err != nil {
		return fmt.Errorf("startDate inválida: %s", startDate)
	}

	end, err := time.Parse(time.DateOnly, endDate)
	if err != nil {
		return fmt.Errorf("endDate inválida: %s", endDate)
	}

	if start.After(end) {
		return fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	return nil
}
