package ordering

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/normalizing"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// decodeSlice materializa um campo que pode chegar como string JSON ou como
// slice já decodificado. Qualquer falha resolve para nil.
func decodeSlice(raw any) []any {
	switch v := raw.(type) {
	case nil:
		return nil
	case []any:
		return v
	case string:
		var decoded []any
		if err := json.UnmarshalFromString(v, &decoded); err != nil {
			return nil
		}
		return decoded
	}

	return nil
}

// paymentGateway devolve o primeiro gateway de pagamento do pedido, ou vazio
func paymentGateway(raw any) string {
	gateways := decodeSlice(raw)
	if len(gateways) == 0 {
		return ""
	}

	return normalizing.ToString(gateways[0])
}

// isReturned classifica o pedido como devolvido quando a coluna refunds
// decodifica para um array não vazio. É um teste estrutural: um refund com
// ajustes de valor zero ainda conta como devolução.
func isReturned(raw any) bool {
	return len(decodeSlice(raw)) > 0
}

// refundAmount soma os amounts de todos os order_adjustments de todos os
// refunds do pedido. JSON malformado ou campo ausente resolve para 0.
func refundAmount(raw any) float64 {
	var refunds []domain.Refund

	switch v := raw.(type) {
	case nil:
		return 0
	case string:
		if err := json.UnmarshalFromString(v, &refunds); err != nil {
			return 0
		}
	default:
		// Estrutura já decodificada: reserializa para reaproveitar o mesmo parse
		encoded, err := json.Marshal(v)
		if err != nil {
			return 0
		}
		if err := json.Unmarshal(encoded, &refunds); err != nil {
			return 0
		}
	}

	total := 0.0
	for _, refund := range refunds {
		for _, adjustment := range refund.OrderAdjustments {
			total += normalizing.ToFloat(adjustment.Amount)
		}
	}

	return total
}
