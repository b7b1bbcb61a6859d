package normalizing

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
)

var dateOnlyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Formatos de timestamp observados no ledger além do RFC3339
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// NormalizeDate resolve um valor de forma desconhecida (civil.Date, timestamp,
// string ISO, objeto com subcampo value) para YYYY-MM-DD. Falha retorna
// ok=false e o chamador DEVE descartar a linha: uma data default atribuiria
// spend/receita ao dia errado silenciosamente.
func NormalizeDate(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", false

	case civil.Date:
		if !v.IsValid() {
			return "", false
		}
		return v.String(), true

	case civil.DateTime:
		return NormalizeDate(v.Date)

	case time.Time:
		if v.IsZero() {
			return "", false
		}
		return v.Format(time.DateOnly), true

	case string:
		return normalizeDateString(v)

	// Linha vinda de REST/legacy pode embrulhar a data como {value: "..."}
	case map[string]bigquery.Value:
		if inner, ok := v["value"]; ok {
			return NormalizeDate(inner)
		}
		return "", false

	case map[string]any:
		if inner, ok := v["value"]; ok {
			return NormalizeDate(inner)
		}
		return "", false
	}

	return "", false
}

func normalizeDateString(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	// Timestamps ISO carregam a data nos 10 primeiros caracteres
	if len(s) >= 10 && dateOnlyPattern.MatchString(s[:10]) {
		return s[:10], true
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(time.DateOnly), true
		}
	}

	return "", false
}

// ToFloat converte um valor cru para float64, com 0 em qualquer falha. Somas
// de agregação nunca podem virar NaN por causa de uma linha suja.
func ToFloat(raw any) float64 {
	switch v := raw.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case *big.Rat:
		// Colunas NUMERIC chegam como *big.Rat
		if v == nil {
			return 0
		}
		f, _ := v.Float64()
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	case bool:
		if v {
			return 1
		}
		return 0
	}

	return 0
}

// ToInt converte um valor cru para contagem inteira, truncando decimais
// (comportamento de parseInt) e com 0 em qualquer falha
func ToInt(raw any) int64 {
	switch v := raw.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case string:
		s := strings.TrimSpace(v)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f)
		}
		return 0
	}

	return int64(ToFloat(raw))
}

// ToBool interpreta o campo confirmed, que pode chegar como BOOL ou string
func ToBool(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true")
	}

	return false
}

// ToString resolve identificadores que podem chegar como string ou numérico
func ToString(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	return ""
}

const microsPerUnit = 1_000_000

// MicrosToStandard converte micros (convenção do Google Ads) para a unidade
// monetária padrão. Aplica-se somente aos campos do Google — spend do Meta já
// vem em unidade padrão e NÃO pode ser dividido de novo.
func MicrosToStandard(raw any) float64 {
	return ToFloat(raw) / microsPerUnit
}
