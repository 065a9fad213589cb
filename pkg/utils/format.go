package utils

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder exibido quando o valor não existe
const Placeholder = "—"

var printer = message.NewPrinter(language.English)

// FormatCurrency abrevia bilhões e milhões e agrupa milhares: $1.23B, $4.50M, $12,345, $999.99
func FormatCurrency(v *float64) string {
	if v == nil || math.IsNaN(*v) {
		return Placeholder
	}

	sign := ""
	x := *v
	if x < 0 {
		sign = "-"
		x = -x
	}

	switch {
	case x >= 1_000_000_000:
		return sign + "$" + printer.Sprintf("%.2f", x/1_000_000_000) + "B"
	case x >= 1_000_000:
		return sign + "$" + printer.Sprintf("%.2f", x/1_000_000) + "M"
	case x >= 1_000:
		return sign + "$" + printer.Sprintf("%.0f", x)
	default:
		return sign + "$" + printer.Sprintf("%.2f", x)
	}
}

func FormatNumber(v *float64) string {
	if v == nil || math.IsNaN(*v) {
		return Placeholder
	}

	x := *v
	switch {
	case math.Abs(x) >= 1_000_000_000:
		return printer.Sprintf("%.2f", x/1_000_000_000) + "B"
	case math.Abs(x) >= 1_000_000:
		return printer.Sprintf("%.2f", x/1_000_000) + "M"
	case math.Abs(x) >= 1_000:
		return printer.Sprintf("%.0f", x)
	default:
		return printer.Sprintf("%.2f", x)
	}
}

func FormatPct(v *float64) string {
	if v == nil || math.IsNaN(*v) {
		return Placeholder
	}
	return fmt.Sprintf("%.2f%%", *v)
}

func FormatX(v *float64) string {
	if v == nil || math.IsNaN(*v) {
		return Placeholder
	}
	return fmt.Sprintf("%.2fx", *v)
}

type MetricKind int

const (
	KindCurrency MetricKind = iota
	KindPct
	KindX
	KindNumber
)

// MetricForLLM formata um KPI para o prompt; valores ausentes viram uma frase explícita
// para que o modelo não invente o número
func MetricForLLM(v *float64, label string, kind MetricKind) string {
	if v == nil || math.IsNaN(*v) {
		return label + " data not available for selected period"
	}

	switch kind {
	case KindCurrency:
		return FormatCurrency(v)
	case KindPct:
		return FormatPct(v)
	case KindX:
		return FormatX(v)
	default:
		return FormatNumber(v)
	}
}
