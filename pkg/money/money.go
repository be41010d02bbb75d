package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Display formatea un monto en dólares para mostrar, con separador de miles
// según el locale (ej. "$45,000.00"). El monto llega como decimal para evitar
// deriva binaria; la conversión a float ocurre solo aquí, en la presentación.
func Display(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	p := message.NewPrinter(language.AmericanEnglish)
	return p.Sprintf("$%.2f", f)
}
