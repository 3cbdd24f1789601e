package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// currencyPrinter formata números no locale en-US: separador de milhar e
// ponto decimal, como a UI do painel espera ("$1,234.56").
var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency converte um valor em centavos (unidade monetária mínima)
// para a string de exibição com símbolo, separadores de milhar e exatamente
// duas casas decimais. Ex.: 123456 -> "$1,234.56".
func FormatCurrency(cents int64) string {
	return currencyPrinter.Sprintf("$%.2f", float64(cents)/100)
}
