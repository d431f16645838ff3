package statement

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseCents parses a Brazilian-formatted amount string into cents.
// Format examples: "1.234,56" -> 123456, "-588,74" -> -58874, "10,00" -> 1000.
func parseCents(s string) (int64, error) {
	clean := strings.TrimPrefix(s, "R$")
	clean = strings.TrimSpace(clean)
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
