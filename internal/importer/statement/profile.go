package statement

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSingle means one signed column (e.g. "Valor" with value "-10,00").
	amountSingle amountMode = iota
	// amountSplit means separate debit and credit columns.
	amountSplit
)

// Profile describes the column layout of a bank CSV export format.
// Adding support for another bank is just adding a new Profile to the
// profiles slice.
type Profile struct {
	Name       string
	DateCol    string
	DateLayout string
	DescCol    string
	AmountMode amountMode
	AmountCol  string // used when AmountMode == amountSingle
	DebitCol   string // used when AmountMode == amountSplit
	CreditCol  string // used when AmountMode == amountSplit
}

// requiredCols returns the column names that must be present for this profile to match.
func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	switch p.AmountMode {
	case amountSingle:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	}

	return cols
}

// profiles is the ordered list of export formats to try during auto-detection.
// More specific profiles come first to avoid false matches.
var profiles = []Profile{
	{
		Name:       "fatura",
		DateCol:    "Data",
		DateLayout: "02/01/2006",
		DescCol:    "Descrição",
		AmountMode: amountSplit,
		DebitCol:   "Débito",
		CreditCol:  "Crédito",
	},
	{
		Name:       "extrato",
		DateCol:    "Data",
		DateLayout: "02/01/2006",
		DescCol:    "Lançamento",
		AmountMode: amountSingle,
		AmountCol:  "Valor",
	},
	{
		Name:       "conta",
		DateCol:    "Data Mov.",
		DateLayout: "02/01/2006",
		DescCol:    "Histórico",
		AmountMode: amountSingle,
		AmountCol:  "Valor (R$)",
	},
}
