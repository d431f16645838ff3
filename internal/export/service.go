package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/jpcaldeira/tandem/internal/session"
	"github.com/jpcaldeira/tandem/internal/transaction"
)

// Lister is the slice of the transaction service the exporter needs.
type Lister interface {
	List(ctx context.Context, sess session.Session, filter transaction.ListFilter) ([]*transaction.Transaction, error)
}

// Service writes the visible ledger out as a CSV download.
type Service struct {
	transactions Lister
}

func NewService(transactions Lister) *Service {
	return &Service{transactions: transactions}
}

var header = []string{"date", "description", "category", "type", "amount", "installment", "installments", "recurring"}

// WriteCSV streams transactions matching the filter to w. Amounts are
// written as decimal strings ("1234.56") so the file round-trips
// through spreadsheet tools without float drift.
func (s *Service) WriteCSV(ctx context.Context, sess session.Session, filter transaction.ListFilter, w io.Writer) error {
	txs, err := s.transactions.List(ctx, sess, filter)
	if err != nil {
		return fmt.Errorf("listing transactions: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, t := range txs {
		row := []string{
			t.DueDate.Format("2006-01-02"),
			t.Description,
			t.Category,
			string(t.Type),
			formatCents(t.Amount),
			fmt.Sprintf("%d", t.Installment),
			fmt.Sprintf("%d", t.Installments),
			fmt.Sprintf("%t", t.IsRecurring),
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing transaction %s: %w", t.ID, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return nil
}

// formatCents renders cents as a plain decimal string, e.g. 123456 -> "1234.56".
func formatCents(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}
