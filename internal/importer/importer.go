package importer

import (
	"io"

	"github.com/jpcaldeira/tandem/internal/transaction"
)

// Source identifies the kind of file being imported.
type Source string

const (
	SourceStatement Source = "statement"
)

type Importer interface {
	Parse(r io.Reader) ([]transaction.RecordParams, error)
}
