package importer

import (
	"fmt"
	"io"

	"github.com/jpcaldeira/tandem/internal/importer/statement"
	"github.com/jpcaldeira/tandem/internal/transaction"
)

type Service struct {
	statementImporter Importer
}

func NewService() *Service {
	return &Service{
		statementImporter: statement.NewParser(),
	}
}

func (s *Service) Import(source Source, r io.Reader) ([]transaction.RecordParams, error) {
	var importer Importer

	switch source {
	case SourceStatement:
		importer = s.statementImporter
	default:
		return nil, fmt.Errorf("unknown source: %s", source)
	}

	return importer.Parse(r)
}
