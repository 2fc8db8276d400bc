package importer

import (
	"fmt"
	"io"

	"github.com/lsantos-dev/moneta/internal/importer/csvfile"
	"github.com/lsantos-dev/moneta/internal/report"
)

type Service struct {
	ledgerImporter Importer
}

func NewService() *Service {
	return &Service{
		ledgerImporter: csvfile.NewParser(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]report.TransactionParams, error) {
	var importer Importer

	switch format {
	case FormatLedger:
		importer = s.ledgerImporter
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	return importer.Parse(r)
}
