package importer

import (
	"io"

	"github.com/lsantos-dev/moneta/internal/report"
)

// Format names a supported statement layout.
type Format string

const (
	FormatLedger Format = "ledger"
)

type Importer interface {
	Parse(r io.Reader) ([]report.TransactionParams, error)
}
