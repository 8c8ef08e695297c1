package repos

import (
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
)

type (
	// Scanner decodes device rows. It sits behind an interface so store
	// tests can feed pgxmock rows through the real column mapping.
	Scanner interface {
		ScanAll(dst any, rows pgx.Rows) error
		// ScanOne reports found=false with a nil error when the result is empty.
		ScanOne(dst any, rows pgx.Rows) (found bool, err error)
	}

	PgxScanner struct {
		api *pgxscan.API
	}
)

func NewPgxScanner() *PgxScanner {
	return &PgxScanner{api: pgxscan.DefaultAPI}
}

func (s *PgxScanner) ScanAll(dst any, rows pgx.Rows) error {
	return s.api.ScanAll(dst, rows)
}

func (s *PgxScanner) ScanOne(dst any, rows pgx.Rows) (bool, error) {
	err := s.api.ScanOne(dst, rows)

	switch {
	case err == nil:
		return true, nil
	case pgxscan.NotFound(err):
		return false, nil
	default:
		return false, err
	}
}
