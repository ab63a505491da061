package fakerows

import (
	"errors"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// Rows is a canned driver.Rows implementation for exercising scan paths
// without a live connection.
type Rows struct {
	Data    [][]any
	ScanErr error
	IterErr error

	index int
}

var _ driver.Rows = &Rows{}

func (r *Rows) Next() bool {
	if r.index >= len(r.Data) {
		return false
	}
	r.index++
	return true
}

func (r *Rows) Scan(dest ...any) error {
	if r.ScanErr != nil {
		return r.ScanErr
	}
	if r.index == 0 || r.index > len(r.Data) {
		return errors.New("no current row")
	}
	row := r.Data[r.index-1]
	for i, d := range dest {
		if i >= len(row) {
			continue
		}
		switch v := d.(type) {
		case *string:
			if s, ok := row[i].(string); ok {
				*v = s
			}
		case *int64:
			if n, ok := row[i].(int64); ok {
				*v = n
			}
		case *time.Time:
			if t, ok := row[i].(time.Time); ok {
				*v = t
			}
		}
	}
	return nil
}

func (r *Rows) Close() error                     { return nil }
func (r *Rows) Columns() []string                { return nil }
func (r *Rows) ColumnTypes() []driver.ColumnType { return nil }
func (r *Rows) Err() error                       { return r.IterErr }
func (r *Rows) Totals(_ ...any) error            { return nil }
func (r *Rows) ScanStruct(_ any) error           { return nil }
