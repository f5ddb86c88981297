package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/tomas-kadlec/gazelab/pkg/gaze"
)

// Reader streams coded gaze samples out of a DuckDB database. Samples
// are expected in a table with (session, subject, ts, value) columns,
// one row per eye-tracker frame.
type Reader struct {
	dataSourceName string
	db             *sql.DB
}

func NewReader(dataSourceName string) *Reader {
	return &Reader{
		dataSourceName: dataSourceName,
	}
}

func (r *Reader) Connect() error {
	db, err := sql.Open("duckdb", r.dataSourceName)
	if err != nil {
		return fmt.Errorf("sql.Open: %v", err)
	}
	r.db = db
	return nil
}

func (r *Reader) Close() {
	_ = r.db.Close()
}

// LoadSamples feeds every frame of one subject's recording to the
// handler, in timestamp order.
func (r *Reader) LoadSamples(ctx context.Context, table, session, subject string, handler func(sample gaze.Sample) error) error {
	query := fmt.Sprintf(`SELECT ts, value FROM %s WHERE session = ? AND subject = ? ORDER BY ts`, table)

	rows, err := r.db.QueryContext(ctx, query, session, subject)
	if err != nil {
		return fmt.Errorf("error preparing query: %w", err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	for rows.Next() {
		var sample gaze.Sample
		timeStamp := time.Time{}
		if err := rows.Scan(&timeStamp, &sample.Value); err != nil {
			return fmt.Errorf("error scanning row: %w", err)
		}
		sample.TimeStamp = timeStamp
		if err := handler(sample); err != nil {
			return fmt.Errorf("handler: %w", err)
		}
	}
	return rows.Err()
}

// LoadSeries collects one subject's coded series as plain values,
// ready for cross-correlation.
func (r *Reader) LoadSeries(ctx context.Context, table, session, subject string) ([]float64, error) {
	var series []float64
	err := r.LoadSamples(ctx, table, session, subject, func(sample gaze.Sample) error {
		series = append(series, sample.Value)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return series, nil
}
