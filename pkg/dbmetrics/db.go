package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/Liandro13/method-passion-site/pkg/metrics"
)

const defaultStatsInterval = 15 * time.Second

// DB wraps *sql.DB and records query latency for every call
type DB struct {
	*sql.DB
	collector *metrics.Metrics
	dbName    string
}

// Wrap wraps db and starts the pool stats collector, which runs until stopCh is closed
func Wrap(db *sql.DB, collector *metrics.Metrics, dbName string, interval time.Duration, stopCh <-chan struct{}) *DB {
	wrapped := &DB{DB: db, collector: collector, dbName: dbName}
	go wrapped.collectStats(interval, stopCh)
	return wrapped
}

// WrapWithDefault is Wrap with the default stats interval
func WrapWithDefault(db *sql.DB, collector *metrics.Metrics, dbName string, stopCh <-chan struct{}) *DB {
	return Wrap(db, collector, dbName, defaultStatsInterval, stopCh)
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.DB.ExecContext(ctx, query, args...)
	d.collector.ObserveDBQuery(operationOf(query), time.Since(start), err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.DB.QueryContext(ctx, query, args...)
	d.collector.ObserveDBQuery(operationOf(query), time.Since(start), err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.DB.QueryRowContext(ctx, query, args...)
	d.collector.ObserveDBQuery(operationOf(query), time.Since(start), row.Err())
	return row
}

// BeginTx opens a transaction whose queries are measured as well
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.DB.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &measuredTx{Tx: tx, collector: d.collector}, nil
}

func (d *DB) collectStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats := d.DB.Stats()
			d.collector.DBOpenConnections.WithLabelValues(d.dbName).Set(float64(stats.OpenConnections))
			d.collector.DBInUseConnections.WithLabelValues(d.dbName).Set(float64(stats.InUse))
			d.collector.DBIdleConnections.WithLabelValues(d.dbName).Set(float64(stats.Idle))
			d.collector.DBWaitCount.WithLabelValues(d.dbName).Set(float64(stats.WaitCount))
		case <-stopCh:
			return
		}
	}
}

type measuredTx struct {
	*sql.Tx
	collector *metrics.Metrics
}

func (t *measuredTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.Tx.ExecContext(ctx, query, args...)
	t.collector.ObserveDBQuery(operationOf(query), time.Since(start), err)
	return res, err
}

func (t *measuredTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.Tx.QueryContext(ctx, query, args...)
	t.collector.ObserveDBQuery(operationOf(query), time.Since(start), err)
	return rows, err
}

func (t *measuredTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.Tx.QueryRowContext(ctx, query, args...)
	t.collector.ObserveDBQuery(operationOf(query), time.Since(start), row.Err())
	return row
}

// operationOf returns the leading SQL verb in lower case ("select", "insert", ...)
func operationOf(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
