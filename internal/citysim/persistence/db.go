// Package persistence provides SQLite-based city state storage:
// snapshots of the tile grid, a stats history ring, and scalar
// world_meta key/values.
package persistence

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite connection for city state persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		city_time INTEGER NOT NULL,
		tiles BLOB NOT NULL,
		created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS stats_history (
		city_time INTEGER PRIMARY KEY,
		res_pop INTEGER NOT NULL,
		com_pop INTEGER NOT NULL,
		ind_pop INTEGER NOT NULL,
		crime INTEGER NOT NULL,
		pollution INTEGER NOT NULL,
		total_funds INTEGER NOT NULL,
		city_score INTEGER NOT NULL,
		city_tax INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS world_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_city_time ON snapshots(city_time);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveSnapshot gzip-compresses the raw tile bytes and records them
// against city_time. Save is explicit, not automatic — the core has no
// wall-clock timer of its own; the host loop decides when to call this.
func (db *DB) SaveSnapshot(cityTime int, tiles []byte) error {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(tiles); err != nil {
		return fmt.Errorf("compress snapshot: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("compress snapshot: %w", err)
	}

	_, err := db.conn.Exec(
		"INSERT INTO snapshots (city_time, tiles) VALUES (?, ?)",
		cityTime, buf.Bytes(),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	slog.Info("city snapshot saved", "city_time", cityTime, "bytes", buf.Len())
	return nil
}

// LoadLatestSnapshot returns the most recent snapshot's city_time and
// decompressed tile bytes, or ok=false if none exist.
func (db *DB) LoadLatestSnapshot() (cityTime int, tiles []byte, ok bool, err error) {
	var compressed []byte
	row := db.conn.QueryRowx("SELECT city_time, tiles FROM snapshots ORDER BY city_time DESC LIMIT 1")
	if scanErr := row.Scan(&cityTime, &compressed); scanErr != nil {
		return 0, nil, false, nil
	}

	gz, gzErr := gzip.NewReader(bytes.NewReader(compressed))
	if gzErr != nil {
		return 0, nil, false, fmt.Errorf("decompress snapshot: %w", gzErr)
	}
	defer gz.Close()

	tiles, err = io.ReadAll(gz)
	if err != nil {
		return 0, nil, false, fmt.Errorf("read snapshot: %w", err)
	}
	return cityTime, tiles, true, nil
}

// StatsRow is one sampled row of the stats history; the host loop
// writes one every 48 city-time ticks, alongside each snapshot.
type StatsRow struct {
	CityTime   int `db:"city_time"`
	ResPop     int `db:"res_pop"`
	ComPop     int `db:"com_pop"`
	IndPop     int `db:"ind_pop"`
	Crime      int `db:"crime"`
	Pollution  int `db:"pollution"`
	TotalFunds int `db:"total_funds"`
	CityScore  int `db:"city_score"`
	CityTax    int `db:"city_tax"`
}

// SaveStatsSnapshot records one stats_history row, replacing any prior
// row for the same city_time.
func (db *DB) SaveStatsSnapshot(row StatsRow) error {
	_, err := db.conn.Exec(`
		INSERT OR REPLACE INTO stats_history
			(city_time, res_pop, com_pop, ind_pop, crime, pollution, total_funds, city_score, city_tax)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.CityTime, row.ResPop, row.ComPop, row.IndPop, row.Crime,
		row.Pollution, row.TotalFunds, row.CityScore, row.CityTax,
	)
	if err != nil {
		return fmt.Errorf("save stats snapshot: %w", err)
	}
	return nil
}

// LoadStatsHistory returns up to limit rows with city_time in
// [fromTick, toTick], most recent first. toTick <= 0 means no upper
// bound.
func (db *DB) LoadStatsHistory(fromTick, toTick, limit int) ([]StatsRow, error) {
	if toTick <= 0 {
		toTick = 1<<31 - 1
	}
	rows := make([]StatsRow, 0, limit)
	err := db.conn.Select(&rows,
		`SELECT city_time, res_pop, com_pop, ind_pop, crime, pollution, total_funds, city_score, city_tax
		 FROM stats_history WHERE city_time BETWEEN ? AND ?
		 ORDER BY city_time DESC LIMIT ?`,
		fromTick, toTick, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("load stats history: %w", err)
	}
	return rows, nil
}

// SaveMeta records a scalar (seed, speed, tax rate, game level).
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO world_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM world_meta WHERE key = ?", key)
	return value, err
}
