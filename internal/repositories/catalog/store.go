// Package catalog provides SQLite-backed storage for the reference
// data character generation reads: items, weight tables, equipment
// templates, class stats, and starting gold. The data is written once
// by the seed command and read once at process start.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // sqlite driver

	"github.com/heroforge/hero-api/internal/catalog"
	"github.com/heroforge/hero-api/internal/entities/hero"
	"github.com/heroforge/hero-api/internal/errors"
)

// Weight table kinds as stored in the weight_tables table
const (
	tableKindRaces       = "races"
	tableKindAlignments  = "alignments"
	tableKindClasses     = "classes"
	tableKindBackgrounds = "backgrounds"
)

const schema = `
CREATE TABLE IF NOT EXISTS items (
	id  TEXT PRIMARY KEY,
	doc TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS weight_tables (
	kind TEXT NOT NULL,
	race TEXT NOT NULL DEFAULT '',
	doc  TEXT NOT NULL,
	PRIMARY KEY (kind, race)
);

CREATE TABLE IF NOT EXISTS starting_gear (
	class TEXT PRIMARY KEY,
	doc   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS class_stats (
	class           TEXT PRIMARY KEY,
	hit_die         INTEGER NOT NULL,
	casting_ability TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS starting_gold (
	background TEXT PRIMARY KEY,
	gold       INTEGER NOT NULL
);
`

// Store provides SQLite-backed persistence for catalog data
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite store at the provided path and ensures the
// schema exists. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("storage path is required")
	}

	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	}

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping sqlite db")
	}

	store := &Store{sqlDB: sqlDB}
	if err := store.migrate(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return store, nil
}

// DB returns the underlying sql.DB instance
func (s *Store) DB() *sql.DB {
	return s.sqlDB
}

// Close closes the underlying SQLite database
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) migrate() error {
	if _, err := s.sqlDB.Exec(schema); err != nil {
		return errors.Wrap(err, "failed to run catalog migrations")
	}
	return nil
}

// Load reads every catalog table and assembles a validated registry
func (s *Store) Load(ctx context.Context) (*catalog.Registry, error) {
	cfg := &catalog.Config{}

	items, err := s.loadItems(ctx)
	if err != nil {
		return nil, err
	}
	cfg.Items = items

	weights, err := s.loadWeights(ctx)
	if err != nil {
		return nil, err
	}
	cfg.Weights = *weights

	templates, err := s.loadTemplates(ctx)
	if err != nil {
		return nil, err
	}
	cfg.Templates = templates

	classes, err := s.loadClassStats(ctx)
	if err != nil {
		return nil, err
	}
	cfg.Classes = classes

	gold, err := s.loadStartingGold(ctx)
	if err != nil {
		return nil, err
	}
	cfg.GoldByBackground = gold

	return catalog.NewRegistry(cfg)
}

func (s *Store) loadItems(ctx context.Context) ([]catalog.Item, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT id, doc FROM items ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query items")
	}
	defer func() { _ = rows.Close() }()

	var items []catalog.Item
	for rows.Next() {
		var id, doc string
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, errors.Wrap(err, "failed to scan item row")
		}

		var item catalog.Item
		if err := json.Unmarshal([]byte(doc), &item); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCorruptData,
				"failed to unmarshal item "+id)
		}
		item.ID = id
		items = append(items, item)
	}

	return items, rows.Err()
}

func (s *Store) loadWeights(ctx context.Context) (*catalog.WeightData, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT kind, race, doc FROM weight_tables ORDER BY kind, race`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query weight tables")
	}
	defer func() { _ = rows.Close() }()

	weights := &catalog.WeightData{
		ClassesByRace:     make(map[string]catalog.WeightTable),
		BackgroundsByRace: make(map[string]catalog.WeightTable),
	}

	for rows.Next() {
		var kind, race, doc string
		if err := rows.Scan(&kind, &race, &doc); err != nil {
			return nil, errors.Wrap(err, "failed to scan weight table row")
		}

		var table catalog.WeightTable
		if err := json.Unmarshal([]byte(doc), &table); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCorruptData,
				"failed to unmarshal weight table "+kind)
		}

		switch kind {
		case tableKindRaces:
			weights.Races = table
		case tableKindAlignments:
			weights.Alignments = table
		case tableKindClasses:
			weights.ClassesByRace[race] = table
		case tableKindBackgrounds:
			weights.BackgroundsByRace[race] = table
		default:
			return nil, errors.CorruptDataf("unknown weight table kind %q", kind)
		}
	}

	return weights, rows.Err()
}

func (s *Store) loadTemplates(ctx context.Context) ([]catalog.EquipmentTemplate, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT class, doc FROM starting_gear ORDER BY class`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query starting gear")
	}
	defer func() { _ = rows.Close() }()

	var templates []catalog.EquipmentTemplate
	for rows.Next() {
		var class, doc string
		if err := rows.Scan(&class, &doc); err != nil {
			return nil, errors.Wrap(err, "failed to scan starting gear row")
		}

		var tpl catalog.EquipmentTemplate
		if err := json.Unmarshal([]byte(doc), &tpl); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCorruptData,
				"failed to unmarshal starting gear for "+class)
		}
		tpl.Class = class
		templates = append(templates, tpl)
	}

	return templates, rows.Err()
}

func (s *Store) loadClassStats(ctx context.Context) ([]catalog.ClassStats, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT class, hit_die, casting_ability FROM class_stats ORDER BY class`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query class stats")
	}
	defer func() { _ = rows.Close() }()

	var stats []catalog.ClassStats
	for rows.Next() {
		var row catalog.ClassStats
		var casting string
		if err := rows.Scan(&row.Class, &row.HitDie, &casting); err != nil {
			return nil, errors.Wrap(err, "failed to scan class stats row")
		}
		row.CastingAbility = hero.Ability(casting)
		stats = append(stats, row)
	}

	return stats, rows.Err()
}

func (s *Store) loadStartingGold(ctx context.Context) (map[string]int32, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT background, gold FROM starting_gold`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query starting gold")
	}
	defer func() { _ = rows.Close() }()

	gold := make(map[string]int32)
	for rows.Next() {
		var background string
		var amount int32
		if err := rows.Scan(&background, &amount); err != nil {
			return nil, errors.Wrap(err, "failed to scan starting gold row")
		}
		gold[background] = amount
	}

	return gold, rows.Err()
}
