package catalog

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/heroforge/hero-api/internal/catalog"
	"github.com/heroforge/hero-api/internal/errors"
)

// Seed writes a full catalog config into the store, replacing any row
// that already exists. Everything lands in one transaction so readers
// never observe a half-written catalog.
func (s *Store) Seed(ctx context.Context, cfg *catalog.Config) error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin seed transaction")
	}
	defer func() { _ = tx.Rollback() }()

	for _, item := range cfg.Items {
		doc, err := json.Marshal(&item)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal item %s", item.ID)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO items (id, doc) VALUES (?, ?)
			 ON CONFLICT(id) DO UPDATE SET doc = excluded.doc`,
			item.ID, string(doc)); err != nil {
			return errors.Wrapf(err, "failed to insert item %s", item.ID)
		}
	}

	if err := seedTable(ctx, tx, tableKindRaces, "", cfg.Weights.Races); err != nil {
		return err
	}
	if err := seedTable(ctx, tx, tableKindAlignments, "", cfg.Weights.Alignments); err != nil {
		return err
	}
	for race, table := range cfg.Weights.ClassesByRace {
		if err := seedTable(ctx, tx, tableKindClasses, race, table); err != nil {
			return err
		}
	}
	for race, table := range cfg.Weights.BackgroundsByRace {
		if err := seedTable(ctx, tx, tableKindBackgrounds, race, table); err != nil {
			return err
		}
	}

	for _, tpl := range cfg.Templates {
		doc, err := json.Marshal(&tpl)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal starting gear for %s", tpl.Class)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO starting_gear (class, doc) VALUES (?, ?)
			 ON CONFLICT(class) DO UPDATE SET doc = excluded.doc`,
			tpl.Class, string(doc)); err != nil {
			return errors.Wrapf(err, "failed to insert starting gear for %s", tpl.Class)
		}
	}

	for _, stats := range cfg.Classes {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO class_stats (class, hit_die, casting_ability) VALUES (?, ?, ?)
			 ON CONFLICT(class) DO UPDATE SET
			   hit_die = excluded.hit_die, casting_ability = excluded.casting_ability`,
			stats.Class, stats.HitDie, string(stats.CastingAbility)); err != nil {
			return errors.Wrapf(err, "failed to insert class stats for %s", stats.Class)
		}
	}

	for background, gold := range cfg.GoldByBackground {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO starting_gold (background, gold) VALUES (?, ?)
			 ON CONFLICT(background) DO UPDATE SET gold = excluded.gold`,
			background, gold); err != nil {
			return errors.Wrapf(err, "failed to insert starting gold for %s", background)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit seed transaction")
	}
	return nil
}

func seedTable(ctx context.Context, tx *sql.Tx, kind, race string, table catalog.WeightTable) error {
	doc, err := json.Marshal(table)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal weight table %s", kind)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO weight_tables (kind, race, doc) VALUES (?, ?, ?)
		 ON CONFLICT(kind, race) DO UPDATE SET doc = excluded.doc`,
		kind, race, string(doc)); err != nil {
		return errors.Wrapf(err, "failed to insert weight table %s", kind)
	}
	return nil
}
