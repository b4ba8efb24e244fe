/*
 * store.go, part of gomcnp.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package store keeps decoded PTRAC runs in a SQLite database.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	mcnp "github.com/rmera/gomcnp"
	"github.com/rmera/gomcnp/ptrac"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id       TEXT PRIMARY KEY,
	code         TEXT NOT NULL DEFAULT '',
	version      TEXT NOT NULL DEFAULT '',
	title        TEXT NOT NULL DEFAULT '',
	particles    TEXT NOT NULL DEFAULT '',
	hash         TEXT NOT NULL DEFAULT '',
	header_json  TEXT NOT NULL DEFAULT '{}',
	created_at   INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS histories (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id         TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
	seq            INTEGER NOT NULL,
	nps            INTEGER NOT NULL,
	first_category TEXT NOT NULL,
	aux_json       TEXT NOT NULL DEFAULT '{}',
	UNIQUE(run_id, seq)
);

CREATE TABLE IF NOT EXISTS events (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	history_id    INTEGER NOT NULL REFERENCES histories(id) ON DELETE CASCADE,
	run_id        TEXT NOT NULL,
	seq           INTEGER NOT NULL,
	category      TEXT NOT NULL,
	code          INTEGER NOT NULL,
	next_category TEXT NOT NULL,
	particle      INTEGER,
	cell          INTEGER,
	surface       INTEGER,
	material      INTEGER,
	termination   INTEGER,
	x REAL, y REAL, z REAL,
	u REAL, v REAL, w REAL,
	energy        REAL,
	weight        REAL,
	time          REAL,
	fields_json   TEXT NOT NULL DEFAULT '{}'
);
CREATE INDEX IF NOT EXISTS idx_events_run_category ON events(run_id, category);
`

// Store is a SQLite database of PTRAC runs.
type Store struct {
	db *sql.DB
}

// Run is the summary of a stored PTRAC run.
type Run struct {
	ID        uuid.UUID
	Title     string
	Histories int
	Created   time.Time
}

// Open opens, or creates, the database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func nullInt(i mcnp.Integer) sql.NullInt64 {
	return sql.NullInt64{Int64: i.Value, Valid: i.Valid}
}

func nullReal(r mcnp.Real) sql.NullFloat64 {
	return sql.NullFloat64{Float64: r.Value, Valid: r.Valid}
}

func nullCode(c ptrac.Code) sql.NullInt64 {
	return sql.NullInt64{Int64: c.Value, Valid: c.Present()}
}

func nullVec(e ptrac.Event, pos bool) [3]sql.NullFloat64 {
	var ret [3]sql.NullFloat64
	v := e.Direction
	if pos {
		v = e.Position
	}
	if v != nil {
		ret = [3]sql.NullFloat64{{Float64: v.X, Valid: true}, {Float64: v.Y, Valid: true}, {Float64: v.Z, Valid: true}}
	}
	return ret
}

func fieldsJSON(m map[ptrac.FieldID]float64) (string, error) {
	named := make(map[string]float64, len(m))
	for k, v := range m {
		named[k.String()] = v
	}
	b, err := json.Marshal(named)
	return string(b), err
}

// SaveRun stores P in a single transaction and returns the id of the new run.
func (s *Store) SaveRun(ctx context.Context, P *ptrac.Ptrac) (uuid.UUID, error) {
	id := uuid.New()
	header, err := json.Marshal(P.Header.ToArguments())
	if err != nil {
		return uuid.Nil, fmt.Errorf("encode header: %w", err)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()
	const qrun = `INSERT INTO runs (run_id, code, version, title, particles, hash, header_json, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	H := P.Header
	if _, err := tx.ExecContext(ctx, qrun, id.String(), H.CodeName, H.CodeVersion, H.Title, H.Particles, H.Hash, string(header), time.Now().Unix()); err != nil {
		return uuid.Nil, fmt.Errorf("insert run: %w", err)
	}
	const qhist = `INSERT INTO histories (run_id, seq, nps, first_category, aux_json) VALUES (?, ?, ?, ?, ?)`
	const qevent = `INSERT INTO events (history_id, run_id, seq, category, code, next_category, particle, cell, surface,
material, termination, x, y, z, u, v, w, energy, weight, time, fields_json)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	ev, err := tx.PrepareContext(ctx, qevent)
	if err != nil {
		return uuid.Nil, fmt.Errorf("prepare event insert: %w", err)
	}
	defer ev.Close()
	for i, h := range P.Histories {
		aux, err := fieldsJSON(h.Aux)
		if err != nil {
			return uuid.Nil, fmt.Errorf("encode history %d: %w", h.ID, err)
		}
		res, err := tx.ExecContext(ctx, qhist, id.String(), i, h.ID, h.First.String(), aux)
		if err != nil {
			return uuid.Nil, fmt.Errorf("insert history %d: %w", h.ID, err)
		}
		hid, err := res.LastInsertId()
		if err != nil {
			return uuid.Nil, fmt.Errorf("history %d id: %w", h.ID, err)
		}
		for j, e := range h.Events() {
			fields, err := fieldsJSON(e.Fields)
			if err != nil {
				return uuid.Nil, fmt.Errorf("encode event %d of history %d: %w", j, h.ID, err)
			}
			pos, dir := nullVec(e, true), nullVec(e, false)
			_, err = ev.ExecContext(ctx, hid, id.String(), j, e.Category.String(), e.Code, e.Next.String(),
				nullCode(e.Particle), nullInt(e.Cell), nullInt(e.Surface), nullInt(e.Material), nullCode(e.Termination),
				pos[0], pos[1], pos[2], dir[0], dir[1], dir[2],
				nullReal(e.Energy), nullReal(e.Weight), nullReal(e.Time), fields)
			if err != nil {
				return uuid.Nil, fmt.Errorf("insert event %d of history %d: %w", j, h.ID, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("commit run: %w", err)
	}
	return id, nil
}

// CountEvents returns the number of events of category c in the run.
func (s *Store) CountEvents(ctx context.Context, run uuid.UUID, c ptrac.Category) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events WHERE run_id = ? AND category = ?`, run.String(), c.String()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return n, nil
}

// Energies returns the energies of the events of category c in the run, in file order.
// Events without an energy are skipped.
func (s *Store) Energies(ctx context.Context, run uuid.UUID, c ptrac.Category) ([]float64, error) {
	const q = `SELECT e.energy FROM events e JOIN histories h ON e.history_id = h.id
WHERE e.run_id = ? AND e.category = ? AND e.energy IS NOT NULL
ORDER BY h.seq, e.seq`
	rows, err := s.db.QueryContext(ctx, q, run.String(), c.String())
	if err != nil {
		return nil, fmt.Errorf("list energies: %w", err)
	}
	defer rows.Close()
	var ret []float64
	for rows.Next() {
		var e float64
		if err := rows.Scan(&e); err != nil {
			return nil, fmt.Errorf("scan energy: %w", err)
		}
		ret = append(ret, e)
	}
	return ret, rows.Err()
}

// Runs returns the stored runs, oldest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	const q = `SELECT r.run_id, r.title, r.created_at, COUNT(h.id) FROM runs r
LEFT JOIN histories h ON h.run_id = r.run_id
GROUP BY r.run_id ORDER BY r.created_at, r.rowid`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()
	var ret []Run
	for rows.Next() {
		var r Run
		var id string
		var created int64
		if err := rows.Scan(&id, &r.Title, &created, &r.Histories); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("run id %q: %w", id, err)
		}
		r.Created = time.Unix(created, 0)
		ret = append(ret, r)
	}
	return ret, rows.Err()
}

// DeleteRun removes a run with all its histories and events.
func (s *Store) DeleteRun(ctx context.Context, run uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE run_id = ?`, run.String())
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete run: no run %s", run)
	}
	return nil
}
