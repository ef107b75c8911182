package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/types"
)

// SessionRepo handles all session-related database operations.
// Lookups that match nothing return an error wrapping sql.ErrNoRows.
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo creates a repository over an initialised database
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// SaveSession inserts the session, or replaces the stored board of the session with the
// same name. On return session.ID holds the persisted id and CreatedAt the original
// creation time.
func (r *SessionRepo) SaveSession(ctx context.Context, session *models.Session) error {
	snap := session.Snapshot
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO sessions (id, name, owner, columns_per_row, next_row_seq, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				owner = excluded.owner,
				columns_per_row = excluded.columns_per_row,
				next_row_seq = excluded.next_row_seq,
				updated_at = excluded.updated_at`,
			string(session.ID), session.Name, session.Owner, snap.ColumnsPerRow, snap.NextRowSeq,
			formatTime(session.CreatedAt), formatTime(session.UpdatedAt),
		)
		if err != nil {
			return fmt.Errorf("failed to upsert session: %w", err)
		}

		var id, createdAt string
		if err := tx.QueryRowContext(ctx,
			`SELECT id, created_at FROM sessions WHERE name = ?`, session.Name,
		).Scan(&id, &createdAt); err != nil {
			return fmt.Errorf("failed to read session id: %w", err)
		}
		created, err := parseTime(createdAt)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM session_columns WHERE session_id = ?`, id); err != nil {
			return fmt.Errorf("failed to clear columns: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM session_rows WHERE session_id = ?`, id); err != nil {
			return fmt.Errorf("failed to clear rows: %w", err)
		}

		for pos, row := range snap.Rows {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO session_rows (session_id, position, row_id) VALUES (?, ?, ?)`,
				id, pos, string(row.ID),
			); err != nil {
				return fmt.Errorf("failed to insert row %s: %w", row.ID, err)
			}
			for i, col := range row.Columns {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO session_columns (session_id, row_id, column_index, name, score) VALUES (?, ?, ?, ?, ?)`,
					id, string(row.ID), i, col.Name, col.Score,
				); err != nil {
					return fmt.Errorf("failed to insert column %d of row %s: %w", i, row.ID, err)
				}
			}
		}

		session.ID = types.SessionID(id)
		session.CreatedAt = created
		return nil
	})
}

// GetSessionByName loads a session and its full board snapshot
func (r *SessionRepo) GetSessionByName(ctx context.Context, name string) (*models.Session, error) {
	var (
		s                    models.Session
		id                   string
		createdAt, updatedAt string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, owner, columns_per_row, next_row_seq, created_at, updated_at
		FROM sessions WHERE name = ?`, name,
	).Scan(&id, &s.Name, &s.Owner, &s.Snapshot.ColumnsPerRow, &s.Snapshot.NextRowSeq, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("session %q: %w", name, err)
	}
	s.ID = types.SessionID(id)
	if s.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if s.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	s.Snapshot.Timestamp = s.UpdatedAt

	rows, err := r.loadRows(ctx, id, s.Snapshot.ColumnsPerRow)
	if err != nil {
		return nil, err
	}
	s.Snapshot.Rows = rows
	return &s, nil
}

func (r *SessionRepo) loadRows(ctx context.Context, sessionID string, columnsPerRow int) ([]models.Row, error) {
	rowIDs, err := r.db.QueryContext(ctx,
		`SELECT row_id FROM session_rows WHERE session_id = ? ORDER BY position`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rows: %w", err)
	}
	defer rowIDs.Close()

	var rows []models.Row
	index := map[types.RowID]int{}
	for rowIDs.Next() {
		var rowID string
		if err := rowIDs.Scan(&rowID); err != nil {
			return nil, err
		}
		index[types.RowID(rowID)] = len(rows)
		rows = append(rows, models.Row{
			ID:      types.RowID(rowID),
			Columns: make([]models.Column, columnsPerRow),
		})
	}
	if err := rowIDs.Err(); err != nil {
		return nil, err
	}

	cols, err := r.db.QueryContext(ctx,
		`SELECT row_id, column_index, name, score FROM session_columns WHERE session_id = ?`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer cols.Close()

	for cols.Next() {
		var (
			rowID string
			i     int
			col   models.Column
		)
		if err := cols.Scan(&rowID, &i, &col.Name, &col.Score); err != nil {
			return nil, err
		}
		pos, ok := index[types.RowID(rowID)]
		if !ok || i < 0 || i >= columnsPerRow {
			return nil, fmt.Errorf("orphan column %d for row %s", i, rowID)
		}
		rows[pos].Columns[i] = col
	}
	if err := cols.Err(); err != nil {
		return nil, err
	}

	for i := range rows {
		for _, c := range rows[i].Columns {
			rows[i].Sum += c.Score
		}
	}
	return rows, nil
}

// ListSessions returns every saved session, most recently updated first
func (r *SessionRepo) ListSessions(ctx context.Context) ([]*models.SessionSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.id, s.name, s.owner, s.columns_per_row, s.updated_at,
			(SELECT COUNT(*) FROM session_rows r WHERE r.session_id = s.id)
		FROM sessions s
		ORDER BY s.updated_at DESC, s.name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var out []*models.SessionSummary
	for rows.Next() {
		var (
			s         models.SessionSummary
			id        string
			updatedAt string
		)
		if err := rows.Scan(&id, &s.Name, &s.Owner, &s.ColumnsPerRow, &updatedAt, &s.RowCount); err != nil {
			return nil, err
		}
		s.ID = types.SessionID(id)
		if s.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// DeleteSession removes a session and its rows
func (r *SessionRepo) DeleteSession(ctx context.Context, name string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var id string
		if err := tx.QueryRowContext(ctx, `SELECT id FROM sessions WHERE name = ?`, name).Scan(&id); err != nil {
			return fmt.Errorf("session %q: %w", name, err)
		}
		for _, stmt := range []string{
			`DELETE FROM session_columns WHERE session_id = ?`,
			`DELETE FROM session_rows WHERE session_id = ?`,
			`DELETE FROM sessions WHERE id = ?`,
		} {
			if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
				return fmt.Errorf("failed to delete session %q: %w", name, err)
			}
		}
		return nil
	})
}
