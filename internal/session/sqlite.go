package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/MaherElabd2/price23-sub001/internal/engine"
)

// SQLiteStore persists sessions with write-through semantics: every mutation
// goes through the embedded MemoryStore first, then lands in SQLite. Reads are
// served entirely from memory; the database is only read once at startup.
type SQLiteStore struct {
	inner *MemoryStore
	db    *sqlx.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS sessions (
	token      TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	snapshot   TEXT NOT NULL DEFAULT '{}',
	evaluation TEXT
);
`

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s := &SQLiteStore{inner: NewMemoryStore(), db: db}
	if err := s.loadAll(); err != nil {
		db.Close()
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) loadAll() error {
	rows, err := s.db.Query("SELECT token, name, created_at, updated_at, snapshot, evaluation FROM sessions")
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var sess Session
		var createdAt, updatedAt, snapshotJSON string
		var evalJSON *string
		if err := rows.Scan(&sess.Token, &sess.Name, &createdAt, &updatedAt, &snapshotJSON, &evalJSON); err != nil {
			return err
		}
		sess.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		sess.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
		if err := json.Unmarshal([]byte(snapshotJSON), &sess.Snapshot); err != nil {
			return fmt.Errorf("session %s: %w", sess.Token, err)
		}
		if evalJSON != nil && *evalJSON != "" {
			var ev engine.Evaluation
			if err := json.Unmarshal([]byte(*evalJSON), &ev); err != nil {
				return fmt.Errorf("session %s: %w", sess.Token, err)
			}
			sess.Evaluation = &ev
		}
		s.inner.sessions[sess.Token] = &sess
	}
	return rows.Err()
}

func (s *SQLiteStore) Create(name string, snapshot engine.Snapshot, eval *engine.Evaluation) (*Session, error) {
	sess, err := s.inner.Create(name, snapshot, eval)
	if err != nil {
		return nil, err
	}
	if err := s.persist(sess); err != nil {
		_ = s.inner.Delete(sess.Token)
		return nil, NewInternalError("persist session: " + err.Error())
	}
	return sess, nil
}

func (s *SQLiteStore) Get(token string) (*Session, error) {
	return s.inner.Get(token)
}

func (s *SQLiteStore) List() ([]*Session, error) {
	return s.inner.List()
}

func (s *SQLiteStore) Update(token, name string, snapshot engine.Snapshot, eval *engine.Evaluation) (*Session, error) {
	sess, err := s.inner.Update(token, name, snapshot, eval)
	if err != nil {
		return nil, err
	}
	if err := s.persist(sess); err != nil {
		return nil, NewInternalError("persist session: " + err.Error())
	}
	return sess, nil
}

func (s *SQLiteStore) Delete(token string) error {
	if err := s.inner.Delete(token); err != nil {
		return err
	}
	if _, err := s.db.Exec("DELETE FROM sessions WHERE token = ?", token); err != nil {
		return NewInternalError("delete session: " + err.Error())
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) persist(sess *Session) error {
	snapshotJSON, err := json.Marshal(sess.Snapshot)
	if err != nil {
		return err
	}
	var evalJSON *string
	if sess.Evaluation != nil {
		b, err := json.Marshal(sess.Evaluation)
		if err != nil {
			return err
		}
		str := string(b)
		evalJSON = &str
	}
	_, err = s.db.Exec(`INSERT INTO sessions (token, name, created_at, updated_at, snapshot, evaluation)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(token) DO UPDATE SET
			name = excluded.name,
			updated_at = excluded.updated_at,
			snapshot = excluded.snapshot,
			evaluation = excluded.evaluation`,
		sess.Token, sess.Name,
		sess.CreatedAt.UTC().Format(time.RFC3339Nano),
		sess.UpdatedAt.UTC().Format(time.RFC3339Nano),
		string(snapshotJSON), evalJSON)
	return err
}
