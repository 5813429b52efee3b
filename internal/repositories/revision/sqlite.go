package revision

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/pkg/clock"
)

const (
	// InMemory opens a private in-memory database
	InMemory = ":memory:"

	errPlayerIDEmpty = "player ID cannot be empty"
)

var pragmas = []string{
	"PRAGMA journal_mode=WAL;",
	"PRAGMA synchronous=NORMAL;",
	"PRAGMA busy_timeout=5000;",
	"PRAGMA temp_store=MEMORY;",
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS revisions (
		player_id TEXT NOT NULL,
		revision INTEGER NOT NULL,
		saved_by TEXT NOT NULL,
		saved_at TEXT NOT NULL,
		snapshot BLOB NOT NULL,
		PRIMARY KEY (player_id, revision)
	);`,
}

// Config contains configuration for the SQLite revision store
type Config struct {
	// Path is the database file, or InMemory
	Path  string
	Clock clock.Clock
}

// Validate validates the config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Path == "" {
		return errors.InvalidArgument("database path is required")
	}
	return nil
}

type sqliteRepository struct {
	db      *sql.DB
	clock   clock.Clock
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewSQLite opens (and creates if needed) the revision database
func NewSQLite(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Path != InMemory {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, errors.Wrapf(err, "failed to create directory for %s", cfg.Path)
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open revision database")
	}
	// One connection: in-memory databases are per connection and writes are serialized anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	for _, stmt := range append(append([]string{}, pragmas...), schema...) {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, errors.Wrapf(err, "failed to initialize revision database")
		}
	}

	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to create zstd encoder")
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		_ = encoder.Close()
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to create zstd decoder")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &sqliteRepository{
		db:      db,
		clock:   c,
		encoder: encoder,
		decoder: decoder,
	}, nil
}

func (r *sqliteRepository) Record(ctx context.Context, input RecordInput) (*RecordOutput, error) {
	if input.Player == nil {
		return nil, errors.InvalidArgument("player cannot be nil")
	}
	if input.Player.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	data, err := json.Marshal(input.Player)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player")
	}
	snapshot := r.encoder.EncodeAll(data, nil)
	savedAt := r.clock.Now().UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	var next int
	row := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(revision), 0) + 1 FROM revisions WHERE player_id = ?`,
		input.Player.ID)
	if err := row.Scan(&next); err != nil {
		return nil, errors.Wrapf(err, "failed to read latest revision")
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO revisions (player_id, revision, saved_by, saved_at, snapshot) VALUES (?, ?, ?, ?, ?)`,
		input.Player.ID, next, input.SavedBy, savedAt.Format(time.RFC3339Nano), snapshot); err != nil {
		return nil, errors.Wrapf(err, "failed to insert revision")
	}
	if err := tx.Commit(); err != nil {
		return nil, errors.Wrapf(err, "failed to commit revision")
	}

	return &RecordOutput{Revision: &entities.Revision{
		PlayerID: input.Player.ID,
		Revision: next,
		SavedBy:  input.SavedBy,
		SavedAt:  savedAt,
	}}, nil
}

func (r *sqliteRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT revision, saved_by, saved_at FROM revisions WHERE player_id = ? ORDER BY revision DESC LIMIT ?`,
		input.PlayerID, limit)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list revisions")
	}
	defer func() { _ = rows.Close() }()

	revisions := []*entities.Revision{}
	for rows.Next() {
		rev := &entities.Revision{PlayerID: input.PlayerID}
		var savedAt string
		if err := rows.Scan(&rev.Revision, &rev.SavedBy, &savedAt); err != nil {
			return nil, errors.Wrapf(err, "failed to scan revision")
		}
		if rev.SavedAt, err = parseTime(savedAt); err != nil {
			return nil, err
		}
		revisions = append(revisions, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to iterate revisions")
	}

	return &ListOutput{Revisions: revisions}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	rev := &entities.Revision{PlayerID: input.PlayerID, Revision: input.Revision}
	var (
		savedAt  string
		snapshot []byte
	)
	row := r.db.QueryRowContext(ctx,
		`SELECT saved_by, saved_at, snapshot FROM revisions WHERE player_id = ? AND revision = ?`,
		input.PlayerID, input.Revision)
	if err := row.Scan(&rev.SavedBy, &savedAt, &snapshot); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("revision %d of player %s not found", input.Revision, input.PlayerID).
				WithMeta("player_id", input.PlayerID).
				WithMeta("revision", input.Revision)
		}
		return nil, errors.Wrapf(err, "failed to get revision")
	}

	var err error
	if rev.SavedAt, err = parseTime(savedAt); err != nil {
		return nil, err
	}

	data, err := r.decoder.DecodeAll(snapshot, nil)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to decompress revision %d", input.Revision)
	}
	var p entities.Player
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to unmarshal revision %d", input.Revision)
	}
	rev.Player = &p

	return &GetOutput{Revision: rev}, nil
}

func (r *sqliteRepository) Close() error {
	r.decoder.Close()
	_ = r.encoder.Close()
	return r.db.Close()
}

func parseTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to parse saved_at")
	}
	return t, nil
}
