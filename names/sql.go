package names

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	_ "modernc.org/sqlite"
)

const namesSchema = `
CREATE TABLE IF NOT EXISTS names (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	name      TEXT NOT NULL,
	gender    TEXT NOT NULL DEFAULT '',
	language  TEXT NOT NULL DEFAULT 'en',
	drawDate  TIMESTAMP
)`

// OpenSQLite opens (and if necessary creates) a names database. Use
// ":memory:" for a transient database.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open names database: %w", err)
	}
	db.SetMaxOpenConns(1) // one connection per in-memory database
	if _, err := db.Exec(namesSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create names table: %w", err)
	}
	return db, nil
}

// Populate inserts catalog entries for a language into the names table.
func Populate(ctx context.Context, db *sql.DB, lang string, entries []Entry) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO names (name, gender, language) VALUES (?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.Name, e.Gender.String(), lang); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert name %q: %w", e.Name, err)
		}
	}
	T().Infof("imported %d names for language %q", len(entries), lang)
	return tx.Commit()
}

// SQLSource draws names from the names table of a database. Each drawn row is
// stamped with the time of drawing; a name is not drawn again before every
// other suitable name has been drawn. Stamps persist with the database.
type SQLSource struct {
	db       *sql.DB
	language string
	rnd      *rand.Rand
	now      func() time.Time
}

// NewSQLSource creates a source for the names of a language. rnd may be nil.
func NewSQLSource(db *sql.DB, lang string, rnd *rand.Rand) *SQLSource {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SQLSource{db: db, language: lang, rnd: rnd, now: time.Now}
}

// Next draws a name of gender g.
func (src *SQLSource) Next(g Gender) (string, error) {
	return src.NextContext(context.Background(), g)
}

// NextContext draws a name of gender g.
func (src *SQLSource) NextContext(ctx context.Context, g Gender) (string, error) {
	filter, args := src.filter(g)
	var undrawn int
	q := "SELECT COUNT(*) FROM names WHERE drawDate IS NULL AND " + filter
	if err := src.db.QueryRowContext(ctx, q, args...).Scan(&undrawn); err != nil {
		return "", err
	}
	if undrawn == 0 {
		res, err := src.db.ExecContext(ctx, "UPDATE names SET drawDate = NULL WHERE "+filter, args...)
		if err != nil {
			return "", err
		}
		n, _ := res.RowsAffected()
		if n == 0 {
			return "", fmt.Errorf("%w: gender %q, language %q", ErrNoNames, g, src.language)
		}
		T().Debugf("all %d names drawn, starting over", n)
		undrawn = int(n)
	}
	var id int64
	var name string
	q = "SELECT id, name FROM names WHERE drawDate IS NULL AND " + filter + " ORDER BY id LIMIT 1 OFFSET ?"
	row := src.db.QueryRowContext(ctx, q, append(args, src.rnd.Intn(undrawn))...)
	if err := row.Scan(&id, &name); err != nil {
		return "", err
	}
	if _, err := src.db.ExecContext(ctx, "UPDATE names SET drawDate = ? WHERE id = ?", src.now(), id); err != nil {
		return "", err
	}
	return name, nil
}

func (src *SQLSource) filter(g Gender) (string, []interface{}) {
	if g == Any {
		return "language = ?", []interface{}{src.language}
	}
	return "language = ? AND (gender = ? OR gender = '')", []interface{}{src.language, g.String()}
}
