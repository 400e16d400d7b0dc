package export

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mvolk/eqsift"
)

// Catalog persists extraction runs to a SQLite database so records can be
// queried after the process exits. The pipeline itself stays stateless;
// the catalog is just another sink. Saving a document again replaces its
// previous run.
type Catalog struct {
	db *sql.DB
}

const catalogSchema = `
CREATE TABLE IF NOT EXISTS documents (
    id INTEGER PRIMARY KEY,
    path TEXT NOT NULL UNIQUE,
    extracted_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS equations (
    id INTEGER PRIMARY KEY,
    document_id INTEGER NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
    eq_id INTEGER NOT NULL,
    page INTEGER NOT NULL,
    text TEXT NOT NULL,
    context TEXT,
    x0 REAL, y0 REAL, x1 REAL, y1 REAL,
    image_path TEXT
);

CREATE INDEX IF NOT EXISTS idx_equations_document ON equations(document_id);
`

// OpenCatalog opens (creating if needed) the catalog database at path.
func OpenCatalog(path string) (*Catalog, error) {
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	if _, err := db.Exec(catalogSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing catalog schema: %w", err)
	}
	return &Catalog{db: db}, nil
}

// Close releases the database handle.
func (c *Catalog) Close() error { return c.db.Close() }

// Save stores the records of one extraction run, replacing any previous
// run for the same document path.
func (c *Catalog) Save(ctx context.Context, docPath string, records []eqsift.Record) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO documents (path) VALUES (?)
		ON CONFLICT(path) DO UPDATE SET extracted_at = CURRENT_TIMESTAMP`,
		docPath); err != nil {
		return fmt.Errorf("upserting document: %w", err)
	}

	var docID int64
	if err := tx.QueryRowContext(ctx,
		`SELECT id FROM documents WHERE path = ?`, docPath).Scan(&docID); err != nil {
		return fmt.Errorf("resolving document id: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM equations WHERE document_id = ?`, docID); err != nil {
		return fmt.Errorf("clearing previous run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO equations (document_id, eq_id, page, text, context, x0, y0, x1, y1, image_path)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, docID, rec.ID, rec.Page, rec.Text, rec.Context,
			rec.Rect.X0, rec.Rect.Y0, rec.Rect.X1, rec.Rect.Y1, rec.ImagePath); err != nil {
			return fmt.Errorf("inserting equation %d: %w", rec.ID, err)
		}
	}

	return tx.Commit()
}

// Records loads the stored records for a document path, in identifier order.
func (c *Catalog) Records(ctx context.Context, docPath string) ([]eqsift.Record, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT e.eq_id, e.page, e.text, e.context, e.x0, e.y0, e.x1, e.y1, e.image_path
		FROM equations e
		JOIN documents d ON d.id = e.document_id
		WHERE d.path = ?
		ORDER BY e.eq_id`, docPath)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var records []eqsift.Record
	for rows.Next() {
		var rec eqsift.Record
		if err := rows.Scan(&rec.ID, &rec.Page, &rec.Text, &rec.Context,
			&rec.Rect.X0, &rec.Rect.Y0, &rec.Rect.X1, &rec.Rect.Y1, &rec.ImagePath); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
