package gamemap

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// MapDB stores classified maps in a SQLite database.
type MapDB struct {
	db *sql.DB
}

// NewMapDB opens or creates the database in file.
func NewMapDB(file string) (*MapDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS map (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, game TEXT NOT NULL, sha1 TEXT NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS square (map_id INTEGER NOT NULL, column_no INTEGER NOT NULL, row_no INTEGER NOT NULL, terrain TEXT NOT NULL, elevation INTEGER NOT NULL, PRIMARY KEY(map_id, column_no, row_no), FOREIGN KEY(map_id) REFERENCES map(id))"); err != nil {
		db.Close()
		return nil, err
	}

	return &MapDB{
		db: db,
	}, nil
}

// Close closes the database.
func (db *MapDB) Close() error {
	return db.db.Close()
}

func (db *MapDB) addMap(tx *sql.Tx, cfg *MapConfig, sha string) (int64, error) {
	var id int64
	switch err := tx.QueryRow("SELECT id FROM map WHERE name = ?", cfg.Output).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := tx.Exec("INSERT INTO map (name, game, sha1) VALUES (?, ?, ?)", cfg.Output, cfg.Game, sha)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		if _, err := tx.Exec("UPDATE map SET game = ?, sha1 = ? WHERE id = ?", cfg.Game, sha, id); err != nil {
			return 0, err
		}
		return id, nil
	default:
		return 0, err
	}
}

// Store records the squares of the map described by cfg, replacing any
// squares previously stored for it. sha is the SHA1 of the source image.
func (db *MapDB) Store(cfg *MapConfig, sha string, squares []Square) error {
	tx, err := db.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	id, err := db.addMap(tx, cfg, sha)
	if err != nil {
		return err
	}

	if _, err = tx.Exec("DELETE FROM square WHERE map_id = ?", id); err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO square (map_id, column_no, row_no, terrain, elevation) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range squares {
		if _, err = stmt.Exec(id, s.Column, s.Row, s.Terrain, s.Elevation); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Squares returns the stored squares of the map named name in row-major
// order, or nil if there is no such map.
func (db *MapDB) Squares(name string) ([]Square, error) {
	rows, err := db.db.Query("SELECT s.column_no, s.row_no, s.terrain, s.elevation FROM square AS s JOIN map AS m ON s.map_id = m.id WHERE m.name = ? ORDER BY s.row_no, s.column_no", name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var squares []Square
	for rows.Next() {
		var s Square
		if err := rows.Scan(&s.Column, &s.Row, &s.Terrain, &s.Elevation); err != nil {
			return nil, err
		}
		squares = append(squares, s)
	}
	return squares, rows.Err()
}

// SHA1 returns the recorded SHA1 of the source image of the map named name.
func (db *MapDB) SHA1(name string) (string, error) {
	var sha string
	switch err := db.db.QueryRow("SELECT sha1 FROM map WHERE name = ?", name).Scan(&sha); err {
	case sql.ErrNoRows:
		return "", nil
	case nil:
		return sha, nil
	default:
		return "", err
	}
}
