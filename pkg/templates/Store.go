// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package templates

import (
	"bytes"
	"database/sql"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/spatialcurrent/layerdoc/pkg/layer"

	lerrors "github.com/spatialcurrent/layerdoc/pkg/errors"
)

type Store struct {
	db *sql.DB
}

// Open opens the template database at path, creating it if needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); len(dir) > 0 {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, "error creating database directory %q", dir)
		}
	}

	db, err := sql.Open(DriverName, path+"?_journal_mode=WAL")
	if err != nil {
		return nil, errors.Wrapf(err, "error opening template database %q", path)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "error connecting to template database %q", path)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "error creating templates table")
	}

	return &Store{db: db}, nil
}

// Save encodes the layer in template mode and stores it under name, replacing any existing template.
func (s *Store) Save(name string, l layer.Layer) error {
	if len(name) == 0 {
		return &lerrors.ErrInvalidParameter{Name: "name", Value: name}
	}
	buf := new(bytes.Buffer)
	enc := xml.NewEncoder(buf)
	if err := layer.Encode(enc, l, true, nil); err != nil {
		return errors.Wrapf(err, "error encoding template %q", name)
	}
	if err := enc.Flush(); err != nil {
		return errors.Wrapf(err, "error encoding template %q", name)
	}
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO templates (name, type, body, updated) VALUES (?, ?, ?, ?)",
		name,
		l.ClassType().String(),
		buf.String(),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return errors.Wrapf(err, "error saving template %q", name)
	}
	return nil
}

// Load instantiates the template with the given name as a new empty layer.
func (s *Store) Load(name string) (layer.Layer, error) {
	body := ""
	err := s.db.QueryRow("SELECT body FROM templates WHERE name = ?", name).Scan(&body)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &lerrors.ErrMissingObject{Type: "template", Name: name}
		}
		return nil, errors.Wrapf(err, "error loading template %q", name)
	}

	dec := xml.NewDecoder(strings.NewReader(body))
	for {
		token, err := dec.Token()
		if err != nil {
			return nil, &lerrors.ErrMalformedDocument{Element: "template", Reason: err.Error()}
		}
		if start, ok := token.(xml.StartElement); ok {
			l, err := layer.Decode(dec, start, nil)
			if err != nil {
				return nil, errors.Wrapf(err, "error decoding template %q", name)
			}
			l.SetId(layer.NewId())
			return l, nil
		}
	}
}

// List returns the stored templates ordered by name.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query("SELECT name, type, updated FROM templates ORDER BY name")
	if err != nil {
		return nil, errors.Wrap(err, "error listing templates")
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		e := Entry{}
		updated := ""
		if err := rows.Scan(&e.Name, &e.Type, &updated); err != nil {
			return nil, errors.Wrap(err, "error scanning template")
		}
		t, err := time.Parse(time.RFC3339, updated)
		if err != nil {
			return nil, errors.Wrapf(err, "error parsing update time of template %q", e.Name)
		}
		e.Updated = t
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) Delete(name string) error {
	res, err := s.db.Exec("DELETE FROM templates WHERE name = ?", name)
	if err != nil {
		return errors.Wrapf(err, "error deleting template %q", name)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "error deleting template %q", name)
	}
	if n == 0 {
		return &lerrors.ErrMissingObject{Type: "template", Name: name}
	}
	return nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
