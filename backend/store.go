// Package backend implements the flat-collection JSON store the aggregation
// service talks to: schemaless documents grouped into named collections,
// single-field equality filters, and nothing resembling a join. The travel
// app originally ran against json-server; this is the same contract on
// MySQL.
package backend

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"getjoy-backend/models"
)

// Collections the store serves. Anything else is a 404, not a new table.
var collections = map[string]bool{
	"destinations": true,
	"hotels":       true,
	"rooms":        true,
	"users":        true,
	"likes":        true,
	"bookings":     true,
}

func ValidCollection(name string) bool { return collections[name] }

// ErrNoRecord is a miss on a by-id lookup.
var ErrNoRecord = errors.New("record not found")

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// List returns every document of a collection matching the filter, in
// insertion order. Filters are exact-match only and applied in memory after
// the load; the documents are schemaless, so the database cannot index
// what it doesn't know about.
func (s *Store) List(collection string, filter map[string]string) ([]map[string]any, error) {
	var rows []models.Record
	if err := s.db.Where("collection = ?", collection).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	docs := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		var doc map[string]any
		if err := json.Unmarshal(row.Document, &doc); err != nil {
			return nil, fmt.Errorf("corrupt document %s/%s: %w", collection, row.DocID, err)
		}
		if matchesFilter(doc, filter) {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// Get returns one document by id. Ids match byte-for-byte here; type
// normalization is deliberately the client's job, which is exactly why the
// aggregation layer compares destination ids numerically.
func (s *Store) Get(collection, id string) (map[string]any, error) {
	row, err := s.row(collection, id)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(row.Document, &doc); err != nil {
		return nil, fmt.Errorf("corrupt document %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

// Create stores a new document. A document posted without an id gets a
// generated one; a supplied id is kept as-is (the signup flow assigns its
// own max+1 ids).
func (s *Store) Create(collection string, doc map[string]any) (map[string]any, error) {
	id, ok := doc["id"]
	if !ok || valueString(id) == "" {
		doc["id"] = uuid.NewString()
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	row := models.Record{
		Collection: collection,
		DocID:      valueString(doc["id"]),
		Document:   payload,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return doc, nil
}

// Update replaces a document wholesale, keeping its stored id even when the
// incoming body tries to change it.
func (s *Store) Update(collection, id string, doc map[string]any) (map[string]any, error) {
	row, err := s.row(collection, id)
	if err != nil {
		return nil, err
	}

	var stored map[string]any
	if err := json.Unmarshal(row.Document, &stored); err == nil {
		if storedID, ok := stored["id"]; ok {
			doc["id"] = storedID
		}
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	row.Document = payload
	if err := s.db.Save(&row).Error; err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete removes a document by id.
func (s *Store) Delete(collection, id string) error {
	row, err := s.row(collection, id)
	if err != nil {
		return err
	}
	return s.db.Delete(&models.Record{}, row.ID).Error
}

// Count reports how many documents a collection holds.
func (s *Store) Count(collection string) (int64, error) {
	var n int64
	err := s.db.Model(&models.Record{}).Where("collection = ?", collection).Count(&n).Error
	return n, err
}

func (s *Store) row(collection, id string) (models.Record, error) {
	var row models.Record
	err := s.db.Where("collection = ? AND doc_id = ?", collection, id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Record{}, ErrNoRecord
	}
	return row, err
}
