package models

import (
	"time"

	"gorm.io/datatypes"
)

// Record is one schemaless document in the collection store. The document
// itself lives in a JSON column; Collection and DocID are extracted for
// lookups only and never reinterpreted.
type Record struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Collection string         `gorm:"size:64;uniqueIndex:idx_collection_doc,priority:1"`
	DocID      string         `gorm:"size:64;uniqueIndex:idx_collection_doc,priority:2;column:doc_id"`
	Document   datatypes.JSON `gorm:"column:document"`
}
