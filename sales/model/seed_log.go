package model

import "time"

// SeedLog represents a record in the seedLog collection, one per seeding run.
type SeedLog struct {
	CollectionName  string    `bson:"collection_name"`
	SourceURL       string    `bson:"source_url"`
	SeedTimestamp   time.Time `bson:"seed_timestamp"`
	RecordsInserted int64     `bson:"records_inserted"`
	// RequestID is set when the run was triggered over HTTP.
	RequestID string `bson:"request_id,omitempty"`
}
