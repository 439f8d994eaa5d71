package database

import (
	logger "github.com/Bparsons0904/goLogger"
)

// CreateIndexes creates the composite indexes GORM column tags cannot
// express: booking lookups by location and date, the feedback window scan,
// and the per-user booking list.
func (db *DB) CreateIndexes() error {
	log := logger.New("database").Function("CreateIndexes")
	log.Info("Creating additional database indexes")

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_bookings_location_date ON bookings(location_id, date)",
		"CREATE INDEX IF NOT EXISTS idx_feedback_location_datetime ON feedback(location_id, datetime)",
		"CREATE INDEX IF NOT EXISTS idx_bookings_user_status ON bookings(user_id, status)",
	}

	for _, indexSQL := range indexes {
		if err := db.SQL.Exec(indexSQL).Error; err != nil {
			log.Warn("Failed to create index", "sql", indexSQL, "error", err)
			// Continue with other indexes even if one fails
		}
	}

	log.Info("Additional database indexes created")
	return nil
}
