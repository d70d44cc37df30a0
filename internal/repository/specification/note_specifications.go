package specification

import "gorm.io/gorm"

type NoteOwnedBy struct {
	OwnerId string
}

func (s NoteOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.owner_id = ?", s.OwnerId)
}

// MostRecentlyUpdated orders by updated_at descending. Ties fall back to
// creation order (newest first) and then id, so listings are deterministic.
func MostRecentlyUpdated() []Specification {
	return []Specification{
		OrderBy{Field: "updated_at", Desc: true},
		OrderBy{Field: "created_at", Desc: true},
		OrderBy{Field: "id"},
	}
}
