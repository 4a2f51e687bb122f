package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScopeToOwner restricts a query to records whose user matches the
// authenticated caller. It is applied at the start of every read and write
// path that touches user-owned records.
//
// The Nil UUID owns nothing, so a query scoped to it matches no records.
func ScopeToOwner(q *gorm.DB, userID uuid.UUID) *gorm.DB {
	return q.Where("user_id = ?", userID)
}
