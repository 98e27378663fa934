package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Follow is a directed edge between users. The composite primary key makes
// add idempotent at the storage level.
type Follow struct {
	FollowerID uuid.UUID `json:"followerId" gorm:"type:uuid;primaryKey"`
	FolloweeID uuid.UUID `json:"followeeId" gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time `json:"createdAt"`
}
