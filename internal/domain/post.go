package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type BlogPost struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	OwnerID   uuid.UUID `json:"ownerId" gorm:"type:uuid;index;not null"`
	Owner     *User     `json:"-" gorm:"foreignKey:OwnerID"`
	Title     string    `json:"title" gorm:"not null"`
	TitleNorm string    `json:"titleNorm" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`

	Versions []PostVersion `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Comments []Comment     `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// PostVersion rows are append-only. The autoincrement ID is the insertion
// order tie-break when two versions share a created_at.
type PostVersion struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	PostID    uuid.UUID `json:"postId" gorm:"type:uuid;index;not null"`
	Text      string    `json:"text" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

type Comment struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	PostID    uuid.UUID `json:"postId" gorm:"type:uuid;index;not null"`
	AuthorID  uuid.UUID `json:"authorId" gorm:"type:uuid;index;not null"`
	Author    *User     `json:"-" gorm:"foreignKey:AuthorID"`
	Text      string    `json:"text" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NormalizeTitle derives the stored slug. Computed once at creation; titles
// are immutable afterwards.
func NormalizeTitle(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "_")
}
