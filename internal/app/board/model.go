package board

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Board is a bulletin post. A non-null DeletedAt marks it soft-deleted; gorm
// then hides it from every query that is not explicitly Unscoped.
type Board struct {
	ID        string         `json:"id" gorm:"type:uuid;primaryKey"`
	Title     string         `json:"title" gorm:"size:100;not null;uniqueIndex:board_unique_title,where:deleted_at IS NULL"`
	Content   string         `json:"content" gorm:"type:text;not null"`
	Author    string         `json:"author" gorm:"not null;index"`
	ViewCount int64          `json:"viewCount" gorm:"not null;default:0"`
	IsActive  bool           `json:"isActive" gorm:"not null;default:true"`
	CreatedAt time.Time      `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

func (Board) TableName() string {
	return "boards"
}

func (b *Board) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

func (b *Board) IsDeleted() bool {
	return b.DeletedAt.Valid
}

// NormalizeID returns the canonical form of id, or false when id cannot
// identify a board at all. Malformed ids never reach the store.
func NormalizeID(id string) (string, bool) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return u.String(), true
}
