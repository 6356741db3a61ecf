package models

import "time"

// Category is a node in the catalog taxonomy. A nil ParentID marks a
// top-level category; children reference their parent through ParentID.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;type:varchar(150)"`
	Name      string    `json:"name" gorm:"type:varchar(100)"`
	ParentID  *uint     `json:"parent_id" gorm:"index"`
	Parent    *Category `json:"-" gorm:"foreignKey:ParentID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
