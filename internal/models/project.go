package models

import (
	"time"

	"gorm.io/gorm"
)

// Project represents a story or screenplay project
type Project struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	OwnerID    uint           `gorm:"index;not null" json:"owner_id"`
	Owner      *User          `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Title      string         `gorm:"size:200;not null" json:"title"`
	Logline    string         `gorm:"size:500" json:"logline"`
	Synopsis   string         `gorm:"type:text" json:"synopsis"`
	Format     string         `gorm:"size:50;default:novel" json:"format"` // novel, screenplay
	Genre      string         `gorm:"size:100" json:"genre"`
	Visibility string         `gorm:"size:20;default:private" json:"visibility"` // private, preview, public
	WordCount  int            `gorm:"default:0" json:"word_count"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// ProjectContent holds the canonical whole-project text body.
// At most one row per project; the content applier upserts it.
type ProjectContent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"uniqueIndex;not null" json:"project_id"`
	Filename  string    `gorm:"size:255" json:"filename"`
	AssetType string    `gorm:"size:50;default:content" json:"asset_type"`
	Content   string    `gorm:"type:text" json:"content"`
	Version   int       `gorm:"default:1" json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectChapter is a single chapter of a project
type ProjectChapter struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	ProjectID     uint           `gorm:"index;not null" json:"project_id"`
	ChapterNumber int            `gorm:"not null" json:"chapter_number"`
	Title         string         `gorm:"size:200" json:"title"`
	Content       string         `gorm:"type:text" json:"content"`
	WordCount     int            `gorm:"default:0" json:"word_count"`
	Status        string         `gorm:"size:20;default:draft" json:"status"` // draft, published
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Project) TableName() string        { return "projects" }
func (ProjectContent) TableName() string { return "project_content" }
func (ProjectChapter) TableName() string { return "project_chapters" }
