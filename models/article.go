package models

import (
	"time"

	"gorm.io/gorm"
)

// Article is an owner-controlled record with an upvote/downvote tally and an
// append-only log of voter names. AuthorID is always derived from the
// authenticated identity, never from the request body.
type Article struct {
	ID         uint           `json:"id" gorm:"primarykey"`
	AuthorID   uint           `json:"author_id" gorm:"not null;index"`
	Author     User           `json:"author" gorm:"foreignKey:AuthorID"`
	Title      string         `json:"title" gorm:"not null"`
	Body       string         `json:"body"`
	Upvote     int            `json:"upvote" gorm:"not null;default:0"`
	Downvote   int            `json:"downvote" gorm:"not null;default:0"`
	VoterNames []string       `json:"voter_name" gorm:"serializer:json"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}
