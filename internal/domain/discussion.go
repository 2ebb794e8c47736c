package domain

import (
	"time"
)

// Discussion is a general top-level thread. CreatorID is the optional external
// id of the authoring user; unauthenticated or legacy creation leaves it null.
type Discussion struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Author    string    `gorm:"size:100;not null" json:"author"`
	CreatorID *int64    `gorm:"column:creator_id;index" json:"creator_id"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Discussion) TableName() string { return "discussions" }

// Comment is a reply attached to a Discussion and removed with it.
type Comment struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	DiscussionID int64     `gorm:"column:discussion_id;not null;index" json:"discussion"`
	Body         string    `gorm:"type:text;not null" json:"body"`
	Author       string    `gorm:"size:100;not null" json:"author"`
	CreatorID    *int64    `gorm:"column:creator_id;index" json:"creator_id"`
	CreatedAt    time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

func (Comment) TableName() string { return "comments" }
