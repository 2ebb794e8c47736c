package domain

import (
	"time"
)

// CourseDiscussion is a course-scoped thread. At most one thread exists per
// (course_id, course_subject) pair.
type CourseDiscussion struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:200;not null" json:"title"`
	Body          string    `gorm:"type:text;not null" json:"body"`
	Author        string    `gorm:"size:100;not null" json:"author"`
	CourseSubject string    `gorm:"column:course_subject;size:100;not null;uniqueIndex:idx_course_discussions_course" json:"course_subject"`
	CourseID      string    `gorm:"column:course_id;size:100;not null;uniqueIndex:idx_course_discussions_course" json:"course_id"`
	CreatorID     *int64    `gorm:"column:creator_id;index" json:"creator_id"`
	CreatedAt     time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}

func (CourseDiscussion) TableName() string { return "course_discussions" }

// CourseComment is a reply attached to a CourseDiscussion and removed with it.
type CourseComment struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	DiscussionID int64     `gorm:"column:discussion_id;not null;index" json:"discussion"`
	Body         string    `gorm:"type:text;not null" json:"body"`
	Author       string    `gorm:"size:100;not null" json:"author"`
	CreatorID    *int64    `gorm:"column:creator_id;index" json:"creator_id"`
	CreatedAt    time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

func (CourseComment) TableName() string { return "course_comments" }
