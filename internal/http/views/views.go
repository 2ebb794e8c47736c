// Package views builds the external representations of discussion records.
// Each record carries created_at_display, the creation time rendered in the
// service's configured zone; comments additionally carry their parent's title.
package views

import (
	"time"

	"github.com/yungbote/discussions-backend/internal/services"
)

const displayLayout = "2006-01-02 15:04"

type CommentView struct {
	ID               int64     `json:"id"`
	Discussion       int64     `json:"discussion"`
	Body             string    `json:"body"`
	Author           string    `json:"author"`
	CreatorID        *int64    `json:"creator_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	CreatedAtDisplay *string   `json:"created_at_display"`
	DiscussionTitle  string    `json:"discussion_title"`
}

type DiscussionView struct {
	ID               int64         `json:"id"`
	Title            string        `json:"title"`
	Body             string        `json:"body"`
	Author           string        `json:"author"`
	CreatorID        *int64        `json:"creator_id"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
	CreatedAtDisplay *string       `json:"created_at_display"`
	Comments         []CommentView `json:"comments"`
}

type CourseCommentView struct {
	ID               int64     `json:"id"`
	Discussion       int64     `json:"discussion"`
	Body             string    `json:"body"`
	Author           string    `json:"author"`
	CreatorID        *int64    `json:"creator_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	CreatedAtDisplay *string   `json:"created_at_display"`
	DiscussionTitle  string    `json:"discussion_title"`
}

type CourseDiscussionView struct {
	ID               int64               `json:"id"`
	Title            string              `json:"title"`
	Body             string              `json:"body"`
	Author           string              `json:"author"`
	CourseSubject    string              `json:"course_subject"`
	CourseID         string              `json:"course_id"`
	CreatorID        *int64              `json:"creator_id"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
	CreatedAtDisplay *string             `json:"created_at_display"`
	Comments         []CourseCommentView `json:"comments"`
}

// DisplayTime renders t for human consumption in loc. A zero time is null; a
// missing zone falls back to the raw RFC3339 rendering rather than failing.
func DisplayTime(t time.Time, loc *time.Location) *string {
	if t.IsZero() {
		return nil
	}
	if loc == nil {
		s := t.Format(time.RFC3339)
		return &s
	}
	s := t.In(loc).Format(displayLayout)
	return &s
}

func Discussion(detail *services.DiscussionDetail, loc *time.Location) DiscussionView {
	d := detail.Discussion
	comments := make([]CommentView, 0, len(detail.Comments))
	for _, c := range detail.Comments {
		comments = append(comments, Comment(&services.CommentDetail{Comment: c, DiscussionTitle: d.Title}, loc))
	}
	return DiscussionView{
		ID:               d.ID,
		Title:            d.Title,
		Body:             d.Body,
		Author:           d.Author,
		CreatorID:        d.CreatorID,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
		CreatedAtDisplay: DisplayTime(d.CreatedAt, loc),
		Comments:         comments,
	}
}

func Discussions(details []*services.DiscussionDetail, loc *time.Location) []DiscussionView {
	out := make([]DiscussionView, 0, len(details))
	for _, detail := range details {
		out = append(out, Discussion(detail, loc))
	}
	return out
}

func Comment(detail *services.CommentDetail, loc *time.Location) CommentView {
	c := detail.Comment
	return CommentView{
		ID:               c.ID,
		Discussion:       c.DiscussionID,
		Body:             c.Body,
		Author:           c.Author,
		CreatorID:        c.CreatorID,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
		CreatedAtDisplay: DisplayTime(c.CreatedAt, loc),
		DiscussionTitle:  detail.DiscussionTitle,
	}
}

func Comments(details []*services.CommentDetail, loc *time.Location) []CommentView {
	out := make([]CommentView, 0, len(details))
	for _, detail := range details {
		out = append(out, Comment(detail, loc))
	}
	return out
}

func CourseDiscussion(detail *services.CourseDiscussionDetail, loc *time.Location) CourseDiscussionView {
	d := detail.Discussion
	comments := make([]CourseCommentView, 0, len(detail.Comments))
	for _, c := range detail.Comments {
		comments = append(comments, CourseComment(&services.CourseCommentDetail{Comment: c, DiscussionTitle: d.Title}, loc))
	}
	return CourseDiscussionView{
		ID:               d.ID,
		Title:            d.Title,
		Body:             d.Body,
		Author:           d.Author,
		CourseSubject:    d.CourseSubject,
		CourseID:         d.CourseID,
		CreatorID:        d.CreatorID,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
		CreatedAtDisplay: DisplayTime(d.CreatedAt, loc),
		Comments:         comments,
	}
}

func CourseDiscussions(details []*services.CourseDiscussionDetail, loc *time.Location) []CourseDiscussionView {
	out := make([]CourseDiscussionView, 0, len(details))
	for _, detail := range details {
		out = append(out, CourseDiscussion(detail, loc))
	}
	return out
}

func CourseComment(detail *services.CourseCommentDetail, loc *time.Location) CourseCommentView {
	c := detail.Comment
	return CourseCommentView{
		ID:               c.ID,
		Discussion:       c.DiscussionID,
		Body:             c.Body,
		Author:           c.Author,
		CreatorID:        c.CreatorID,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
		CreatedAtDisplay: DisplayTime(c.CreatedAt, loc),
		DiscussionTitle:  detail.DiscussionTitle,
	}
}

func CourseComments(details []*services.CourseCommentDetail, loc *time.Location) []CourseCommentView {
	out := make([]CourseCommentView, 0, len(details))
	for _, detail := range details {
		out = append(out, CourseComment(detail, loc))
	}
	return out
}
