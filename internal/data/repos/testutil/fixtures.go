package testutil

import (
	"context"
	"testing"
	"time"

	types "github.com/yungbote/discussions-backend/internal/domain"
	"gorm.io/gorm"
)

func SeedDiscussion(tb testing.TB, ctx context.Context, tx *gorm.DB, title string, creatorID *int64, createdAt time.Time) *types.Discussion {
	tb.Helper()
	d := &types.Discussion{
		Title:     title,
		Body:      "body",
		Author:    "author",
		CreatorID: creatorID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if err := tx.WithContext(ctx).Create(d).Error; err != nil {
		tb.Fatalf("seed discussion: %v", err)
	}
	return d
}

func SeedComment(tb testing.TB, ctx context.Context, tx *gorm.DB, discussionID int64, creatorID *int64, createdAt time.Time) *types.Comment {
	tb.Helper()
	c := &types.Comment{
		DiscussionID: discussionID,
		Body:         "comment body",
		Author:       "commenter",
		CreatorID:    creatorID,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed comment: %v", err)
	}
	return c
}

func SeedCourseDiscussion(tb testing.TB, ctx context.Context, tx *gorm.DB, subject, courseID string, creatorID *int64, createdAt time.Time) *types.CourseDiscussion {
	tb.Helper()
	d := &types.CourseDiscussion{
		Title:         "course thread",
		Body:          "body",
		Author:        "author",
		CourseSubject: subject,
		CourseID:      courseID,
		CreatorID:     creatorID,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
	if err := tx.WithContext(ctx).Create(d).Error; err != nil {
		tb.Fatalf("seed course discussion: %v", err)
	}
	return d
}

func SeedCourseComment(tb testing.TB, ctx context.Context, tx *gorm.DB, discussionID int64, creatorID *int64, createdAt time.Time) *types.CourseComment {
	tb.Helper()
	c := &types.CourseComment{
		DiscussionID: discussionID,
		Body:         "course comment body",
		Author:       "commenter",
		CreatorID:    creatorID,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed course comment: %v", err)
	}
	return c
}
