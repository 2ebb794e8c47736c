package repos

import (
	"github.com/yungbote/discussions-backend/internal/data/repos/discussions"
	"github.com/yungbote/discussions-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type DiscussionRepo = discussions.DiscussionRepo
type CommentRepo = discussions.CommentRepo
type CourseDiscussionRepo = discussions.CourseDiscussionRepo
type CourseCommentRepo = discussions.CourseCommentRepo

type CourseKey = discussions.CourseKey

func NewDiscussionRepo(db *gorm.DB, baseLog *logger.Logger) DiscussionRepo {
	return discussions.NewDiscussionRepo(db, baseLog)
}
func NewCommentRepo(db *gorm.DB, baseLog *logger.Logger) CommentRepo {
	return discussions.NewCommentRepo(db, baseLog)
}
func NewCourseDiscussionRepo(db *gorm.DB, baseLog *logger.Logger) CourseDiscussionRepo {
	return discussions.NewCourseDiscussionRepo(db, baseLog)
}
func NewCourseCommentRepo(db *gorm.DB, baseLog *logger.Logger) CourseCommentRepo {
	return discussions.NewCourseCommentRepo(db, baseLog)
}
