package discussions

import (
	"context"

	types "github.com/yungbote/discussions-backend/internal/domain"
	"github.com/yungbote/discussions-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type CourseCommentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, comment *types.CourseComment) (*types.CourseComment, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []int64) ([]*types.CourseComment, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.CourseComment, error)
	ListByDiscussionID(ctx context.Context, tx *gorm.DB, discussionID int64) ([]*types.CourseComment, error)
	ListByDiscussionIDs(ctx context.Context, tx *gorm.DB, discussionIDs []int64) ([]*types.CourseComment, error)
	ListByCourse(ctx context.Context, tx *gorm.DB, key CourseKey) ([]*types.CourseComment, error)
	Save(ctx context.Context, tx *gorm.DB, comment *types.CourseComment) (*types.CourseComment, error)
	Delete(ctx context.Context, tx *gorm.DB, id int64) error
}

type courseCommentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseCommentRepo(db *gorm.DB, baseLog *logger.Logger) CourseCommentRepo {
	repoLog := baseLog.With("repo", "CourseCommentRepo")
	return &courseCommentRepo{db: db, log: repoLog}
}

func (ccr *courseCommentRepo) Create(ctx context.Context, tx *gorm.DB, comment *types.CourseComment) (*types.CourseComment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ccr.db
	}
	if err := transaction.WithContext(ctx).Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (ccr *courseCommentRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []int64) ([]*types.CourseComment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ccr.db
	}

	var results []*types.CourseComment
	if len(ids) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ccr *courseCommentRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.CourseComment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ccr.db
	}

	var results []*types.CourseComment
	if err := transaction.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ccr *courseCommentRepo) ListByDiscussionID(ctx context.Context, tx *gorm.DB, discussionID int64) ([]*types.CourseComment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ccr.db
	}

	var results []*types.CourseComment
	if err := transaction.WithContext(ctx).
		Where("discussion_id = ?", discussionID).
		Order("created_at DESC, id DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ccr *courseCommentRepo) ListByDiscussionIDs(ctx context.Context, tx *gorm.DB, discussionIDs []int64) ([]*types.CourseComment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ccr.db
	}

	var results []*types.CourseComment
	if len(discussionIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("discussion_id IN ?", discussionIDs).
		Order("created_at DESC, id DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// ListByCourse joins through the parent thread's course fields.
func (ccr *courseCommentRepo) ListByCourse(ctx context.Context, tx *gorm.DB, key CourseKey) ([]*types.CourseComment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ccr.db
	}

	var results []*types.CourseComment
	if err := transaction.WithContext(ctx).
		Model(&types.CourseComment{}).
		Joins("JOIN course_discussions ON course_discussions.id = course_comments.discussion_id").
		Where("course_discussions.course_id = ? AND course_discussions.course_subject = ?", key.CourseID, key.CourseSubject).
		Order("course_comments.created_at DESC, course_comments.id DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ccr *courseCommentRepo) Save(ctx context.Context, tx *gorm.DB, comment *types.CourseComment) (*types.CourseComment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ccr.db
	}
	if err := transaction.WithContext(ctx).Save(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (ccr *courseCommentRepo) Delete(ctx context.Context, tx *gorm.DB, id int64) error {
	transaction := tx
	if transaction == nil {
		transaction = ccr.db
	}
	return transaction.WithContext(ctx).Delete(&types.CourseComment{}, id).Error
}
