package discussions

import (
	"context"

	types "github.com/yungbote/discussions-backend/internal/domain"
	"github.com/yungbote/discussions-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type CommentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, comment *types.Comment) (*types.Comment, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []int64) ([]*types.Comment, error)
	List(ctx context.Context, tx *gorm.DB, discussionID *int64) ([]*types.Comment, error)
	ListByDiscussionIDs(ctx context.Context, tx *gorm.DB, discussionIDs []int64) ([]*types.Comment, error)
	Save(ctx context.Context, tx *gorm.DB, comment *types.Comment) (*types.Comment, error)
	Delete(ctx context.Context, tx *gorm.DB, id int64) error
}

type commentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCommentRepo(db *gorm.DB, baseLog *logger.Logger) CommentRepo {
	repoLog := baseLog.With("repo", "CommentRepo")
	return &commentRepo{db: db, log: repoLog}
}

func (cr *commentRepo) Create(ctx context.Context, tx *gorm.DB, comment *types.Comment) (*types.Comment, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (cr *commentRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []int64) ([]*types.Comment, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Comment
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

// List returns comments newest first, optionally restricted to one parent
// discussion.
func (cr *commentRepo) List(ctx context.Context, tx *gorm.DB, discussionID *int64) ([]*types.Comment, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	query := transaction.WithContext(ctx).Model(&types.Comment{})
	if discussionID != nil {
		query = query.Where("discussion_id = ?", *discussionID)
	}

	var results []*types.Comment
	if err := query.Order("created_at DESC, id DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *commentRepo) ListByDiscussionIDs(ctx context.Context, tx *gorm.DB, discussionIDs []int64) ([]*types.Comment, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Comment
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

func (cr *commentRepo) Save(ctx context.Context, tx *gorm.DB, comment *types.Comment) (*types.Comment, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).Save(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (cr *commentRepo) Delete(ctx context.Context, tx *gorm.DB, id int64) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Delete(&types.Comment{}, id).Error
}
