package discussions

import (
	"context"

	types "github.com/yungbote/discussions-backend/internal/domain"
	"github.com/yungbote/discussions-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type DiscussionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, discussion *types.Discussion) (*types.Discussion, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []int64) ([]*types.Discussion, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Discussion, error)
	Save(ctx context.Context, tx *gorm.DB, discussion *types.Discussion) (*types.Discussion, error)
	Delete(ctx context.Context, tx *gorm.DB, id int64) error
}

type discussionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDiscussionRepo(db *gorm.DB, baseLog *logger.Logger) DiscussionRepo {
	repoLog := baseLog.With("repo", "DiscussionRepo")
	return &discussionRepo{db: db, log: repoLog}
}

func (dr *discussionRepo) Create(ctx context.Context, tx *gorm.DB, discussion *types.Discussion) (*types.Discussion, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	if err := transaction.WithContext(ctx).Create(discussion).Error; err != nil {
		return nil, err
	}
	return discussion, nil
}

func (dr *discussionRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []int64) ([]*types.Discussion, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	var results []*types.Discussion
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

func (dr *discussionRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Discussion, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	var results []*types.Discussion
	if err := transaction.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (dr *discussionRepo) Save(ctx context.Context, tx *gorm.DB, discussion *types.Discussion) (*types.Discussion, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	if err := transaction.WithContext(ctx).Save(discussion).Error; err != nil {
		return nil, err
	}
	return discussion, nil
}

// Delete removes the discussion and all of its comments. Migrations run with
// DB-level foreign keys disabled, so the cascade is done here in one
// transaction.
func (dr *discussionRepo) Delete(ctx context.Context, tx *gorm.DB, id int64) error {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	return transaction.WithContext(ctx).Transaction(func(inner *gorm.DB) error {
		if err := inner.Where("discussion_id = ?", id).Delete(&types.Comment{}).Error; err != nil {
			return err
		}
		return inner.Delete(&types.Discussion{}, id).Error
	})
}
