package discussions

import (
	"context"

	types "github.com/yungbote/discussions-backend/internal/domain"
	"github.com/yungbote/discussions-backend/internal/platform/logger"
	"gorm.io/gorm"
)

// CourseKey is the natural key of a course thread.
type CourseKey struct {
	CourseID      string
	CourseSubject string
}

type CourseDiscussionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, discussion *types.CourseDiscussion) (*types.CourseDiscussion, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []int64) ([]*types.CourseDiscussion, error)
	GetByCourse(ctx context.Context, tx *gorm.DB, key CourseKey) ([]*types.CourseDiscussion, error)
	List(ctx context.Context, tx *gorm.DB, filter *CourseKey) ([]*types.CourseDiscussion, error)
	Save(ctx context.Context, tx *gorm.DB, discussion *types.CourseDiscussion) (*types.CourseDiscussion, error)
	Delete(ctx context.Context, tx *gorm.DB, id int64) error
}

type courseDiscussionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseDiscussionRepo(db *gorm.DB, baseLog *logger.Logger) CourseDiscussionRepo {
	repoLog := baseLog.With("repo", "CourseDiscussionRepo")
	return &courseDiscussionRepo{db: db, log: repoLog}
}

func (cdr *courseDiscussionRepo) Create(ctx context.Context, tx *gorm.DB, discussion *types.CourseDiscussion) (*types.CourseDiscussion, error) {
	transaction := tx
	if transaction == nil {
		transaction = cdr.db
	}
	if err := transaction.WithContext(ctx).Create(discussion).Error; err != nil {
		return nil, err
	}
	return discussion, nil
}

func (cdr *courseDiscussionRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []int64) ([]*types.CourseDiscussion, error) {
	transaction := tx
	if transaction == nil {
		transaction = cdr.db
	}

	var results []*types.CourseDiscussion
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

func (cdr *courseDiscussionRepo) GetByCourse(ctx context.Context, tx *gorm.DB, key CourseKey) ([]*types.CourseDiscussion, error) {
	transaction := tx
	if transaction == nil {
		transaction = cdr.db
	}

	var results []*types.CourseDiscussion
	if err := transaction.WithContext(ctx).
		Where("course_id = ? AND course_subject = ?", key.CourseID, key.CourseSubject).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// List returns course threads newest first. A non-nil filter restricts to one
// (course_id, course_subject) pair; callers apply the both-or-neither rule.
func (cdr *courseDiscussionRepo) List(ctx context.Context, tx *gorm.DB, filter *CourseKey) ([]*types.CourseDiscussion, error) {
	transaction := tx
	if transaction == nil {
		transaction = cdr.db
	}

	query := transaction.WithContext(ctx).Model(&types.CourseDiscussion{})
	if filter != nil {
		query = query.Where("course_id = ? AND course_subject = ?", filter.CourseID, filter.CourseSubject)
	}

	var results []*types.CourseDiscussion
	if err := query.Order("created_at DESC, id DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cdr *courseDiscussionRepo) Save(ctx context.Context, tx *gorm.DB, discussion *types.CourseDiscussion) (*types.CourseDiscussion, error) {
	transaction := tx
	if transaction == nil {
		transaction = cdr.db
	}
	if err := transaction.WithContext(ctx).Save(discussion).Error; err != nil {
		return nil, err
	}
	return discussion, nil
}

// Delete removes the thread and all of its course comments in one
// transaction.
func (cdr *courseDiscussionRepo) Delete(ctx context.Context, tx *gorm.DB, id int64) error {
	transaction := tx
	if transaction == nil {
		transaction = cdr.db
	}
	return transaction.WithContext(ctx).Transaction(func(inner *gorm.DB) error {
		if err := inner.Where("discussion_id = ?", id).Delete(&types.CourseComment{}).Error; err != nil {
			return err
		}
		return inner.Delete(&types.CourseDiscussion{}, id).Error
	})
}
