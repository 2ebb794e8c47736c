package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/discussions-backend/internal/access"
	"github.com/yungbote/discussions-backend/internal/data/repos"
	types "github.com/yungbote/discussions-backend/internal/domain"
	"github.com/yungbote/discussions-backend/internal/platform/apierr"
	"github.com/yungbote/discussions-backend/internal/platform/logger"
	"github.com/yungbote/discussions-backend/internal/requestdata"
)

const msgNoPermission = "You do not have permission to perform this action."

// DiscussionDetail is a discussion with its comments, newest first.
type DiscussionDetail struct {
	Discussion *types.Discussion
	Comments   []*types.Comment
}

type DiscussionService interface {
	List(ctx context.Context, tx *gorm.DB) ([]*DiscussionDetail, error)
	Get(ctx context.Context, tx *gorm.DB, id int64) (*DiscussionDetail, error)
	Create(ctx context.Context, tx *gorm.DB, in DiscussionInput) (*DiscussionDetail, error)
	Update(ctx context.Context, tx *gorm.DB, caller *requestdata.Identity, id int64, in DiscussionInput) (*DiscussionDetail, error)
	Delete(ctx context.Context, tx *gorm.DB, caller *requestdata.Identity, id int64) error
}

type discussionService struct {
	db             *gorm.DB
	log            *logger.Logger
	writePolicy    access.WritePolicy
	discussionRepo repos.DiscussionRepo
	commentRepo    repos.CommentRepo
}

func NewDiscussionService(
	db *gorm.DB,
	baseLog *logger.Logger,
	writePolicy access.WritePolicy,
	discussionRepo repos.DiscussionRepo,
	commentRepo repos.CommentRepo,
) DiscussionService {
	return &discussionService{
		db:             db,
		log:            baseLog.With("service", "DiscussionService"),
		writePolicy:    writePolicy,
		discussionRepo: discussionRepo,
		commentRepo:    commentRepo,
	}
}

func (s *discussionService) List(ctx context.Context, tx *gorm.DB) ([]*DiscussionDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	found, err := s.discussionRepo.List(ctx, transaction)
	if err != nil {
		s.log.Warn("List: load discussions failed", "error", err)
		return nil, err
	}

	ids := make([]int64, 0, len(found))
	for _, d := range found {
		ids = append(ids, d.ID)
	}
	comments, err := s.commentRepo.ListByDiscussionIDs(ctx, transaction, ids)
	if err != nil {
		s.log.Warn("List: load comments failed", "error", err)
		return nil, err
	}
	byParent := make(map[int64][]*types.Comment, len(found))
	for _, c := range comments {
		byParent[c.DiscussionID] = append(byParent[c.DiscussionID], c)
	}

	details := make([]*DiscussionDetail, 0, len(found))
	for _, d := range found {
		details = append(details, &DiscussionDetail{Discussion: d, Comments: byParent[d.ID]})
	}
	return details, nil
}

func (s *discussionService) Get(ctx context.Context, tx *gorm.DB, id int64) (*DiscussionDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}
	return s.load(ctx, transaction, id)
}

func (s *discussionService) Create(ctx context.Context, tx *gorm.DB, in DiscussionInput) (*DiscussionDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	if err := validateDiscussionInput(in); err != nil {
		return nil, err
	}

	discussion := &types.Discussion{
		Title:     in.Title,
		Body:      in.Body,
		Author:    in.Author,
		CreatorID: coerceOptionalID(in.CreatorID),
	}
	created, err := s.discussionRepo.Create(ctx, transaction, discussion)
	if err != nil {
		s.log.Warn("Create: persist failed", "error", err)
		return nil, err
	}
	return &DiscussionDetail{Discussion: created}, nil
}

func (s *discussionService) Update(ctx context.Context, tx *gorm.DB, caller *requestdata.Identity, id int64, in DiscussionInput) (*DiscussionDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	detail, err := s.load(ctx, transaction, id)
	if err != nil {
		return nil, err
	}
	if !access.CanModify(s.writePolicy, caller, detail.Discussion.CreatorID) {
		return nil, apierr.Forbidden(msgNoPermission)
	}
	if err := validateDiscussionInput(in); err != nil {
		return nil, err
	}

	discussion := detail.Discussion
	discussion.Title = in.Title
	discussion.Body = in.Body
	discussion.Author = in.Author
	discussion.CreatorID = coerceOptionalID(in.CreatorID)

	saved, err := s.discussionRepo.Save(ctx, transaction, discussion)
	if err != nil {
		s.log.Warn("Update: persist failed", "error", err, "discussion_id", id)
		return nil, err
	}
	detail.Discussion = saved
	return detail, nil
}

func (s *discussionService) Delete(ctx context.Context, tx *gorm.DB, caller *requestdata.Identity, id int64) error {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	detail, err := s.load(ctx, transaction, id)
	if err != nil {
		return err
	}
	if !access.CanModify(s.writePolicy, caller, detail.Discussion.CreatorID) {
		return apierr.Forbidden(msgNoPermission)
	}
	if err := s.discussionRepo.Delete(ctx, transaction, id); err != nil {
		s.log.Warn("Delete: persist failed", "error", err, "discussion_id", id)
		return err
	}
	return nil
}

func (s *discussionService) load(ctx context.Context, tx *gorm.DB, id int64) (*DiscussionDetail, error) {
	found, err := s.discussionRepo.GetByIDs(ctx, tx, []int64{id})
	if err != nil {
		s.log.Warn("load: lookup failed", "error", err, "discussion_id", id)
		return nil, err
	}
	if len(found) == 0 {
		return nil, apierr.NotFound("Discussion not found")
	}
	comments, err := s.commentRepo.ListByDiscussionIDs(ctx, tx, []int64{id})
	if err != nil {
		return nil, err
	}
	return &DiscussionDetail{Discussion: found[0], Comments: comments}, nil
}

func validateDiscussionInput(in DiscussionInput) error {
	fe := fieldErrors{}
	fe.requireString("title", in.Title)
	fe.requireString("body", in.Body)
	fe.requireString("author", in.Author)
	if len(fe) > 0 {
		return apierr.Validation(fe)
	}
	return nil
}
