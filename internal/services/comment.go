package services

import (
	"context"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/discussions-backend/internal/access"
	"github.com/yungbote/discussions-backend/internal/data/repos"
	types "github.com/yungbote/discussions-backend/internal/domain"
	"github.com/yungbote/discussions-backend/internal/platform/apierr"
	"github.com/yungbote/discussions-backend/internal/platform/logger"
	"github.com/yungbote/discussions-backend/internal/requestdata"
)

// CommentDetail pairs a comment with its parent's title, resolved at read
// time.
type CommentDetail struct {
	Comment         *types.Comment
	DiscussionTitle string
}

type CommentService interface {
	List(ctx context.Context, tx *gorm.DB, discussionFilter string) ([]*CommentDetail, error)
	Get(ctx context.Context, tx *gorm.DB, id int64) (*CommentDetail, error)
	Create(ctx context.Context, tx *gorm.DB, in CommentInput) (*CommentDetail, error)
	Update(ctx context.Context, tx *gorm.DB, caller *requestdata.Identity, id int64, in CommentInput) (*CommentDetail, error)
	Delete(ctx context.Context, tx *gorm.DB, caller *requestdata.Identity, id int64) error
}

type commentService struct {
	db             *gorm.DB
	log            *logger.Logger
	writePolicy    access.WritePolicy
	discussionRepo repos.DiscussionRepo
	commentRepo    repos.CommentRepo
}

func NewCommentService(
	db *gorm.DB,
	baseLog *logger.Logger,
	writePolicy access.WritePolicy,
	discussionRepo repos.DiscussionRepo,
	commentRepo repos.CommentRepo,
) CommentService {
	return &commentService{
		db:             db,
		log:            baseLog.With("service", "CommentService"),
		writePolicy:    writePolicy,
		discussionRepo: discussionRepo,
		commentRepo:    commentRepo,
	}
}

// List returns comments newest first. A malformed discussion filter degrades
// to an empty result instead of an error.
func (s *commentService) List(ctx context.Context, tx *gorm.DB, discussionFilter string) ([]*CommentDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	var discussionID *int64
	if trimmed := strings.TrimSpace(discussionFilter); trimmed != "" {
		parsed, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			s.log.Debug("List: non-integer discussion filter, returning empty result", "filter", discussionFilter)
			return []*CommentDetail{}, nil
		}
		discussionID = &parsed
	}

	comments, err := s.commentRepo.List(ctx, transaction, discussionID)
	if err != nil {
		s.log.Warn("List: load comments failed", "error", err)
		return nil, err
	}
	return s.withTitles(ctx, transaction, comments)
}

func (s *commentService) Get(ctx context.Context, tx *gorm.DB, id int64) (*CommentDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}
	return s.load(ctx, transaction, id)
}

func (s *commentService) Create(ctx context.Context, tx *gorm.DB, in CommentInput) (*CommentDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	discussionID, err := s.validateInput(ctx, transaction, in)
	if err != nil {
		return nil, err
	}

	comment := &types.Comment{
		DiscussionID: discussionID,
		Body:         in.Body,
		Author:       in.Author,
		CreatorID:    coerceOptionalID(in.CreatorID),
	}
	created, err := s.commentRepo.Create(ctx, transaction, comment)
	if err != nil {
		s.log.Warn("Create: persist failed", "error", err)
		return nil, err
	}
	return s.withTitle(ctx, transaction, created)
}

func (s *commentService) Update(ctx context.Context, tx *gorm.DB, caller *requestdata.Identity, id int64, in CommentInput) (*CommentDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	detail, err := s.load(ctx, transaction, id)
	if err != nil {
		return nil, err
	}
	if !access.CanModify(s.writePolicy, caller, detail.Comment.CreatorID) {
		return nil, apierr.Forbidden(msgNoPermission)
	}
	discussionID, err := s.validateInput(ctx, transaction, in)
	if err != nil {
		return nil, err
	}

	comment := detail.Comment
	comment.DiscussionID = discussionID
	comment.Body = in.Body
	comment.Author = in.Author
	comment.CreatorID = coerceOptionalID(in.CreatorID)

	saved, err := s.commentRepo.Save(ctx, transaction, comment)
	if err != nil {
		s.log.Warn("Update: persist failed", "error", err, "comment_id", id)
		return nil, err
	}
	return s.withTitle(ctx, transaction, saved)
}

func (s *commentService) Delete(ctx context.Context, tx *gorm.DB, caller *requestdata.Identity, id int64) error {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	detail, err := s.load(ctx, transaction, id)
	if err != nil {
		return err
	}
	if !access.CanModify(s.writePolicy, caller, detail.Comment.CreatorID) {
		return apierr.Forbidden(msgNoPermission)
	}
	if err := s.commentRepo.Delete(ctx, transaction, id); err != nil {
		s.log.Warn("Delete: persist failed", "error", err, "comment_id", id)
		return err
	}
	return nil
}

// validateInput enforces the required fields and confirms the parent
// discussion exists. Required-field problems are hard failures; only the
// optional creator_id is ever silently normalized.
func (s *commentService) validateInput(ctx context.Context, tx *gorm.DB, in CommentInput) (int64, error) {
	fe := fieldErrors{}
	fe.requireString("body", in.Body)
	fe.requireString("author", in.Author)

	discussionID, ok := coerceRequiredID(in.Discussion)
	switch {
	case in.Discussion == nil:
		fe.add("discussion", msgFieldRequired)
	case !ok:
		fe.add("discussion", msgInvalidDiscussion)
	default:
		parents, err := s.discussionRepo.GetByIDs(ctx, tx, []int64{discussionID})
		if err != nil {
			return 0, err
		}
		if len(parents) == 0 {
			fe.add("discussion", msgInvalidDiscussion)
		}
	}

	if len(fe) > 0 {
		return 0, apierr.Validation(fe)
	}
	return discussionID, nil
}

func (s *commentService) load(ctx context.Context, tx *gorm.DB, id int64) (*CommentDetail, error) {
	found, err := s.commentRepo.GetByIDs(ctx, tx, []int64{id})
	if err != nil {
		s.log.Warn("load: lookup failed", "error", err, "comment_id", id)
		return nil, err
	}
	if len(found) == 0 {
		return nil, apierr.NotFound("Comment not found")
	}
	return s.withTitle(ctx, tx, found[0])
}

func (s *commentService) withTitle(ctx context.Context, tx *gorm.DB, comment *types.Comment) (*CommentDetail, error) {
	details, err := s.withTitles(ctx, tx, []*types.Comment{comment})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (s *commentService) withTitles(ctx context.Context, tx *gorm.DB, comments []*types.Comment) ([]*CommentDetail, error) {
	parentIDs := make([]int64, 0, len(comments))
	seen := make(map[int64]bool, len(comments))
	for _, c := range comments {
		if !seen[c.DiscussionID] {
			seen[c.DiscussionID] = true
			parentIDs = append(parentIDs, c.DiscussionID)
		}
	}
	parents, err := s.discussionRepo.GetByIDs(ctx, tx, parentIDs)
	if err != nil {
		return nil, err
	}
	titles := make(map[int64]string, len(parents))
	for _, p := range parents {
		titles[p.ID] = p.Title
	}

	details := make([]*CommentDetail, 0, len(comments))
	for _, c := range comments {
		details = append(details, &CommentDetail{Comment: c, DiscussionTitle: titles[c.DiscussionID]})
	}
	return details, nil
}
