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

// CourseCommentDetail pairs a course comment with its parent thread's title.
type CourseCommentDetail struct {
	Comment         *types.CourseComment
	DiscussionTitle string
}

// CourseCommentFilter carries the optional list filters. Discussion wins over
// the course pair; the course pair applies only when both halves are set.
type CourseCommentFilter struct {
	Discussion    string
	CourseID      string
	CourseSubject string
}

type CourseCommentService interface {
	List(ctx context.Context, tx *gorm.DB, filter CourseCommentFilter) ([]*CourseCommentDetail, error)
	Get(ctx context.Context, tx *gorm.DB, id int64) (*CourseCommentDetail, error)
	Create(ctx context.Context, tx *gorm.DB, caller *requestdata.Identity, in CourseCommentInput) (*CourseCommentDetail, error)
	Update(ctx context.Context, tx *gorm.DB, caller *requestdata.Identity, id int64, in CourseCommentInput) (*CourseCommentDetail, error)
	Delete(ctx context.Context, tx *gorm.DB, caller *requestdata.Identity, id int64) error
}

type courseCommentService struct {
	db             *gorm.DB
	log            *logger.Logger
	discussionRepo repos.CourseDiscussionRepo
	commentRepo    repos.CourseCommentRepo
}

func NewCourseCommentService(
	db *gorm.DB,
	baseLog *logger.Logger,
	discussionRepo repos.CourseDiscussionRepo,
	commentRepo repos.CourseCommentRepo,
) CourseCommentService {
	return &courseCommentService{
		db:             db,
		log:            baseLog.With("service", "CourseCommentService"),
		discussionRepo: discussionRepo,
		commentRepo:    commentRepo,
	}
}

func (s *courseCommentService) List(ctx context.Context, tx *gorm.DB, filter CourseCommentFilter) ([]*CourseCommentDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	var (
		comments []*types.CourseComment
		err      error
	)
	switch {
	case strings.TrimSpace(filter.Discussion) != "":
		parsed, parseErr := strconv.ParseInt(strings.TrimSpace(filter.Discussion), 10, 64)
		if parseErr != nil {
			s.log.Debug("List: non-integer discussion filter, returning empty result", "filter", filter.Discussion)
			return []*CourseCommentDetail{}, nil
		}
		comments, err = s.commentRepo.ListByDiscussionID(ctx, transaction, parsed)
	case strings.TrimSpace(filter.CourseID) != "" && strings.TrimSpace(filter.CourseSubject) != "":
		comments, err = s.commentRepo.ListByCourse(ctx, transaction, repos.CourseKey{
			CourseID:      filter.CourseID,
			CourseSubject: filter.CourseSubject,
		})
	default:
		comments, err = s.commentRepo.List(ctx, transaction)
	}
	if err != nil {
		s.log.Warn("List: load course comments failed", "error", err)
		return nil, err
	}
	return s.withTitles(ctx, transaction, comments)
}

func (s *courseCommentService) Get(ctx context.Context, tx *gorm.DB, id int64) (*CourseCommentDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}
	return s.load(ctx, transaction, id)
}

// Create derives the creator from the resolved caller, ignoring any
// client-supplied value.
func (s *courseCommentService) Create(ctx context.Context, tx *gorm.DB, caller *requestdata.Identity, in CourseCommentInput) (*CourseCommentDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	discussionID, err := s.validateInput(ctx, transaction, in)
	if err != nil {
		return nil, err
	}

	comment := &types.CourseComment{
		DiscussionID: discussionID,
		Body:         in.Body,
		Author:       in.Author,
	}
	if caller != nil {
		comment.CreatorID = caller.UserID
	}

	created, err := s.commentRepo.Create(ctx, transaction, comment)
	if err != nil {
		s.log.Warn("Create: persist failed", "error", err)
		return nil, err
	}
	return s.withTitle(ctx, transaction, created)
}

func (s *courseCommentService) Update(ctx context.Context, tx *gorm.DB, caller *requestdata.Identity, id int64, in CourseCommentInput) (*CourseCommentDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	detail, err := s.load(ctx, transaction, id)
	if err != nil {
		return nil, err
	}
	if !access.CanModify(access.WriteOwnerOrAdmin, caller, detail.Comment.CreatorID) {
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

	saved, err := s.commentRepo.Save(ctx, transaction, comment)
	if err != nil {
		s.log.Warn("Update: persist failed", "error", err, "course_comment_id", id)
		return nil, err
	}
	return s.withTitle(ctx, transaction, saved)
}

func (s *courseCommentService) Delete(ctx context.Context, tx *gorm.DB, caller *requestdata.Identity, id int64) error {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	detail, err := s.load(ctx, transaction, id)
	if err != nil {
		return err
	}
	if !access.CanModify(access.WriteOwnerOrAdmin, caller, detail.Comment.CreatorID) {
		return apierr.Forbidden(msgNoPermission)
	}
	if err := s.commentRepo.Delete(ctx, transaction, id); err != nil {
		s.log.Warn("Delete: persist failed", "error", err, "course_comment_id", id)
		return err
	}
	return nil
}

func (s *courseCommentService) validateInput(ctx context.Context, tx *gorm.DB, in CourseCommentInput) (int64, error) {
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

func (s *courseCommentService) load(ctx context.Context, tx *gorm.DB, id int64) (*CourseCommentDetail, error) {
	found, err := s.commentRepo.GetByIDs(ctx, tx, []int64{id})
	if err != nil {
		s.log.Warn("load: lookup failed", "error", err, "course_comment_id", id)
		return nil, err
	}
	if len(found) == 0 {
		return nil, apierr.NotFound("Comment not found")
	}
	return s.withTitle(ctx, tx, found[0])
}

func (s *courseCommentService) withTitle(ctx context.Context, tx *gorm.DB, comment *types.CourseComment) (*CourseCommentDetail, error) {
	details, err := s.withTitles(ctx, tx, []*types.CourseComment{comment})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (s *courseCommentService) withTitles(ctx context.Context, tx *gorm.DB, comments []*types.CourseComment) ([]*CourseCommentDetail, error) {
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

	details := make([]*CourseCommentDetail, 0, len(comments))
	for _, c := range comments {
		details = append(details, &CourseCommentDetail{Comment: c, DiscussionTitle: titles[c.DiscussionID]})
	}
	return details, nil
}
