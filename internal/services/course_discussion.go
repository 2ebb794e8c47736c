package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/discussions-backend/internal/access"
	"github.com/yungbote/discussions-backend/internal/data/repos"
	types "github.com/yungbote/discussions-backend/internal/domain"
	"github.com/yungbote/discussions-backend/internal/platform/apierr"
	"github.com/yungbote/discussions-backend/internal/platform/logger"
	"github.com/yungbote/discussions-backend/internal/requestdata"
)

// CourseDiscussionDetail is a course thread with its comments, newest first.
type CourseDiscussionDetail struct {
	Discussion *types.CourseDiscussion
	Comments   []*types.CourseComment
}

type CourseDiscussionService interface {
	List(ctx context.Context, tx *gorm.DB, courseID, courseSubject string) ([]*CourseDiscussionDetail, error)
	Get(ctx context.Context, tx *gorm.DB, id int64) (*CourseDiscussionDetail, error)
	GetByCourse(ctx context.Context, tx *gorm.DB, courseSubject, courseID string) (*CourseDiscussionDetail, error)
	Create(ctx context.Context, tx *gorm.DB, caller *requestdata.Identity, in CourseDiscussionInput) (*CourseDiscussionDetail, error)
	Update(ctx context.Context, tx *gorm.DB, caller *requestdata.Identity, id int64, in CourseDiscussionInput) (*CourseDiscussionDetail, error)
	Delete(ctx context.Context, tx *gorm.DB, caller *requestdata.Identity, id int64) error
	DeleteByCourse(ctx context.Context, tx *gorm.DB, caller *requestdata.Identity, courseSubject, courseID string) error
}

type courseDiscussionService struct {
	db             *gorm.DB
	log            *logger.Logger
	discussionRepo repos.CourseDiscussionRepo
	commentRepo    repos.CourseCommentRepo
}

func NewCourseDiscussionService(
	db *gorm.DB,
	baseLog *logger.Logger,
	discussionRepo repos.CourseDiscussionRepo,
	commentRepo repos.CourseCommentRepo,
) CourseDiscussionService {
	return &courseDiscussionService{
		db:             db,
		log:            baseLog.With("service", "CourseDiscussionService"),
		discussionRepo: discussionRepo,
		commentRepo:    commentRepo,
	}
}

// List applies the course filter only when both halves of the natural key are
// supplied.
func (s *courseDiscussionService) List(ctx context.Context, tx *gorm.DB, courseID, courseSubject string) ([]*CourseDiscussionDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	var filter *repos.CourseKey
	if strings.TrimSpace(courseID) != "" && strings.TrimSpace(courseSubject) != "" {
		filter = &repos.CourseKey{CourseID: courseID, CourseSubject: courseSubject}
	}

	found, err := s.discussionRepo.List(ctx, transaction, filter)
	if err != nil {
		s.log.Warn("List: load course discussions failed", "error", err)
		return nil, err
	}

	ids := make([]int64, 0, len(found))
	for _, d := range found {
		ids = append(ids, d.ID)
	}
	comments, err := s.commentRepo.ListByDiscussionIDs(ctx, transaction, ids)
	if err != nil {
		s.log.Warn("List: load course comments failed", "error", err)
		return nil, err
	}
	byParent := make(map[int64][]*types.CourseComment, len(found))
	for _, c := range comments {
		byParent[c.DiscussionID] = append(byParent[c.DiscussionID], c)
	}

	details := make([]*CourseDiscussionDetail, 0, len(found))
	for _, d := range found {
		details = append(details, &CourseDiscussionDetail{Discussion: d, Comments: byParent[d.ID]})
	}
	return details, nil
}

func (s *courseDiscussionService) Get(ctx context.Context, tx *gorm.DB, id int64) (*CourseDiscussionDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}
	return s.load(ctx, transaction, id)
}

func (s *courseDiscussionService) GetByCourse(ctx context.Context, tx *gorm.DB, courseSubject, courseID string) (*CourseDiscussionDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	found, err := s.discussionRepo.GetByCourse(ctx, transaction, repos.CourseKey{CourseID: courseID, CourseSubject: courseSubject})
	if err != nil {
		s.log.Warn("GetByCourse: lookup failed", "error", err, "course_subject", courseSubject, "course_id", courseID)
		return nil, err
	}
	if len(found) == 0 {
		return nil, apierr.NotFound("Discussion not found for this course")
	}
	return s.attachComments(ctx, transaction, found[0])
}

// Create derives the creator from the resolved caller; any client-supplied
// creator_id is ignored for course entities.
func (s *courseDiscussionService) Create(ctx context.Context, tx *gorm.DB, caller *requestdata.Identity, in CourseDiscussionInput) (*CourseDiscussionDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	if err := validateCourseDiscussionInput(in); err != nil {
		return nil, err
	}

	discussion := &types.CourseDiscussion{
		Title:         in.Title,
		Body:          in.Body,
		Author:        in.Author,
		CourseSubject: in.CourseSubject,
		CourseID:      in.CourseID,
	}
	if caller != nil {
		discussion.CreatorID = caller.UserID
	}

	created, err := s.discussionRepo.Create(ctx, transaction, discussion)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierr.Validation(fieldErrors{"non_field_errors": {msgCourseNotUnique}})
		}
		s.log.Warn("Create: persist failed", "error", err)
		return nil, err
	}
	return &CourseDiscussionDetail{Discussion: created}, nil
}

func (s *courseDiscussionService) Update(ctx context.Context, tx *gorm.DB, caller *requestdata.Identity, id int64, in CourseDiscussionInput) (*CourseDiscussionDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	detail, err := s.load(ctx, transaction, id)
	if err != nil {
		return nil, err
	}
	if !access.CanModify(access.WriteOwnerOrAdmin, caller, detail.Discussion.CreatorID) {
		return nil, apierr.Forbidden(msgNoPermission)
	}
	if err := validateCourseDiscussionInput(in); err != nil {
		return nil, err
	}

	discussion := detail.Discussion
	discussion.Title = in.Title
	discussion.Body = in.Body
	discussion.Author = in.Author
	discussion.CourseSubject = in.CourseSubject
	discussion.CourseID = in.CourseID

	saved, err := s.discussionRepo.Save(ctx, transaction, discussion)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierr.Validation(fieldErrors{"non_field_errors": {msgCourseNotUnique}})
		}
		s.log.Warn("Update: persist failed", "error", err, "course_discussion_id", id)
		return nil, err
	}
	detail.Discussion = saved
	return detail, nil
}

func (s *courseDiscussionService) Delete(ctx context.Context, tx *gorm.DB, caller *requestdata.Identity, id int64) error {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	detail, err := s.load(ctx, transaction, id)
	if err != nil {
		return err
	}
	return s.deleteChecked(ctx, transaction, caller, detail)
}

func (s *courseDiscussionService) DeleteByCourse(ctx context.Context, tx *gorm.DB, caller *requestdata.Identity, courseSubject, courseID string) error {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	detail, err := s.GetByCourse(ctx, transaction, courseSubject, courseID)
	if err != nil {
		return err
	}
	return s.deleteChecked(ctx, transaction, caller, detail)
}

func (s *courseDiscussionService) deleteChecked(ctx context.Context, tx *gorm.DB, caller *requestdata.Identity, detail *CourseDiscussionDetail) error {
	if !access.CanModify(access.WriteOwnerOrAdmin, caller, detail.Discussion.CreatorID) {
		return apierr.Forbidden(msgNoPermission)
	}
	if err := s.discussionRepo.Delete(ctx, tx, detail.Discussion.ID); err != nil {
		s.log.Warn("Delete: persist failed", "error", err, "course_discussion_id", detail.Discussion.ID)
		return err
	}
	return nil
}

func (s *courseDiscussionService) load(ctx context.Context, tx *gorm.DB, id int64) (*CourseDiscussionDetail, error) {
	found, err := s.discussionRepo.GetByIDs(ctx, tx, []int64{id})
	if err != nil {
		s.log.Warn("load: lookup failed", "error", err, "course_discussion_id", id)
		return nil, err
	}
	if len(found) == 0 {
		return nil, apierr.NotFound("Discussion not found")
	}
	return s.attachComments(ctx, tx, found[0])
}

func (s *courseDiscussionService) attachComments(ctx context.Context, tx *gorm.DB, discussion *types.CourseDiscussion) (*CourseDiscussionDetail, error) {
	comments, err := s.commentRepo.ListByDiscussionIDs(ctx, tx, []int64{discussion.ID})
	if err != nil {
		return nil, err
	}
	return &CourseDiscussionDetail{Discussion: discussion, Comments: comments}, nil
}

func validateCourseDiscussionInput(in CourseDiscussionInput) error {
	fe := fieldErrors{}
	fe.requireString("title", in.Title)
	fe.requireString("body", in.Body)
	fe.requireString("author", in.Author)
	fe.requireString("course_subject", in.CourseSubject)
	fe.requireString("course_id", in.CourseID)
	if len(fe) > 0 {
		return apierr.Validation(fe)
	}
	return nil
}
