package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/discussions-backend/internal/http/response"
	"github.com/yungbote/discussions-backend/internal/http/views"
	"github.com/yungbote/discussions-backend/internal/platform/logger"
	"github.com/yungbote/discussions-backend/internal/requestdata"
	"github.com/yungbote/discussions-backend/internal/services"
)

type CourseDiscussionHandler struct {
	log *logger.Logger
	svc services.CourseDiscussionService
	loc *time.Location
}

func NewCourseDiscussionHandler(log *logger.Logger, svc services.CourseDiscussionService, loc *time.Location) *CourseDiscussionHandler {
	return &CourseDiscussionHandler{
		log: log.With("handler", "CourseDiscussionHandler"),
		svc: svc,
		loc: loc,
	}
}

// GET /course-discussions?course_id=&course_subject=
func (h *CourseDiscussionHandler) List(c *gin.Context) {
	details, err := h.svc.List(c.Request.Context(), nil, c.Query("course_id"), c.Query("course_subject"))
	if err != nil {
		response.RespondFromError(c, h.log, err)
		return
	}
	response.RespondOK(c, views.CourseDiscussions(details, h.loc))
}

// POST /course-discussions
func (h *CourseDiscussionHandler) Create(c *gin.Context) {
	var in services.CourseDiscussionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	caller := requestdata.GetIdentity(c.Request.Context())
	detail, err := h.svc.Create(c.Request.Context(), nil, caller, in)
	if err != nil {
		response.RespondFromError(c, h.log, err)
		return
	}
	response.RespondCreated(c, views.CourseDiscussion(detail, h.loc))
}

// GET /course-discussions/:key
func (h *CourseDiscussionHandler) Get(c *gin.Context) {
	id, ok := courseKeyID(c)
	if !ok {
		response.RespondError(c, http.StatusNotFound, "Discussion not found")
		return
	}
	detail, err := h.svc.Get(c.Request.Context(), nil, id)
	if err != nil {
		response.RespondFromError(c, h.log, err)
		return
	}
	response.RespondOK(c, views.CourseDiscussion(detail, h.loc))
}

// PUT /course-discussions/:key
func (h *CourseDiscussionHandler) Update(c *gin.Context) {
	id, ok := courseKeyID(c)
	if !ok {
		response.RespondError(c, http.StatusNotFound, "Discussion not found")
		return
	}
	var in services.CourseDiscussionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	caller := requestdata.GetIdentity(c.Request.Context())
	detail, err := h.svc.Update(c.Request.Context(), nil, caller, id, in)
	if err != nil {
		response.RespondFromError(c, h.log, err)
		return
	}
	response.RespondOK(c, views.CourseDiscussion(detail, h.loc))
}

// DELETE /course-discussions/:key
func (h *CourseDiscussionHandler) Delete(c *gin.Context) {
	id, ok := courseKeyID(c)
	if !ok {
		response.RespondError(c, http.StatusNotFound, "Discussion not found")
		return
	}
	caller := requestdata.GetIdentity(c.Request.Context())
	if err := h.svc.Delete(c.Request.Context(), nil, caller, id); err != nil {
		response.RespondFromError(c, h.log, err)
		return
	}
	response.RespondNoContent(c)
}

// GET /course-discussions/:key/:course_id — lookup by natural key, where
// :key is the course subject.
func (h *CourseDiscussionHandler) GetByCourse(c *gin.Context) {
	detail, err := h.svc.GetByCourse(c.Request.Context(), nil, c.Param("key"), c.Param("course_id"))
	if err != nil {
		response.RespondFromError(c, h.log, err)
		return
	}
	response.RespondOK(c, views.CourseDiscussion(detail, h.loc))
}

// DELETE /course-discussions/:key/:course_id
func (h *CourseDiscussionHandler) DeleteByCourse(c *gin.Context) {
	caller := requestdata.GetIdentity(c.Request.Context())
	if err := h.svc.DeleteByCourse(c.Request.Context(), nil, caller, c.Param("key"), c.Param("course_id")); err != nil {
		response.RespondFromError(c, h.log, err)
		return
	}
	response.RespondNoContent(c)
}

// courseKeyID parses the shared :key segment as a numeric id. The segment is
// named key because the natural-key route reuses the same position for the
// course subject.
func courseKeyID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("key"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
