package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/discussions-backend/internal/http/response"
	"github.com/yungbote/discussions-backend/internal/http/views"
	"github.com/yungbote/discussions-backend/internal/platform/logger"
	"github.com/yungbote/discussions-backend/internal/requestdata"
	"github.com/yungbote/discussions-backend/internal/services"
)

type CourseCommentHandler struct {
	log *logger.Logger
	svc services.CourseCommentService
	loc *time.Location
}

func NewCourseCommentHandler(log *logger.Logger, svc services.CourseCommentService, loc *time.Location) *CourseCommentHandler {
	return &CourseCommentHandler{
		log: log.With("handler", "CourseCommentHandler"),
		svc: svc,
		loc: loc,
	}
}

// GET /course-comments?discussion=&course_id=&course_subject=
func (h *CourseCommentHandler) List(c *gin.Context) {
	filter := services.CourseCommentFilter{
		Discussion:    c.Query("discussion"),
		CourseID:      c.Query("course_id"),
		CourseSubject: c.Query("course_subject"),
	}
	details, err := h.svc.List(c.Request.Context(), nil, filter)
	if err != nil {
		response.RespondFromError(c, h.log, err)
		return
	}
	response.RespondOK(c, views.CourseComments(details, h.loc))
}

// POST /course-comments
func (h *CourseCommentHandler) Create(c *gin.Context) {
	var in services.CourseCommentInput
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
	response.RespondCreated(c, views.CourseComment(detail, h.loc))
}

// GET /course-comments/:id
func (h *CourseCommentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.RespondError(c, http.StatusNotFound, "Comment not found")
		return
	}
	detail, err := h.svc.Get(c.Request.Context(), nil, id)
	if err != nil {
		response.RespondFromError(c, h.log, err)
		return
	}
	response.RespondOK(c, views.CourseComment(detail, h.loc))
}

// PUT /course-comments/:id
func (h *CourseCommentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.RespondError(c, http.StatusNotFound, "Comment not found")
		return
	}
	var in services.CourseCommentInput
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
	response.RespondOK(c, views.CourseComment(detail, h.loc))
}

// DELETE /course-comments/:id
func (h *CourseCommentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.RespondError(c, http.StatusNotFound, "Comment not found")
		return
	}
	caller := requestdata.GetIdentity(c.Request.Context())
	if err := h.svc.Delete(c.Request.Context(), nil, caller, id); err != nil {
		response.RespondFromError(c, h.log, err)
		return
	}
	response.RespondNoContent(c)
}
