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

type CommentHandler struct {
	log *logger.Logger
	svc services.CommentService
	loc *time.Location
}

func NewCommentHandler(log *logger.Logger, svc services.CommentService, loc *time.Location) *CommentHandler {
	return &CommentHandler{
		log: log.With("handler", "CommentHandler"),
		svc: svc,
		loc: loc,
	}
}

// GET /comments?discussion=<id>
func (h *CommentHandler) List(c *gin.Context) {
	details, err := h.svc.List(c.Request.Context(), nil, c.Query("discussion"))
	if err != nil {
		response.RespondFromError(c, h.log, err)
		return
	}
	response.RespondOK(c, views.Comments(details, h.loc))
}

// POST /comments
func (h *CommentHandler) Create(c *gin.Context) {
	var in services.CommentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	detail, err := h.svc.Create(c.Request.Context(), nil, in)
	if err != nil {
		response.RespondFromError(c, h.log, err)
		return
	}
	response.RespondCreated(c, views.Comment(detail, h.loc))
}

// GET /comments/:id
func (h *CommentHandler) Get(c *gin.Context) {
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
	response.RespondOK(c, views.Comment(detail, h.loc))
}

// PUT /comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.RespondError(c, http.StatusNotFound, "Comment not found")
		return
	}
	var in services.CommentInput
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
	response.RespondOK(c, views.Comment(detail, h.loc))
}

// DELETE /comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
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
