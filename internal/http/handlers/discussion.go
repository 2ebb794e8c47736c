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

type DiscussionHandler struct {
	log *logger.Logger
	svc services.DiscussionService
	loc *time.Location
}

func NewDiscussionHandler(log *logger.Logger, svc services.DiscussionService, loc *time.Location) *DiscussionHandler {
	return &DiscussionHandler{
		log: log.With("handler", "DiscussionHandler"),
		svc: svc,
		loc: loc,
	}
}

// GET /discussions
func (h *DiscussionHandler) List(c *gin.Context) {
	details, err := h.svc.List(c.Request.Context(), nil)
	if err != nil {
		response.RespondFromError(c, h.log, err)
		return
	}
	response.RespondOK(c, views.Discussions(details, h.loc))
}

// POST /discussions
func (h *DiscussionHandler) Create(c *gin.Context) {
	var in services.DiscussionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	detail, err := h.svc.Create(c.Request.Context(), nil, in)
	if err != nil {
		response.RespondFromError(c, h.log, err)
		return
	}
	response.RespondCreated(c, views.Discussion(detail, h.loc))
}

// GET /discussions/:id
func (h *DiscussionHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.RespondError(c, http.StatusNotFound, "Discussion not found")
		return
	}
	detail, err := h.svc.Get(c.Request.Context(), nil, id)
	if err != nil {
		response.RespondFromError(c, h.log, err)
		return
	}
	response.RespondOK(c, views.Discussion(detail, h.loc))
}

// PUT /discussions/:id
func (h *DiscussionHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.RespondError(c, http.StatusNotFound, "Discussion not found")
		return
	}
	var in services.DiscussionInput
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
	response.RespondOK(c, views.Discussion(detail, h.loc))
}

// DELETE /discussions/:id
func (h *DiscussionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
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

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
