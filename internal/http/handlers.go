package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"videoapi/internal/core"
	"videoapi/internal/http/middleware"
)

type Handlers struct {
	svc *core.Service
}

func NewHandlers(svc *core.Service) *Handlers {
	return &Handlers{svc: svc}
}

// ---- endpoints ----

func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handlers) GetVideo(c *gin.Context) {
	id, ok := videoID(c)
	if !ok {
		return
	}
	rec, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, core.ErrNotFound.Error())
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handlers) ListVideos(c *gin.Context) {
	recs, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (h *Handlers) CreateVideo(c *gin.Context) {
	id, ok := videoID(c)
	if !ok {
		return
	}
	args, err := collectArgs(c)
	if err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}
	in, err := createRequestFrom(args)
	if err != nil {
		respondError(c, err, "")
		return
	}
	rec, err := h.svc.Create(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err, core.ErrNotFound.Error())
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *Handlers) UpdateVideo(c *gin.Context) {
	id, ok := videoID(c)
	if !ok {
		return
	}
	args, err := collectArgs(c)
	if err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}
	in, err := updateRequestFrom(args)
	if err != nil {
		respondError(c, err, "")
		return
	}
	rec, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err, "video with given id not found, cannot update")
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handlers) DeleteVideo(c *gin.Context) {
	id, ok := videoID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, core.ErrNotFound.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- helpers ----

// videoID parses the :id path segment. Anything other than a run of decimal
// digits does not name a video resource and is answered with 404.
func videoID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || !allDigits(raw) {
		jsonError(c, http.StatusNotFound, "not found")
		return 0, false
	}
	return id, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// respondError maps service errors to a status. notFoundMsg is the message
// used for core.ErrNotFound, which differs slightly between endpoints.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	var fe *core.FieldError
	switch {
	case errors.As(err, &fe):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": fe.Msg, "field": fe.Field})
	case core.IsNotFound(err):
		jsonError(c, http.StatusNotFound, notFoundMsg)
	case core.IsConflict(err):
		jsonError(c, http.StatusConflict, err.Error())
	default:
		log.Printf("rid=%s %s %s: %v", middleware.GetRequestID(c), c.Request.Method, c.Request.URL.Path, err)
		jsonError(c, http.StatusInternalServerError, "internal error")
	}
}

func jsonError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
