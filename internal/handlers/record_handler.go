package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apptrackr/backend/internal/dtos"
	"github.com/apptrackr/backend/internal/middleware"
	"github.com/apptrackr/backend/internal/services"
)

// RecordHandler serves one record kind; it is mounted once for jobs and once
// for interviews with the matching service and response keys.
type RecordHandler[T any, PT services.RecordPtr[T]] struct {
	Service *services.RecordService[T, PT]

	name     string // singular JSON key, e.g. "job"
	plural   string // list JSON key, e.g. "jobs"
	totalKey string // e.g. "totalJobs"
}

func NewRecordHandler[T any, PT services.RecordPtr[T]](
	svc *services.RecordService[T, PT], name, plural, totalKey string,
) *RecordHandler[T, PT] {
	return &RecordHandler[T, PT]{Service: svc, name: name, plural: plural, totalKey: totalKey}
}

// Register mounts the CRUD + stats routes on grp. Mutations are blocked for
// the demo account.
func (h *RecordHandler[T, PT]) Register(grp *gin.RouterGroup) {
	grp.GET("", h.List)
	grp.POST("", middleware.RequireWritable(), h.Create)
	grp.GET("/stats", h.Stats)
	grp.GET("/:id", h.Get)
	grp.PATCH("/:id", middleware.RequireWritable(), h.Update)
	grp.DELETE("/:id", middleware.RequireWritable(), h.Delete)
}

func (h *RecordHandler[T, PT]) List(c *gin.Context) {
	q := services.ParseListQuery(
		c.Query("search"),
		c.Query("status"),
		c.Query("type"),
		c.Query("sort"),
		c.Query("page"),
		c.Query("limit"),
	)

	recs, total, numOfPages, err := h.Service.List(middleware.UserID(c), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		h.plural:     recs,
		h.totalKey:   total,
		"numOfPages": numOfPages,
	})
}

func (h *RecordHandler[T, PT]) Create(c *gin.Context) {
	var req dtos.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": bindErrorMessage(err)})
		return
	}

	rec, err := h.Service.Create(middleware.UserID(c), req.Meta())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{h.name: rec})
}

func (h *RecordHandler[T, PT]) Get(c *gin.Context) {
	id, err := parseID(c, h.name)
	if err != nil {
		respondError(c, err)
		return
	}

	rec, err := h.Service.Get(middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{h.name: rec})
}

func (h *RecordHandler[T, PT]) Update(c *gin.Context) {
	id, err := parseID(c, h.name)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dtos.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body"})
		return
	}

	rec, err := h.Service.Update(middleware.UserID(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{h.name: rec})
}

func (h *RecordHandler[T, PT]) Delete(c *gin.Context) {
	id, err := parseID(c, h.name)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Service.Delete(middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{h.name: gin.H{}})
}

func (h *RecordHandler[T, PT]) Stats(c *gin.Context) {
	stats, err := h.Service.Stats(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
