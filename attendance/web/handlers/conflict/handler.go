package conflict

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	attendance "github.com/gtplusnet/ante-official-sub012/attendance/core"
	"github.com/gtplusnet/ante-official-sub012/attendance/model"
	common "github.com/gtplusnet/ante-official-sub012/attendance/web/common"
	"github.com/gtplusnet/ante-official-sub012/core"
	web "github.com/gtplusnet/ante-official-sub012/web/common"
	"github.com/gtplusnet/ante-official-sub012/web/middlewares"
)

type Endpoint struct {
	base common.Handler
}

func Register(r *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &Endpoint{base: common.Handler{Dm: dm}}
	r.POST("/conflicts/search", endpoint.Search)
	r.GET("/conflicts/stats", endpoint.Stats)
	r.POST("/conflicts/detect", endpoint.Detect)
	r.PUT("/conflicts/:id/resolve", endpoint.Resolve)
	r.POST("/conflicts/:id/review", endpoint.Review)
	r.POST("/conflicts/resolve-by-date", endpoint.ResolveByDate)
	r.POST("/conflicts/export", endpoint.Export)
	r.GET("/timekeeping/table", endpoint.TimekeepingTable)
}

func (ep *Endpoint) Resolve(c *gin.Context) {
	id := c.Param("id")

	actor := middlewares.ActorID(c)
	if actor == 0 {
		c.JSON(http.StatusUnauthorized, web.NewErrorResponse("no authenticated actor"))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	conflict, err := attendance.ResolveConflict(db, id, actor)
	if errors.Is(err, attendance.ErrConflictNotFound) {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Conflict not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(conflict))
}

type ReviewDTO struct {
	Action model.ReviewAction `json:"action" binding:"required,oneof=IGNORE RESOLVE"`
}

func (ep *Endpoint) Review(c *gin.Context) {
	id := c.Param("id")

	var body ReviewDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	actor := middlewares.ActorID(c)
	if actor == 0 {
		c.JSON(http.StatusUnauthorized, web.NewErrorResponse("no authenticated actor"))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	review, err := attendance.ReviewConflict(db, id, actor, body.Action)
	if errors.Is(err, attendance.ErrConflictNotFound) {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Conflict not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(review))
}

type DetectDTO struct {
	Date      *web.DateOnly `json:"date" binding:"required"`
	EndDate   *web.DateOnly `json:"endDate"`
	Employees []int32       `json:"employees"`
}

func (ep *Endpoint) Detect(c *gin.Context) {
	var body DetectDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	start := body.Date.Time
	end := start
	if body.EndDate != nil && !body.EndDate.Time.IsZero() {
		end = body.EndDate.Time
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("endDate precedes date"))
		return
	}

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	results := attendance.BatchDetectConflicts(db, body.Employees, dates)

	c.JSON(http.StatusOK, web.NewSuccessResponse(results))
}

type ResolveByDateDTO struct {
	AccountID int32                `json:"accountId" binding:"required"`
	Date      *web.DateOnly        `json:"date" binding:"required"`
	Types     []model.ConflictType `json:"types"`
}

func (ep *Endpoint) ResolveByDate(c *gin.Context) {
	var body ResolveByDateDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	for _, t := range body.Types {
		if !t.Valid() {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse("unknown conflict type "+string(t)))
			return
		}
	}

	actor := middlewares.ActorID(c)
	if actor == 0 {
		c.JSON(http.StatusUnauthorized, web.NewErrorResponse("no authenticated actor"))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	resolved, err := attendance.ResolveConflictsForDate(db, body.AccountID,
		body.Date.Time.Format("2006-01-02"), &actor, body.Types...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{"resolved": resolved}))
}
