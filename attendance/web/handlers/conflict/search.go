package conflict

import (
	"net/http"

	"github.com/gin-gonic/gin"
	attendance "github.com/gtplusnet/ante-official-sub012/attendance/core"
	"github.com/gtplusnet/ante-official-sub012/attendance/model"
	web "github.com/gtplusnet/ante-official-sub012/web/common"
	"github.com/gtplusnet/ante-official-sub012/web/middlewares"
)

type SearchDTO struct {
	AccountID    *int32        `json:"accountId"`
	StartDate    *web.DateOnly `json:"startDate"`
	EndDate      *web.DateOnly `json:"endDate"`
	ConflictType *string       `json:"conflictType"`
	IsResolved   *bool         `json:"isResolved"`
	Page         int           `json:"page"`
	Limit        int           `json:"limit"`
}

func (dto *SearchDTO) toParams() (attendance.SearchParams, string) {
	params := attendance.SearchParams{
		AccountID:  dto.AccountID,
		IsResolved: dto.IsResolved,
		Page:       dto.Page,
		Limit:      dto.Limit,
	}
	if dto.StartDate != nil && !dto.StartDate.Time.IsZero() {
		params.StartDate = dto.StartDate.Time.Format("2006-01-02")
	}
	if dto.EndDate != nil && !dto.EndDate.Time.IsZero() {
		params.EndDate = dto.EndDate.Time.Format("2006-01-02")
	}
	if dto.ConflictType != nil && *dto.ConflictType != "" {
		kind := model.ConflictType(*dto.ConflictType)
		if !kind.Valid() {
			return params, "unknown conflict type " + *dto.ConflictType
		}
		params.ConflictType = &kind
	}
	return params, ""
}

func (ep *Endpoint) Search(c *gin.Context) {
	var body SearchDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	params, problem := body.toParams()
	if problem != "" {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(problem))
		return
	}

	viewer := middlewares.ActorID(c)
	if viewer == 0 {
		c.JSON(http.StatusUnauthorized, web.NewErrorResponse("no authenticated actor"))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	result, err := attendance.SearchConflicts(db, params, viewer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSearchResponse(result.Data, result.Total, result.Page, result.PageCount))
}
