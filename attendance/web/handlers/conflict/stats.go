package conflict

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	attendance "github.com/gtplusnet/ante-official-sub012/attendance/core"
	web "github.com/gtplusnet/ante-official-sub012/web/common"
	"github.com/gtplusnet/ante-official-sub012/web/middlewares"
)

func (ep *Endpoint) Stats(c *gin.Context) {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	for _, d := range []string{startDate, endDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse("invalid date "+d))
			return
		}
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	stats, err := attendance.ConflictStats(db, startDate, endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(stats))
}

func (ep *Endpoint) TimekeepingTable(c *gin.Context) {
	employeeParam := c.Query("employeeId")
	cutoffParam := c.Query("cutoffId")
	if employeeParam == "" || cutoffParam == "" {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("employeeId and cutoffId are required"))
		return
	}

	employeeID, err := strconv.Atoi(employeeParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid employeeId"))
		return
	}
	cutoffID, err := strconv.Atoi(cutoffParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid cutoffId"))
		return
	}

	db, conn, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer conn.Close()

	rows, err := attendance.TimekeepingTable(db, int32(employeeID), int32(cutoffID))
	if errors.Is(err, attendance.ErrCutoffNotFound) {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Cutoff not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(rows))
}

func (ep *Endpoint) Export(c *gin.Context) {
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

	file, err := attendance.ExportConflicts(db, params, viewer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	filename := fmt.Sprintf("conflicts-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
}
