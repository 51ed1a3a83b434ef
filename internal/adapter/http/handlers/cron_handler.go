package handlers

import (
	"net/http"
	"time"

	response "sien_official/internal/adapter/http/dto/response"
	"sien_official/internal/adapter/http/middleware"
	"sien_official/internal/usecase"
	"sien_official/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CronHandler triggers the deadline scan from an external scheduler.
type CronHandler struct {
	scan    usecase.IDeadlineAlertUseCase
	observe func(usecase.ScanResult, error)
	now     func() time.Time
}

// NewCronHandler builds the job handler. observe may be nil.
func NewCronHandler(scan usecase.IDeadlineAlertUseCase, observe func(usecase.ScanResult, error)) *CronHandler {
	return &CronHandler{scan: scan, observe: observe, now: time.Now}
}

// Run godoc
// @Summary      Run the deadline alert scan
// @Description  Mails an alert for every open order due within a day and marks it alertSent. The error text is returned on failure.
// @Tags         cron
// @Produce      json
// @Param        Authorization  header  string  false  "CRON_SECRET, raw or as a Bearer token"
// @Param        key            query   string  false  "CRON_SECRET"
// @Success      200  {object}  response.ScanResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /api/cron [get]
func (h *CronHandler) Run(c *gin.Context) {
	res, err := h.scan.ScanAndAlert(c.Request.Context(), h.now())
	if h.observe != nil {
		h.observe(res, err)
	}
	if err != nil {
		middleware.Logger(c).Error("deadline scan failed", zap.Error(err))
		writeError(c, pkg.NewDomainError("SCAN_FAILED", err.Error(), err, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, response.ScanResponse{Success: true, Checked: res.Checked, Sent: res.Sent})
}
