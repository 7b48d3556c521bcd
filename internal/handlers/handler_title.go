package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	portssvc "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/services"
	"github.com/Grupo02-6P/grupo02-sub001/internal/dto"
	"github.com/Grupo02-6P/grupo02-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

// titleHandler handles HTTP requests for receivable/payable titles.
type titleHandler struct {
	titleService portssvc.TitleSvcFacade
}

func newTitleHandler(ts portssvc.TitleSvcFacade) *titleHandler {
	return &titleHandler{titleService: ts}
}

// registerTitleRoutes registers all title routes.
func registerTitleRoutes(rg *gin.RouterGroup, titleService portssvc.TitleSvcFacade) {
	h := newTitleHandler(titleService)

	titles := rg.Group("/titles")
	{
		titles.POST("", h.createTitle)
		titles.GET("", h.listTitles)
		titles.GET("/:id", h.getTitle)
		titles.POST("/:id/settle", h.settleTitle)
	}
}

func (h *titleHandler) createTitle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create title request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	title, err := h.titleService.CreateTitle(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTitleResponse(title))
}

func (h *titleHandler) listTitles(c *gin.Context) {
	var params dto.ListTitlesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var status *domain.TitleStatus
	if params.Status != nil {
		s := domain.TitleStatus(*params.Status)
		if s != domain.TitleOpen && s != domain.TitleSettled {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid status %q", *params.Status)})
			return
		}
		status = &s
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	titles, err := h.titleService.ListTitles(c.Request.Context(), status, params.Limit, params.Offset, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"titles": dto.ToListTitleResponse(titles)})
}

func (h *titleHandler) getTitle(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	title, err := h.titleService.GetTitleByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTitleResponse(title))
}

func (h *titleHandler) settleTitle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SettleTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for settle title request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	title, err := h.titleService.SettleTitle(c.Request.Context(), c.Param("id"), req.SettlementDate, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTitleResponse(title))
}
