// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/savings-tracker/backend/internal/application/usecase/dashboard"
	domainerror "github.com/savings-tracker/backend/internal/domain/error"
	"github.com/savings-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/savings-tracker/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase *dashboard.GetSummaryUseCase
	trendsUseCase  *dashboard.GetMonthlyTrendsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	trendsUseCase *dashboard.GetMonthlyTrendsUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase: summaryUseCase,
		trendsUseCase:  trendsUseCase,
	}
}

// GetSummary handles GET /dashboard/summary requests. The summary is
// recomputed from the ledger and target set on every call.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := dashboard.GetSummaryInput{
		UserID: userID,
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// GetMonthlyTrends handles GET /dashboard/monthly-trends requests.
func (c *DashboardController) GetMonthlyTrends(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := dashboard.GetMonthlyTrendsInput{
		UserID: userID,
	}

	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute monthly trends",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyTrendsResponse(output))
}
