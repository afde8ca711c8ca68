// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savings-tracker/backend/internal/application/usecase/target"
	domainerror "github.com/savings-tracker/backend/internal/domain/error"
	"github.com/savings-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/savings-tracker/backend/internal/integration/entrypoint/middleware"
)

// TargetController handles savings target endpoints.
type TargetController struct {
	listUseCase   *target.ListTargetsUseCase
	createUseCase *target.CreateTargetUseCase
	deleteUseCase *target.DeleteTargetUseCase
}

// NewTargetController creates a new target controller instance.
func NewTargetController(
	listUseCase *target.ListTargetsUseCase,
	createUseCase *target.CreateTargetUseCase,
	deleteUseCase *target.DeleteTargetUseCase,
) *TargetController {
	return &TargetController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /targets requests.
func (c *TargetController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := target.ListTargetsInput{
		UserID: userID,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve targets",
		})
		return
	}

	response := dto.ToTargetListResponse(output.Targets)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /targets requests.
func (c *TargetController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateTargetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTargetName),
		})
		return
	}

	input := target.CreateTargetInput{
		UserID:    userID,
		Name:      req.Name,
		Price:     decimal.NewFromFloat(req.Price),
		DailyGoal: decimal.NewFromFloat(req.DailyGoal),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTargetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTargetResponse(output.Target))
}

// Delete handles DELETE /targets/:id requests. Deleting a target that does
// not exist is treated as success.
func (c *TargetController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	targetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid target ID format",
			Code:  string(domainerror.ErrCodeTargetNotFound),
		})
		return
	}

	input := target.DeleteTargetInput{
		UserID:   userID,
		TargetID: targetID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to delete target",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleTargetError handles target errors and returns appropriate HTTP responses.
func (c *TargetController) handleTargetError(ctx *gin.Context, err error) {
	var targetErr *domainerror.TargetError
	if errors.As(err, &targetErr) {
		statusCode := c.getStatusCodeForTargetError(targetErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: targetErr.Message,
			Code:  string(targetErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTargetError maps target error codes to HTTP status codes.
func (c *TargetController) getStatusCodeForTargetError(code domainerror.TargetErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidTargetPrice,
		domainerror.ErrCodeInvalidDailyGoal,
		domainerror.ErrCodeMissingTargetName:
		return http.StatusBadRequest
	case domainerror.ErrCodeTargetNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
