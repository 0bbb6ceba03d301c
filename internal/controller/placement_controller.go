package controller

import (
	"lingua_placement/internal/service"
	"lingua_placement/internal/util"

	"github.com/gin-gonic/gin"
)

type PlacementController struct {
	PlacementService *service.PlacementService
}

func NewPlacementController(placementService *service.PlacementService) *PlacementController {
	return &PlacementController{PlacementService: placementService}
}

type SubmitTestRequest struct {
	LanguageID uint                      `json:"language_id" binding:"required"`
	Answers    []service.SubmittedAnswer `json:"answers" binding:"required,min=1,dive"`
}

// @Summary Get placement test
// @Description Returns the learner's existing result, or a freshly assembled test without answer keys
// @Tags Placement
// @Produce json
// @Security ApiKeyAuth
// @Param language_id query int true "Language ID"
// @Success 200 {object} util.Response
// @Router /learner/test [get]
func (c *PlacementController) GetTest(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	languageID, ok := languageIDQuery(ctx)
	if !ok {
		return
	}

	test, err := c.PlacementService.AssembleTest(ctx.Request.Context(), user.UserID, languageID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if test.AlreadyTaken {
		util.Success(ctx, gin.H{
			"already_taken": true,
			"result":        test.Result,
		})
		return
	}

	util.Success(ctx, gin.H{
		"already_taken":   false,
		"questions":       test.Questions,
		"total_questions": len(test.Questions),
	})
}

// @Summary Submit placement test
// @Description Grades the answers, assigns a level and stores the single result for the language
// @Tags Placement
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param submission body SubmitTestRequest true "Answers"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /learner/test/submit [post]
func (c *PlacementController) SubmitTest(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	outcome, err := c.PlacementService.SubmitTest(ctx.Request.Context(), user.UserID, req.LanguageID, req.Answers)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, outcome)
}

// @Summary Get placement result
// @Tags Placement
// @Produce json
// @Security ApiKeyAuth
// @Param language_id query int true "Language ID"
// @Success 200 {object} util.Response
// @Router /learner/test/result [get]
func (c *PlacementController) GetResult(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	languageID, ok := languageIDQuery(ctx)
	if !ok {
		return
	}

	result, err := c.PlacementService.GetResult(ctx.Request.Context(), user.UserID, languageID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	// A nil result is sent as data: null.
	util.Success(ctx, result)
}
