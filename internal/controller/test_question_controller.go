package controller

import (
	"errors"
	"lingua_placement/internal/model"
	"lingua_placement/internal/repository"
	"lingua_placement/internal/service"
	"lingua_placement/internal/util"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TestQuestionController struct {
	QuestionBankService *service.QuestionBankService
}

func NewTestQuestionController(questionBankService *service.QuestionBankService) *TestQuestionController {
	return &TestQuestionController{QuestionBankService: questionBankService}
}

// audioFormFile returns the optional "audio" upload of a multipart request.
func audioFormFile(ctx *gin.Context) (*multipart.FileHeader, error) {
	file, err := ctx.FormFile("audio")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	return file, err
}

// @Summary List test questions
// @Description Lists the instructor's questions, answer keys included
// @Tags Test Questions
// @Produce json
// @Security ApiKeyAuth
// @Param language_id query int false "Language ID"
// @Param category query string false "Category" Enums(vocabulary, grammar, reading, listening, writing)
// @Param difficulty query int false "Difficulty" Enums(1, 2, 3)
// @Param search query string false "Search in question text"
// @Success 200 {object} util.Response
// @Router /instructor/test-questions [get]
func (c *TestQuestionController) ListQuestions(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	filter := repository.TestQuestionFilter{
		LanguageID: util.MustParseUint(ctx.Query("language_id")),
		Category:   model.Category(ctx.Query("category")),
		Difficulty: model.Difficulty(util.MustParseUint(ctx.Query("difficulty"))),
		Search:     ctx.Query("search"),
	}
	if filter.Category != "" && !filter.Category.Valid() {
		util.BadRequest(ctx, "invalid category")
		return
	}

	questions, err := c.QuestionBankService.List(ctx.Request.Context(), user.UserID, filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"items": questions, "total": len(questions)})
}

// @Summary Create test question
// @Tags Test Questions
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param language_id formData int true "Language ID"
// @Param category formData string true "Category" Enums(vocabulary, grammar, reading, listening, writing)
// @Param difficulty formData int true "Difficulty" Enums(1, 2, 3)
// @Param question_text formData string true "Question text"
// @Param passage formData string false "Reading passage"
// @Param option_a formData string false "Option A"
// @Param option_b formData string false "Option B"
// @Param option_c formData string false "Option C"
// @Param option_d formData string false "Option D"
// @Param correct_option formData string false "Correct option" Enums(a, b, c, d)
// @Param correct_text formData string false "Expected writing answer"
// @Param audio formData file false "Listening audio (mp3, wav, ogg, m4a)"
// @Success 201 {object} util.Response
// @Router /instructor/test-questions [post]
func (c *TestQuestionController) CreateQuestion(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.TestQuestionReq
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	audio, err := audioFormFile(ctx)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionBankService.Create(ctx.Request.Context(), user.UserID, req, audio)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// @Summary Replace test question
// @Description Replaces every field of a question. Listening questions keep their audio when no file is sent.
// @Tags Test Questions
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Question ID"
// @Param language_id formData int true "Language ID"
// @Param category formData string true "Category" Enums(vocabulary, grammar, reading, listening, writing)
// @Param difficulty formData int true "Difficulty" Enums(1, 2, 3)
// @Param question_text formData string true "Question text"
// @Param audio formData file false "Listening audio (mp3, wav, ogg, m4a)"
// @Success 200 {object} util.Response
// @Router /instructor/test-questions/{id} [put]
func (c *TestQuestionController) ReplaceQuestion(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req service.TestQuestionReq
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	audio, err := audioFormFile(ctx)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionBankService.Replace(ctx.Request.Context(), user.UserID, id, req, audio)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// @Summary Delete test question
// @Tags Test Questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Question ID"
// @Success 200 {object} util.Response
// @Router /instructor/test-questions/{id} [delete]
func (c *TestQuestionController) DeleteQuestion(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := c.QuestionBankService.Delete(ctx.Request.Context(), user.UserID, id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Question bank statistics
// @Description Counts questions per category and difficulty for a language
// @Tags Test Questions
// @Produce json
// @Security ApiKeyAuth
// @Param language_id query int true "Language ID"
// @Success 200 {object} util.Response
// @Router /instructor/test-questions/stats [get]
func (c *TestQuestionController) Stats(ctx *gin.Context) {
	languageID, ok := languageIDQuery(ctx)
	if !ok {
		return
	}

	stats, err := c.QuestionBankService.Stats(ctx.Request.Context(), languageID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}
