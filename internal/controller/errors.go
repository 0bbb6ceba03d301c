package controller

import (
	"errors"
	"lingua_placement/internal/util"
	"lingua_placement/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps domain errors to HTTP replies. Anything unknown is a 500.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrTestAlreadyTaken):
		util.Conflict(ctx, "You have already taken the placement test for this language.")
	case errors.Is(err, util.ErrPermissionDenied), errors.Is(err, util.ErrLanguageNotAssigned):
		util.Error(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, util.ErrQuestionNotFound), errors.Is(err, util.ErrLanguageNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidQuestionInput), errors.Is(err, util.ErrInvalidAudio), errors.Is(err, util.ErrAudioRequired):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrLevelNotConfigured):
		logger.Log.Error("Placement level lookup failed", zap.String("path", ctx.FullPath()), zap.Error(err))
		util.Error(ctx, http.StatusInternalServerError, "Level configuration error. Please contact support.")
	default:
		util.LogInternalError(ctx, err)
	}
}

func languageIDQuery(ctx *gin.Context) (uint, bool) {
	id := util.MustParseUint(ctx.Query("language_id"))
	if id == 0 {
		util.BadRequest(ctx, "language_id is required")
		return 0, false
	}
	return id, true
}

func idParam(ctx *gin.Context) (uint, bool) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid id")
		return 0, false
	}
	return id, true
}
