package controller

import (
	"errors"

	"survey_backend/internal/service"
	"survey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SurveyController struct {
	Service *service.SurveyService
}

func NewSurveyController(svc *service.SurveyService) *SurveyController {
	return &SurveyController{Service: svc}
}

func (c *SurveyController) CreateSurvey(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SurveyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	survey, err := c.Service.CreateSurvey(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, survey)
}

func (c *SurveyController) GetSurvey(ctx *gin.Context) {
	survey, err := c.Service.GetSurvey(ctx.Param("surveyId"))
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, survey)
}

// GetForm is the respondent view of a published survey.
func (c *SurveyController) GetForm(ctx *gin.Context) {
	survey, err := c.Service.GetForm(ctx.Request.Context(), ctx.Param("surveyId"))
	if err != nil {
		if errors.Is(err, util.ErrSurveyNotAvailable) {
			util.Forbidden(ctx)
			return
		}
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, survey)
}

func (c *SurveyController) UpdateSurvey(ctx *gin.Context) {
	var req service.SurveyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	survey, err := c.Service.UpdateSurvey(ctx.Request.Context(), ctx.Param("surveyId"), req)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, survey)
}

func (c *SurveyController) DeleteSurvey(ctx *gin.Context) {
	if err := c.Service.DeleteSurvey(ctx.Request.Context(), ctx.Param("surveyId")); err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
