package controller

import (
	"survey_backend/internal/model"
	"survey_backend/internal/service"
	"survey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
	Surveys *service.SurveyService
}

func NewQuestionController(svc *service.QuestionService, surveys *service.SurveyService) *QuestionController {
	return &QuestionController{Service: svc, Surveys: surveys}
}

func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req service.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.CreateQuestion(ctx.Request.Context(), ctx.Param("surveyId"), req)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Created(ctx, q)
}

type updateQuestionBody struct {
	Name            *string                       `json:"name"`
	Page            *int                          `json:"page"`
	Position        *int                          `json:"position"`
	QuestionText    *string                       `json:"questionText"`
	IsMandatory     *bool                         `json:"isMandatory"`
	Answer          *string                       `json:"answer"`
	Points          *int                          `json:"points"`
	QuestionOptions []service.QuestionOptionInput `json:"questionOptions"`
}

// UpdateQuestion shapes the flat JSON body into the typed update
// variant matching the stored question: a body carrying options always
// becomes a choice update, so options against a TEXT question fail in
// the service instead of being silently dropped.
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	id := ctx.Param("questionId")

	var body updateQuestionBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.Service.GetQuestion(id)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	if !c.requireOwner(ctx, question.SurveyID) {
		return
	}

	patch := service.QuestionFieldPatch{
		Name:         body.Name,
		Page:         body.Page,
		Position:     body.Position,
		QuestionText: body.QuestionText,
		IsMandatory:  body.IsMandatory,
	}

	var upd service.QuestionUpdate
	if question.Type == model.TypeText && len(body.QuestionOptions) == 0 {
		upd = service.TextQuestionUpdate{
			QuestionFieldPatch: patch,
			Answer:             body.Answer,
			Points:             body.Points,
		}
	} else {
		upd = service.ChoiceQuestionUpdate{
			QuestionFieldPatch: patch,
			Options:            body.QuestionOptions,
		}
	}

	updated, err := c.Service.UpdateQuestion(ctx.Request.Context(), id, upd)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, updated)
}

func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id := ctx.Param("questionId")

	question, err := c.Service.GetQuestion(id)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	if !c.requireOwner(ctx, question.SurveyID) {
		return
	}

	if err := c.Service.DeleteQuestion(ctx.Request.Context(), id); err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// requireOwner applies the survey ownership check for routes addressed
// by question id, where the route itself carries no survey.
func (c *QuestionController) requireOwner(ctx *gin.Context, surveyID string) bool {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return false
	}
	if claims.Role == model.Admin {
		return true
	}

	ok, err := c.Surveys.IsOwner(surveyID, claims.UserID)
	if err != nil {
		util.DomainError(ctx, err)
		return false
	}
	if !ok {
		util.Forbidden(ctx)
		return false
	}
	return true
}
