package controller

import (
	"survey_backend/internal/service"
	"survey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResponseController struct {
	Service *service.ResponseService
}

func NewResponseController(svc *service.ResponseService) *ResponseController {
	return &ResponseController{Service: svc}
}

type submitResponseBody struct {
	Answers []service.SubmitAnswer `json:"answers" binding:"required"`
}

func (c *ResponseController) SubmitResponse(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var body submitResponseBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	response, err := c.Service.SubmitResponse(ctx.Request.Context(), ctx.Param("surveyId"), claims.UserID, body.Answers)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Created(ctx, response)
}

func (c *ResponseController) ListResponses(ctx *gin.Context) {
	responses, err := c.Service.ListResponses(ctx.Param("surveyId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, responses)
}
