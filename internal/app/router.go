package app

import (
	"survey_backend/internal/config"
	"survey_backend/internal/middleware"
	"survey_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services, repos *repositories, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		// Respondent view of a published survey. Link-access surveys
		// stay reachable only through the survey id itself.
		public.GET("/surveys/:surveyId/form", c.survey.GetForm)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.RequireUser(repos.user))
	{
		authGroup.POST("/surveys", c.survey.CreateSurvey)
		authGroup.POST("/surveys/:surveyId/responses", c.response.SubmitResponse)

		// Question routes carry no survey id; the controller resolves
		// the question's survey and checks ownership itself.
		authGroup.PATCH("/questions/:questionId", c.question.UpdateQuestion)
		authGroup.DELETE("/questions/:questionId", c.question.DeleteQuestion)

		owner := authGroup.Group("/surveys/:surveyId")
		owner.Use(middleware.SurveyOwnerMiddleware(s.survey))
		{
			owner.GET("", c.survey.GetSurvey)
			owner.PATCH("", c.survey.UpdateSurvey)
			owner.DELETE("", c.survey.DeleteSurvey)
			owner.POST("/questions", c.question.CreateQuestion)
			owner.GET("/responses", c.response.ListResponses)
		}
	}
}
