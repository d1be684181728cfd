package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "duration", time.Since(start))
	})

	// CORS Middleware
	trustedOrigins := app.Config.GetCORSOrigins()
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		for _, trusted := range trustedOrigins {
			if strings.EqualFold(origin, trusted) {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
				break
			}
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	v1 := r.Group("/api/v1")
	{
		// reviewer accounts
		v1.POST("/reviewers/signup", app.Handler.SignUp)
		v1.POST("/reviewers/login", app.Handler.Login)

		// candidate-facing interview surface
		v1.POST("/candidates", app.Handler.CreateCandidate)
		v1.POST("/interview/start", app.Handler.StartSession)
		v1.POST("/interview/answer", app.Handler.SubmitAnswer)
	}

	reviewer := v1.Group("/reviewer")
	reviewer.Use(app.AuthMiddleware())
	{
		reviewer.GET("/dashboard", app.Handler.Dashboard)
		reviewer.GET("/candidates", app.Handler.ListCandidates)
		reviewer.GET("/candidates/:id", app.Handler.GetCandidate)
		reviewer.GET("/candidates/:id/report", app.Handler.CandidateReport)
		reviewer.GET("/sessions", app.Handler.ListSessions)
		reviewer.GET("/sessions/:id", app.Handler.GetSession)
		reviewer.GET("/sessions/:id/review", app.Handler.SessionReview)
	}

	return r
}
