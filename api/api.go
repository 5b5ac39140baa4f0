package api

import (
	"fmt"
	"perftracker/internal/domain"
	"perftracker/internal/logger"
	l2_service "perftracker/internal/service/l2"
	l3_service "perftracker/internal/service/l3"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	TrackerService   l3_service.TrackerService
	BenchmarkService l2_service.BenchmarkService
	Benchmarks       []domain.Benchmark
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to perftracker"})
	})
	router.POST("/track", m.track)
	router.POST("/benchmark", m.benchmark)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Errorw(err.Error(), "status", code)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// logRequestMiddleware tags the request with an id and stores a logger
// carrying it on the request context
func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	requestID := uuid.New()
	log := logger.FromContext(c.Request.Context()).With(
		"requestID", requestID.String(),
		"method", c.Request.Method,
		"route", c.Request.URL.Path,
	)
	c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), log))
	c.Header("X-Request-ID", requestID.String())

	start := time.Now()
	c.Next()

	log.Infow("request complete",
		"status", c.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"ip", c.ClientIP(),
	)
}
