package cronController

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/TBOO-AI/agent/internal/ports/service"
	"github.com/TBOO-AI/agent/internal/usecases/fortune"
	"github.com/gin-gonic/gin"
)

type Config struct {
	Secret string `envconfig:"SECRET" required:"true"`
}

// Controller принимает тик внешнего планировщика и запускает один
// прогон конвейера упоминаний
type Controller struct {
	Fortune *fortune.Service
	Social  service.ISocialClient
	Log     *slog.Logger

	cfg *Config
}

func New(cfg *Config, fortuneService *fortune.Service, social service.ISocialClient, log *slog.Logger) *Controller {
	return &Controller{
		Fortune: fortuneService,
		Social:  social,
		Log:     log,
		cfg:     cfg,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/cron", c.handleTick)
}

func (c *Controller) handleTick(ctx *gin.Context) {
	if !c.authorized(ctx.GetHeader("Authorization")) {
		c.Log.Warn("unauthorized cron request",
			"client_ip", ctx.ClientIP(),
		)
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		return
	}

	processed, err := c.Fortune.ProcessMentions(ctx.Request.Context())
	if err != nil {
		c.Log.Error("cron run failed",
			"error", err,
			"processed", processed,
		)
	}

	loggedIn, credErr := c.Social.VerifyCredentials(ctx.Request.Context())
	if credErr != nil {
		c.Log.Warn("credential check failed", "error", credErr)
		loggedIn = false
	}

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, CronResponse{
			Message:             "Cron Job failed",
			ProcessedCandidates: processed,
			LoggedIn:            loggedIn,
		})
		return
	}

	ctx.JSON(http.StatusOK, CronResponse{
		Message:             "Cron Job is Done",
		ProcessedCandidates: processed,
		LoggedIn:            loggedIn,
	})
}

// authorized ожидает заголовок вида "Bearer <secret>", сравнение в
// постоянном времени
func (c *Controller) authorized(header string) bool {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(c.cfg.Secret)) == 1
}
