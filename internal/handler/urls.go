package handlers

import (
	"EchoVoice/pkg/metrics"
	"EchoVoice/pkg/middleware"
	stores "EchoVoice/pkg/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handlers struct {
	db          *gorm.DB
	store       stores.Store
	apiPassword string
	log         *zap.Logger
}

func NewHandlers(db *gorm.DB, store stores.Store, apiPassword string, log *zap.Logger) *Handlers {
	return &Handlers{
		db:          db,
		store:       store,
		apiPassword: apiPassword,
		log:         log,
	}
}

func (h *Handlers) Register(engine *gin.Engine) {
	engine.Use(middleware.CORS())

	// Register System Module Routes
	h.registerSystemRoutes(engine)

	// Register Voice Module Routes
	h.registerVoiceRoutes(engine)
}

func (h *Handlers) registerSystemRoutes(engine *gin.Engine) {
	engine.GET("/", h.handleRoot)

	engine.GET("/health", h.HealthCheck)

	engine.GET("/metrics", metrics.Handler())
}

// Voice Module, gated by the shared API password
func (h *Handlers) registerVoiceRoutes(engine *gin.Engine) {
	api := engine.Group("/api")
	api.Use(middleware.RequirePassword(h.apiPassword))
	{
		api.POST("/clone-voice", h.CloneVoice)

		api.POST("/test-voice/:voice_id", h.TestVoice)

		api.POST("/generate-speech", h.GenerateSpeech)

		api.GET("/voices", h.ListVoices)

		api.DELETE("/voices/:voice_id", h.DeleteVoice)
	}
}
