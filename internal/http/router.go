package http

import (
	"embed"
	"html/template"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nurpe/wasteops-analytics/internal/http/middleware"
)

//go:embed templates/dashboard.html
var templatesFS embed.FS

// NewRouter builds the gin engine with the dashboard template, CORS and
// request logging. authMiddleware may be nil.
func NewRouter(handler *Handler, authMiddleware gin.HandlerFunc, environment string, log zerolog.Logger) *gin.Engine {
	if environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(cors.Default())

	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/dashboard.html")))

	handler.Register(router, authMiddleware)
	return router
}
