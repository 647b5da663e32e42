// Package api exposes the calendar store over HTTP.
//
// Routes:
//
//	OPTIONS *                          204, CORS headers only
//	GET     /api/calendar/month        every date with its tasks
//	POST    /api/calendar/task         create a task, returns it as JSON
//	PUT     /api/calendar/task/:id     rename a task, body "OK" or "Failed"
//	DELETE  /api/calendar/task/:id     delete a task, body "OK"
//	GET     /health                    liveness
//
// Anything else is 404 "Not Found". Every response, errors included, carries
// permissive CORS headers.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Innocent9712/much-to-do/calendar/internal/calendar"

	_ "github.com/Innocent9712/much-to-do/calendar/docs"
)

// Store is the subset of calendar.Store the handlers need.
type Store interface {
	ListAll() calendar.Month
	CreateTask(date, text string) (calendar.Task, error)
	UpdateTask(id int64, date, text string) bool
	DeleteTask(id int64) bool
}

var _ Store = (*calendar.Store)(nil)

// Options configures NewRouter.
type Options struct {
	// Logger receives access and panic logs. Defaults to the logrus standard logger.
	Logger logrus.FieldLogger

	// MaxBodyBytes caps request bodies. Zero disables the limit.
	MaxBodyBytes int64

	// Docs mounts the Swagger UI under /swagger/.
	Docs bool
}

// Handler serves the calendar endpoints against a Store.
type Handler struct {
	store Store
	log   logrus.FieldLogger
}

// NewRouter builds the gin engine with middleware and all routes.
func NewRouter(store Store, opts Options) *gin.Engine {
	if store == nil {
		panic("api: nil store")
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	h := &Handler{store: store, log: log}

	r := gin.New()
	// Unknown paths must fall through to NoRoute instead of being redirected.
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.HandleMethodNotAllowed = false

	r.Use(
		requestID(),
		accessLog(log),
		h.recovery(),
		cors(),
		bodyLimit(opts.MaxBodyBytes),
	)

	cal := r.Group("/api/calendar")
	cal.GET("/month", h.getMonth)
	cal.POST("/task", h.createTask)
	cal.PUT("/task/:id", h.updateTask)
	cal.DELETE("/task/:id", h.deleteTask)

	r.GET("/health", h.health)

	if opts.Docs {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.NoRoute(h.notFound)

	return r
}
