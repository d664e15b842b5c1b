// Package router assembles the gin engine: middleware chain and route table.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/finboard/backend/internal/infrastructure/logger"
	"github.com/finboard/backend/internal/interfaces/http/dto"
	"github.com/finboard/backend/internal/interfaces/http/handler"
	"github.com/finboard/backend/internal/interfaces/http/middleware"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router manages HTTP route registration
type Router struct {
	engine     *gin.Engine
	logger     *zap.Logger
	registrars []RouteRegistrar
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{engine: engine, logger: logger}
}

// Register adds a RouteRegistrar to be registered later
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	root := r.engine.Group("")
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(root)
		if g, ok := registrar.(*DomainGroup); ok {
			r.logger.Debug("Routes registered",
				zap.String("group", g.Name()),
				zap.String("prefix", g.Prefix()),
				zap.Int("routes", len(g.routes)),
			)
		}
	}
}

// DomainGroup collects the routes of one area of the API
type DomainGroup struct {
	name   string
	prefix string
	routes []routeDefinition
}

type routeDefinition struct {
	method   string
	path     string
	handlers []gin.HandlerFunc
}

// NewDomainGroup creates a new domain-specific route group
func NewDomainGroup(name, prefix string) *DomainGroup {
	return &DomainGroup{name: name, prefix: prefix}
}

func (dg *DomainGroup) handle(method, path string, handlers []gin.HandlerFunc) *DomainGroup {
	dg.routes = append(dg.routes, routeDefinition{method: method, path: path, handlers: handlers})
	return dg
}

// GET registers a GET route
func (dg *DomainGroup) GET(path string, handlers ...gin.HandlerFunc) *DomainGroup {
	return dg.handle(http.MethodGet, path, handlers)
}

// POST registers a POST route
func (dg *DomainGroup) POST(path string, handlers ...gin.HandlerFunc) *DomainGroup {
	return dg.handle(http.MethodPost, path, handlers)
}

// PUT registers a PUT route
func (dg *DomainGroup) PUT(path string, handlers ...gin.HandlerFunc) *DomainGroup {
	return dg.handle(http.MethodPut, path, handlers)
}

// DELETE registers a DELETE route
func (dg *DomainGroup) DELETE(path string, handlers ...gin.HandlerFunc) *DomainGroup {
	return dg.handle(http.MethodDelete, path, handlers)
}

// RegisterRoutes implements RouteRegistrar interface
func (dg *DomainGroup) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group(dg.prefix)
	for _, route := range dg.routes {
		group.Handle(route.method, route.path, route.handlers...)
	}
}

// Name returns the group name
func (dg *DomainGroup) Name() string {
	return dg.name
}

// Prefix returns the group prefix
func (dg *DomainGroup) Prefix() string {
	return dg.prefix
}

// Handlers are the HTTP handlers mounted by New
type Handlers struct {
	Transactions *handler.TransactionHandler
	Reports      *handler.ReportHandler
	Accounts     *handler.AccountHandler
	System       *handler.SystemHandler
}

// Config controls the engine's middleware chain
type Config struct {
	Logger         *zap.Logger
	CORS           middleware.CORSConfig
	Tracing        middleware.TracingConfig
	Security       middleware.SecurityConfig
	MaxBodySize    int64
	TrustedProxies []string
}

// New builds the engine with the full middleware chain and route table
func New(cfg Config, h Handlers) (*gin.Engine, error) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}

	// RequestID runs first so spans, logs and error bodies share one id
	engine.Use(middleware.RequestID())
	engine.Use(middleware.TracingWithConfig(cfg.Tracing)...)
	engine.Use(logger.GinMiddleware(cfg.Logger))
	engine.Use(logger.Recovery(cfg.Logger))
	engine.Use(middleware.CORSWithConfig(cfg.CORS))
	engine.Use(middleware.SecureWithConfig(cfg.Security))
	if cfg.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(cfg.MaxBodySize))
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrCodeNotFound, "Route not found", middleware.GetRequestID(c)))
	})

	r := NewRouter(engine, cfg.Logger)
	r.Register(ledgerRoutes(h))
	r.Register(reportRoutes(h))
	r.Register(NewDomainGroup("system", "").GET("/health", h.System.Health))
	r.Setup()

	return engine, nil
}

func ledgerRoutes(h Handlers) *DomainGroup {
	tx := h.Transactions
	return NewDomainGroup("ledger", "/api").
		POST("/income", tx.CreateIncome).
		GET("/income/summary", h.Reports.IncomeSummary).
		GET("/get/income/:id", tx.GetIncome).
		PUT("/incomes/edit/:id", tx.UpdateIncome).
		DELETE("/incomes/delete/:id", tx.DeleteIncome).
		POST("/spends", tx.CreateSpend).
		GET("/spends/summary", h.Reports.SpendSummary).
		GET("/get/spend/:id", tx.GetSpend).
		PUT("/spends/edit/:id", tx.UpdateSpend).
		DELETE("/spends/delete/:id", tx.DeleteSpend).
		POST("/accounts", h.Accounts.CreateAccount).
		POST("/categories", h.Accounts.CreateCategory).
		POST("/users", h.Accounts.CreateUser)
}

func reportRoutes(h Handlers) *DomainGroup {
	return NewDomainGroup("reports", "").
		GET("/dashboard", h.Reports.Dashboard).
		GET("/transactions", h.Reports.RecentTransactions)
}
