package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/iresident/internal/resident/service"
	"github.com/aussiebroadwan/iresident/internal/resident/store"
	"github.com/aussiebroadwan/iresident/pkg/httpx"
	"github.com/aussiebroadwan/iresident/pkg/slogx"

	_ "github.com/aussiebroadwan/iresident/api/resident" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Limits groups the rate limit profiles applied per endpoint class.
type Limits struct {
	Strict httpx.RateLimitConfig // login and redemption
	Write  httpx.RateLimitConfig
	Read   httpx.RateLimitConfig
}

// DefaultLimits returns the package-level profiles from httpx.
func DefaultLimits() Limits {
	return Limits{
		Strict: httpx.StrictLimit,
		Write:  httpx.WriteLimit,
		Read:   httpx.ReadLimit,
	}
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux     *http.ServeMux
	handler http.Handler

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	// Optional, set before ApplyRoutes.
	Metrics     *httpx.Metrics
	CORSOrigins []string
	Limits      Limits

	RolesService       *service.RolesService
	UsersService       *service.UsersService
	VisitorsService    *service.VisitorsService
	VehiclesService    *service.VehiclesService
	InvitationsService *service.InvitationsService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	return &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		Limits:       DefaultLimits(),
	}
}

// ApplyRoutes registers every endpoint and builds the global middleware
// chain. Call it once after the services are set.
func (r *Router) ApplyRoutes() {
	strict := httpx.RateLimitByIP(r.Limits.Strict)
	write := httpx.RateLimitByIP(r.Limits.Write)
	read := httpx.RateLimitByIP(r.Limits.Read)

	r.registerRoles(read, write)
	r.registerUsers(read, write, strict)
	r.registerVisitors(read, write)
	r.registerVehicles(read, write)
	r.registerInvitations(read, write, strict)
	r.registerSystem(read)

	r.Mux.Handle("/swagger/", httpSwagger.Handler())

	// Metrics wraps the mux directly so r.Pattern is populated when it records.
	var inner http.Handler = r.Mux
	if r.Metrics != nil {
		r.Mux.Handle("GET /metrics", r.Metrics.Handler())
		inner = r.Metrics.Middleware(r.Mux)
	}

	r.handler = httpx.Chain(inner,
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(r.CORSOrigins),
	)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			iResident Access Service API
//	@version		0.1.0
//	@description	Residential access control: roles, residents, visitors, vehicles and single-use visitor invitations.
//	@description
//	@description	Dates are YYYY-MM-DD. Invitation codes are random UUIDs that can be redeemed exactly once.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/iresident
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8000
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if r.handler == nil {
		r.Mux.ServeHTTP(w, req)
		return
	}
	r.handler.ServeHTTP(w, req)
}

func (r *Router) registerRoles(read, write httpx.Middleware) {
	h := &RolesHandler{RolesService: r.RolesService}

	r.Mux.Handle("GET /roles/{$}", read(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("POST /roles/{$}", write(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("GET /roles/{id}", read(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("PUT /roles/{id}", write(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /roles/{id}", write(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerUsers(read, write, strict httpx.Middleware) {
	h := &UsersHandler{UsersService: r.UsersService}

	r.Mux.Handle("GET /usuarios/{$}", read(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("POST /usuarios/{$}", write(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("GET /usuarios/{id}", read(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("PUT /usuarios/{id}", write(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /usuarios/{id}", write(http.HandlerFunc(h.HandleDelete)))

	// Login is an email lookup; strict limit keeps enumeration slow.
	r.Mux.Handle("POST /login/{$}", strict(http.HandlerFunc(h.HandleLogin)))
}

func (r *Router) registerVisitors(read, write httpx.Middleware) {
	h := &VisitorsHandler{VisitorsService: r.VisitorsService}

	r.Mux.Handle("GET /visitantes/{$}", read(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("POST /visitantes/{$}", write(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("GET /visitantes/{id}", read(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("PUT /visitantes/{id}", write(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /visitantes/{id}", write(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerVehicles(read, write httpx.Middleware) {
	h := &VehiclesHandler{VehiclesService: r.VehiclesService}

	r.Mux.Handle("GET /vehiculos/{$}", read(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("POST /vehiculos/{$}", write(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("GET /vehiculos/{id}", read(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("PUT /vehiculos/{id}", write(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /vehiculos/{id}", write(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerInvitations(read, write, strict httpx.Middleware) {
	h := &InvitationsHandler{InvitationsService: r.InvitationsService}

	r.Mux.Handle("POST /invitacion/{$}", write(http.HandlerFunc(h.HandleIssue)))
	r.Mux.Handle("POST /invitacion/redeem/{$}", strict(http.HandlerFunc(h.HandleRedeem)))
	r.Mux.Handle("GET /invitation/{code}", read(http.HandlerFunc(h.HandleLookup)))
}

func (r *Router) registerSystem(read httpx.Middleware) {
	r.Mux.Handle("GET /livez", read(LivezHandler(r.startTime, r.buildVersion)))
	r.Mux.Handle("GET /readyz", read(ReadyzHandler(r.startTime, r.buildVersion, r.store)))
}
