package views

import (
	"go.uber.org/zap"

	"laundrypro/internal/services"
)

// Handler renders one view and returns the name of the next view, or
// RouteExit to stop.
type Handler func() string

// RouteExit ends the view loop.
const RouteExit = "exit"

// Router drives navigation between named views. Protected views are gated on
// the session guard; an unauthenticated visit is redirected to the login
// route, mirroring how the app's protected pages bounce to the login screen.
type Router struct {
	routes    map[string]Handler
	protected map[string]bool
	guard     *services.SessionGuard
	ui        *UI
	logger    *zap.Logger
	loginTo   string
}

// NewRouter creates a Router that redirects unauthenticated visits to
// loginRoute.
func NewRouter(guard *services.SessionGuard, ui *UI, logger *zap.Logger, loginRoute string) *Router {
	return &Router{
		routes:    make(map[string]Handler),
		protected: make(map[string]bool),
		guard:     guard,
		ui:        ui,
		logger:    logger,
		loginTo:   loginRoute,
	}
}

// Handle registers a public view.
func (r *Router) Handle(name string, h Handler) {
	r.routes[name] = h
}

// HandleProtected registers a view that requires an active session.
func (r *Router) HandleProtected(name string, h Handler) {
	r.routes[name] = h
	r.protected[name] = true
}

// Run walks views starting at start until a handler returns RouteExit, an
// unknown route is produced, or input runs out.
func (r *Router) Run(start string) {
	route := start
	for route != RouteExit && !r.ui.Closed() {
		if r.protected[route] && !r.guard.IsAuthenticated() {
			r.ui.Say("Please log in first.")
			route = r.loginTo
			continue
		}
		h, ok := r.routes[route]
		if !ok {
			r.logger.Warn("unknown route", zap.String("route", route))
			return
		}
		route = h()
	}
}
