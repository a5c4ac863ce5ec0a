package routerhelper

import (
	"net/http"
	"path"

	"github.com/julienschmidt/httprouter"
)

// RouteGroup. httprouter routes sharing a path prefix
type RouteGroup struct {
	r *httprouter.Router
	p string
}

func NewRouteGroup(r *httprouter.Router, p string) *RouteGroup {
	return &RouteGroup{r: r, p: p}
}

func (g *RouteGroup) Group(p string) *RouteGroup {
	return &RouteGroup{r: g.r, p: g.path(p)}
}

func (g *RouteGroup) GET(p string, h httprouter.Handle) {
	g.r.GET(g.path(p), h)
}

func (g *RouteGroup) POST(p string, h httprouter.Handle) {
	g.r.POST(g.path(p), h)
}

func (g *RouteGroup) Handler(method, p string, h http.Handler) {
	g.r.Handler(method, g.path(p), h)
}

func (g *RouteGroup) path(p string) string {
	return path.Join(g.p, p)
}
