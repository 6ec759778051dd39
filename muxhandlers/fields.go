package muxhandlers

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vitalvas/routekit/mux"
)

// routeFields describes the request and the route it matched, if any.
func routeFields(r *http.Request) logrus.Fields {
	fields := logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}

	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			fields["pattern"] = tpl
		}
		if name := route.GetName(); name != "" {
			fields["route"] = name
		}
	}
	if vars := mux.Vars(r); len(vars) > 0 {
		fields["vars"] = vars
	}
	if id := RequestIDFromContext(r.Context()); id != "" {
		fields["request_id"] = id
	}

	return fields
}
