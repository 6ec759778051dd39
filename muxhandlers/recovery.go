package muxhandlers

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vitalvas/routekit/mux"
)

// RecoveryConfig configures the Recovery middleware behaviour.
type RecoveryConfig struct {
	// Logger receives an error entry for every recovered panic. When nil,
	// panics are recovered silently.
	Logger logrus.FieldLogger
}

// RecoveryMiddleware returns a middleware that recovers from panics in
// downstream handlers and answers 500 Internal Server Error. The log entry
// carries the matched route pattern and captures so the failing route can
// be found from the log alone.
func RecoveryMiddleware(cfg RecoveryConfig) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if cfg.Logger != nil {
						panicEntry(cfg.Logger, r, err).Error("muxhandlers: recovered from panic")
					}

					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func panicEntry(logger logrus.FieldLogger, r *http.Request, recovered any) *logrus.Entry {
	fields := routeFields(r)
	fields["panic"] = recovered
	return logger.WithFields(fields)
}
