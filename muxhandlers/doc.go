// Package muxhandlers provides HTTP middleware handlers for the mux router.
//
// # Request ID Middleware
//
// RequestIDMiddleware generates or propagates a request ID header and
// stores it in the request context:
//
//	r.Use(muxhandlers.RequestIDMiddleware(muxhandlers.RequestIDConfig{
//	    GenerateFunc: muxhandlers.GenerateUUIDv7,
//	}))
//
// # Recovery Middleware
//
// RecoveryMiddleware turns a panic in a route handler into a 500 response
// and logs it with the matched route pattern, the route captures and the
// request ID:
//
//	r.Use(muxhandlers.RecoveryMiddleware(muxhandlers.RecoveryConfig{
//	    Logger: logrus.StandardLogger(),
//	}))
package muxhandlers
