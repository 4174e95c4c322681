// Package controller contains HTTP middlewares and helper handlers used by the ops server.
//
// Provided middlewares:
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - BearerAuth.Middleware: Rejects requests without a valid RS256 bearer token.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
package controller
