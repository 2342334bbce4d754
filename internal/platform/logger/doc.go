// Package logger configures the application's structured JSON logger and
// carries request-scoped loggers through context.Context.
//
// The rest of the code base never constructs handlers directly. main calls
// Setup once; middleware enriches a logger with request attributes and stores
// it with WithLogger; handlers, services and stores retrieve it with
// FromContext or FromContextOrDefault.
package logger
