// Package api exposes the anime catalogue over HTTP. Handlers decode and
// validate requests, call the service layer and translate its errors into
// status codes and exception-details bodies in one place.
package api
