// Package api handles incoming HTTP requests for tasks: request decoding
// and validation, dispatch to the task store bound to the request's
// database connection, and response formatting. It translates store
// results and errors into HTTP status codes without leaking internal
// error details to clients.
package api
