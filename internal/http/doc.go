// Package http exposes the admin navigation endpoints over net/http.
//
// Handlers register against a standard *http.ServeMux using method-qualified
// route patterns. Hosts mount the mux wherever their admin surface lives;
// authentication happens upstream and reaches the handlers through the
// request context.
package http
