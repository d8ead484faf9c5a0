// Package http implements the web surface of the gallery: the provider
// webhook, the OAuth login and registration pages, the JSON gallery API and
// static files.
//
// Every request gets a trace id and an access log entry. Browser routes
// additionally decode the session cookie before reaching the service layer.
package http
