// Package api contains the HTTP handlers, request/response models, and
// error mapping for the illustration API.
package api
