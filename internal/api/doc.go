// Package api contains the HTTP handlers, request/response models, and
// error translation for the task management API. Handlers stay thin: they
// decode and validate input, delegate to the stores, and translate errors
// through a single centralized mapping.
package api
