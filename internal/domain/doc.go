// Package domain defines the core business entities of the task
// management API and their validation rules.
package domain
