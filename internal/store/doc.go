// Package store defines the persistence interfaces for the application's
// entities, together with the sentinel errors shared by all store
// implementations. Concrete implementations live under platform/postgres.
package store
