// Package mocks provides hand-written test doubles for the application's
// interfaces. Each mock exposes function fields to override behavior per
// test, with a usable in-memory default implementation.
package mocks
