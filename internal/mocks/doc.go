// Package mocks provides hand-written and testify-based test doubles for the
// service and store interfaces, shared by tests across packages.
package mocks
