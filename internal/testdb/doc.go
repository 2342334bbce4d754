//go:build integration

// Package testdb provides helpers for tests that run against a real Postgres
// database. Tests using it are compiled only with the integration build tag
// and skip themselves when DATABASE_URL is unset.
//
// OpenPostgres migrates the schema and truncates the tables when the test
// finishes. WithTx runs raw SQL checks inside a transaction that is always
// rolled back.
package testdb
