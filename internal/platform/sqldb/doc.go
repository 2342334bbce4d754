// Package sqldb implements the store interfaces on top of database/sql.
//
// Two dialects are supported: PostgreSQL through the pgx stdlib driver and
// SQLite through the pure-Go modernc.org/sqlite driver. Queries are built with
// squirrel so the only per-dialect difference is the placeholder format, and
// results are scanned with sqlx using the db struct tags on the domain types.
// Schema migrations for both dialects are embedded in the binary and applied
// with goose.
package sqldb
