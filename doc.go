// Package main provides the entry point for the aurora-site application.
// It runs the web service behind the wedding site of the Santos family:
// a JSON API for the gift registry, the RSVP list and the supporter
// registry, plus the password-gated admin area. Records are persisted
// either as flat JSON files or in a single-file SQLite database.
package main
