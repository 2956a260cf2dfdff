// Package uniuri generates cryptographically secure random strings suitable for use as session identifiers.
package uniuri
