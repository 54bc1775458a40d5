// Package types defines the records that make up Lumen's shared UI state
// (stats, characters, weapon parts, weapons), the State root that carries
// them, and the standard errors returned by the packages that populate it.
package types
