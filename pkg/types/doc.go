// Package types defines the entity types, the LocalStore interface, and the
// standard errors for the moodeng storage system.
package types
