// Package env provides read-only access to process environment
// variables behind a small interface so that locale resolution can be
// tested without mutating the real environment.
package env

import "os"

// Resolver defines an interface for environment resolution.
type Resolver interface {
	// Get returns the value of the environment variable named by the key.
	// It returns an empty string if the variable is not present.
	Get(key string) string
}

// DefaultResolver is the default implementation of the Resolver
// interface that encapsulates environment resolution using the os
// package.
type DefaultResolver struct{}

// Get returns the value of the environment variable associated with the
// given key.
func (DefaultResolver) Get(key string) string {
	return os.Getenv(key)
}
