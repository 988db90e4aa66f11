// Package kernel contains shared value objects used across the domain
// model: entity identifiers and validated contact primitives. Everything
// here is immutable, constructed through factory functions, and safe for
// concurrent use.
package kernel
