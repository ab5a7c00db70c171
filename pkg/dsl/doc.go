// Package dsl provides a fluent builder for composing email document trees
// in code. It is primarily used by tests and starter templates; interactive
// editing goes through pkg/document directly.
package dsl
