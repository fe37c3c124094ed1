// Package views registers all list view definitions with the core registry.
// Import this package to ensure all views are registered.
package views
