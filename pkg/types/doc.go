// Package types defines the view models for the NepalAI Lab site content,
// the chat transcript types, the form submission status machine, and the
// session store configuration with its standard errors.
package types
