// Package core provides the fundamental types for the cronhuman package.
//
// This package contains:
//   - The closed Field enumeration and its bounds table
//   - Kind, Descriptor and Expression models produced by the parser
//   - The alias table and day/month name lookups
//   - Error types and the error taxonomy used across packages
//
// Most users should import the root package github.com/jdziat/cronhuman
// instead of this package directly.
package core
