// Package parser turns cron expression text into typed descriptors.
//
// This package includes:
//   - ParseField for a single field against that field's bounds
//   - Parse for a whole five- or six-field expression, including aliases
//     such as @daily
//   - Validate, a non-failing pass/fail wrapper around Parse
//
// Every function here is pure and safe for concurrent use.
//
// Most users should import the root package github.com/jdziat/cronhuman
// which re-exports these functions.
package parser
