// Package security provides input limits and sanitization for the cronhuman package.
//
// This package includes:
//   - Length limits for cron expressions and natural language phrases
//   - Error message sanitization before echoing user input to a terminal
//   - Clamping for the number of occurrences computed per call
//
// Most users should import the root package github.com/jdziat/cronhuman
// which re-exports these limits.
package security
