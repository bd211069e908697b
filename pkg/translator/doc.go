// Package translator converts between cron expressions and English.
//
// This package includes:
//   - ToHuman, which renders a parsed expression as a short description
//   - FromHuman, which recognizes simple phrases such as
//     "every weekday at 9am" and produces the matching expression
//
// Most users should import the root package github.com/jdziat/cronhuman
// which re-exports these functions.
package translator
