// Package schedule computes upcoming occurrences of cron expressions.
//
// This package includes:
//   - Schedule interface for anything that can report its next run time
//   - Cron() and NewCron() for schedules built from cron expressions
//   - NextExecutions() and NextExecution() for formatted upcoming times
//   - Options for count, start time, layout and logging
//
// Expressions are validated by the parser package first, then handed to
// github.com/robfig/cron/v3 for the calendar walk.
//
// Most users should import the root package github.com/jdziat/cronhuman
// which re-exports these functions.
package schedule
