// Package logging builds the slog loggers used across LisztNUp.
//
// It offers a human-oriented console handler for interactive runs and a JSON
// handler for machine consumption, selected through configuration. Helper
// constructors (String, Int, Error, ...) keep call sites terse, and NewNop
// provides a silent logger for tests.
package logging
