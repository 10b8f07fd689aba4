// Package logging provides structured logging using uber/zap.
//
// Two modes are offered:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Logs are written to stderr so that they never mix with command output.
// Components receive a named *zap.Logger from Logger.Component; a component
// given a nil logger uses zap.NewNop.
//
// Example Usage:
//
//	logger, err := logging.New(logging.ConfigFor(cfg.Logging.Level, cfg.Logging.Development))
//	resolver := quirks.NewApplicableQuirksProvider(matcher, source, logger.Component("quirks"), metrics)
package logging
