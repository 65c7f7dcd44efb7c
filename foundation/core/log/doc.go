// Package log provides structured logging for textkit.
//
// Package: log
// Title: textkit Structured Logging
// Description: Leveled, structured logging with persistent fields, request
//              and correlation IDs carried through context.Context, and
//              JSON, text, console and logfmt output. Structured errors from
//              foundation/core/error are logged with their code and details.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2025-03-09
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-03-02 v0.2.0: Context propagation, sorted field output, removed async
//                      buffering and audit level
// - 2025-03-09 v0.2.1: Operation timers on service calls
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText}).
//		WithName("patternx")
//
//	logger.Debug("pattern compiled", log.Fields{"pattern": src, "engine": "regexp2"})
//
//	ctx = log.ContextWithRequestID(ctx, id)
//	log.FromContext(ctx).Info("transform", log.Field("op", "snake"))
//
//	timer := logger.StartTimer("service.Replace").WithField("pattern", src)
//	if err != nil {
//		timer.StopWithError(err)
//	} else {
//		timer.Stop()
//	}
package log
