// Package logger wraps zap with a global sugared logger that writes to stderr,
// context helpers (ToContext, FromContext, WithName, WithKV, WithFields) and
// level parsing.
//
// Commands put a named logger into the context and everything below them
// logs through it, so stdout stays free for rendered configuration.
package logger
