// Package observability provides the CLI's structured logger.
//
// The CLI logs diagnostics to stderr so stdout stays clean for table
// and JSON output that downstream tools may parse.
package observability

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CLILogger is the process-wide logger for command execution. It is a
// no-op until InitCLILogger runs, so packages may log unconditionally.
var CLILogger = zap.NewNop()

// InitCLILogger configures CLILogger for interactive use: console
// encoding on stderr, info level by default, debug level when debug is
// set. Timestamps and callers are omitted; CLI invocations are short
// lived and the noise hurts readability.
func InitCLILogger(debug bool) error {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.CallerKey = ""
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		level,
	)

	CLILogger = zap.New(core)
	return nil
}
