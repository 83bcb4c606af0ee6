// Package sessionlog wraps a zerolog.Logger with the event names the
// RTP session's error taxonomy uses verbatim (spec.md §7, §9).
package sessionlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the session-scoped structured logger.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger writing to w (os.Stderr if w is nil) tagged with
// the given RTP session id.
func New(w io.Writer, sessionID string) *Logger {
	if w == nil {
		w = os.Stderr
	}
	zl := zerolog.New(w).With().Timestamp().Str("session", sessionID).Logger()
	return &Logger{zl: zl}
}

// PacketLost logs a dropped RTP packet at DEBUG, per spec.md §7: a
// socket write failure during Drain is never surfaced to the caller.
func (l *Logger) PacketLost(err error) {
	l.zl.Debug().Err(err).Msg("RTP Packet Lost")
}

// EndOfStream logs stream completion at INFO.
func (l *Logger) EndOfStream() {
	l.zl.Info().Msg("End of stream reached")
}

// Fatal logs an unrecognized event_buffer_low status at FATAL. It does
// not terminate the process — spec.md surfaces the error to the
// caller instead, who decides how to react.
func (l *Logger) Fatal(status int) {
	l.zl.WithLevel(zerolog.FatalLevel).Int("status", status).Msg("Unable to emit event buffer low")
}

// RTPTimestamp logs the computed RTP timestamp of a sent packet at
// TRACE. Disabled by default; carried forward from the original
// implementation's per-packet VERBOSE log (SPEC_FULL.md §4).
func (l *Logger) RTPTimestamp(ts uint32) {
	l.zl.Trace().Uint32("timestamp", ts).Msg("RTP timestamp")
}

// AllocError logs a packet-buffer allocation failure.
func (l *Logger) AllocError(err error) {
	l.zl.Error().Err(err).Msg("failed to allocate RTP packet buffer")
}
