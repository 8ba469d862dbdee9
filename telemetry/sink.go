package telemetry

import "github.com/rs/zerolog"

// Sink receives informational and error lines produced while a scan is
// running. Implementations decide where the lines end up.
type Sink interface {
	Log(line string)
	Error(line string)
}

// LogSink forwards lines to a zerolog logger.
type LogSink struct {
	logger zerolog.Logger
}

func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Log(line string)   { s.logger.Info().Msg(line) }
func (s *LogSink) Error(line string) { s.logger.Error().Msg(line) }

// Discard drops every line. Used for silent runs.
type Discard struct{}

func (Discard) Log(string)   {}
func (Discard) Error(string) {}

type bufferedLine struct {
	isError bool
	text    string
}

// Buffer holds lines until flushed. Collection loops buffer their
// output per region and flush after the region completes, so log lines
// never interleave with an in-place progress indicator.
type Buffer struct {
	lines []bufferedLine
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) Log(line string) {
	b.lines = append(b.lines, bufferedLine{text: line})
}

func (b *Buffer) Error(line string) {
	b.lines = append(b.lines, bufferedLine{isError: true, text: line})
}

// Len returns the number of buffered lines.
func (b *Buffer) Len() int { return len(b.lines) }

// FlushTo replays the buffered lines into sink in arrival order and
// empties the buffer.
func (b *Buffer) FlushTo(sink Sink) {
	for _, line := range b.lines {
		if line.isError {
			sink.Error(line.text)
		} else {
			sink.Log(line.text)
		}
	}
	b.lines = b.lines[:0]
}
