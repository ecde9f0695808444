// Package emit implements the candidate generator engine: the
// fixed-length hot path, the variable-length (wordlist) path,
// the buffered sink, and the multi-mask driver.
package emit

import (
	"io"

	"github.com/cracken/cracken/internal/errkind"
)

// DefaultBufferBytes is the sink's target buffer size (§4.4: 1-4 MiB).
const DefaultBufferBytes = 2 << 20

// Sink is a buffered byte-stream abstraction pre-filled with '\n' so the
// trailing record terminator is never written per candidate (§4.4). It is
// exclusively owned by one generator run (§5) and flushes only whole
// records: the buffer length at flush is always a multiple of the record
// length, so a terminated process never leaves a partial line behind
// (§5, suspension points).
type Sink struct {
	w      io.Writer
	path   string // for error context; "" for stdout/unnamed writers
	buf    []byte
	pos    int
	recLen int
}

// NewSink builds a Sink writing records of recLen bytes (including the
// trailing '\n') to w, with a buffer sized to hold a whole number of
// records within bufBytes.
func NewSink(w io.Writer, path string, recLen, bufBytes int) *Sink {
	if bufBytes <= 0 {
		bufBytes = DefaultBufferBytes
	}

	recordsPerBuf := bufBytes / recLen
	if recordsPerBuf < 1 {
		recordsPerBuf = 1
	}

	s := &Sink{w: w, path: path, recLen: recLen}
	s.buf = make([]byte, recordsPerBuf*recLen)
	fillNewlines(s.buf)

	return s
}

func fillNewlines(buf []byte) {
	for i := range buf {
		buf[i] = '\n'
	}
}

// RecordLen returns the configured record length (including '\n').
func (s *Sink) RecordLen() int { return s.recLen }

// NextRecord returns a slice of RecordLen()-1 bytes (the non-newline
// portion of the next record — the trailing '\n' is already in place and
// must not be overwritten) for the caller to fill. It transparently
// flushes when the buffer has no room left for another record.
func (s *Sink) NextRecord() ([]byte, error) {
	if s.pos+s.recLen > len(s.buf) {
		if err := s.Flush(); err != nil {
			return nil, err
		}
	}

	rec := s.buf[s.pos : s.pos+s.recLen-1]
	s.pos += s.recLen

	return rec, nil
}

// Flush writes the buffered whole records to the underlying writer.
func (s *Sink) Flush() error {
	if s.pos == 0 {
		return nil
	}

	if _, err := s.w.Write(s.buf[:s.pos]); err != nil {
		return errkind.NewIOWriteFailed(s.path, err)
	}

	s.pos = 0

	return nil
}

// Reconfigure flushes any pending records and switches the sink to a new
// record length — used by the variable-length (wordlist) path when moving
// between length tuples (§4.4).
func (s *Sink) Reconfigure(recLen int) error {
	if err := s.Flush(); err != nil {
		return err
	}

	if recLen == s.recLen {
		return nil
	}

	recordsPerBuf := len(s.buf) / s.recLen
	if recordsPerBuf < 1 {
		recordsPerBuf = 1
	}

	s.recLen = recLen
	s.buf = make([]byte, recordsPerBuf*recLen)
	fillNewlines(s.buf)

	return nil
}

// Close flushes any remaining buffered records.
func (s *Sink) Close() error {
	return s.Flush()
}
