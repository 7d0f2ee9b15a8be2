package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/consigcody94/ts-pilot/errors"
	"github.com/consigcody94/ts-pilot/logger"
)

// maxLineBytes bounds a single request line. Generous for pasted snippets,
// small enough to keep a runaway client from exhausting memory.
const maxLineBytes = 4 * 1024 * 1024

// errLineTooLong marks a request line over maxLineBytes. Like malformed
// input, it is scoped to the offending line: the loop logs and moves on.
var errLineTooLong = errors.New("input line exceeds size limit")

// Run executes the dispatch loop: one line in, at most one line out, strictly
// in order. Lines that are not valid JSON, and lines over maxLineBytes, are
// logged and skipped with no protocol response. Notifications (no id) are
// dispatched but never answered. Run returns when r is exhausted or the
// reader fails.
func (s *Server) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	reader := bufio.NewReaderSize(r, 64*1024)

	for {
		line, err := readLine(reader)
		switch {
		case err == nil || err == io.EOF:
			if len(line) > 0 {
				if werr := s.dispatch(ctx, line, w); werr != nil {
					return werr
				}
			}
			if err == io.EOF {
				return nil
			}
		case errors.Is(err, errLineTooLong):
			logger.Warnw("skipping oversized input line", "limit_bytes", maxLineBytes)
		default:
			return errors.Wrap(err, "failed to read request stream")
		}
	}
}

// readLine returns the next line with surrounding whitespace trimmed and the
// newline removed. A line over maxLineBytes is drained to its newline and
// reported as errLineTooLong so the caller can resume at the next line.
func readLine(r *bufio.Reader) ([]byte, error) {
	var line []byte
	for {
		chunk, err := r.ReadSlice('\n')
		line = append(line, chunk...)
		if err == nil {
			return bytes.TrimSpace(line), nil
		}
		if err != bufio.ErrBufferFull {
			// io.EOF, possibly with a final unterminated line, or a reader fault.
			return bytes.TrimSpace(line), err
		}
		if len(line) > maxLineBytes {
			return nil, drainLine(r)
		}
	}
}

// drainLine consumes the remainder of an oversized line without buffering it.
func drainLine(r *bufio.Reader) error {
	for {
		_, err := r.ReadSlice('\n')
		if err == nil {
			return errLineTooLong
		}
		if err != bufio.ErrBufferFull {
			return err
		}
	}
}

// dispatch routes one non-empty input line and writes the response, if any.
// Only write failures are returned; bad input is logged and dropped.
func (s *Server) dispatch(ctx context.Context, line []byte, w io.Writer) error {
	if !json.Valid(line) {
		// Transport-malformed input: operator diagnostic only, no response.
		logger.Warnw("skipping malformed input line", "bytes", len(line))
		return nil
	}

	// HandleMessage routes by method, catches handler faults, and returns
	// nil for notifications. Unknown methods come back as -32601, handler
	// faults as -32603.
	response := s.mcp.HandleMessage(ctx, json.RawMessage(line))
	if response == nil {
		return nil
	}

	out, err := json.Marshal(response)
	if err != nil {
		// Responses are built from our own types; this should not happen.
		logger.Errorw("failed to marshal response", "error", err)
		return nil
	}

	out = append(out, '\n')
	if _, err := w.Write(out); err != nil {
		return errors.Wrap(err, "failed to write response")
	}
	return nil
}
