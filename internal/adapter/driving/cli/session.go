package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ericfisherdev/fishledger/internal/application"
)

// Lookuper is the part of application.LookupService a session drives.
type Lookuper interface {
	Lookup(ctx context.Context, receivedAt uint64) (*application.Rendering, error)
}

// Session is the interactive prompt loop. Each accepted line runs one full
// lookup before the next prompt is shown; queries never overlap.
type Session struct {
	lookuper Lookuper
	printer  *Printer
	in       io.Reader
}

// NewSession creates a Session reading timestamps from in.
func NewSession(lookuper Lookuper, printer *Printer, in io.Reader) *Session {
	return &Session{lookuper: lookuper, printer: printer, in: in}
}

// Run prompts until input ends, ctx is canceled, or a lookup fails in a way
// that leaves the store unusable. Per-query failures are printed and the loop
// continues. Cancellation is honored while waiting at the prompt.
func (s *Session) Run(ctx context.Context) error {
	lines, readErr := readLines(ctx, s.in)
	for {
		if ctx.Err() != nil {
			return nil
		}

		s.printer.Prompt()
		var line string
		select {
		case <-ctx.Done():
			s.printer.Newline()
			return nil
		case l, ok := <-lines:
			if !ok {
				s.printer.Newline()
				if err := <-readErr; err != nil {
					return fmt.Errorf("read timestamp: %w", err)
				}
				return nil
			}
			line = strings.TrimSpace(l)
		}

		if line == "" {
			continue
		}
		receivedAt, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			s.printer.InvalidInput(line)
			continue
		}

		if err := s.Query(ctx, receivedAt); err != nil && application.IsFatal(err) {
			return err
		}
	}
}

// readLines scans in on its own goroutine so a blocked read never holds up
// cancellation. lines is closed when input ends or ctx is done; exactly one
// value (nil on clean EOF or cancel) is then sent on the error channel.
// A read blocked in the reader is abandoned, not interrupted.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}

// Query runs and prints a single lookup. The lookup error, if any, is
// returned after being printed.
func (s *Session) Query(ctx context.Context, receivedAt uint64) error {
	s.printer.Querying(receivedAt)

	r, err := s.lookuper.Lookup(ctx, receivedAt)
	if err != nil {
		slog.Warn("lookup failed", "received_at", receivedAt, "error", err)
		s.printer.Failure(receivedAt, err)
		return err
	}

	slog.Debug("lookup succeeded",
		"received_at", receivedAt,
		"crane_id", r.Withdrawal.SourceID,
		"species", r.Vector.NonZero(),
		"units", r.Vector.Total(),
	)
	s.printer.Rendering(r)
	return nil
}
