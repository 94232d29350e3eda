package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/ericfisherdev/fishledger/internal/application"
	"github.com/ericfisherdev/fishledger/internal/domain/payload"
	"github.com/ericfisherdev/fishledger/internal/domain/port/driven"
)

// Printer writes colorized lookup results to a terminal.
// Indexes and zero counts are yellow, non-zero counts and names green,
// banners magenta, failures red.
type Printer struct {
	w       io.Writer
	banner  *color.Color
	index   *color.Color
	zero    *color.Color
	count   *color.Color
	failure *color.Color
}

// NewPrinter creates a Printer. With noColor set, output is plain text even
// on a terminal.
func NewPrinter(w io.Writer, noColor bool) *Printer {
	p := &Printer{
		w:       w,
		banner:  color.New(color.FgMagenta),
		index:   color.New(color.FgYellow),
		zero:    color.New(color.FgYellow),
		count:   color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}
	if noColor {
		for _, c := range []*color.Color{p.banner, p.index, p.zero, p.count, p.failure} {
			c.DisableColor()
		}
	}
	return p
}

// Opened announces the ledger file.
func (p *Printer) Opened(path string) {
	fmt.Fprintln(p.w, p.banner.Sprintf("Withdrawal ledger opened: %s", path))
}

// Prompt asks for the next timestamp.
func (p *Printer) Prompt() {
	fmt.Fprint(p.w, "What unix timestamp should be queried? ")
}

// Newline ends a prompt line that received no input.
func (p *Printer) Newline() {
	fmt.Fprintln(p.w)
}

// InvalidInput reports a line that is not an unsigned 64-bit integer.
func (p *Printer) InvalidInput(line string) {
	fmt.Fprintln(p.w, p.failure.Sprintf("%q is not a unix timestamp", line))
}

// Querying echoes the timestamp being looked up.
func (p *Printer) Querying(receivedAt uint64) {
	fmt.Fprintf(p.w, "Querying %d !\n", receivedAt)
}

// Rendering prints a successful lookup.
func (p *Printer) Rendering(r *application.Rendering) {
	rule := func(n int) string { return p.banner.Sprint(strings.Repeat("-", n)) }
	fmt.Fprintf(p.w, "%s %s %s\n", rule(40), p.banner.Sprint("Success"), rule(100))
	fmt.Fprintf(p.w, "Crane %d, actor %d, received at %d\n",
		r.Withdrawal.SourceID, r.Withdrawal.ActorID, r.Withdrawal.ReceivedAt)

	indexes := make([]string, len(r.Cells))
	quantities := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		indexes[i] = p.index.Sprint(c.IndexText)
		if c.Quantity == 0 {
			quantities[i] = p.zero.Sprint(c.QuantityText)
		} else {
			quantities[i] = p.count.Sprint(c.QuantityText)
		}
	}

	fmt.Fprintf(p.w, " Indexes: [%s]\n", strings.Join(indexes, ", "))
	fmt.Fprintf(p.w, "Vec<u32>: [%s]\n", strings.Join(quantities, ", "))
	fmt.Fprintf(p.w, "   Names: %s\n", p.count.Sprint(r.Summary))
}

// Failure explains why a lookup produced nothing.
func (p *Printer) Failure(receivedAt uint64, err error) {
	var msg string
	switch {
	case errors.Is(err, driven.ErrWithdrawalNotFound):
		msg = fmt.Sprintf("No withdrawal was received at %d", receivedAt)
	case errors.Is(err, payload.ErrDecode):
		msg = fmt.Sprintf("Withdrawal at %d has a malformed payload: %v", receivedAt, err)
	default:
		msg = fmt.Sprintf("Lookup of %d failed: %v", receivedAt, err)
	}
	fmt.Fprintln(p.w, p.failure.Sprint(msg))
}

// Species lists the catalog as "<index> <name>" lines.
func (p *Printer) Species(names []string) {
	for i, name := range names {
		fmt.Fprintf(p.w, "%s %s\n", p.index.Sprintf("%2d", i), name)
	}
}
