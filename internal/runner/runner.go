package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"travel-time-estimator/internal/platform/obs"
	"travel-time-estimator/internal/ports"
)

// MaxLineBytes caps a single input line. A longer line aborts the run with
// bufio.ErrTooLong.
const MaxLineBytes = 1024 * 1024

// Runner feeds newline-delimited destination queries to an estimator and
// prints one human-readable line per query.
type Runner struct {
	Estimator      ports.TravelTimeEstimator
	IncludeTraffic bool
}

// Run processes in until EOF or ctx is cancelled. Lines are handled strictly
// in order, one at a time.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if r.Estimator == nil {
		return errors.New("run: estimator must be non-nil")
	}

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	queryID := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSuffix(sc.Text(), "\r")
		queryID++

		seconds, ok := r.Estimator.Estimate(obs.WithQueryID(ctx, queryID), line, r.IncludeTraffic)

		var err error
		if ok {
			_, err = fmt.Fprintf(out, "Travel time to %s: %s\n", line, FormatDuration(seconds))
		} else {
			_, err = fmt.Fprintf(out, "Could not determine travel time to %s\n", line)
		}
		if err != nil {
			return fmt.Errorf("run: write result for query %d: %w", queryID, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("run: read input: %w", err)
	}

	return nil
}

// FormatDuration renders seconds as H:MM:SS. Hours are not capped at 24.
func FormatDuration(seconds int) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("%s%d:%02d:%02d", sign, seconds/3600, seconds/60%60, seconds%60)
}
