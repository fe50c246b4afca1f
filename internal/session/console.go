package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/ayasuda/kanjidrill/internal/drill"
	"github.com/ayasuda/kanjidrill/internal/store"
)

// RunConsole drives an already-built test set over a line-based terminal:
// questions are presented one at a time in the seed-determined order, each
// answer is recorded as it is given, and coverage/accuracy are printed at
// the end. Display options are shuffled per question; stored option order
// carries no meaning.
func RunConsole(ctx context.Context, sets store.TestSetRepo, set *drill.TestSet, report *Report, userID string, in io.Reader, out io.Writer) error {
	ordered := set.OrderedQuestions()
	if len(ordered) == 0 {
		fmt.Fprintln(out, "No questions could be generated for this set.")
		printSkips(out, report)
		return nil
	}

	reader := bufio.NewReader(in)
	for i, q := range ordered {
		display := make([]drill.Option, len(q.Options))
		copy(display, q.Options)
		rand.Shuffle(len(display), func(a, b int) {
			display[a], display[b] = display[b], display[a]
		})

		fmt.Fprintf(out, "\n[%d/%d] %s\n\n    %s\n\n", i+1, len(ordered), q.Instructions(), q.Stimulus)
		for j, o := range display {
			fmt.Fprintf(out, "  %d) %s\n", j+1, o.Value)
		}

		pick, err := promptChoice(reader, out, len(display))
		if err != nil {
			return err
		}
		chosen := display[pick-1]
		if _, err := RecordResponse(ctx, sets, set, q.ID, chosen.ID, userID); err != nil {
			return err
		}

		if chosen.IsCorrect {
			fmt.Fprintln(out, "  correct")
		} else if ans, ok := q.Answer(); ok {
			fmt.Fprintf(out, "  wrong (answer: %s)\n", ans.Value)
		}
	}

	coverage, err := set.Coverage()
	if err != nil {
		return err
	}
	accuracy, err := set.Accuracy()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nAnswered %.0f%%, correct %.0f%%.\n", coverage*100, accuracy*100)
	printSkips(out, report)
	return nil
}

// promptChoice reads a 1-based option number, re-prompting on anything
// outside [1, n]. Closed input is an error, not a silent skip.
func promptChoice(reader *bufio.Reader, out io.Writer, n int) (int, error) {
	for {
		fmt.Fprint(out, "\n> ")
		line, err := reader.ReadString('\n')
		pick, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && pick >= 1 && pick <= n {
			return pick, nil
		}
		if err != nil {
			return 0, fmt.Errorf("read answer: %w", err)
		}
		fmt.Fprintf(out, "Enter a number between 1 and %d.\n", n)
	}
}

func printSkips(out io.Writer, report *Report) {
	if report == nil || len(report.Skipped) == 0 {
		return
	}
	fmt.Fprintf(out, "%d concept(s) skipped:\n", len(report.Skipped))
	for _, skip := range report.Skipped {
		fmt.Fprintf(out, "  %s: %v\n", skip.Item.Pivot, skip.Reason)
	}
}
