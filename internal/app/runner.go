package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"restful_booker/internal/adapters/booker"
	"restful_booker/internal/adapters/observability"
)

// Check runs one scenario and returns the last status it asserted on.
type Check func(ctx context.Context, r *Runner) (int, error)

type Scenario struct {
	Name string
	Run  Check
}

type Result struct {
	Name     string
	Passed   bool
	Status   int
	Detail   string
	Duration time.Duration
}

// Runner executes scenarios one after another against a single client.
type Runner struct {
	Client *booker.Client
	// RunID tags data written during this run so it can be told apart.
	RunID string
	Stays *Stays

	log zerolog.Logger
}

func NewRunner(cl *booker.Client, l zerolog.Logger) *Runner {
	return &Runner{Client: cl, RunID: uuid.NewString(), Stays: NewStays(), log: l}
}

func (r *Runner) Run(ctx context.Context, scenarios []Scenario) []Result {
	out := make([]Result, 0, len(scenarios))
	for _, sc := range scenarios {
		if ctx.Err() != nil {
			break
		}
		start := time.Now()
		status, err := sc.Run(ctx, r)
		res := Result{Name: sc.Name, Passed: err == nil, Status: status, Duration: time.Since(start)}
		if err != nil {
			res.Detail = err.Error()
		}
		observability.ObserveScenario(sc.Name, res.Passed)

		ev := r.log.Info()
		if !res.Passed {
			ev = r.log.Error().Str("detail", res.Detail)
		}
		ev.Str("run", r.RunID).
			Str("scenario", sc.Name).
			Bool("passed", res.Passed).
			Int("status", res.Status).
			Dur("duration", res.Duration).
			Msg("scenario finished")
		out = append(out, res)
	}
	return out
}

// Failed counts results that did not pass.
func Failed(rs []Result) int {
	n := 0
	for _, r := range rs {
		if !r.Passed {
			n++
		}
	}
	return n
}

// Select keeps the scenarios whose names are listed; an empty list keeps all.
func Select(all []Scenario, names []string) ([]Scenario, error) {
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]Scenario, len(all))
	for _, s := range all {
		byName[s.Name] = s
	}
	out := make([]Scenario, 0, len(names))
	for _, n := range names {
		s, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("unknown scenario %q", n)
		}
		out = append(out, s)
	}
	return out, nil
}

// ErrMismatch marks an assertion that did not hold.
var ErrMismatch = errors.New("assertion failed")

// expectStatus fails unless resp carries want. The error carries the full
// response so the reason is visible in the report.
func expectStatus(resp *booker.Response, err error, want int) (int, error) {
	if err != nil {
		return 0, err
	}
	if resp.StatusCode != want {
		return resp.StatusCode, fmt.Errorf("%w: want status %d, got %s", ErrMismatch, want, resp)
	}
	return resp.StatusCode, nil
}
