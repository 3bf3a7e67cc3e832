package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/litescript/ls-planisphere/internal/report"
)

// Number of recent events attached to scheduled summaries.
const summaryEvents = 10

type summaryOptions struct {
	json     bool
	at       string
	maxStars int
}

func newSummaryCmd(a *app) *cobra.Command {
	var opts summaryOptions
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the sky above the observer and exit",
		Long: `Print the Sun, the Moon, the planets and the brightest visible stars
as seen by the observer, as a table or as JSON.

With --schedule (a standard five-field cron spec, e.g. "*/15 * * * *") the
summary is printed again at every activation until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSummary(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.json, "json", false, "write JSON instead of a table")
	cmd.Flags().StringVar(&opts.at, "at", "", "instant to describe, RFC 3339 (default now)")
	cmd.Flags().IntVar(&opts.maxStars, "stars", report.DefaultMaxStars, "number of stars listed")
	cmd.Flags().String("schedule", "", "cron spec for repeated summaries")
	return cmd
}

func (a *app) runSummary(ctx context.Context, w io.Writer, opts summaryOptions) error {
	at, err := parseInstant(opts.at)
	if err != nil {
		return err
	}

	once := func(t time.Time) error {
		s, err := a.mgr.Rebuild(t)
		if err != nil {
			return fmt.Errorf("build sky: %w", err)
		}
		sum, err := report.Build(s, report.Options{
			ObserverName: a.cfg.Observer.Name,
			Location:     a.loc,
			MaxStars:     opts.maxStars,
			Events:       a.mgr.RecentEvents(summaryEvents),
		})
		if err != nil {
			return err
		}
		if opts.json {
			return sum.WriteJSON(w)
		}
		sum.WriteText(w)
		return nil
	}

	if a.cfg.Schedule == "" {
		return once(at)
	}
	if opts.at != "" {
		return fmt.Errorf("--at and --schedule cannot be combined")
	}

	schedule, err := cron.ParseStandard(a.cfg.Schedule)
	if err != nil {
		return fmt.Errorf("parse schedule: %w", err)
	}

	// Clear between tables on a terminal; separate them otherwise.
	clearScreen := !opts.json && isTerminal(w)
	log := a.log.Named("cron")

	c := cron.New(cron.WithLocation(a.loc))
	c.Schedule(schedule, cron.FuncJob(func() {
		if clearScreen {
			fmt.Fprint(w, "\033[H\033[2J")
		} else if !opts.json {
			fmt.Fprintln(w)
		}
		if err := once(time.Now()); err != nil {
			log.Error("summary failed: %v", err)
		}
		log.Debug("next summary at %s", schedule.Next(time.Now()).Format(time.RFC3339))
	}))

	if err := once(time.Now()); err != nil {
		return err
	}
	log.Info("next summary at %s", schedule.Next(time.Now()).In(a.loc).Format(time.RFC3339))

	c.Start()
	<-ctx.Done()
	log.Debug("scheduler shutting down")
	<-c.Stop().Done()
	return nil
}

type closestOptions struct {
	x, y, max float64
	at        string
}

func newClosestCmd(a *app) *cobra.Command {
	var opts closestOptions
	cmd := &cobra.Command{
		Use:   "closest",
		Short: "Print the object nearest a point of the projection plane",
		Long: `Print the object whose projected position is nearest (x, y) on the
stereographic plane centred on the view direction, if one lies within --max.
The plane's unit is the radius of the image of the sphere's equator seen
from the centre; +x is increasing azimuth and +y is up.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runClosest(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().Float64Var(&opts.x, "x", 0, "plane x coordinate")
	cmd.Flags().Float64Var(&opts.y, "y", 0, "plane y coordinate")
	cmd.Flags().Float64Var(&opts.max, "max", 0.1, "maximum plane distance")
	cmd.Flags().StringVar(&opts.at, "at", "", "instant, RFC 3339 (default now)")
	return cmd
}

func (a *app) runClosest(w io.Writer, opts closestOptions) error {
	at, err := parseInstant(opts.at)
	if err != nil {
		return err
	}
	s, err := a.mgr.Rebuild(at)
	if err != nil {
		return fmt.Errorf("build sky: %w", err)
	}

	obj, ok, err := s.ObjectClosestToErr(r2.Vec{X: opts.x, Y: opts.y}, opts.max)
	if err != nil {
		return err
	}
	if !ok {
		report.WriteClosest(w, nil, opts.x, opts.y, opts.max)
		return nil
	}
	row := report.Row(s, obj)
	report.WriteClosest(w, &row, opts.x, opts.y, opts.max)
	return nil
}

// parseInstant parses an RFC 3339 time, or returns now for "".
func parseInstant(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse --at: %w", err)
	}
	return t, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
