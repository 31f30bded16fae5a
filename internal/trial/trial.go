// Package trial runs randomized end-to-end checks of the scan buffer and
// reports each step on a writer.
package trial

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"lidar-radar.klederson.com/internal/lidar"
	"lidar-radar.klederson.com/internal/sensor"
)

// Parameter ranges for a single trial. Upper bounds are exclusive.
const (
	MinResolution = 10.0
	MaxResolution = 30.0
	MinScans      = 1
	MaxScans      = 20
	MaxProbeAngle = 5.0
)

// Summary is the outcome of a run.
type Summary struct {
	Trials int
	Errors int
}

// Params describes one trial.
type Params struct {
	Resolution float64
	Readings   int
	Scans      int
	Angle      float64
}

// Runner executes trials against fresh buffers.
type Runner struct {
	gen      *sensor.Generator
	out      io.Writer
	log      zerolog.Logger
	capacity int
}

// NewRunner creates a runner writing its report to out.
func NewRunner(seed int64, capacity int, out io.Writer, log zerolog.Logger) *Runner {
	return &Runner{
		gen:      sensor.NewGenerator(seed),
		out:      out,
		log:      log,
		capacity: capacity,
	}
}

// Run executes count trials. A failing trial is counted and the run goes
// on; only context cancellation stops it early.
func (r *Runner) Run(ctx context.Context, count int) (Summary, error) {
	var sum Summary
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		p := r.NextParams()
		sum.Trials++
		if err := r.Trial(p); err != nil {
			sum.Errors++
			r.log.Error().Err(err).Int("trial", i).Float64("resolution", p.Resolution).Msg("trial failed")
		}
		fmt.Fprint(r.out, "\n\n")
	}
	fmt.Fprintf(r.out, "Execution terminated with %d errors\n", sum.Errors)
	return sum, nil
}

// NextParams draws the parameters of the next trial.
func (r *Runner) NextParams() Params {
	res := r.gen.Float(MinResolution, MaxResolution)
	return Params{
		Resolution: res,
		Readings:   r.gen.Int(1, lidar.ReadingsFor(res)),
		Scans:      r.gen.Int(MinScans, MaxScans),
		Angle:      r.gen.Float(0, MaxProbeAngle),
	}
}

// Trial runs push, pop, distance, render and clear against a new buffer.
func (r *Runner) Trial(p Params) error {
	fmt.Fprintf(r.out, "Resolution: %s\n", lidar.FormatReading(p.Resolution))
	fmt.Fprintf(r.out, "Expected reading count: %d\n", lidar.ReadingsFor(p.Resolution))
	fmt.Fprintf(r.out, "Actual reading count: %d\n", p.Readings)
	fmt.Fprintf(r.out, "Scan count: %d\n", p.Scans)

	buf, err := lidar.NewScanBuffer(p.Resolution, r.capacity)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "Generating %d scans and inserting them...\n", p.Scans)
	for i := 0; i < p.Scans; i++ {
		buf.Push(r.gen.Readings(p.Readings, 0, 1))
		fmt.Fprintf(r.out, "Inserted scan #%d with %d readings\n", i, p.Readings)
	}
	fmt.Fprintln(r.out, "Scans generated and inserted!")

	fmt.Fprintln(r.out, "Printing the first scan content...")
	oldest, err := buf.PopOldest()
	if err != nil {
		return fmt.Errorf("pop oldest: %w", err)
	}
	fmt.Fprintln(r.out, oldest.String())
	buf.Push(oldest)
	fmt.Fprintln(r.out, "Finished printing!")

	fmt.Fprintln(r.out, "Printing the distance at a random angle...")
	d, err := buf.DistanceAt(p.Angle)
	if err != nil {
		return fmt.Errorf("distance at %v: %w", p.Angle, err)
	}
	fmt.Fprintf(r.out, "Angle: %s, Distance: %s\n", lidar.FormatReading(p.Angle), lidar.FormatReading(d))
	fmt.Fprintln(r.out, "Finished printing!")

	fmt.Fprintln(r.out, "Printing the latest scan...")
	text, err := buf.RenderLatest()
	if err != nil {
		return fmt.Errorf("render latest: %w", err)
	}
	fmt.Fprintln(r.out, text)
	fmt.Fprintln(r.out, "Finished printing!")

	fmt.Fprintln(r.out, "Clearing the buffer...")
	buf.Clear()
	if !buf.IsEmpty() {
		return fmt.Errorf("buffer not empty after clear: %d scans left", buf.Len())
	}
	fmt.Fprintln(r.out, "Buffer cleared!")
	return nil
}
