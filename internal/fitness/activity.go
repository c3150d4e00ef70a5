// Package fitness models the running, cycling and swimming activity log.
package fitness

import (
	"fmt"
	"time"
)

// DateLayout is the input date format.
const DateLayout = "2006-01-02"

// summaryDateLayout renders dates as "12 Oct 2024".
const summaryDateLayout = "02 Jan 2006"

// LapLengthKm is the length of one pool lap.
const LapLengthKm = 0.05

// Kind tags an activity variant.
type Kind string

const (
	KindRunning  Kind = "Running"
	KindCycling  Kind = "Cycling"
	KindSwimming Kind = "Swimming"
)

// Activity is one logged workout. Every division by zero yields 0.
type Activity interface {
	Kind() Kind
	Date() time.Time
	Minutes() float64
	DistanceKm() float64
	SpeedKph() float64
	PaceMinPerKm() float64
}

type common struct {
	date    time.Time
	minutes float64
}

func (c common) Date() time.Time  { return c.date }
func (c common) Minutes() float64 { return c.minutes }

func speed(km, minutes float64) float64 {
	if minutes == 0 {
		return 0
	}
	return km / (minutes / 60)
}

func pace(km, minutes float64) float64 {
	if km == 0 {
		return 0
	}
	return minutes / km
}

// Running stores the distance covered.
type Running struct {
	common
	km float64
}

// NewRunning returns a run of km kilometers.
func NewRunning(date time.Time, minutes, km float64) *Running {
	return &Running{common: common{date, minutes}, km: km}
}

func (r *Running) Kind() Kind            { return KindRunning }
func (r *Running) DistanceKm() float64   { return r.km }
func (r *Running) SpeedKph() float64     { return speed(r.km, r.minutes) }
func (r *Running) PaceMinPerKm() float64 { return pace(r.km, r.minutes) }

// Cycling stores the average speed.
type Cycling struct {
	common
	kph float64
}

// NewCycling returns a ride at kph.
func NewCycling(date time.Time, minutes, kph float64) *Cycling {
	return &Cycling{common: common{date, minutes}, kph: kph}
}

func (c *Cycling) Kind() Kind            { return KindCycling }
func (c *Cycling) DistanceKm() float64   { return c.kph * c.minutes / 60 }
func (c *Cycling) SpeedKph() float64     { return c.kph }
func (c *Cycling) PaceMinPerKm() float64 { return pace(c.DistanceKm(), c.minutes) }

// Swimming stores the number of laps.
type Swimming struct {
	common
	laps int
}

// NewSwimming returns a swim of laps pool lengths.
func NewSwimming(date time.Time, minutes float64, laps int) *Swimming {
	return &Swimming{common: common{date, minutes}, laps: laps}
}

func (s *Swimming) Kind() Kind            { return KindSwimming }
func (s *Swimming) Laps() int             { return s.laps }
func (s *Swimming) DistanceKm() float64   { return float64(s.laps) * LapLengthKm }
func (s *Swimming) SpeedKph() float64     { return speed(s.DistanceKm(), s.minutes) }
func (s *Swimming) PaceMinPerKm() float64 { return pace(s.DistanceKm(), s.minutes) }

// Summary renders one log line.
func Summary(a Activity) string {
	return fmt.Sprintf("%s %s (%.0f min): Distance %.1f km, Speed: %.1f kph, Pace: %.1f min per km",
		a.Date().Format(summaryDateLayout), a.Kind(), a.Minutes(),
		a.DistanceKm(), a.SpeedKph(), a.PaceMinPerKm())
}

// ParseDate parses YYYY-MM-DD, falling back to today with an error
// describing the bad input.
func ParseDate(s string, today time.Time) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return today, fmt.Errorf("invalid date format provided: %s. Expected YYYY-MM-DD", s)
	}
	return d, nil
}
