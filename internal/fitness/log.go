package fitness

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"coursework/internal/logging"
	"coursework/internal/validate"
)

// Record is the raw form of one activity in a YAML log file.
type Record struct {
	Kind       string  `yaml:"kind" validate:"oneof=running cycling swimming"`
	Date       string  `yaml:"date"`
	Minutes    float64 `yaml:"minutes" validate:"min=0"`
	DistanceKm float64 `yaml:"distance_km,omitempty" validate:"min=0"`
	SpeedKph   float64 `yaml:"speed_kph,omitempty" validate:"min=0"`
	Laps       int     `yaml:"laps,omitempty" validate:"min=0"`
}

// LogFile is the YAML document read by --file.
type LogFile struct {
	Activities []Record `yaml:"activities"`
}

// Build turns a record into an activity. A bad date still builds, dated
// today, and is reported through warn.
func Build(rec Record, today time.Time) (a Activity, warn error, err error) {
	rec.Kind = strings.ToLower(strings.TrimSpace(rec.Kind))
	if err := validate.Struct(rec); err != nil {
		return nil, nil, err
	}
	date, warn := ParseDate(rec.Date, today)
	switch rec.Kind {
	case "running":
		a = NewRunning(date, rec.Minutes, rec.DistanceKm)
	case "cycling":
		a = NewCycling(date, rec.Minutes, rec.SpeedKph)
	default:
		a = NewSwimming(date, rec.Minutes, rec.Laps)
	}
	return a, warn, nil
}

// Decode reads a YAML log. Invalid records are skipped; both skips and date
// fallbacks are returned as diagnostics.
func Decode(r io.Reader, today time.Time) ([]Activity, []string, error) {
	var lf LogFile
	if err := yaml.NewDecoder(r).Decode(&lf); err != nil && err != io.EOF {
		return nil, nil, fmt.Errorf("parse fitness log: %w", err)
	}

	var (
		out   []Activity
		diags []string
	)
	for i, rec := range lf.Activities {
		a, warn, err := Build(rec, today)
		if err != nil {
			diags = append(diags, fmt.Sprintf("Skipping activity %d: %v", i+1, err))
			continue
		}
		if warn != nil {
			diags = append(diags, fmt.Sprintf("Activity %d: %v", i+1, warn))
		}
		out = append(out, a)
	}
	logging.Fitness("Decoded %d activities, %d diagnostics", len(out), len(diags))
	return out, diags, nil
}

// LoadFile reads the YAML log at path.
func LoadFile(path string, today time.Time) ([]Activity, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open fitness log: %w", err)
	}
	defer f.Close()
	return Decode(f, today)
}

// DemoRecords is the built-in sample log.
var DemoRecords = []Record{
	{Kind: "running", Date: "2024-10-12", Minutes: 40, DistanceKm: 5.0},
	{Kind: "cycling", Date: "2024-10-13", Minutes: 60, SpeedKph: 20},
	{Kind: "swimming", Date: "2024-10-14", Minutes: 30, Laps: 40},
	{Kind: "running", Date: "2024-10-15", Minutes: 25, DistanceKm: 3.5},
	{Kind: "running", Date: "2024-10-16", Minutes: 0, DistanceKm: 2.0},
}

// Demo builds DemoRecords.
func Demo(today time.Time) []Activity {
	out := make([]Activity, 0, len(DemoRecords))
	for _, rec := range DemoRecords {
		a, _, err := Build(rec, today)
		if err == nil {
			out = append(out, a)
		}
	}
	return out
}
