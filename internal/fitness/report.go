package fitness

import (
	"fmt"
	"io"
	"strings"
)

var rule = strings.Repeat("-", 113)

// WriteReport prints the tracking log, one summary per activity.
func WriteReport(w io.Writer, activities []Activity) {
	fmt.Fprintln(w, "--- Fitness Activity Tracker ---")
	fmt.Fprintln(w, "Units: Kilometers (km) | Time: Minutes (min) / Hours (h)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tracking Log:")
	fmt.Fprintln(w, rule)
	if len(activities) == 0 {
		fmt.Fprintln(w, "No activities logged.")
	}
	for _, a := range activities {
		fmt.Fprintln(w, Summary(a))
	}
	fmt.Fprintln(w, rule)
}

// WriteCalculations prints individual figures for the first activity of each
// kind and the first zero-duration activity, when present.
func WriteCalculations(w io.Writer, activities []Activity) {
	first := func(match func(Activity) bool) Activity {
		for _, a := range activities {
			if match(a) {
				return a
			}
		}
		return nil
	}
	ofKind := func(k Kind) func(Activity) bool {
		return func(a Activity) bool { return a.Kind() == k }
	}

	fmt.Fprintln(w, "\nIndividual Calculations:")
	if a := first(ofKind(KindRunning)); a != nil {
		fmt.Fprintf(w, "Running Speed (Calculated):   %.2f kph\n", a.SpeedKph())
	}
	if a := first(ofKind(KindCycling)); a != nil {
		fmt.Fprintf(w, "Cycling Distance (Calculated): %.2f km\n", a.DistanceKm())
	}
	if a := first(ofKind(KindSwimming)); a != nil {
		fmt.Fprintf(w, "Swimming Pace (Calculated):   %.2f min/km\n", a.PaceMinPerKm())
	}
	if a := first(func(a Activity) bool { return a.Minutes() == 0 }); a != nil {
		fmt.Fprintf(w, "Zero Duration Speed:          %.2f kph\n", a.SpeedKph())
	}
	fmt.Fprintln(w, rule)
}
