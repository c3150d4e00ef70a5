// Package grades converts a percentage into a letter grade.
package grades

// PassingPercent is the lowest passing percentage.
const PassingPercent = 70

// Grade is a letter plus an optional sign ("+", "-" or "").
type Grade struct {
	Letter string
	Sign   string
}

func (g Grade) String() string {
	return g.Letter + g.Sign
}

// Letter maps percent to its grade.
//
// Thresholds: >=90 A, >=80 B, >=70 C, >=60 D, else F. The last digit adds
// "+" at 7 or above and "-" below 3. There is no A+, and F is never signed.
func Letter(percent int) Grade {
	var letter string
	switch {
	case percent >= 90:
		letter = "A"
	case percent >= 80:
		letter = "B"
	case percent >= 70:
		letter = "C"
	case percent >= 60:
		letter = "D"
	default:
		return Grade{Letter: "F"}
	}

	// 100 and above have no meaningful last digit.
	if percent >= 100 {
		return Grade{Letter: letter}
	}

	var sign string
	switch digit := percent % 10; {
	case digit >= 7:
		sign = "+"
	case digit < 3:
		sign = "-"
	}
	if letter == "A" && sign == "+" {
		sign = ""
	}
	return Grade{Letter: letter, Sign: sign}
}

// Passed reports whether percent is a passing score.
func Passed(percent int) bool {
	return percent >= PassingPercent
}
