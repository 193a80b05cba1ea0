package records

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	MinBodyWeight = 1
	MaxBodyWeight = 1500
	MinReps       = 1
	MaxReps       = 1000
	MinSetWeight  = 0.1
	MaxSetWeight  = 1000
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ValidationErrors []*ValidationError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

func validationErr(field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

func ValidateDate(field, date string) *ValidationError {
	if date == "" {
		return validationErr(field, "date is required")
	}
	if !calendarDateRegex.MatchString(date) {
		return validationErr(field, "date must be in YYYY-MM-DD format")
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return validationErr(field, "date %s does not exist", date)
	}
	return nil
}

func ValidateWeightLog(entry WeightLogEntry) error {
	var errs ValidationErrors

	weight, ok := entry.Weight.FloatOK()
	if !ok || weight < MinBodyWeight || weight > MaxBodyWeight || math.IsNaN(weight) {
		errs = append(errs, validationErr("weight", "weight must be between %d and %d", MinBodyWeight, MaxBodyWeight))
	} else if !hasMaxDecimals(weight, 2) {
		errs = append(errs, validationErr("weight", "weight can have at most 2 decimal places"))
	}

	if entry.Date.IsTimestamp() {
		errs = append(errs, validationErr("date", "date must be in YYYY-MM-DD format"))
	} else if err := ValidateDate("date", entry.Date.Text()); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateWorkout checks a workout submitted for logging or editing.
// A blank set weight is accepted and stored as the bodyweight marker.
func ValidateWorkout(w WorkoutRecord) error {
	var errs ValidationErrors

	if w.Date.IsTimestamp() {
		// legacy records are edited with their stored date
		if !Normalize(w.Date, time.UTC).Valid {
			errs = append(errs, validationErr("date", "invalid date"))
		}
	} else if err := ValidateDate("date", w.Date.Text()); err != nil {
		errs = append(errs, err)
	}

	if len(w.Exercises) == 0 {
		errs = append(errs, validationErr("exercises", "at least one exercise is required"))
	}

	for i, e := range w.Exercises {
		field := fmt.Sprintf("exercises[%d]", i)
		if strings.TrimSpace(e.Name) == "" {
			errs = append(errs, validationErr(field+".name", "exercise name is required"))
		}
		if len(e.Sets) == 0 {
			errs = append(errs, validationErr(field+".sets", "at least one set is required"))
		}

		for j, s := range e.Sets {
			setField := fmt.Sprintf("%s.sets[%d]", field, j)
			if err := validateReps(setField+".reps", s.Reps); err != nil {
				errs = append(errs, err)
			}
			if err := validateSetWeight(setField+".weight", s.Weight); err != nil {
				errs = append(errs, err)
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateReps(field string, reps Value) *ValidationError {
	if reps.IsBlank() {
		return validationErr(field, "reps are required")
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(reps.String()), 64)
	if err != nil {
		return validationErr(field, "reps must be a number")
	}
	if f != math.Trunc(f) {
		return validationErr(field, "reps must be a whole number")
	}
	if f < MinReps || f > MaxReps {
		return validationErr(field, "reps must be between %d and %d", MinReps, MaxReps)
	}
	return nil
}

func validateSetWeight(field string, weight Value) *ValidationError {
	if weight.IsBodyweight() || weight.IsBlank() {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(weight.String()), 64)
	if err != nil {
		return validationErr(field, "weight must be a number or %q", BodyweightMarker)
	}
	if f < MinSetWeight || f > MaxSetWeight {
		return validationErr(field, "weight must be between %.1f and %d", MinSetWeight, MaxSetWeight)
	}
	if !hasMaxDecimals(f, 1) {
		return validationErr(field, "weight can have at most 1 decimal place")
	}
	return nil
}

func hasMaxDecimals(f float64, decimals int) bool {
	scaled := f * math.Pow10(decimals)
	return math.Abs(scaled-math.Round(scaled)) < 1e-6
}
