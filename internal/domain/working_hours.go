package domain

// Day keys used by the backend. Weekdays follow time.Weekday numbering
// (Sunday is "0"); "default" applies to days without their own entry.
const (
	DaySunday    = "0"
	DayMonday    = "1"
	DayTuesday   = "2"
	DayWednesday = "3"
	DayThursday  = "4"
	DayFriday    = "5"
	DaySaturday  = "6"
	DayDefault   = "default"
)

// Day is a working-hours key with its display label.
type Day struct {
	Key   string
	Label string
}

// Days in the order the edit form shows them.
var Days = []Day{
	{Key: DayMonday, Label: "Monday"},
	{Key: DayTuesday, Label: "Tuesday"},
	{Key: DayWednesday, Label: "Wednesday"},
	{Key: DayThursday, Label: "Thursday"},
	{Key: DayFriday, Label: "Friday"},
	{Key: DaySaturday, Label: "Saturday"},
	{Key: DaySunday, Label: "Sunday"},
	{Key: DayDefault, Label: "Default (fallback)"},
}

// DayHours - часы работы в формате HH:MM
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// WorkingHours maps a day key to its hours. Absent keys are closed days.
// A nil map serialises as JSON null.
type WorkingHours map[string]DayHours
