package formdiff

import "github.com/venue-admin/internal/domain"

// Hours a disabled day shows when it is switched on in the form.
const (
	DefaultOpen  = "08:00"
	DefaultClose = "20:00"
)

// TimeSlot is one day row of the working-hours editor.
type TimeSlot struct {
	Enabled bool   `json:"enabled"`
	Open    string `json:"open" validate:"omitempty,hhmm"`
	Close   string `json:"close" validate:"omitempty,hhmm"`
}

// ToFormWorkingHours expands backend hours into one slot per known day.
func ToFormWorkingHours(wh domain.WorkingHours) map[string]TimeSlot {
	form := make(map[string]TimeSlot, len(domain.Days))
	for _, day := range domain.Days {
		if hours, ok := wh[day.Key]; ok {
			form[day.Key] = TimeSlot{Enabled: true, Open: hours.Open, Close: hours.Close}
			continue
		}
		form[day.Key] = TimeSlot{Enabled: false, Open: DefaultOpen, Close: DefaultClose}
	}
	return form
}

// ToAPIWorkingHours keeps enabled days that have both times set. Unknown
// keys are dropped. It returns nil when no day qualifies, which the backend
// stores as null.
func ToAPIWorkingHours(form map[string]TimeSlot) domain.WorkingHours {
	var wh domain.WorkingHours
	for _, day := range domain.Days {
		slot, ok := form[day.Key]
		if !ok || !slot.Enabled || slot.Open == "" || slot.Close == "" {
			continue
		}
		if wh == nil {
			wh = make(domain.WorkingHours)
		}
		wh[day.Key] = domain.DayHours{Open: slot.Open, Close: slot.Close}
	}
	return wh
}

// WorkingHoursEqual compares by content. An empty map equals nil.
func WorkingHoursEqual(a, b domain.WorkingHours) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || av != bv {
			return false
		}
	}
	return true
}
