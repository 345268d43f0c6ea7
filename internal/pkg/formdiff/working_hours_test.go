package formdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/venue-admin/internal/domain"
)

func TestToFormWorkingHours(t *testing.T) {
	form := ToFormWorkingHours(domain.WorkingHours{
		domain.DayMonday: {Open: "09:00", Close: "18:00"},
	})

	assert.Len(t, form, len(domain.Days))
	assert.Equal(t, TimeSlot{Enabled: true, Open: "09:00", Close: "18:00"}, form[domain.DayMonday])
	assert.Equal(t, TimeSlot{Enabled: false, Open: DefaultOpen, Close: DefaultClose}, form[domain.DaySunday])
	assert.False(t, form[domain.DayDefault].Enabled)
}

func TestWorkingHours_RoundTrip(t *testing.T) {
	cases := map[string]domain.WorkingHours{
		"all disabled": nil,
		"one day": {
			domain.DayMonday: {Open: "08:00", Close: "22:00"},
		},
		"weekend and default": {
			domain.DaySaturday: {Open: "10:00", Close: "16:00"},
			domain.DaySunday:   {Open: "10:00", Close: "14:00"},
			domain.DayDefault:  {Open: "07:00", Close: "23:00"},
		},
		"every day": func() domain.WorkingHours {
			wh := domain.WorkingHours{}
			for _, d := range domain.Days {
				wh[d.Key] = domain.DayHours{Open: "06:00", Close: "23:30"}
			}
			return wh
		}(),
	}

	for name, original := range cases {
		t.Run(name, func(t *testing.T) {
			back := ToAPIWorkingHours(ToFormWorkingHours(original))
			assert.True(t, WorkingHoursEqual(original, back))
			if original == nil {
				assert.Nil(t, back)
			}
		})
	}
}

func TestToAPIWorkingHours_AllDisabledIsNull(t *testing.T) {
	form := ToFormWorkingHours(domain.WorkingHours{
		domain.DayMonday: {Open: "09:00", Close: "18:00"},
	})
	slot := form[domain.DayMonday]
	slot.Enabled = false
	form[domain.DayMonday] = slot

	assert.Nil(t, ToAPIWorkingHours(form))
}

func TestToAPIWorkingHours_DropsIncompleteAndUnknown(t *testing.T) {
	wh := ToAPIWorkingHours(map[string]TimeSlot{
		domain.DayMonday:  {Enabled: true, Open: "09:00", Close: ""},
		domain.DayTuesday: {Enabled: true, Open: "09:00", Close: "17:00"},
		"holiday":         {Enabled: true, Open: "10:00", Close: "12:00"},
	})

	assert.Equal(t, domain.WorkingHours{domain.DayTuesday: {Open: "09:00", Close: "17:00"}}, wh)
}

func TestWorkingHoursEqual(t *testing.T) {
	assert.True(t, WorkingHoursEqual(nil, domain.WorkingHours{}))
	assert.False(t, WorkingHoursEqual(nil, domain.WorkingHours{"1": {Open: "08:00", Close: "09:00"}}))
	assert.False(t, WorkingHoursEqual(
		domain.WorkingHours{"1": {Open: "08:00", Close: "09:00"}},
		domain.WorkingHours{"1": {Open: "08:00", Close: "10:00"}},
	))
}
