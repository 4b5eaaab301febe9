package service

import (
	"strings"
	"time"

	"clinic-booking-service/internal/domain/entity"
)

// bookingWindowDays is how many calendar days ahead the widget offers.
const bookingWindowDays = 7

// SlotTime is one entry of the clinic's daily slot grid.
type SlotTime struct {
	Time  string
	Label string
}

// ClinicCalendar produces the bookable-date strip and holds the clinic's
// slot grid. Dates are regenerated fresh on every call; nothing is cached.
type ClinicCalendar struct {
	closedWeekday time.Weekday
	catalog       []SlotTime
}

// NewClinicCalendar builds a calendar with the default slot grid spanning
// the clinic's working hours.
func NewClinicCalendar(closedWeekday time.Weekday) *ClinicCalendar {
	times := []string{
		"09:00", "09:30", "10:00", "10:30",
		"12:00", "12:30",
		"13:30", "14:00", "15:00",
		"16:30", "17:00", "17:30",
	}

	catalog := make([]SlotTime, 0, len(times))
	for _, t := range times {
		catalog = append(catalog, SlotTime{Time: t, Label: SlotLabel(t)})
	}

	return &ClinicCalendar{
		closedWeekday: closedWeekday,
		catalog:       catalog,
	}
}

// SlotLabel converts a 24h HH:MM time into its 12h display label.
// Unparseable input is returned as-is.
func SlotLabel(hhmm string) string {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format("3:04 PM")
}

// AvailableDates returns the next 7 calendar days starting at ref inclusive,
// excluding the clinic's closed weekday. The result is ordered
// chronologically and holds either 6 or 7 entries.
func (c *ClinicCalendar) AvailableDates(ref time.Time) []entity.DateOption {
	dates := make([]entity.DateOption, 0, bookingWindowDays)

	for i := 0; i < bookingWindowDays; i++ {
		d := ref.AddDate(0, 0, i)
		if d.Weekday() == c.closedWeekday {
			continue
		}
		dates = append(dates, entity.DateOption{
			Date:    d.Format("2006-01-02"),
			Day:     d.Day(),
			DayName: strings.ToUpper(d.Format("Mon")),
			Month:   d.Format("Jan"),
			IsToday: i == 0,
		})
	}

	return dates
}

// Catalog returns the clinic's daily slot grid.
func (c *ClinicCalendar) Catalog() []SlotTime {
	return c.catalog
}

// ClosedWeekday returns the weekday the clinic takes no bookings.
func (c *ClinicCalendar) ClosedWeekday() time.Weekday {
	return c.closedWeekday
}
