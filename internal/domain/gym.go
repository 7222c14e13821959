// internal/domain/gym.go
package domain

import (
	"fmt"
	"time"

	"alcyxob/gymflow/internal/schedule"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is the postal address of a gym.
type Address struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	ZipCode string `bson:"zipCode" json:"zipCode"`
	Country string `bson:"country" json:"country"`
}

// DaySchedule is one day of operating hours. Open and Close are "HH:MM" strings.
type DaySchedule struct {
	Open     string `bson:"open" json:"open"`
	Close    string `bson:"close" json:"close"`
	IsClosed bool   `bson:"isClosed" json:"isClosed"`
}

// OperatingHours holds the weekly opening hours of a gym.
type OperatingHours struct {
	Monday    DaySchedule `bson:"monday" json:"monday"`
	Tuesday   DaySchedule `bson:"tuesday" json:"tuesday"`
	Wednesday DaySchedule `bson:"wednesday" json:"wednesday"`
	Thursday  DaySchedule `bson:"thursday" json:"thursday"`
	Friday    DaySchedule `bson:"friday" json:"friday"`
	Saturday  DaySchedule `bson:"saturday" json:"saturday"`
	Sunday    DaySchedule `bson:"sunday" json:"sunday"`
}

// Days returns the schedules in Monday..Sunday order.
func (h OperatingHours) Days() [schedule.DaysInWeek]DaySchedule {
	return [schedule.DaysInWeek]DaySchedule{h.Monday, h.Tuesday, h.Wednesday, h.Thursday, h.Friday, h.Saturday, h.Sunday}
}

// Weekly converts the stored strings into schedule.WeeklyHours.
// Closed days are not required to carry valid times.
func (h OperatingHours) Weekly() (schedule.WeeklyHours, error) {
	var w schedule.WeeklyHours
	for i, d := range h.Days() {
		day := schedule.Weekday(i)
		if d.IsClosed {
			w[day] = schedule.ClosedDay
			continue
		}
		r, err := schedule.ParseTimeRange(d.Open, d.Close)
		if err != nil {
			return schedule.WeeklyHours{}, fmt.Errorf("%s: %w", day, err)
		}
		w[day] = schedule.DayHours{Open: r.Start, Close: r.End}
	}
	return w, nil
}

// Gym represents a gym location.
type Gym struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Address        Address            `bson:"address" json:"address"`
	Phone          string             `bson:"phone" json:"phone"`
	Email          string             `bson:"email" json:"email"`
	OperatingHours OperatingHours     `bson:"operatingHours" json:"operatingHours"`
	Facilities     []string           `bson:"facilities" json:"facilities"` // e.g. "pool", "sauna"
	MaxCapacity    int                `bson:"maxCapacity" json:"maxCapacity"`
	IsActive       bool               `bson:"isActive" json:"isActive"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsWithinCapacity reports whether one more visitor fits when current are inside.
func (g *Gym) IsWithinCapacity(current int) bool {
	return current < g.MaxCapacity
}

func (g *Gym) HasFacility(name string) bool {
	for _, f := range g.Facilities {
		if f == name {
			return true
		}
	}
	return false
}
