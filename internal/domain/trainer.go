// internal/domain/trainer.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"alcyxob/gymflow/internal/schedule"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Experience levels derived from years of experience.
const (
	ExperienceJunior = "junior"
	ExperienceMid    = "mid"
	ExperienceSenior = "senior"
)

// Certification is a qualification held by a trainer.
type Certification struct {
	Name           string     `bson:"name" json:"name"`
	Institution    string     `bson:"institution" json:"institution"`
	DateObtained   time.Time  `bson:"dateObtained" json:"dateObtained"`
	ExpirationDate *time.Time `bson:"expirationDate,omitempty" json:"expirationDate,omitempty"`
	DocumentKey    string     `bson:"documentKey,omitempty" json:"-"` // S3 object key of the scanned certificate
}

// IsValid reports whether the certification has not expired at now.
func (c Certification) IsValid(now time.Time) bool {
	return c.ExpirationDate == nil || c.ExpirationDate.After(now)
}

// AvailabilitySlot is a single "HH:MM"-"HH:MM" window.
type AvailabilitySlot struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// Availability lists the weekly slots a trainer can be booked in.
type Availability struct {
	Monday    []AvailabilitySlot `bson:"monday" json:"monday"`
	Tuesday   []AvailabilitySlot `bson:"tuesday" json:"tuesday"`
	Wednesday []AvailabilitySlot `bson:"wednesday" json:"wednesday"`
	Thursday  []AvailabilitySlot `bson:"thursday" json:"thursday"`
	Friday    []AvailabilitySlot `bson:"friday" json:"friday"`
	Saturday  []AvailabilitySlot `bson:"saturday" json:"saturday"`
	Sunday    []AvailabilitySlot `bson:"sunday" json:"sunday"`
}

func (a *Availability) day(d schedule.Weekday) *[]AvailabilitySlot {
	switch d {
	case schedule.Monday:
		return &a.Monday
	case schedule.Tuesday:
		return &a.Tuesday
	case schedule.Wednesday:
		return &a.Wednesday
	case schedule.Thursday:
		return &a.Thursday
	case schedule.Friday:
		return &a.Friday
	case schedule.Saturday:
		return &a.Saturday
	case schedule.Sunday:
		return &a.Sunday
	}
	return nil
}

// Day returns the slots stored for d.
func (a Availability) Day(d schedule.Weekday) []AvailabilitySlot {
	if p := a.day(d); p != nil {
		return *p
	}
	return nil
}

// WithDay returns a copy of a with d's slots replaced.
func (a Availability) WithDay(d schedule.Weekday, slots []AvailabilitySlot) (Availability, error) {
	p := a.day(d)
	if p == nil {
		return a, fmt.Errorf("%w: unknown day of week %d", schedule.ErrInvalidArgument, int(d))
	}
	*p = append([]AvailabilitySlot(nil), slots...)
	return a, nil
}

// Weekly parses every slot into a schedule.WeeklyAvailability.
func (a Availability) Weekly() (schedule.WeeklyAvailability, error) {
	var w schedule.WeeklyAvailability
	for _, d := range schedule.Weekdays() {
		stored := a.Day(d)
		ranges := make([]schedule.TimeRange, 0, len(stored))
		for _, slot := range stored {
			r, err := schedule.ParseTimeRange(slot.Start, slot.End)
			if err != nil {
				return schedule.WeeklyAvailability{}, fmt.Errorf("%s: %w", d, err)
			}
			ranges = append(ranges, r)
		}
		w[d] = ranges
	}
	return w, nil
}

// Trainer represents a personal trainer working at a gym.
type Trainer struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GymID           primitive.ObjectID `bson:"gymId" json:"gymId"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"` // Should be unique
	Phone           string             `bson:"phone" json:"phone"`
	Certifications  []Certification    `bson:"certifications" json:"certifications"`
	Specialties     []string           `bson:"specialties" json:"specialties"` // e.g. "weight_training", "yoga"
	ExperienceYears int                `bson:"experienceYears" json:"experienceYears"`
	Bio             string             `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfileImageKey string             `bson:"profileImageKey,omitempty" json:"-"`
	HourlyRate      decimal.Decimal    `bson:"hourlyRate" json:"hourlyRate"`
	Availability    Availability       `bson:"availability" json:"availability"`
	IsActive        bool               `bson:"isActive" json:"isActive"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (t *Trainer) HasSpecialty(specialty string) bool {
	for _, s := range t.Specialties {
		if strings.EqualFold(s, specialty) {
			return true
		}
	}
	return false
}

// ValidCertifications returns the certifications that have not expired at now.
func (t *Trainer) ValidCertifications(now time.Time) []Certification {
	valid := make([]Certification, 0, len(t.Certifications))
	for _, c := range t.Certifications {
		if c.IsValid(now) {
			valid = append(valid, c)
		}
	}
	return valid
}

func (t *Trainer) ExperienceLevel() string {
	switch {
	case t.ExperienceYears < 2:
		return ExperienceJunior
	case t.ExperienceYears < 5:
		return ExperienceMid
	}
	return ExperienceSenior
}
