// internal/domain/workout_plan.go
package domain

import (
	"time"

	"alcyxob/gymflow/internal/schedule"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanExercise is one exercise prescription inside a workout plan.
type PlanExercise struct {
	ExerciseID  primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	Sets        int                `bson:"sets" json:"sets"`
	Reps        int                `bson:"reps" json:"reps"`
	Weight      *float64           `bson:"weight,omitempty" json:"weight,omitempty"`     // kg
	Duration    *int               `bson:"duration,omitempty" json:"duration,omitempty"` // seconds, for timed exercises
	RestSeconds int                `bson:"restSeconds" json:"restSeconds"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Order       int                `bson:"order" json:"order"`
}

// PlanSchedule describes how often the plan is meant to be trained.
type PlanSchedule struct {
	DaysPerWeek      int      `bson:"daysPerWeek" json:"daysPerWeek"`
	PreferredDays    []string `bson:"preferredDays" json:"preferredDays"` // monday..sunday
	EstimatedMinutes int      `bson:"estimatedMinutes" json:"estimatedMinutes"`
}

// WorkoutPlan is a structured plan a trainer prepares for a member.
// StartDate/EndDate are fixed at creation.
type WorkoutPlan struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MemberID      primitive.ObjectID `bson:"memberId" json:"memberId"`   // Who the plan is for
	TrainerID     primitive.ObjectID `bson:"trainerId" json:"trainerId"` // Who created the plan
	GymID         primitive.ObjectID `bson:"gymId" json:"gymId"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Goal          string             `bson:"goal" json:"goal"` // weight_loss, muscle_gain, endurance, strength
	DurationWeeks int                `bson:"durationWeeks" json:"durationWeeks"`
	Difficulty    string             `bson:"difficulty" json:"difficulty"`
	Exercises     []PlanExercise     `bson:"exercises" json:"exercises"`
	Schedule      PlanSchedule       `bson:"schedule" json:"schedule"`
	StartDate     time.Time          `bson:"startDate" json:"startDate"`
	EndDate       time.Time          `bson:"endDate" json:"endDate"`
	IsActive      bool               `bson:"isActive" json:"isActive"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (p *WorkoutPlan) DateRange() schedule.DateRange {
	return schedule.DateRange{Start: p.StartDate, End: p.EndDate}
}

// IsExpired reports whether the plan's end date is before now.
func (p *WorkoutPlan) IsExpired(now time.Time) bool {
	return p.DateRange().Ended(now)
}

// PlanRecord is the snapshot the conflict policy works on.
func (p *WorkoutPlan) PlanRecord() schedule.PlanRecord {
	return schedule.PlanRecord{
		ID:      idString(p.ID),
		OwnerID: p.MemberID.Hex(),
		Range:   p.DateRange(),
		Active:  p.IsActive,
	}
}

// HasExercise reports whether exerciseID is already part of the plan.
func (p *WorkoutPlan) HasExercise(exerciseID primitive.ObjectID) bool {
	for _, e := range p.Exercises {
		if e.ExerciseID == exerciseID {
			return true
		}
	}
	return false
}

func idString(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return id.Hex()
}
