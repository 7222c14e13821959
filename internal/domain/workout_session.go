// internal/domain/workout_session.go
package domain

import (
	"time"

	"alcyxob/gymflow/internal/schedule"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultRestSeconds is used for recorded sets that do not say otherwise.
const DefaultRestSeconds = 60

// CompletedSet is a single set the member actually performed.
type CompletedSet struct {
	Reps        int      `bson:"reps" json:"reps"`
	Weight      *float64 `bson:"weight,omitempty" json:"weight,omitempty"`
	Duration    *int     `bson:"duration,omitempty" json:"duration,omitempty"`
	RestSeconds int      `bson:"restSeconds" json:"restSeconds"`
	Completed   bool     `bson:"completed" json:"completed"`
}

// SessionExercise tracks one exercise during a session.
type SessionExercise struct {
	ExerciseID    primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	PlannedSets   int                `bson:"plannedSets" json:"plannedSets"`
	CompletedSets []CompletedSet     `bson:"completedSets" json:"completedSets"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Rating        *int               `bson:"rating,omitempty" json:"rating,omitempty"` // 1-5
}

// WorkoutSession is a single execution of a workout plan by a member.
type WorkoutSession struct {
	ID             primitive.ObjectID    `bson:"_id,omitempty" json:"id"`
	MemberID       primitive.ObjectID    `bson:"memberId" json:"memberId"`
	WorkoutPlanID  primitive.ObjectID    `bson:"workoutPlanId" json:"workoutPlanId"`
	GymID          primitive.ObjectID    `bson:"gymId" json:"gymId"`
	SessionDate    time.Time             `bson:"sessionDate" json:"sessionDate"`
	StartTime      *time.Time            `bson:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime        *time.Time            `bson:"endTime,omitempty" json:"endTime,omitempty"`
	State          schedule.SessionState `bson:"state" json:"state"`
	// Active mirrors State.IsActive() so a unique partial index can enforce
	// one active session per member. Kept in sync by SetState.
	Active         bool                  `bson:"active" json:"-"`
	Exercises      []SessionExercise     `bson:"exercises" json:"exercises"`
	OverallRating  *int                  `bson:"overallRating,omitempty" json:"overallRating,omitempty"`
	Notes          string                `bson:"notes,omitempty" json:"notes,omitempty"`
	CaloriesBurned *int                  `bson:"caloriesBurned,omitempty" json:"caloriesBurned,omitempty"`
	CreatedAt      time.Time             `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time             `bson:"updatedAt" json:"updatedAt"`
}

// Apply moves the session through the state machine, keeping Active in sync.
func (s *WorkoutSession) Apply(e schedule.SessionEvent) error {
	next, err := s.State.Apply(e)
	if err != nil {
		return err
	}
	s.SetState(next)
	return nil
}

func (s *WorkoutSession) SetState(st schedule.SessionState) {
	s.State = st
	s.Active = st.IsActive()
}

func (s *WorkoutSession) Record() schedule.SessionRecord {
	return schedule.SessionRecord{ID: idString(s.ID), OwnerID: s.MemberID.Hex(), State: s.State}
}

// Duration is the time between start and end, zero until both are set.
func (s *WorkoutSession) Duration() time.Duration {
	if s.StartTime == nil || s.EndTime == nil {
		return 0
	}
	return s.EndTime.Sub(*s.StartTime)
}

// CompletionPercentage is the share of exercises whose planned sets were all done.
func (s *WorkoutSession) CompletionPercentage() float64 {
	if len(s.Exercises) == 0 {
		return 0
	}
	done := 0
	for _, e := range s.Exercises {
		if len(e.CompletedSets) >= e.PlannedSets {
			done++
		}
	}
	return float64(done) / float64(len(s.Exercises)) * 100
}

func (s *WorkoutSession) TotalSetsCompleted() int {
	total := 0
	for _, e := range s.Exercises {
		total += len(e.CompletedSets)
	}
	return total
}

// AddSet appends a set to exerciseID, creating the exercise entry when it is
// not tracked yet.
func (s *WorkoutSession) AddSet(exerciseID primitive.ObjectID, set CompletedSet, notes string) {
	if set.RestSeconds == 0 {
		set.RestSeconds = DefaultRestSeconds
	}
	for i := range s.Exercises {
		if s.Exercises[i].ExerciseID == exerciseID {
			s.Exercises[i].CompletedSets = append(s.Exercises[i].CompletedSets, set)
			if notes != "" {
				s.Exercises[i].Notes = notes
			}
			return
		}
	}
	s.Exercises = append(s.Exercises, SessionExercise{
		ExerciseID:    exerciseID,
		CompletedSets: []CompletedSet{set},
		Notes:         notes,
	})
}

// SessionStatistics aggregates a member's completed sessions.
type SessionStatistics struct {
	TotalSessions         int           `json:"totalSessions"`
	CompletedSessions     int           `json:"completedSessions"`
	CancelledSessions     int           `json:"cancelledSessions"`
	TotalDuration         time.Duration `json:"totalDuration"`
	AverageDuration       time.Duration `json:"averageDuration"`
	TotalCaloriesBurned   int           `json:"totalCaloriesBurned"`
	AverageRating         float64       `json:"averageRating"`
	TotalSetsCompleted    int           `json:"totalSetsCompleted"`
	AverageCompletionRate float64       `json:"averageCompletionRate"`
}

// ComputeStatistics summarises sessions. Averages only consider completed sessions.
func ComputeStatistics(sessions []WorkoutSession) SessionStatistics {
	var st SessionStatistics
	st.TotalSessions = len(sessions)
	ratings, ratingSum := 0, 0
	completion := 0.0
	for i := range sessions {
		s := &sessions[i]
		switch s.State {
		case schedule.SessionCancelled:
			st.CancelledSessions++
			continue
		case schedule.SessionCompleted:
		default:
			continue
		}
		st.CompletedSessions++
		st.TotalDuration += s.Duration()
		st.TotalSetsCompleted += s.TotalSetsCompleted()
		completion += s.CompletionPercentage()
		if s.CaloriesBurned != nil {
			st.TotalCaloriesBurned += *s.CaloriesBurned
		}
		if s.OverallRating != nil {
			ratings++
			ratingSum += *s.OverallRating
		}
	}
	if st.CompletedSessions > 0 {
		st.AverageDuration = st.TotalDuration / time.Duration(st.CompletedSessions)
		st.AverageCompletionRate = completion / float64(st.CompletedSessions)
	}
	if ratings > 0 {
		st.AverageRating = float64(ratingSum) / float64(ratings)
	}
	return st
}
