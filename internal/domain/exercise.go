// internal/domain/exercise.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Difficulty values shared by exercises and workout plans.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// IsValidDifficulty reports whether d is one of the known difficulty values.
func IsValidDifficulty(d string) bool {
	return d == DifficultyBeginner || d == DifficultyIntermediate || d == DifficultyAdvanced
}

// Exercise represents a single exercise definition in the library.
type Exercise struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Category     string             `bson:"category" json:"category"`         // cardio, strength, flexibility, sports
	MuscleGroups []string           `bson:"muscleGroups" json:"muscleGroups"` // e.g. chest, back, legs
	Equipment    []string           `bson:"equipment" json:"equipment"`       // e.g. barbell, bodyweight
	Difficulty   string             `bson:"difficulty" json:"difficulty"`
	Instructions []string           `bson:"instructions" json:"instructions"`
	Tips         []string           `bson:"tips,omitempty" json:"tips,omitempty"`
	Warnings     []string           `bson:"warnings,omitempty" json:"warnings,omitempty"`
	ImageURL     string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	VideoURL     string             `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`

	EstimatedCaloriesPerMinute *float64 `bson:"estimatedCaloriesPerMinute,omitempty" json:"estimatedCaloriesPerMinute,omitempty"`

	CreatedBy *primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"` // Trainer who added it, nil for built-ins
	IsActive  bool                `bson:"isActive" json:"isActive"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// IsBodyweight reports whether the exercise needs no equipment besides the body.
func (e *Exercise) IsBodyweight() bool {
	if len(e.Equipment) == 0 {
		return true
	}
	for _, eq := range e.Equipment {
		if eq != "bodyweight" {
			return false
		}
	}
	return true
}

// DifficultyLevel maps the difficulty to 1..3. Unknown values count as 1.
func (e *Exercise) DifficultyLevel() int {
	switch e.Difficulty {
	case DifficultyIntermediate:
		return 2
	case DifficultyAdvanced:
		return 3
	}
	return 1
}

func (e *Exercise) TargetsMuscle(group string) bool {
	for _, g := range e.MuscleGroups {
		if g == group {
			return true
		}
	}
	return false
}

// ExerciseFilter narrows exercise listings. Zero values are ignored.
type ExerciseFilter struct {
	Category    string
	MuscleGroup string
	Difficulty  string
	Equipment   string
	NameQuery   string
	CreatedBy   *primitive.ObjectID
	ActiveOnly  bool
}
