package mongo

import (
	"testing"

	"alcyxob/gymflow/internal/domain"
	"alcyxob/gymflow/internal/schedule"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSessionUpdateMatchesPriorState(t *testing.T) {
	session := &domain.WorkoutSession{ID: primitive.NewObjectID()}
	session.SetState(schedule.SessionInProgress)
	if err := session.Apply(schedule.EventComplete); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	filter, update := sessionUpdate(session, schedule.SessionInProgress)
	if filter["_id"] != session.ID {
		t.Errorf("filter _id = %v, want %v", filter["_id"], session.ID)
	}
	if filter["state"] != schedule.SessionInProgress {
		t.Errorf("filter state = %v, want %s", filter["state"], schedule.SessionInProgress)
	}

	set := update["$set"].(bson.M)
	if set["state"] != schedule.SessionCompleted || set["active"] != false {
		t.Errorf("$set state=%v active=%v, want completed and inactive", set["state"], set["active"])
	}
}
