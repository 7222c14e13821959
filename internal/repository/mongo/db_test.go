package mongo

import (
	"errors"
	"testing"

	"alcyxob/gymflow/internal/domain"
	"alcyxob/gymflow/internal/repository"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestDecimalCodecRoundTrip(t *testing.T) {
	reg := NewRegistry()

	in := domain.Trainer{Name: "Ana", HourlyRate: decimal.RequireFromString("45.50")}
	raw, err := bson.MarshalWithRegistry(reg, in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	v, err := bson.Raw(raw).LookupErr("hourlyRate")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if v.Type != bsontype.Decimal128 {
		t.Fatalf("hourlyRate stored as %v, want decimal128", v.Type)
	}

	var out domain.Trainer
	if err := bson.UnmarshalWithRegistry(reg, raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.HourlyRate.Equal(in.HourlyRate) {
		t.Fatalf("HourlyRate = %s, want %s", out.HourlyRate, in.HourlyRate)
	}
}

func TestDecimalCodecDecodesLegacyNumbers(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name string
		doc  bson.M
		want string
	}{
		{"double", bson.M{"hourlyRate": 30.25}, "30.25"},
		{"int32", bson.M{"hourlyRate": int32(40)}, "40"},
		{"int64", bson.M{"hourlyRate": int64(55)}, "55"},
		{"string", bson.M{"hourlyRate": "12.75"}, "12.75"},
		{"null", bson.M{"hourlyRate": nil}, "0"},
	}
	for _, tt := range tests {
		raw, err := bson.Marshal(tt.doc)
		if err != nil {
			t.Fatalf("%s: marshal: %v", tt.name, err)
		}
		var out domain.Trainer
		if err := bson.UnmarshalWithRegistry(reg, raw, &out); err != nil {
			t.Fatalf("%s: unmarshal: %v", tt.name, err)
		}
		if !out.HourlyRate.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("%s: HourlyRate = %s, want %s", tt.name, out.HourlyRate, tt.want)
		}
	}
}

func TestErrorMapping(t *testing.T) {
	if err := notFound(mongo.ErrNoDocuments); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	other := errors.New("boom")
	if err := notFound(other); err != other {
		t.Errorf("unrelated errors should pass through, got %v", err)
	}

	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}}}
	if err := duplicate(dup); !errors.Is(err, repository.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
	if err := duplicate(other); err != other {
		t.Errorf("unrelated errors should pass through, got %v", err)
	}
}
