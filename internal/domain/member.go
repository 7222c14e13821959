package domain

import (
	"fmt"
	"strings"
	"time"

	"alcyxob/gymflow/internal/schedule"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MembershipType distinguishes membership tiers.
type MembershipType string

// Define constants for membership tiers
const (
	MembershipBasic   MembershipType = "basic"
	MembershipPremium MembershipType = "premium"
	MembershipVIP     MembershipType = "vip"
)

// ParseMembershipType normalizes and validates a tier name.
func ParseMembershipType(s string) (MembershipType, error) {
	switch t := MembershipType(strings.ToLower(strings.TrimSpace(s))); t {
	case MembershipBasic, MembershipPremium, MembershipVIP:
		return t, nil
	}
	return "", fmt.Errorf("%w: invalid membership type %q", schedule.ErrInvalidArgument, s)
}

var (
	vipDiscount     = decimal.RequireFromString("0.20")
	premiumDiscount = decimal.RequireFromString("0.10")
)

// Discount is the fraction taken off list prices for the tier.
func (t MembershipType) Discount() decimal.Decimal {
	switch t {
	case MembershipVIP:
		return vipDiscount
	case MembershipPremium:
		return premiumDiscount
	}
	return decimal.Zero
}

// Member represents a gym member.
type Member struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"` // Should be unique
	Phone          string             `bson:"phone,omitempty" json:"phone,omitempty"`
	MembershipType MembershipType     `bson:"membershipType" json:"membershipType"`
	JoinDate       time.Time          `bson:"joinDate" json:"joinDate"`
	IsActive       bool               `bson:"isActive" json:"isActive"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsLongTime reports whether the member joined more than a year before now.
func (m *Member) IsLongTime(now time.Time) bool {
	return m.JoinDate.Before(now.AddDate(-1, 0, 0))
}

// PriceFor applies the membership discount to a list price.
func (m *Member) PriceFor(listPrice decimal.Decimal) decimal.Decimal {
	return listPrice.Sub(listPrice.Mul(m.MembershipType.Discount())).Round(2)
}
