package service

import (
	"alcyxob/gymflow/internal/domain"
	"alcyxob/gymflow/internal/events"
	"alcyxob/gymflow/internal/repository"
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// --- Error Definitions ---
var (
	ErrMemberEmailTaken = errors.New("a member with this email already exists")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidPhone     = errors.New("invalid phone format")
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\d\s\-()+]{7,15}$`)
)

// CreateMemberCommand registers a member. MembershipType defaults to basic.
type CreateMemberCommand struct {
	Name           string
	Email          string
	Phone          string
	MembershipType string
}

// UpdateMemberCommand changes a member; empty fields are left untouched.
type UpdateMemberCommand struct {
	Name           string
	Phone          string
	MembershipType string
	IsActive       *bool
}

// MemberCommands is the write side of the member service. Every command
// publishes a member.* event.
type MemberCommands interface {
	CreateMember(ctx context.Context, cmd CreateMemberCommand) (*domain.Member, error)
	UpdateMember(ctx context.Context, id primitive.ObjectID, cmd UpdateMemberCommand) (*domain.Member, error)
	DeleteMember(ctx context.Context, id primitive.ObjectID) error
}

// MemberQueries is the read side of the member service.
type MemberQueries interface {
	GetMember(ctx context.Context, id primitive.ObjectID) (*domain.Member, error)
	ListMembers(ctx context.Context, activeOnly bool) ([]domain.Member, error)
	ListMembersByMembership(ctx context.Context, membershipType string) ([]domain.Member, error)
	// QuotePrice applies the member's tier discount to listPrice.
	QuotePrice(ctx context.Context, id primitive.ObjectID, listPrice decimal.Decimal) (decimal.Decimal, error)
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return "", ErrInvalidEmail
	}
	return email, nil
}

func validatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}

type memberCommands struct {
	memberRepo repository.MemberRepository
	publisher  events.Publisher
	logger     *zap.Logger
	now        clock
}

func NewMemberCommands(memberRepo repository.MemberRepository, publisher events.Publisher, logger *zap.Logger) MemberCommands {
	return &memberCommands{
		memberRepo: memberRepo,
		publisher:  publisher,
		logger:     logger.Named("member_commands"),
		now:        utcNow,
	}
}

func (c *memberCommands) CreateMember(ctx context.Context, cmd CreateMemberCommand) (*domain.Member, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, validationError("member name cannot be empty")
	}
	email, err := normalizeEmail(cmd.Email)
	if err != nil {
		return nil, err
	}
	if cmd.Phone != "" {
		if err := validatePhone(cmd.Phone); err != nil {
			return nil, err
		}
	}
	membership := domain.MembershipBasic
	if cmd.MembershipType != "" {
		if membership, err = domain.ParseMembershipType(cmd.MembershipType); err != nil {
			return nil, err
		}
	}

	if _, err := c.memberRepo.GetByEmail(ctx, email); err == nil {
		return nil, ErrMemberEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	now := c.now()
	member := &domain.Member{
		Name:           strings.TrimSpace(cmd.Name),
		Email:          email,
		Phone:          cmd.Phone,
		MembershipType: membership,
		JoinDate:       now,
		IsActive:       true,
	}
	id, err := c.memberRepo.Create(ctx, member)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrMemberEmailTaken
		}
		return nil, err
	}
	member.ID = id

	c.logger.Info("Member created", zap.String("memberId", id.Hex()), zap.String("membership", string(membership)))
	publish(ctx, c.publisher, c.logger, events.MemberCreated, id.Hex(), member)
	notify(ctx, c.publisher, c.logger, events.NotificationWelcome, map[string]any{
		"email":          member.Email,
		"name":           member.Name,
		"membershipType": member.MembershipType,
	})
	return member, nil
}

func (c *memberCommands) UpdateMember(ctx context.Context, id primitive.ObjectID, cmd UpdateMemberCommand) (*domain.Member, error) {
	if err := requireID(id, "member ID"); err != nil {
		return nil, err
	}
	if cmd.Phone != "" {
		if err := validatePhone(cmd.Phone); err != nil {
			return nil, err
		}
	}
	var membership domain.MembershipType
	if cmd.MembershipType != "" {
		var err error
		if membership, err = domain.ParseMembershipType(cmd.MembershipType); err != nil {
			return nil, err
		}
	}

	member, err := c.memberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	if name := strings.TrimSpace(cmd.Name); name != "" {
		member.Name = name
	}
	if cmd.Phone != "" {
		member.Phone = cmd.Phone
	}
	if membership != "" {
		member.MembershipType = membership
	}
	if cmd.IsActive != nil {
		member.IsActive = *cmd.IsActive
	}

	if err := c.memberRepo.Update(ctx, member); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	publish(ctx, c.publisher, c.logger, events.MemberUpdated, id.Hex(), member)
	return member, nil
}

func (c *memberCommands) DeleteMember(ctx context.Context, id primitive.ObjectID) error {
	if err := requireID(id, "member ID"); err != nil {
		return err
	}
	member, err := c.memberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMemberNotFound
		}
		return err
	}
	if err := c.memberRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMemberNotFound
		}
		return err
	}

	c.logger.Info("Member deleted", zap.String("memberId", id.Hex()))
	publish(ctx, c.publisher, c.logger, events.MemberDeleted, id.Hex(), map[string]string{"email": member.Email})
	notify(ctx, c.publisher, c.logger, events.NotificationGoodbye, map[string]any{
		"email": member.Email,
		"name":  member.Name,
	})
	return nil
}

type memberQueries struct {
	memberRepo repository.MemberRepository
}

func NewMemberQueries(memberRepo repository.MemberRepository) MemberQueries {
	return &memberQueries{memberRepo: memberRepo}
}

func (q *memberQueries) GetMember(ctx context.Context, id primitive.ObjectID) (*domain.Member, error) {
	if err := requireID(id, "member ID"); err != nil {
		return nil, err
	}
	member, err := q.memberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

func (q *memberQueries) ListMembers(ctx context.Context, activeOnly bool) ([]domain.Member, error) {
	if activeOnly {
		return q.memberRepo.ListActive(ctx)
	}
	return q.memberRepo.List(ctx)
}

func (q *memberQueries) ListMembersByMembership(ctx context.Context, membershipType string) ([]domain.Member, error) {
	t, err := domain.ParseMembershipType(membershipType)
	if err != nil {
		return nil, err
	}
	return q.memberRepo.ListByMembership(ctx, t)
}

func (q *memberQueries) QuotePrice(ctx context.Context, id primitive.ObjectID, listPrice decimal.Decimal) (decimal.Decimal, error) {
	if listPrice.IsNegative() {
		return decimal.Zero, validationError("price cannot be negative")
	}
	member, err := q.GetMember(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return member.PriceFor(listPrice), nil
}
