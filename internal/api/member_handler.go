package api

import (
	"alcyxob/gymflow/internal/domain"
	"alcyxob/gymflow/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MemberHandler serves the member endpoints. Writes go through the command
// side and reads through the query side.
type MemberHandler struct {
	commands service.MemberCommands
	queries  service.MemberQueries
	logger   *zap.Logger
}

func NewMemberHandler(commands service.MemberCommands, queries service.MemberQueries, logger *zap.Logger) *MemberHandler {
	return &MemberHandler{commands: commands, queries: queries, logger: logger}
}

// --- DTOs ---

type CreateMemberRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required"`
	Phone          string `json:"phone"`
	MembershipType string `json:"membershipType"`
}

type UpdateMemberRequest struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	MembershipType string `json:"membershipType"`
	IsActive       *bool  `json:"isActive"`
}

type MemberResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	MembershipType string    `json:"membershipType"`
	JoinDate       time.Time `json:"joinDate"`
	IsActive       bool      `json:"isActive"`
	IsLongTime     bool      `json:"isLongTime"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// QuoteResponse carries money as decimal strings.
type QuoteResponse struct {
	MemberID       string          `json:"memberId"`
	MembershipType string          `json:"membershipType"`
	ListPrice      decimal.Decimal `json:"listPrice"`
	Price          decimal.Decimal `json:"price"`
	Discount       decimal.Decimal `json:"discount"`
}

func MapMemberToResponse(m *domain.Member, now time.Time) MemberResponse {
	if m == nil {
		return MemberResponse{}
	}
	return MemberResponse{
		ID:             m.ID.Hex(),
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		MembershipType: string(m.MembershipType),
		JoinDate:       m.JoinDate,
		IsActive:       m.IsActive,
		IsLongTime:     m.IsLongTime(now),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func MapMembersToResponse(members []domain.Member, now time.Time) []MemberResponse {
	responses := make([]MemberResponse, len(members))
	for i := range members {
		responses[i] = MapMemberToResponse(&members[i], now)
	}
	return responses
}

// --- Handler Methods ---

// CreateMember godoc
// @Summary Register a member
// @Description Membership type defaults to basic.
// @Tags Members
// @Accept json
// @Produce json
// @Param member body CreateMemberRequest true "Member details"
// @Success 201 {object} MemberResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 409 {object} gin.H "Email already in use"
// @Router /members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	member, err := h.commands.CreateMember(c.Request.Context(), service.CreateMemberCommand{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		MembershipType: req.MembershipType,
	})
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, MapMemberToResponse(member, time.Now()))
}

// ListMembers godoc
// @Summary List members
// @Tags Members
// @Produce json
// @Param membership query string false "basic, premium or vip"
// @Param active query bool false "Only active members"
// @Success 200 {array} MemberResponse
// @Router /members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	var (
		members []domain.Member
		err     error
	)
	if membership := c.Query("membership"); membership != "" {
		members, err = h.queries.ListMembersByMembership(c.Request.Context(), membership)
	} else {
		members, err = h.queries.ListMembers(c.Request.Context(), boolQuery(c, "active"))
	}
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, MapMembersToResponse(members, time.Now()))
}

func (h *MemberHandler) GetMember(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	member, err := h.queries.GetMember(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, MapMemberToResponse(member, time.Now()))
}

func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	member, err := h.commands.UpdateMember(c.Request.Context(), id, service.UpdateMemberCommand{
		Name:           req.Name,
		Phone:          req.Phone,
		MembershipType: req.MembershipType,
		IsActive:       req.IsActive,
	})
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, MapMemberToResponse(member, time.Now()))
}

func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.commands.DeleteMember(c.Request.Context(), id); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// QuotePrice godoc
// @Summary Quote a price with the member's tier discount
// @Tags Members
// @Produce json
// @Param id path string true "Member ID"
// @Param price query string true "List price, e.g. 49.99"
// @Success 200 {object} QuoteResponse
// @Failure 400 {object} gin.H "Invalid price"
// @Failure 404 {object} gin.H "Member not found"
// @Router /members/{id}/quote [get]
func (h *MemberHandler) QuotePrice(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	listPrice, err := decimal.NewFromString(c.Query("price"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "price must be a decimal number")
		return
	}
	ctx := c.Request.Context()
	price, err := h.queries.QuotePrice(ctx, id, listPrice)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	member, err := h.queries.GetMember(ctx, id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, QuoteResponse{
		MemberID:       id.Hex(),
		MembershipType: string(member.MembershipType),
		ListPrice:      listPrice,
		Price:          price,
		Discount:       listPrice.Sub(price),
	})
}
