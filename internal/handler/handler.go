package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TourBooker/internal/domain"
	"github.com/stpnv0/TourBooker/internal/handler/dto"
	"github.com/stpnv0/TourBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type ItemSvc interface {
	Create(ctx context.Context, input domain.CreateItemInput) (*domain.BookableItem, error)
	GetByID(ctx context.Context, id string) (*domain.BookableItem, error)
	List(ctx context.Context) ([]*domain.BookableItem, error)
	Update(ctx context.Context, id string, input domain.UpdateItemInput) (*domain.BookableItem, error)
	SeedLedger(ctx context.Context, itemID string, from, to time.Time) (int, error)
	RegenerateAvailability(ctx context.Context, itemID string, from, to time.Time) (*domain.AvailabilityChange, error)
	Delete(ctx context.Context, id string) error
	Availability(ctx context.Context, itemID string, from, to time.Time) ([]*domain.LedgerEntry, error)
}

type CartSvc interface {
	AddItem(ctx context.Context, userID string, in domain.AddCartItemInput) (*domain.CartItemView, error)
	RemoveItem(ctx context.Context, userID, cartItemID string) error
	ListItems(ctx context.Context, userID string) ([]domain.CartItemView, error)
	Checkout(ctx context.Context, userID string) ([]domain.CartItemView, error)
	Clear(ctx context.Context, userID string) (int, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateTier(ctx context.Context, id string, tier domain.Tier) (*domain.User, error)
}

type Handler struct {
	itemService ItemSvc
	cartService CartSvc
	userService UserSvc
}

func NewHandler(itemService ItemSvc, cartService CartSvc, userService UserSvc) *Handler {
	return &Handler{
		itemService: itemService,
		cartService: cartService,
		userService: userService,
	}
}

func validID(c *ginext.Context, what string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " id"})
		return "", false
	}
	return id, true
}

func parseRange(from, to string) (time.Time, time.Time, error) {
	f, err := domain.ParseDate(from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	t, err := domain.ParseDate(to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return f, t, nil
}

func parseHours(c *ginext.Context, start, end string) (domain.TimeOfDay, domain.TimeOfDay, bool) {
	s, err := domain.ParseTimeOfDay(start)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_time, expected HH:MM"})
		return 0, 0, false
	}
	e, err := domain.ParseTimeOfDay(end)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_time, expected HH:MM"})
		return 0, 0, false
	}
	return s, e, true
}

// Items

func (h *Handler) CreateItem(c *ginext.Context) {
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, end, ok := parseHours(c, req.StartTime, req.EndTime)
	if !ok {
		return
	}

	input := domain.CreateItemInput{
		Kind:        domain.ItemKind(req.Kind),
		Name:        req.Name,
		Description: req.Description,
		StartTime:   start,
		EndTime:     end,
		Capacity:    req.Capacity,
		Prices:      domain.Prices{A: req.PriceA, B: req.PriceB, C: req.PriceC},
	}
	if req.AvailableFrom != "" || req.AvailableTo != "" {
		from, to, err := parseRange(req.AvailableFrom, req.AvailableTo)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid availability range, expected YYYY-MM-DD"})
			return
		}
		input.Availability = &domain.DateRange{From: from, To: to}
	}

	item, err := h.itemService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

func (h *Handler) GetItem(c *ginext.Context) {
	id, ok := validID(c, "item")
	if !ok {
		return
	}

	item, err := h.itemService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

func (h *Handler) ListItems(c *ginext.Context) {
	items, err := h.itemService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, dto.ToItemResponse(it))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateItem(c *ginext.Context) {
	id, ok := validID(c, "item")
	if !ok {
		return
	}

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, end, ok := parseHours(c, req.StartTime, req.EndTime)
	if !ok {
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), id, domain.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		StartTime:   start,
		EndTime:     end,
		Capacity:    req.Capacity,
		Prices:      domain.Prices{A: req.PriceA, B: req.PriceB, C: req.PriceC},
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

func (h *Handler) DeleteItem(c *ginext.Context) {
	id, ok := validID(c, "item")
	if !ok {
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Availability

func (h *Handler) GetAvailability(c *ginext.Context) {
	id, ok := validID(c, "item")
	if !ok {
		return
	}

	from, to, err := parseRange(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "from and to are required, expected YYYY-MM-DD"})
		return
	}

	entries, err := h.itemService.Availability(c.Request.Context(), id, from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SlotResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.ToSlotResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) bindRange(c *ginext.Context) (time.Time, time.Time, bool) {
	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return time.Time{}, time.Time{}, false
	}

	from, to, err := parseRange(req.From, req.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func (h *Handler) SeedAvailability(c *ginext.Context) {
	id, ok := validID(c, "item")
	if !ok {
		return
	}
	from, to, ok := h.bindRange(c)
	if !ok {
		return
	}

	created, err := h.itemService.SeedLedger(c.Request.Context(), id, from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SeedResponse{Created: created})
}

func (h *Handler) RegenerateAvailability(c *ginext.Context) {
	id, ok := validID(c, "item")
	if !ok {
		return
	}
	from, to, ok := h.bindRange(c)
	if !ok {
		return
	}

	change, err := h.itemService.RegenerateAvailability(c.Request.Context(), id, from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, change)
}

// Cart

func (h *Handler) ListCart(c *ginext.Context) {
	views, err := h.cartService.ListItems(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCartResponse(views))
}

func (h *Handler) AddCartItem(c *ginext.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return
	}
	slot, err := domain.ParseTimeOfDay(req.Time)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid time, expected HH:MM"})
		return
	}

	view, err := h.cartService.AddItem(c.Request.Context(), middleware.UserID(c), domain.AddCartItemInput{
		ItemID:   req.ItemID,
		Date:     date,
		Time:     slot,
		Quantity: req.Quantity,
		Tier:     domain.Tier(req.Tier),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCartItemResponse(view))
}

func (h *Handler) RemoveCartItem(c *ginext.Context) {
	id, ok := validID(c, "cart item")
	if !ok {
		return
	}

	if err := h.cartService.RemoveItem(c.Request.Context(), middleware.UserID(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Checkout(c *ginext.Context) {
	views, err := h.cartService.Checkout(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCartResponse(views))
}

func (h *Handler) ClearCart(c *ginext.Context) {
	released, err := h.cartService.Clear(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"released": released})
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		Tier:           domain.Tier(req.Tier),
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) UpdateUserTier(c *ginext.Context) {
	id, ok := validID(c, "user")
	if !ok {
		return
	}

	var req dto.UpdateUserTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.UpdateTier(c.Request.Context(), id, domain.Tier(req.Tier))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotUnavailable),
		errors.Is(err, domain.ErrInvalidStateTransition),
		errors.Is(err, domain.ErrHoldConflict),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidTier),
		errors.Is(err, domain.ErrInvalidConfiguration):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
