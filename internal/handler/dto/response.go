package dto

import (
	"time"

	"github.com/stpnv0/TourBooker/internal/domain"
)

type ItemResponse struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Capacity    int    `json:"capacity"`
	PriceA      int64  `json:"price_a"`
	PriceB      int64  `json:"price_b"`
	PriceC      int64  `json:"price_c"`
	CreatedAt   string `json:"created_at"`
}

type SlotResponse struct {
	Date          string `json:"date"`
	Time          string `json:"time"`
	TotalCapacity int    `json:"total_capacity"`
	Remaining     int    `json:"remaining"`
}

type SeedResponse struct {
	Created int `json:"created"`
}

type CartItemResponse struct {
	ID        string `json:"id"`
	ItemID    string `json:"item_id"`
	ItemKind  string `json:"item_kind"`
	ItemName  string `json:"item_name"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Quantity  int    `json:"quantity"`
	Tier      string `json:"tier"`
	UnitPrice int64  `json:"unit_price"`
	Total     int64  `json:"total"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total int64              `json:"total"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Tier           string `json:"tier"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToItemResponse(it *domain.BookableItem) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		Kind:        string(it.Kind),
		Name:        it.Name,
		Description: it.Description,
		StartTime:   it.StartTime.String(),
		EndTime:     it.EndTime.String(),
		Capacity:    it.Capacity,
		PriceA:      it.Prices.A,
		PriceB:      it.Prices.B,
		PriceC:      it.Prices.C,
		CreatedAt:   it.CreatedAt.Format(time.RFC3339),
	}
}

func ToSlotResponse(e *domain.LedgerEntry) SlotResponse {
	return SlotResponse{
		Date:          e.Date.Format(time.DateOnly),
		Time:          e.Time.String(),
		TotalCapacity: e.TotalCapacity,
		Remaining:     e.Remaining,
	}
}

func ToCartItemResponse(v *domain.CartItemView) CartItemResponse {
	return CartItemResponse{
		ID:        v.ID,
		ItemID:    v.ItemID,
		ItemKind:  string(v.ItemKind),
		ItemName:  v.ItemName,
		Date:      v.Date.Format(time.DateOnly),
		Time:      v.Time.String(),
		Quantity:  v.Quantity,
		Tier:      string(v.Tier),
		UnitPrice: v.UnitPrice,
		Total:     v.Total,
		Status:    string(v.Status),
		CreatedAt: v.CreatedAt.Format(time.RFC3339),
	}
}

func ToCartResponse(views []domain.CartItemView) CartResponse {
	resp := CartResponse{Items: make([]CartItemResponse, 0, len(views))}
	for i := range views {
		resp.Items = append(resp.Items, ToCartItemResponse(&views[i]))
		resp.Total += views[i].Total
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Tier:           string(u.Tier),
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
