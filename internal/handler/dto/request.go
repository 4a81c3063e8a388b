package dto

type CreateItemRequest struct {
	Kind          string `json:"kind" binding:"required,oneof=tour transport"`
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	StartTime     string `json:"start_time" binding:"required"`
	EndTime       string `json:"end_time" binding:"required"`
	Capacity      int    `json:"capacity" binding:"required,gt=0,lte=100000"`
	PriceA        int64  `json:"price_a" binding:"gte=0"`
	PriceB        int64  `json:"price_b" binding:"gte=0"`
	PriceC        int64  `json:"price_c" binding:"gte=0"`
	AvailableFrom string `json:"available_from"`
	AvailableTo   string `json:"available_to"`
}

type UpdateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	Capacity    int    `json:"capacity" binding:"required,gt=0,lte=100000"`
	PriceA      int64  `json:"price_a" binding:"gte=0"`
	PriceB      int64  `json:"price_b" binding:"gte=0"`
	PriceC      int64  `json:"price_c" binding:"gte=0"`
}

type AvailabilityRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

type AddCartItemRequest struct {
	ItemID   string `json:"item_id" binding:"required,uuid"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0,lte=1000"`
	Tier     string `json:"tier" binding:"omitempty,oneof=A B C"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	Tier           string `json:"tier" binding:"omitempty,oneof=A B C"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type UpdateUserTierRequest struct {
	Tier string `json:"tier" binding:"required,oneof=A B C"`
}
