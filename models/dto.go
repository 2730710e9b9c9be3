package models

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	FullName string `json:"full_name" form:"full_name" binding:"required,min=3"`
	Phone    string `json:"phone" form:"phone" binding:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" form:"full_name"`
	Phone    string `json:"phone" form:"phone"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type AddCartItemRequest struct {
	ProductID int `json:"id" binding:"required"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CreateProductRequest struct {
	Title    string          `json:"title" form:"title" binding:"required"`
	Price    decimal.Decimal `json:"price" form:"price" binding:"required"`
	Image    string          `json:"image" form:"image"`
	Category string          `json:"category" form:"category" binding:"required"`
}

type UpdateProductRequest struct {
	Title    string          `json:"title" form:"title"`
	Price    decimal.Decimal `json:"price" form:"price"`
	Image    string          `json:"image" form:"image"`
	Category string          `json:"category" form:"category"`
}

type UpdateOrderStatusRequest struct {
	Status            string `json:"status" binding:"required"`
	StatusDescription string `json:"status_description"`
}

type LanguagePreferenceRequest struct {
	Language string `json:"language" binding:"required,oneof=en ro"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type MetaData struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type PaginationResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    MetaData    `json:"meta"`
}

type LoginResponse struct {
	Token string          `json:"token"`
	User  UserWithProfile `json:"user"`
}
