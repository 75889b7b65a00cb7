package handler

import (
	"strconv"
	"time"

	"marketplace/internal/domain/entity"
)

// userResponse is the public view of an account; the password hash is never sent.
type userResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Age             *int      `json:"age,omitempty"`
	Email           string    `json:"email"`
	HasProfilePhoto bool      `json:"hasProfilePhoto"`
	CreatedAt       time.Time `json:"createdAt"`
}

func toUserResponse(u *entity.User) *userResponse {
	return &userResponse{
		ID:              u.ID,
		Name:            u.Name,
		Age:             u.Age,
		Email:           u.Email,
		HasProfilePhoto: u.ProfilePhotoKey != "",
		CreatedAt:       u.CreatedAt,
	}
}

type sessionResponse struct {
	User      *userResponse `json:"user"`
	ExpiresAt time.Time     `json:"expiresAt"`
}

// sessionUser is what the auth status endpoint knows about the caller.
type sessionUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type authStatusResponse struct {
	IsLoggedIn bool         `json:"isLoggedIn"`
	User       *sessionUser `json:"user"`
}

type itemResponse struct {
	ID                   int64           `json:"id"`
	Type                 entity.Category `json:"type"`
	OwnerID              int64           `json:"userId"`
	Title                string          `json:"title"`
	Description          string          `json:"description"`
	Price                float64         `json:"price"`
	Count                int             `json:"count"`
	IsFeatured           bool            `json:"isFeatured"`
	IsSold               bool            `json:"isSold"`
	CreatedAt            time.Time       `json:"createdAt"`
	ImageURL             string          `json:"imageUrl"`
	HasFile              bool            `json:"hasFile,omitempty"`
	AdditionalImageCount int             `json:"additionalImageCount,omitempty"`
	Size                 string          `json:"size,omitempty"`
	Condition            string          `json:"condition,omitempty"`
}

func toItemResponse(item *entity.Item, hasFile bool) *itemResponse {
	resp := &itemResponse{
		ID:          item.ID,
		Type:        item.Category,
		OwnerID:     item.OwnerID,
		Title:       item.Title,
		Description: item.Description,
		Price:       item.Price,
		Count:       item.Count,
		IsFeatured:  item.IsFeatured,
		IsSold:      item.IsSold,
		CreatedAt:   item.CreatedAt,
		ImageURL:    imageURL(item.Category, item.ID),
		HasFile:     hasFile,
	}
	if item.Stationery != nil {
		resp.AdditionalImageCount = len(item.Stationery.AdditionalImageKeys)
	}
	if item.Uniform != nil {
		resp.Size = item.Uniform.Size
		resp.Condition = string(item.Uniform.Condition)
	}

	return resp
}

func imageURL(category entity.Category, id int64) string {
	return "/api/image/" + strconv.FormatInt(id, 10) + "?type=" + string(category)
}
