package domain

import "time"

// AdPackage é um pacote publicitário oferecido pelo influenciador
type AdPackage struct {
	ID           string    `json:"id"`
	UserID       int       `json:"user_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	DeliveryDays int       `json:"delivery_days"`
	Includes     []string  `json:"includes"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateAdPackageRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	DeliveryDays int      `json:"delivery_days"`
	Includes     []string `json:"includes"`
}

// UpdateAdPackageRequest só altera os campos informados
type UpdateAdPackageRequest struct {
	ID           string    `json:"-"`
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Price        *float64  `json:"price"`
	DeliveryDays *int      `json:"delivery_days"`
	Includes     *[]string `json:"includes"`
	IsActive     *bool     `json:"is_active"`
}
