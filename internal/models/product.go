package models

// Product décrit un produit dans la documentation de l'API.
type Product struct {
	ID          string  `json:"id" example:"123"`
	Name        string  `json:"name" example:"iPhone 15"`
	Price       float64 `json:"price" example:"25000"`
	Description string  `json:"description" example:"最新款智慧型手機"`
	Image       string  `json:"image" example:"https://example.com/iphone.jpg"`
}

type ProductInput struct {
	Name        string  `json:"name" form:"name" binding:"required" example:"iPhone 15"`
	Price       float64 `json:"price" form:"price" binding:"required" example:"25000"`
	Description string  `json:"description" form:"description" example:"最新款智慧型手機"`
	Image       string  `json:"image" form:"image" example:"https://example.com/iphone.jpg"`
}
