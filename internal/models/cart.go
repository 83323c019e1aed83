package models

// CartItem décrit une ligne du panier dans la documentation de l'API.
type CartItem struct {
	ProductID string  `json:"productId" example:"123"`
	Quantity  int     `json:"quantity" example:"2"`
	Price     float64 `json:"price" example:"25000"`
}

type CartItemInput struct {
	ProductID string `json:"productId" form:"productId" binding:"required" example:"123"`
	Quantity  int    `json:"quantity" form:"quantity" binding:"required" example:"1"`
}

type CartQuantityInput struct {
	Quantity int `json:"quantity" form:"quantity" binding:"required" example:"3"`
}
