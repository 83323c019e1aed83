package models

// User décrit un utilisateur dans la documentation de l'API.
type User struct {
	ID      int    `json:"id" example:"1"`
	Account string `json:"account" example:"user123"`
	Name    string `json:"name" example:"張三"`
	Mail    string `json:"mail" format:"email" example:"user@example.com"`
	Head    string `json:"head" example:"https://randomuser.me/api/portraits/men/1.jpg"`
}

type LoginRequest struct {
	Account  Text   `json:"account" form:"account" binding:"required" swaggertype:"string" example:"user123"`
	Password string `json:"password" form:"password" binding:"required" example:"password123"`
}

type RegisterRequest struct {
	Account  string `json:"account" form:"account" binding:"required" example:"user123"`
	Password string `json:"password" form:"password" binding:"required" example:"password123"`
	Mail     string `json:"mail" form:"mail" binding:"required" example:"user@example.com"`
	Name     string `json:"name" form:"name" example:"張三"`
}

type UserUpdateRequest struct {
	Name string `json:"name" form:"name" example:"李四"`
	Mail string `json:"mail" form:"mail" example:"new@example.com"`
	Head string `json:"head" form:"head" example:"https://randomuser.me/api/portraits/women/2.jpg"`
}
