package models

// Status est la valeur du champ "status" de l'enveloppe.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFail    Status = "fail"
	StatusError   Status = "error"
)

// Response est l'enveloppe renvoyée par toutes les routes de l'API.
type Response struct {
	Status  Status      `json:"status" enums:"success,fail,error" example:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message" example:"已獲取購物車內容"`
}

// IDData est la charge utile des routes qui renvoient l'identifiant reçu.
type IDData struct {
	ID string `json:"id" example:"123"`
}

// KeyData est la charge utile de la recherche produit.
type KeyData struct {
	Key string `json:"key" example:"手機"`
}

// QueryData est la charge utile de la recherche utilisateur.
type QueryData struct {
	Q string `json:"q" example:"user123"`
}

// Empty s'encode en {}.
type Empty struct{}
