package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopcart_back_end/internal/models"
)

// Success écrit une enveloppe "success" avec le code HTTP donné.
func Success(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, models.Response{
		Status:  models.StatusSuccess,
		Data:    data,
		Message: message,
	})
}

func OK(c *gin.Context, data interface{}, message string) {
	Success(c, http.StatusOK, data, message)
}

func Created(c *gin.Context, data interface{}, message string) {
	Success(c, http.StatusCreated, data, message)
}

// Fail interrompt la requête avec une enveloppe "fail" (erreur côté client).
func Fail(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, models.Response{
		Status:  models.StatusFail,
		Data:    models.Empty{},
		Message: message,
	})
}

// EmptyList renvoie une liste vide qui s'encode en [] et non en null.
func EmptyList() []interface{} {
	return []interface{}{}
}
