package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// List envelopa coleções com o total; as listas do fluxo de agendamento
// respondem o array cru por compatibilidade com o cliente.
func List[T any](c *gin.Context, data []T) {
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

func Message(c *gin.Context, status int, mensagem string) {
	c.JSON(status, gin.H{"mensagem": mensagem})
}
