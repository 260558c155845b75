package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CodeSlotUnavailable = "slot_unavailable"

	MsgSlotUnavailable = "Horario no disponible"
)

type businessReply struct {
	status  int
	message string
}

var businessReplies = map[string]businessReply{
	CodeSlotUnavailable: {http.StatusConflict, MsgSlotUnavailable},
}

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// Business responde um erro de negócio conhecido como {"error": "<mensagem>"}
// e diz se respondeu. Códigos sem resposta ficam com quem chamou.
func Business(c *gin.Context, err error) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		return false
	}

	reply, ok := businessReplies[be.Code]
	if !ok {
		return false
	}

	Write(c, reply.status, reply.message)
	return true
}
