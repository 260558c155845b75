package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// StoreError é o erro do banco devolvido ao cliente, no formato que o
// PostgREST expõe.
type StoreError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

type HTTPError struct {
	Error any `json:"error"`
}

func Write(c *gin.Context, status int, payload any) {
	c.JSON(status, HTTPError{Error: payload})
}

// Store responde 400 com o erro do banco como veio.
func Store(c *gin.Context, err error) {
	Write(c, http.StatusBadRequest, FromError(err))
}

func InvalidBody(c *gin.Context, err error) {
	Write(c, http.StatusBadRequest, StoreError{
		Code:    "invalid_request",
		Message: err.Error(),
	})
}

func FromError(err error) StoreError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return StoreError{
			Code:    pgErr.Code,
			Message: pgErr.Message,
			Details: pgErr.Detail,
			Hint:    pgErr.Hint,
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return StoreError{
			Code:    "not_found",
			Message: "no rows returned",
		}
	}

	return StoreError{Message: err.Error()}
}
