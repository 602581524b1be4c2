package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/CesarJOtizM/didactic-succotash/internal/dto"
	"github.com/CesarJOtizM/didactic-succotash/internal/repository"
	"github.com/CesarJOtizM/didactic-succotash/internal/service"
)

// MapError translates domain and storage errors to HTTP statuses. Invalid
// input, unknown orders, the terminal-state conflict and the
// no-eligible-methods case each get a distinct status; anything else is a
// 500.
func MapError(err error) (int, dto.ErrorResponse) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation failed",
			Details: validationErr.Error(),
		}
	}

	if errors.Is(err, repository.ErrNotFound) {
		return http.StatusNotFound, dto.ErrorResponse{Error: "payment order not found"}
	}

	if errors.Is(err, service.ErrAlreadyProcessed) {
		return http.StatusConflict, dto.ErrorResponse{Error: "payment order already processed"}
	}

	var noMethodsErr *service.NoEligibleMethodsError
	if errors.As(err, &noMethodsErr) {
		return http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:   "no eligible payment methods",
			Details: noMethodsErr.Error(),
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return http.StatusConflict, dto.ErrorResponse{
				Error:   "resource already exists",
				Details: pgErr.Detail,
			}
		case "23514": // check_violation
			return http.StatusBadRequest, dto.ErrorResponse{
				Error:   "constraint violation",
				Details: pgErr.Detail,
			}
		}
	}

	log.Error().Err(err).Msg("unhandled error")
	return http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"}
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			status, resp := MapError(err)
			c.JSON(status, resp)
		}
	}
}
