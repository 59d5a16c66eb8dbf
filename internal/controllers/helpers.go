package controllers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/middleware"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/repositories"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/services"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/store"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/utils"
)

// userIDFromContext pulls the authenticated user out of the request
// context. Writes a 401 and returns false if the middleware never ran.
func userIDFromContext(w http.ResponseWriter, r *http.Request) (string, bool) {
	ctxUserID := r.Context().Value(middleware.ContextKeyUserID)
	if ctxUserID == nil {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized,
			"No userID in context", nil,
		)
		return "", false
	}
	return ctxUserID.(string), true
}

// validateBody runs struct validation and writes a 400 on failure.
func validateBody(w http.ResponseWriter, body any) bool {
	if err := utils.Validate.Struct(body); err != nil {
		var vErrs validator.ValidationErrors
		var details any
		if errors.As(err, &vErrs) {
			fields := make([]string, 0, len(vErrs))
			for _, fe := range vErrs {
				fields = append(fields, fe.Field())
			}
			details = fields
		}
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation,
			"Request validation failed", details, err,
		)
		return false
	}
	return true
}

// respondDomainError maps domain errors to HTTP responses. Missing and
// foreign-owned documents are deliberately indistinguishable.
func respondDomainError(w http.ResponseWriter, err error, publicMsg string) {
	switch {
	case errors.Is(err, repositories.ErrNotFoundOrForbidden), errors.Is(err, store.ErrNotFound):
		utils.RespondErrorWithCode(
			w, http.StatusNotFound, utils.ErrCodeNotFound,
			"Not found or access denied", nil, err,
		)
	case errors.Is(err, repositories.ErrNotABuilding),
		errors.Is(err, services.ErrNotDirectlyLettable):
		utils.RespondErrorWithCode(
			w, http.StatusConflict, utils.ErrCodeConflict,
			publicMsg, nil, err,
		)
	case errors.Is(err, utils.ErrRowVersionConflict):
		utils.HandleAppError(w, &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    "The record was modified concurrently, please retry",
			Err:        err,
		})
	default:
		utils.Logger.WithError(err).Error(publicMsg)
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal,
			publicMsg, nil, err,
		)
	}
}
