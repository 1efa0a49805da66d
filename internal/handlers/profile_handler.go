package handlers

import (
	stderrors "errors"
	"net/http"

	"finpulse-api/internal/dto"
	"finpulse-api/internal/errors"
	"finpulse-api/internal/repositories"
	"finpulse-api/internal/services"

	"github.com/labstack/echo/v4"
)

// ProfileHandler handles budget profile HTTP requests
type ProfileHandler struct {
	profileService services.ProfileServiceInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService services.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile retrieves the caller's derived budget profile
//
// Method: GET /api/v1/profile
// Authentication: Required (JWT)
//
// Error Responses:
//   - 404: No profile computed yet, call rebuild first
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	profile, err := h.profileService.Get(userID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrProfileNotFound) {
			return SendError(c, errors.ProfileNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// RebuildProfile recomputes the budget profile from recent transaction
// history
//
// Method: POST /api/v1/profile/rebuild
// Authentication: Required (JWT)
//
// Success Response: 200 OK with the fresh profile
//
// Error Responses:
//   - 422: No transaction history inside the lookback window
func (h *ProfileHandler) RebuildProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	profile, err := h.profileService.Rebuild(c.Request().Context(), userID)
	if err != nil {
		if stderrors.Is(err, services.ErrNoTransactionHistory) {
			return SendError(c, errors.ProfileNoHistory)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}
