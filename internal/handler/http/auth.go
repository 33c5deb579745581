package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-catalog-api/internal/router"
	"github.com/MKhiriev/go-catalog-api/models"
)

func (h *Handler) register(c *router.Context) (*router.Response, error) {
	ctx := c.Context()
	log := c.Logger()

	var user models.User
	if err := c.Bind(&user); err != nil {
		return router.Error(http.StatusBadRequest, router.MsgInvalidJSON, err), nil
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		return errorResponse(c, err), nil
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		return errorResponse(c, err), nil
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("user registered")

	return router.JSON(http.StatusCreated, registeredUser).
		WithHeader("Authorization", fmt.Sprintf("Bearer %s", token.SignedString)), nil
}

func (h *Handler) login(c *router.Context) (*router.Response, error) {
	ctx := c.Context()

	var user models.User
	if err := c.Bind(&user); err != nil {
		return router.Error(http.StatusBadRequest, router.MsgInvalidJSON, err), nil
	}

	foundUser, err := h.services.AuthService.Login(ctx, user.Username, user.Password)
	if err != nil {
		return errorResponse(c, err), nil
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		return errorResponse(c, err), nil
	}

	c.Logger().Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	return router.JSON(http.StatusOK, models.LoginResponse{Token: token.SignedString}).
		WithHeader("Authorization", fmt.Sprintf("Bearer %s", token.SignedString)), nil
}
