package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/dmitrymomot/zarinpal-oauth/pkg/oauth"
	"github.com/dmitrymomot/zarinpal-oauth/pkg/zarinpal"
)

type merchant struct {
	Data        map[string]any `json:"data"`
	AccessToken string         `json:"-"`
}

// verifyMerchant accepts every token Zarinpal issued. A real application
// would look the merchant up here.
func verifyMerchant(_ context.Context, accessToken string, data map[string]any) (any, any, error) {
	if accessToken == "" {
		return nil, "empty access token", nil
	}
	return &merchant{AccessToken: accessToken, Data: data}, nil, nil
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
	Code    int    `json:"code,omitempty"`
	Subcode int    `json:"subcode,omitempty"`
}

type authHandler struct {
	strategy oauth.Strategy
	logger   *slog.Logger
}

func (h *authHandler) authenticate(w http.ResponseWriter, r *http.Request) {
	res := h.strategy.Authenticate(r, oauth.AuthenticateOptions{})

	switch res.Kind {
	case oauth.ResultRedirect:
		http.Redirect(w, r, res.RedirectURL, http.StatusFound)
	case oauth.ResultSuccess:
		render.JSON(w, r, res.User)
	case oauth.ResultFail:
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, errorResponse{Error: "unauthorized", Message: fmt.Sprint(res.Info)})
	default:
		h.renderError(w, r, res.Err)
	}
}

func (h *authHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadGateway
	body := errorResponse{Error: "internal", Message: "authentication failed"}

	if authErr, ok := zarinpal.AsAuthorizationError(err); ok {
		status = authErr.Status
		body = errorResponse{Error: "authorization", Message: authErr.Message, Code: authErr.Code}
	} else if tokenErr, ok := zarinpal.AsTokenError(err); ok {
		status = tokenErr.Status
		body = errorResponse{
			Error:   "token",
			Message: tokenErr.Message,
			Type:    tokenErr.Type,
			Code:    tokenErr.Code,
			Subcode: tokenErr.Subcode,
		}
	}

	h.logger.WarnContext(r.Context(), "authentication error",
		slog.String("kind", body.Error),
		slog.String("error", err.Error()),
	)
	render.Status(r, status)
	render.JSON(w, r, body)
}
