package handler

import (
	"bucketlist/internal/core"
	"bucketlist/internal/http/payload"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

func (h *BucketHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.RegisterRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not register user",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	user, err := h.service.Register(r.Context(), req.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Could not register user",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserExists) {
			httpCode = http.StatusConflict
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: msgRegistered,
		Data:    user,
	}, http.StatusCreated, requestId)
}

func (h *BucketHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.LoginRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: msgLoginFailed,
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	token, err := h.service.Authenticate(r.Context(), req.ToMessage())
	if err != nil {
		resp := Response{
			Message: msgLoginFailed,
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: msgLoginOK,
		Data:    map[string]string{"token": token},
	}, http.StatusOK, requestId)
}

func (h *BucketHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	if err := h.service.RevokeToken(r.Context(), token); err != nil {
		h.respond(w, Response{
			Message: "Could not log out",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to revoke token",
			"error", err,
			"handler", Logout,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Message: msgLogoutOK}, http.StatusOK, requestId)
}
