package handler

import (
	"bucketlist/internal/core"
	"bucketlist/internal/http/handler/middleware"
	"bucketlist/internal/http/payload"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

func (h *BucketHandler) HandleListBucketlists(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	identity := identityFrom(r)

	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve bucketlists",
			Error:   fmt.Errorf("parse query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to parse query parameters",
			"error", err,
			"handler", ListBucketlists,
			"request_id", requestId)
		return
	}

	listQuery, err := payload.ParseListQuery(values)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve bucketlists",
			Error:   fmt.Errorf("validate query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate query parameters",
			"error", err,
			"handler", ListBucketlists,
			"request_id", requestId)
		return
	}

	lists, err := h.service.ListBucketlists(r.Context(), identity.UserID, listQuery)
	if err != nil {
		resp := Response{
			Message: "Could not retrieve bucketlists",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidPage) {
			httpCode = http.StatusNotFound
			resp.Message = msgInvalidPage
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to list bucketlists",
			"error", err,
			"handler", ListBucketlists,
			"request_id", requestId)
		return
	}

	if len(lists) == 0 {
		h.respond(w, Response{
			Message: msgNoBucketlists,
			Data:    []core.BucketlistRecord{},
		}, http.StatusOK, requestId)
		return
	}

	h.respond(w, Response{
		Data: map[string][]core.BucketlistRecord{"bucketlists": lists},
	}, http.StatusOK, requestId)
}

func (h *BucketHandler) HandleCreateBucketlist(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	identity := identityFrom(r)

	var req payload.BucketlistRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not create bucketlist",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateBucketlist,
			"request_id", requestId)
		return
	}

	list, err := h.service.CreateBucketlist(r.Context(), identity.UserID, req.Name)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not create bucketlist",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to create bucketlist",
			"error", err,
			"handler", CreateBucketlist,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Data: list}, http.StatusCreated, requestId)
}

// HandleGetBucketlist serializes the record the ownership guard already
// resolved; nothing is refetched.
func (h *BucketHandler) HandleGetBucketlist(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	list, ok := r.Context().Value(middleware.BucketlistKey).(core.BucketlistRecord)
	if !ok {
		h.respond(w, Response{
			Message: "Could not retrieve bucketlist",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("bucketlist missing from request context",
			"handler", GetBucketlist,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Data: list}, http.StatusOK, requestId)
}

func (h *BucketHandler) HandleUpdateBucketlist(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	current, ok := r.Context().Value(middleware.BucketlistKey).(core.BucketlistRecord)
	if !ok {
		h.respond(w, Response{
			Message: "Could not update bucketlist",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("bucketlist missing from request context",
			"handler", UpdateBucketlist,
			"request_id", requestId)
		return
	}

	var req payload.BucketlistRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not update bucketlist",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateBucketlist,
			"request_id", requestId)
		return
	}

	list, err := h.service.UpdateBucketlist(r.Context(), current.ID, req.Name)
	if err != nil {
		resp := Response{
			Message: "Could not update bucketlist",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrBucketlistNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to update bucketlist",
			"error", err,
			"handler", UpdateBucketlist,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Data: list}, http.StatusOK, requestId)
}

func (h *BucketHandler) HandleDeleteBucketlist(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	current, ok := r.Context().Value(middleware.BucketlistKey).(core.BucketlistRecord)
	if !ok {
		h.respond(w, Response{
			Message: "Could not delete bucketlist",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("bucketlist missing from request context",
			"handler", DeleteBucketlist,
			"request_id", requestId)
		return
	}

	if err := h.service.DeleteBucketlist(r.Context(), current.ID); err != nil {
		h.respond(w, Response{
			Message: "Could not delete bucketlist",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to delete bucketlist",
			"error", err,
			"handler", DeleteBucketlist,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Message: msgBucketlistDeleted}, http.StatusOK, requestId)
}

func identityFrom(r *http.Request) core.Identity {
	identity, _ := r.Context().Value(middleware.IdentityKey).(core.Identity)
	return identity
}
