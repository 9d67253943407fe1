package handler

import (
	"bucketlist/internal/core"
	"bucketlist/internal/http/handler/middleware"
	"bucketlist/internal/http/payload"
	"errors"
	"fmt"
	"net/http"
)

func (h *BucketHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	list, ok := r.Context().Value(middleware.BucketlistKey).(core.BucketlistRecord)
	if !ok {
		h.respond(w, Response{
			Message: "Could not retrieve items",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("bucketlist missing from request context",
			"handler", ListItems,
			"request_id", requestId)
		return
	}

	items, err := h.service.ListItems(r.Context(), list.ID)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve items",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to list items",
			"error", err,
			"handler", ListItems,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Data: map[string][]core.ItemRecord{"items": items},
	}, http.StatusOK, requestId)
}

func (h *BucketHandler) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	list, ok := r.Context().Value(middleware.BucketlistKey).(core.BucketlistRecord)
	if !ok {
		h.respond(w, Response{
			Message: "Could not create item",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("bucketlist missing from request context",
			"handler", CreateItem,
			"request_id", requestId)
		return
	}

	var req payload.ItemRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not create item",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateItem,
			"request_id", requestId)
		return
	}

	// req.Done is deliberately ignored: a new item always starts pending.
	item, err := h.service.CreateItem(r.Context(), list.ID, req.Name)
	if err != nil {
		resp := Response{
			Message: "Could not create item",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrItemExists) {
			httpCode = http.StatusConflict
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to create item",
			"error", err,
			"handler", CreateItem,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Data: item}, http.StatusCreated, requestId)
}

// HandleGetItem serializes the record the item guard already resolved.
func (h *BucketHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	item, ok := r.Context().Value(middleware.ItemKey).(core.ItemRecord)
	if !ok {
		h.respond(w, Response{
			Message: "Could not retrieve item",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("item missing from request context",
			"handler", GetItem,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Data: item}, http.StatusOK, requestId)
}

func (h *BucketHandler) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	current, ok := r.Context().Value(middleware.ItemKey).(core.ItemRecord)
	if !ok {
		h.respond(w, Response{
			Message: "Could not update item",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("item missing from request context",
			"handler", UpdateItem,
			"request_id", requestId)
		return
	}

	var req payload.ItemRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not update item",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateItem,
			"request_id", requestId)
		return
	}

	item, err := h.service.UpdateItem(r.Context(), current.ID, req.Name, req.Done)
	if err != nil {
		resp := Response{
			Message: "Could not update item",
		}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrItemNotFound):
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		case errors.Is(err, core.ErrItemExists):
			httpCode = http.StatusConflict
			resp.Error = err.Error()
		default:
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to update item",
			"error", err,
			"handler", UpdateItem,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Data: item}, http.StatusOK, requestId)
}

func (h *BucketHandler) HandleDeleteItem(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	current, ok := r.Context().Value(middleware.ItemKey).(core.ItemRecord)
	if !ok {
		h.respond(w, Response{
			Message: "Could not delete item",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("item missing from request context",
			"handler", DeleteItem,
			"request_id", requestId)
		return
	}

	if err := h.service.DeleteItem(r.Context(), current.ID); err != nil {
		h.respond(w, Response{
			Message: "Could not delete item",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to delete item",
			"error", err,
			"handler", DeleteItem,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Message: msgItemDeleted}, http.StatusOK, requestId)
}
