package handler

import (
	"bucketlist/internal/http/handler/middleware"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

var (
	Register         = "POST /auth/register/"
	Login            = "POST /auth/login/"
	Logout           = "GET /auth/logout/"
	ListBucketlists  = "GET /bucketlists/"
	CreateBucketlist = "POST /bucketlists/"
	GetBucketlist    = "GET /bucketlists/{id}"
	UpdateBucketlist = "PUT /bucketlists/{id}"
	DeleteBucketlist = "DELETE /bucketlists/{id}"
	ListItems        = "GET /bucketlists/{id}/items"
	CreateItem       = "POST /bucketlists/{id}/items"
	GetItem          = "GET /bucketlists/{id}/items/{item_id}"
	UpdateItem       = "PUT /bucketlists/{id}/items/{item_id}"
	DeleteItem       = "DELETE /bucketlists/{id}/items/{item_id}"
)

type BucketHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	service          BucketService
}

func NewBucketHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, service BucketService) *BucketHandler {
	return &BucketHandler{
		logs:             logger,
		requestValidator: requestValidator,
		service:          service,
	}
}

func (h *BucketHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}
