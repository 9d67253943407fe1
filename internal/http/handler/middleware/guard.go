package middleware

import (
	"bucketlist/internal/core"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	msgTokenMissing       = "You need to pass your token as a header"
	msgTokenExpired       = "Your token has expired! Please login again"
	msgNoSuchBucketlist   = "No such bucketlist. You can only access an existing bucketlist"
	msgNoSuchItem         = "No such item in your bucketlist. You can only edit/update existing items"
	msgPermissionDenied   = "You do not have permission to access this bucketlist"
	msgAuthorizationFault = "Could not authorize request"
)

// Guard is the ordered request-authorization pipeline: RequireAuth resolves
// the caller, BucketlistOwner ties the routed bucketlist to the caller and
// ItemInBucketlist ties the routed item to that bucketlist. Each stage
// injects what it resolved into the request context so handlers never
// refetch.
type Guard struct {
	logs *zap.SugaredLogger
	auth Authorizer
}

func NewGuard(logger *zap.SugaredLogger, authorizer Authorizer) *Guard {
	return &Guard{
		logs: logger,
		auth: authorizer,
	}
}

func (g *Guard) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			g.reject(w, r, http.StatusUnauthorized, msgTokenMissing, "missing authorization header")
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header || token == "" {
			g.reject(w, r, http.StatusUnauthorized, msgTokenMissing, "malformed authorization header")
			return
		}

		identity, err := g.auth.VerifyToken(r.Context(), token)
		if err != nil {
			msg := msgAuthorizationFault
			if errors.Is(err, core.ErrTokenExpired) {
				msg = msgTokenExpired
			}
			g.reject(w, r, http.StatusUnauthorized, msg, err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), IdentityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (g *Guard) BucketlistOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := r.Context().Value(IdentityKey).(core.Identity)
		if !ok {
			g.reject(w, r, http.StatusUnauthorized, msgTokenMissing, "owner guard reached without identity")
			return
		}

		bucketlistID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			g.reject(w, r, http.StatusNotFound, msgNoSuchBucketlist, "bucketlist id is not an integer")
			return
		}

		list, err := g.auth.OwnedBucketlist(r.Context(), uint(bucketlistID), identity.UserID)
		if err != nil {
			switch {
			case errors.Is(err, core.ErrBucketlistNotFound):
				g.reject(w, r, http.StatusNotFound, msgNoSuchBucketlist, err.Error())
			case errors.Is(err, core.ErrNotOwner):
				g.reject(w, r, http.StatusForbidden, msgPermissionDenied, err.Error())
			default:
				g.reject(w, r, http.StatusInternalServerError, msgAuthorizationFault, err.Error())
			}
			return
		}

		ctx := context.WithValue(r.Context(), BucketlistKey, list)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (g *Guard) ItemInBucketlist(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		list, ok := r.Context().Value(BucketlistKey).(core.BucketlistRecord)
		if !ok {
			g.reject(w, r, http.StatusUnauthorized, msgTokenMissing, "item guard reached without bucketlist")
			return
		}

		itemID, err := strconv.ParseUint(chi.URLParam(r, "item_id"), 10, 64)
		if err != nil {
			g.reject(w, r, http.StatusNotFound, msgNoSuchItem, "item id is not an integer")
			return
		}

		item, err := g.auth.ItemInBucketlist(r.Context(), uint(itemID), list.ID)
		if err != nil {
			if errors.Is(err, core.ErrItemNotFound) {
				g.reject(w, r, http.StatusNotFound, msgNoSuchItem, err.Error())
				return
			}
			g.reject(w, r, http.StatusInternalServerError, msgAuthorizationFault, err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), ItemKey, item)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type guardResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (g *Guard) reject(w http.ResponseWriter, r *http.Request, code int, message, reason string) {
	requestId := ""
	if reqIdCtx := r.Context().Value(RequestIDKey); reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}

	g.logs.Infow("request rejected by guard",
		"reason", reason,
		"status", code,
		"path", r.URL.Path,
		"request_id", requestId)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(guardResponse{Message: message, Error: reason}); err != nil {
		g.logs.Errorw("failed to encode guard response", "error", err, "request_id", requestId)
	}
}
