package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	"bucketlist/internal/core"
	"bucketlist/internal/http/handler/middleware"
	"bucketlist/internal/http/handler/middleware/fake"

	"github.com/go-chi/chi/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Guard", func() {
	var (
		guard    *middleware.Guard
		fakeAuth *fake.Authorizer
		w        *httptest.ResponseRecorder
		req      *http.Request

		identity core.Identity
		fakeErr  error
	)

	withURLParam := func(r *http.Request, key, value string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add(key, value)
		return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}

	BeforeEach(func() {
		fakeAuth = new(fake.Authorizer)
		guard = middleware.NewGuard(zap.NewNop().Sugar(), fakeAuth)
		w = httptest.NewRecorder()

		identity = core.Identity{UserID: "user-123", Username: "alice"}
		fakeErr = errors.New("fake error")
	})

	Describe("RequireAuth", func() {
		var (
			next    http.Handler
			gotCtx  context.Context
			reached bool
		)

		BeforeEach(func() {
			reached = false
			next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				gotCtx = r.Context()
			})

			req = httptest.NewRequest("GET", "/bucketlists", nil)
		})

		JustBeforeEach(func() {
			guard.RequireAuth(next).ServeHTTP(w, req)
		})

		When("the token is valid", func() {
			BeforeEach(func() {
				req.Header.Set("Authorization", "Bearer valid.token")
				fakeAuth.VerifyTokenReturns(identity, nil)
			})

			It("should inject the identity and continue", func() {
				Expect(reached).To(BeTrue())
				Expect(gotCtx.Value(middleware.IdentityKey)).To(Equal(identity))

				Expect(fakeAuth.VerifyTokenCallCount()).To(Equal(1))
				_, argToken := fakeAuth.VerifyTokenArgsForCall(0)
				Expect(argToken).To(Equal("valid.token"))
			})
		})

		When("the header is missing", func() {
			It("should return 401 without calling the authorizer", func() {
				Expect(reached).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("You need to pass your token as a header"))
				Expect(fakeAuth.VerifyTokenCallCount()).To(Equal(0))
			})
		})

		When("the header has no bearer prefix", func() {
			BeforeEach(func() {
				req.Header.Set("Authorization", "raw.token")
			})

			It("should return 401", func() {
				Expect(reached).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the token has expired", func() {
			BeforeEach(func() {
				req.Header.Set("Authorization", "Bearer expired.token")
				fakeAuth.VerifyTokenReturns(core.Identity{}, core.ErrTokenExpired)
			})

			It("should return 401 with the expiry message", func() {
				Expect(reached).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("Your token has expired! Please login again"))
			})
		})

		When("the token is otherwise rejected", func() {
			BeforeEach(func() {
				req.Header.Set("Authorization", "Bearer bad.token")
				fakeAuth.VerifyTokenReturns(core.Identity{}, fakeErr)
			})

			It("should return 401 with a generic message", func() {
				Expect(reached).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("Could not authorize request"))
			})
		})
	})

	Describe("BucketlistOwner", func() {
		var (
			next    http.Handler
			gotCtx  context.Context
			reached bool
			list    core.BucketlistRecord
		)

		BeforeEach(func() {
			reached = false
			next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				gotCtx = r.Context()
			})

			list = core.BucketlistRecord{ID: 7, Name: "travel", CreatedBy: identity.UserID}

			req = httptest.NewRequest("GET", "/bucketlists/7", nil)
			req = withURLParam(req, "id", "7")
			req = req.WithContext(context.WithValue(req.Context(), middleware.IdentityKey, identity))
		})

		JustBeforeEach(func() {
			guard.BucketlistOwner(next).ServeHTTP(w, req)
		})

		When("the bucketlist belongs to the caller", func() {
			BeforeEach(func() {
				fakeAuth.OwnedBucketlistReturns(list, nil)
			})

			It("should inject the bucketlist and continue", func() {
				Expect(reached).To(BeTrue())
				Expect(gotCtx.Value(middleware.BucketlistKey)).To(Equal(list))

				Expect(fakeAuth.OwnedBucketlistCallCount()).To(Equal(1))
				_, argId, argUser := fakeAuth.OwnedBucketlistArgsForCall(0)
				Expect(argId).To(Equal(uint(7)))
				Expect(argUser).To(Equal(identity.UserID))
			})
		})

		When("no identity was injected upstream", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/bucketlists/7", nil)
				req = withURLParam(req, "id", "7")
			})

			It("should return 401", func() {
				Expect(reached).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the id is not an integer", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/bucketlists/xyz", nil)
				req = withURLParam(req, "id", "xyz")
				req = req.WithContext(context.WithValue(req.Context(), middleware.IdentityKey, identity))
			})

			It("should return 404", func() {
				Expect(reached).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(w.Body.String()).To(ContainSubstring("No such bucketlist"))
				Expect(fakeAuth.OwnedBucketlistCallCount()).To(Equal(0))
			})
		})

		When("the bucketlist does not exist", func() {
			BeforeEach(func() {
				fakeAuth.OwnedBucketlistReturns(core.BucketlistRecord{}, core.ErrBucketlistNotFound)
			})

			It("should return 404", func() {
				Expect(reached).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(w.Body.String()).To(ContainSubstring("No such bucketlist. You can only access an existing bucketlist"))
			})
		})

		When("the bucketlist belongs to someone else", func() {
			BeforeEach(func() {
				fakeAuth.OwnedBucketlistReturns(core.BucketlistRecord{}, core.ErrNotOwner)
			})

			It("should return 403", func() {
				Expect(reached).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusForbidden))
				Expect(w.Body.String()).To(ContainSubstring("You do not have permission to access this bucketlist"))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeAuth.OwnedBucketlistReturns(core.BucketlistRecord{}, fakeErr)
			})

			It("should return 500", func() {
				Expect(reached).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("ItemInBucketlist", func() {
		var (
			next    http.Handler
			gotCtx  context.Context
			reached bool
			list    core.BucketlistRecord
			item    core.ItemRecord
		)

		BeforeEach(func() {
			reached = false
			next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				gotCtx = r.Context()
			})

			list = core.BucketlistRecord{ID: 7, Name: "travel"}
			item = core.ItemRecord{ID: 3, BucketlistID: 7, Name: "skydiving"}

			req = httptest.NewRequest("GET", "/bucketlists/7/items/3", nil)
			req = withURLParam(req, "item_id", "3")
			req = req.WithContext(context.WithValue(req.Context(), middleware.BucketlistKey, list))
		})

		JustBeforeEach(func() {
			guard.ItemInBucketlist(next).ServeHTTP(w, req)
		})

		When("the item belongs to the bucketlist", func() {
			BeforeEach(func() {
				fakeAuth.ItemInBucketlistReturns(item, nil)
			})

			It("should inject the item and continue", func() {
				Expect(reached).To(BeTrue())
				Expect(gotCtx.Value(middleware.ItemKey)).To(Equal(item))

				Expect(fakeAuth.ItemInBucketlistCallCount()).To(Equal(1))
				_, argItem, argList := fakeAuth.ItemInBucketlistArgsForCall(0)
				Expect(argItem).To(Equal(uint(3)))
				Expect(argList).To(Equal(uint(7)))
			})
		})

		When("the item id is not an integer", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/bucketlists/7/items/xyz", nil)
				req = withURLParam(req, "item_id", "xyz")
				req = req.WithContext(context.WithValue(req.Context(), middleware.BucketlistKey, list))
			})

			It("should return 404", func() {
				Expect(reached).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(fakeAuth.ItemInBucketlistCallCount()).To(Equal(0))
			})
		})

		When("the item is not in the bucketlist", func() {
			BeforeEach(func() {
				fakeAuth.ItemInBucketlistReturns(core.ItemRecord{}, core.ErrItemNotFound)
			})

			It("should return 404", func() {
				Expect(reached).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(w.Body.String()).To(ContainSubstring("No such item in your bucketlist. You can only edit/update existing items"))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeAuth.ItemInBucketlistReturns(core.ItemRecord{}, fakeErr)
			})

			It("should return 500", func() {
				Expect(reached).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})
})
