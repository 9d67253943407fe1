package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"bucketlist/internal/core"
	"bucketlist/internal/http/handler"
	"bucketlist/internal/http/handler/fake"
	"bucketlist/internal/http/handler/middleware"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("BucketHandler", func() {
	var (
		bh            *handler.BucketHandler
		fakeService   *fake.BucketService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request

		identity core.Identity
		fakeErr  error
	)

	withIdentity := func(r *http.Request) *http.Request {
		return r.WithContext(context.WithValue(r.Context(), middleware.IdentityKey, identity))
	}

	withBucketlist := func(r *http.Request, list core.BucketlistRecord) *http.Request {
		return r.WithContext(context.WithValue(r.Context(), middleware.BucketlistKey, list))
	}

	withItem := func(r *http.Request, item core.ItemRecord) *http.Request {
		return r.WithContext(context.WithValue(r.Context(), middleware.ItemKey, item))
	}

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.BucketService)
		fakeValidator = new(fake.RequestValidator)

		fakeValidator.DecodeAndValidateJSONPayloadStub = func(rec *http.Request, jsonPayload interface{}) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		identity = core.Identity{UserID: "user-123", Username: "alice"}

		w = httptest.NewRecorder()
		bh = handler.NewBucketHandler(fakeLogger, fakeValidator, fakeService)
	})

	Describe("HandleRegister", func() {
		var response handler.Response

		BeforeEach(func() {
			body := strings.NewReader(`{"username":"alice","password":"secret-pass","email":"alice@example.com"}`)
			req = httptest.NewRequest("POST", "/auth/register", body)
			req.Header.Set("Content-Type", "application/json")
		})

		JustBeforeEach(func() {
			bh.HandleRegister(w, req)
		})

		When("registration succeeds", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.UserRecord{ID: "user-123", Username: "alice"}, nil)
			})

			It("should return 201 with the user record", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))

				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response.Message).To(Equal("user registered successfully"))

				Expect(fakeService.RegisterCallCount()).To(Equal(1))
				_, argMsg := fakeService.RegisterArgsForCall(0)
				Expect(argMsg.Username).To(Equal("alice"))
				Expect(argMsg.Email).To(Equal("alice@example.com"))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = nil
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.RegisterCallCount()).To(Equal(0))
			})
		})

		When("the username or email is taken", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.UserRecord{}, core.ErrUserExists)
			})

			It("should return 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrUserExists.Error()))
			})
		})

		When("registration fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.UserRecord{}, fakeErr)
			})

			It("should return 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleLogin", func() {
		var response handler.Response

		BeforeEach(func() {
			body := strings.NewReader(`{"username":"alice","password":"secret-pass"}`)
			req = httptest.NewRequest("POST", "/auth/login", body)
			req.Header.Set("Content-Type", "application/json")
		})

		JustBeforeEach(func() {
			bh.HandleLogin(w, req)
		})

		When("authentication succeeds", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("signed.token", nil)
			})

			It("should return the token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response.Message).To(Equal("login successful"))

				data, ok := response.Data.(map[string]interface{})
				Expect(ok).To(BeTrue())
				Expect(data["token"]).To(Equal("signed.token"))
			})
		})

		When("the credentials are wrong", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrIncorrectPassword)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("Login failed"))
			})
		})

		When("the user is unknown", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrUserNotFound)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("HandleLogout", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/auth/logout", nil)
			req.Header.Set("Authorization", "Bearer valid.token")
		})

		JustBeforeEach(func() {
			bh.HandleLogout(w, req)
		})

		When("revocation succeeds", func() {
			BeforeEach(func() {
				fakeService.RevokeTokenReturns(nil)
			})

			It("should return 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("logout successful"))

				Expect(fakeService.RevokeTokenCallCount()).To(Equal(1))
				_, argToken := fakeService.RevokeTokenArgsForCall(0)
				Expect(argToken).To(Equal("valid.token"))
			})
		})

		When("revocation fails", func() {
			BeforeEach(func() {
				fakeService.RevokeTokenReturns(fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleListBucketlists", func() {
		BeforeEach(func() {
			req = withIdentity(httptest.NewRequest("GET", "/bucketlists?q=trav&page=2&limit=10", nil))
		})

		JustBeforeEach(func() {
			bh.HandleListBucketlists(w, req)
		})

		When("the user has bucketlists", func() {
			BeforeEach(func() {
				fakeService.ListBucketlistsReturns([]core.BucketlistRecord{
					{ID: 1, Name: "travel"},
				}, nil)
			})

			It("should return the page", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]map[string][]core.BucketlistRecord
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["data"]["bucketlists"]).To(HaveLen(1))

				Expect(fakeService.ListBucketlistsCallCount()).To(Equal(1))
				_, argUser, argQuery := fakeService.ListBucketlistsArgsForCall(0)
				Expect(argUser).To(Equal(identity.UserID))
				Expect(argQuery).To(Equal(core.ListQuery{Query: "trav", Page: 2, Limit: 10}))
			})
		})

		When("the page has no results", func() {
			BeforeEach(func() {
				fakeService.ListBucketlistsReturns([]core.BucketlistRecord{}, nil)
			})

			It("should return 200 with a neutral empty-result message", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("no bucketlists found"))
			})
		})

		When("the page parameter is not an integer", func() {
			BeforeEach(func() {
				req = withIdentity(httptest.NewRequest("GET", "/bucketlists?page=one", nil))
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("page must be an integer"))
				Expect(fakeService.ListBucketlistsCallCount()).To(Equal(0))
			})
		})

		When("the requested page is below one", func() {
			BeforeEach(func() {
				fakeService.ListBucketlistsReturns(nil, core.ErrInvalidPage)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(w.Body.String()).To(ContainSubstring("please specify a valid page"))
			})
		})

		When("listing fails", func() {
			BeforeEach(func() {
				fakeService.ListBucketlistsReturns(nil, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleCreateBucketlist", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"name":"travel"}`)
			req = withIdentity(httptest.NewRequest("POST", "/bucketlists", body))
		})

		JustBeforeEach(func() {
			bh.HandleCreateBucketlist(w, req)
		})

		When("creation succeeds", func() {
			BeforeEach(func() {
				fakeService.CreateBucketlistReturns(core.BucketlistRecord{ID: 7, Name: "travel"}, nil)
			})

			It("should return 201 with the record", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))

				Expect(fakeService.CreateBucketlistCallCount()).To(Equal(1))
				_, argUser, argName := fakeService.CreateBucketlistArgsForCall(0)
				Expect(argUser).To(Equal(identity.UserID))
				Expect(argName).To(Equal("travel"))
			})
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = nil
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.CreateBucketlistCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleGetBucketlist", func() {
		JustBeforeEach(func() {
			bh.HandleGetBucketlist(w, req)
		})

		When("the guard injected the bucketlist", func() {
			BeforeEach(func() {
				req = withBucketlist(
					httptest.NewRequest("GET", "/bucketlists/7", nil),
					core.BucketlistRecord{ID: 7, Name: "travel"})
			})

			It("should serialize it without refetching", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("travel"))
			})
		})

		When("the bucketlist is missing from the context", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/bucketlists/7", nil)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleUpdateBucketlist", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"name":"renamed"}`)
			req = withBucketlist(
				httptest.NewRequest("PUT", "/bucketlists/7", body),
				core.BucketlistRecord{ID: 7, Name: "travel"})
		})

		JustBeforeEach(func() {
			bh.HandleUpdateBucketlist(w, req)
		})

		When("the update succeeds", func() {
			BeforeEach(func() {
				fakeService.UpdateBucketlistReturns(core.BucketlistRecord{ID: 7, Name: "renamed"}, nil)
			})

			It("should return the updated record", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("renamed"))

				Expect(fakeService.UpdateBucketlistCallCount()).To(Equal(1))
				_, argId, argName := fakeService.UpdateBucketlistArgsForCall(0)
				Expect(argId).To(Equal(uint(7)))
				Expect(argName).To(Equal("renamed"))
			})
		})

		When("the bucketlist vanished", func() {
			BeforeEach(func() {
				fakeService.UpdateBucketlistReturns(core.BucketlistRecord{}, core.ErrBucketlistNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleDeleteBucketlist", func() {
		BeforeEach(func() {
			req = withBucketlist(
				httptest.NewRequest("DELETE", "/bucketlists/7", nil),
				core.BucketlistRecord{ID: 7, Name: "travel"})
		})

		JustBeforeEach(func() {
			bh.HandleDeleteBucketlist(w, req)
		})

		When("deletion succeeds", func() {
			BeforeEach(func() {
				fakeService.DeleteBucketlistReturns(nil)
			})

			It("should return 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("bucketlist deleted"))

				Expect(fakeService.DeleteBucketlistCallCount()).To(Equal(1))
				_, argId := fakeService.DeleteBucketlistArgsForCall(0)
				Expect(argId).To(Equal(uint(7)))
			})
		})

		When("deletion fails", func() {
			BeforeEach(func() {
				fakeService.DeleteBucketlistReturns(fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleListItems", func() {
		BeforeEach(func() {
			req = withBucketlist(
				httptest.NewRequest("GET", "/bucketlists/7/items", nil),
				core.BucketlistRecord{ID: 7, Name: "travel"})
		})

		JustBeforeEach(func() {
			bh.HandleListItems(w, req)
		})

		When("the bucketlist has items", func() {
			BeforeEach(func() {
				fakeService.ListItemsReturns([]core.ItemRecord{
					{ID: 3, Name: "skydiving", BucketlistID: 7},
				}, nil)
			})

			It("should return the items", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]map[string][]core.ItemRecord
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["data"]["items"]).To(HaveLen(1))

				Expect(fakeService.ListItemsCallCount()).To(Equal(1))
				_, argId := fakeService.ListItemsArgsForCall(0)
				Expect(argId).To(Equal(uint(7)))
			})
		})

		When("listing fails", func() {
			BeforeEach(func() {
				fakeService.ListItemsReturns(nil, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleCreateItem", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"name":"skydiving","done":"true"}`)
			req = withBucketlist(
				httptest.NewRequest("POST", "/bucketlists/7/items", body),
				core.BucketlistRecord{ID: 7, Name: "travel"})
		})

		JustBeforeEach(func() {
			bh.HandleCreateItem(w, req)
		})

		When("creation succeeds", func() {
			BeforeEach(func() {
				fakeService.CreateItemReturns(core.ItemRecord{ID: 3, Name: "skydiving", BucketlistID: 7}, nil)
			})

			It("should return 201 ignoring the done field", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))

				Expect(fakeService.CreateItemCallCount()).To(Equal(1))
				_, argList, argName := fakeService.CreateItemArgsForCall(0)
				Expect(argList).To(Equal(uint(7)))
				Expect(argName).To(Equal("skydiving"))
			})
		})

		When("the name is taken within the bucketlist", func() {
			BeforeEach(func() {
				fakeService.CreateItemReturns(core.ItemRecord{}, core.ErrItemExists)
			})

			It("should return 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})
	})

	Describe("HandleUpdateItem", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"name":"wingsuit","done":"True"}`)
			req = withItem(
				httptest.NewRequest("PUT", "/bucketlists/7/items/3", body),
				core.ItemRecord{ID: 3, Name: "skydiving", BucketlistID: 7})
		})

		JustBeforeEach(func() {
			bh.HandleUpdateItem(w, req)
		})

		When("the update succeeds", func() {
			BeforeEach(func() {
				fakeService.UpdateItemReturns(core.ItemRecord{ID: 3, Name: "wingsuit", Done: true}, nil)
			})

			It("should pass the raw done string through", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				Expect(fakeService.UpdateItemCallCount()).To(Equal(1))
				_, argId, argName, argDone := fakeService.UpdateItemArgsForCall(0)
				Expect(argId).To(Equal(uint(3)))
				Expect(argName).To(Equal("wingsuit"))
				Expect(argDone).To(Equal("True"))
			})
		})

		When("the item vanished", func() {
			BeforeEach(func() {
				fakeService.UpdateItemReturns(core.ItemRecord{}, core.ErrItemNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the new name collides", func() {
			BeforeEach(func() {
				fakeService.UpdateItemReturns(core.ItemRecord{}, core.ErrItemExists)
			})

			It("should return 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})
	})

	Describe("HandleDeleteItem", func() {
		BeforeEach(func() {
			req = withItem(
				httptest.NewRequest("DELETE", "/bucketlists/7/items/3", nil),
				core.ItemRecord{ID: 3, Name: "skydiving", BucketlistID: 7})
		})

		JustBeforeEach(func() {
			bh.HandleDeleteItem(w, req)
		})

		When("deletion succeeds", func() {
			BeforeEach(func() {
				fakeService.DeleteItemReturns(nil)
			})

			It("should return 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("item deleted"))

				Expect(fakeService.DeleteItemCallCount()).To(Equal(1))
				_, argId := fakeService.DeleteItemArgsForCall(0)
				Expect(argId).To(Equal(uint(3)))
			})
		})

		When("deletion fails", func() {
			BeforeEach(func() {
				fakeService.DeleteItemReturns(fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})
})
