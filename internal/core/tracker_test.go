package core_test

import (
	"context"
	"errors"
	"math"
	"time"

	"bucketlist/internal/core"
	"bucketlist/internal/core/fake"
	"bucketlist/internal/repository"
	tokenIssuer "bucketlist/pkg/jwt"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Tracker", func() {
	var (
		fakeRepo        *fake.Repository
		fakeJWT         *fake.TokenIssuer
		fakeRevocations *fake.RevocationList
		fakeLogger      *zap.SugaredLogger
		ctx             context.Context

		tracker *core.Tracker

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.TokenIssuer)
		fakeRevocations = new(fake.RevocationList)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		tracker = core.NewTracker(fakeLogger, fakeRepo, fakeJWT, fakeRevocations)

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			msg  core.RegisterMessage
			user core.UserRecord
			err  error
		)

		BeforeEach(func() {
			msg = core.RegisterMessage{
				Username: "testuser",
				Email:    "test@example.com",
				Password: "testpass",
			}

			fakeRepo.CreateUserStub = func(ctx context.Context, user repository.User) (repository.User, error) {
				return user, nil
			}
		})

		JustBeforeEach(func() {
			user, err = tracker.Register(ctx, msg)
		})

		When("registration succeeds", func() {
			It("should create the user with a hashed password", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Username).To(Equal(msg.Username))
				Expect(user.Email).To(Equal(msg.Email))
				Expect(user.ID).NotTo(BeEmpty())

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, argUser := fakeRepo.CreateUserArgsForCall(0)
				Expect(argUser.Username).To(Equal(msg.Username))
				Expect(argUser.PasswordHash).NotTo(Equal(msg.Password))
				Expect(argUser.PasswordHash).NotTo(BeEmpty())
			})
		})

		When("the username or email is taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserStub = nil
				fakeRepo.CreateUserReturns(repository.User{}, repository.ErrUserExists)
			})

			It("should return user exists error", func() {
				Expect(err).To(MatchError(core.ErrUserExists))
			})
		})

		When("saving the user fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserStub = nil
				fakeRepo.CreateUserReturns(repository.User{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Authenticate", func() {
		var (
			authMsg        core.AuthMessage
			token          string
			err            error
			userId         string
			tokenInfo      tokenIssuer.TokenInfo
			hashedPassword string
			genToken       *jwt.Token
		)

		BeforeEach(func() {
			userId = uuid.New().String()
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
			genToken = jwt.New(jwt.SigningMethodHS512)

			authMsg = core.AuthMessage{
				Username: "testuser",
				Password: "testpass",
			}

			tokenInfo = tokenIssuer.TokenInfo{
				UserName:   authMsg.Username,
				Subject:    userId,
				Expiration: 24,
			}
		})

		JustBeforeEach(func() {
			token, err = tracker.Authenticate(ctx, authMsg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
					ID:           userId,
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should return a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(1))
				_, username := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(username).To(Equal(authMsg.Username))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				argGen := fakeJWT.GenerateArgsForCall(0)
				Expect(argGen).To(Equal(tokenInfo))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				argSign := fakeJWT.SignArgsForCall(0)
				Expect(argSign).To(Equal(genToken))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				authMsg.Password = "wrongpass"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
					ID:           userId,
				}, nil)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("VerifyToken", func() {
		var (
			token    string
			identity core.Identity
			err      error
			userId   string
		)

		BeforeEach(func() {
			token = "valid.token"
			userId = uuid.NewString()
		})

		JustBeforeEach(func() {
			identity, err = tracker.VerifyToken(ctx, token)
		})

		When("token is valid and not revoked", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": userId, "username": "testuser"}, nil)
				fakeRevocations.IsRevokedReturns(false, nil)
			})

			It("should return the identity", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(identity.UserID).To(Equal(userId))
				Expect(identity.Username).To(Equal("testuser"))

				Expect(fakeJWT.ValidateCallCount()).To(Equal(1))
				Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal(token))

				Expect(fakeRevocations.IsRevokedCallCount()).To(Equal(1))
				_, argToken := fakeRevocations.IsRevokedArgsForCall(0)
				Expect(argToken).To(Equal(token))
			})
		})

		When("token has expired", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, tokenIssuer.ErrTokenExpired)
			})

			It("should return token expired error", func() {
				Expect(err).To(MatchError(core.ErrTokenExpired))
				Expect(fakeRevocations.IsRevokedCallCount()).To(Equal(0))
			})
		})

		When("token signature is invalid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("should return token not valid error", func() {
				Expect(err).To(MatchError(core.ErrTokenNotValid))
			})
		})

		When("token has been revoked", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": userId}, nil)
				fakeRevocations.IsRevokedReturns(true, nil)
			})

			It("should return token revoked error", func() {
				Expect(err).To(MatchError(core.ErrTokenRevoked))
			})
		})

		When("revocation lookup fails", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": userId}, nil)
				fakeRevocations.IsRevokedReturns(false, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("token carries no subject", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"username": "testuser"}, nil)
				fakeRevocations.IsRevokedReturns(false, nil)
			})

			It("should return token not valid error", func() {
				Expect(err).To(MatchError(core.ErrTokenNotValid))
			})
		})
	})

	Describe("RevokeToken", func() {
		var (
			token string
			err   error
			exp   time.Time
		)

		BeforeEach(func() {
			token = "valid.token"
			exp = time.Now().Add(10 * time.Hour)
		})

		JustBeforeEach(func() {
			err = tracker.RevokeToken(ctx, token)
		})

		When("token is valid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{
					"sub": "user-123",
					"exp": float64(exp.Unix()),
				}, nil)
				fakeRevocations.RevokeReturns(nil)
			})

			It("should revoke until the token's natural expiry", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRevocations.RevokeCallCount()).To(Equal(1))
				_, argToken, argTTL := fakeRevocations.RevokeArgsForCall(0)
				Expect(argToken).To(Equal(token))
				Expect(argTTL).To(BeNumerically("~", 10*time.Hour, time.Minute))
			})
		})

		When("token is not valid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("should return token not valid error", func() {
				Expect(err).To(MatchError(core.ErrTokenNotValid))
				Expect(fakeRevocations.RevokeCallCount()).To(Equal(0))
			})
		})

		When("storing the revocation fails", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"exp": float64(exp.Unix())}, nil)
				fakeRevocations.RevokeReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("OwnedBucketlist", func() {
		var (
			userId string
			list   core.BucketlistRecord
			err    error
		)

		BeforeEach(func() {
			userId = uuid.NewString()
		})

		JustBeforeEach(func() {
			list, err = tracker.OwnedBucketlist(ctx, 7, userId)
		})

		When("the bucketlist belongs to the user", func() {
			BeforeEach(func() {
				fakeRepo.GetBucketlistReturns(repository.Bucketlist{
					ID:        7,
					Name:      "travel",
					CreatedBy: userId,
				}, nil)
			})

			It("should return the bucketlist record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(list.ID).To(Equal(uint(7)))
				Expect(list.Name).To(Equal("travel"))
				Expect(list.CreatedBy).To(Equal(userId))

				Expect(fakeRepo.GetBucketlistCallCount()).To(Equal(1))
				_, argId := fakeRepo.GetBucketlistArgsForCall(0)
				Expect(argId).To(Equal(uint(7)))
			})
		})

		When("the bucketlist does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetBucketlistReturns(repository.Bucketlist{}, repository.ErrBucketlistNotFound)
			})

			It("should return bucketlist not found error", func() {
				Expect(err).To(MatchError(core.ErrBucketlistNotFound))
			})
		})

		When("the bucketlist belongs to another user", func() {
			BeforeEach(func() {
				fakeRepo.GetBucketlistReturns(repository.Bucketlist{
					ID:        7,
					CreatedBy: uuid.NewString(),
				}, nil)
			})

			It("should return not owner error", func() {
				Expect(err).To(MatchError(core.ErrNotOwner))
			})
		})
	})

	Describe("ItemInBucketlist", func() {
		var (
			item core.ItemRecord
			err  error
		)

		JustBeforeEach(func() {
			item, err = tracker.ItemInBucketlist(ctx, 3, 7)
		})

		When("the item belongs to the bucketlist", func() {
			BeforeEach(func() {
				fakeRepo.GetItemReturns(repository.BucketlistItem{
					ID:           3,
					Name:         "skydiving",
					BucketlistID: 7,
				}, nil)
			})

			It("should return the item record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(item.ID).To(Equal(uint(3)))
				Expect(item.BucketlistID).To(Equal(uint(7)))

				Expect(fakeRepo.GetItemCallCount()).To(Equal(1))
				_, argId := fakeRepo.GetItemArgsForCall(0)
				Expect(argId).To(Equal(uint(3)))
			})
		})

		When("the item does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetItemReturns(repository.BucketlistItem{}, repository.ErrItemNotFound)
			})

			It("should return item not found error", func() {
				Expect(err).To(MatchError(core.ErrItemNotFound))
			})
		})

		When("the item belongs to a different bucketlist", func() {
			BeforeEach(func() {
				fakeRepo.GetItemReturns(repository.BucketlistItem{
					ID:           3,
					BucketlistID: 99,
				}, nil)
			})

			It("should read as not found", func() {
				Expect(err).To(MatchError(core.ErrItemNotFound))
			})
		})
	})

	Describe("ListBucketlists", func() {
		var (
			userId string
			query  core.ListQuery
			lists  []core.BucketlistRecord
			err    error
		)

		BeforeEach(func() {
			userId = uuid.NewString()
			query = core.ListQuery{Page: 1, Limit: 20}
		})

		JustBeforeEach(func() {
			lists, err = tracker.ListBucketlists(ctx, userId, query)
		})

		When("the user has bucketlists", func() {
			BeforeEach(func() {
				fakeRepo.GetUserBucketlistsReturns([]repository.Bucketlist{
					{ID: 1, Name: "travel", CreatedBy: userId},
					{ID: 2, Name: "books", CreatedBy: userId},
				}, nil)
			})

			It("should return the page in insertion order", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(lists).To(HaveLen(2))
				Expect(lists[0].Name).To(Equal("travel"))
				Expect(lists[1].Name).To(Equal("books"))

				Expect(fakeRepo.GetUserBucketlistsCallCount()).To(Equal(1))
				_, argUser, argQuery, argOffset, argLimit := fakeRepo.GetUserBucketlistsArgsForCall(0)
				Expect(argUser).To(Equal(userId))
				Expect(argQuery).To(BeEmpty())
				Expect(argOffset).To(Equal(0))
				Expect(argLimit).To(Equal(20))
			})
		})

		When("a search term is given", func() {
			BeforeEach(func() {
				query.Query = "trav"
				fakeRepo.GetUserBucketlistsReturns([]repository.Bucketlist{
					{ID: 1, Name: "travel", CreatedBy: userId},
				}, nil)
			})

			It("should pass the term to the repository", func() {
				Expect(err).NotTo(HaveOccurred())
				_, _, argQuery, _, _ := fakeRepo.GetUserBucketlistsArgsForCall(0)
				Expect(argQuery).To(Equal("trav"))
			})
		})

		When("a later page is requested", func() {
			BeforeEach(func() {
				query.Page = 3
				query.Limit = 10
				fakeRepo.GetUserBucketlistsReturns([]repository.Bucketlist{}, nil)
			})

			It("should offset by the preceding pages", func() {
				Expect(err).NotTo(HaveOccurred())
				_, _, _, argOffset, argLimit := fakeRepo.GetUserBucketlistsArgsForCall(0)
				Expect(argOffset).To(Equal(20))
				Expect(argLimit).To(Equal(10))
			})
		})

		When("the page is below one", func() {
			BeforeEach(func() {
				query.Page = 0
			})

			It("should return invalid page error", func() {
				Expect(err).To(MatchError(core.ErrInvalidPage))
				Expect(fakeRepo.GetUserBucketlistsCallCount()).To(Equal(0))
			})
		})

		When("the page would overflow the offset", func() {
			BeforeEach(func() {
				query.Page = math.MaxInt
				query.Limit = 100
			})

			It("should reject the page instead of passing a negative offset", func() {
				Expect(err).To(MatchError(core.ErrInvalidPage))
				Expect(fakeRepo.GetUserBucketlistsCallCount()).To(Equal(0))
			})
		})

		When("the limit is negative", func() {
			BeforeEach(func() {
				query.Limit = -30
				fakeRepo.GetUserBucketlistsReturns([]repository.Bucketlist{}, nil)
			})

			It("should sign-flip the limit", func() {
				Expect(err).NotTo(HaveOccurred())
				_, _, _, _, argLimit := fakeRepo.GetUserBucketlistsArgsForCall(0)
				Expect(argLimit).To(Equal(30))
			})
		})

		When("the limit exceeds the maximum", func() {
			BeforeEach(func() {
				query.Limit = 500
				fakeRepo.GetUserBucketlistsReturns([]repository.Bucketlist{}, nil)
			})

			It("should clamp the limit to 100", func() {
				Expect(err).NotTo(HaveOccurred())
				_, _, _, _, argLimit := fakeRepo.GetUserBucketlistsArgsForCall(0)
				Expect(argLimit).To(Equal(100))
			})
		})

		When("the limit is zero", func() {
			BeforeEach(func() {
				query.Limit = 0
				fakeRepo.GetUserBucketlistsReturns([]repository.Bucketlist{}, nil)
			})

			It("should raise the limit to 1", func() {
				Expect(err).NotTo(HaveOccurred())
				_, _, _, _, argLimit := fakeRepo.GetUserBucketlistsArgsForCall(0)
				Expect(argLimit).To(Equal(1))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserBucketlistsReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CreateBucketlist", func() {
		var (
			userId string
			list   core.BucketlistRecord
			err    error
		)

		BeforeEach(func() {
			userId = uuid.NewString()
			fakeRepo.CreateBucketlistStub = func(ctx context.Context, list repository.Bucketlist) (repository.Bucketlist, error) {
				list.ID = 42
				return list, nil
			}
		})

		JustBeforeEach(func() {
			list, err = tracker.CreateBucketlist(ctx, userId, "travel")
		})

		When("creation succeeds", func() {
			It("should return the created record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(list.ID).To(Equal(uint(42)))
				Expect(list.Name).To(Equal("travel"))
				Expect(list.CreatedBy).To(Equal(userId))
			})
		})

		When("creation fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateBucketlistStub = nil
				fakeRepo.CreateBucketlistReturns(repository.Bucketlist{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("UpdateBucketlist", func() {
		var (
			list core.BucketlistRecord
			err  error
		)

		JustBeforeEach(func() {
			list, err = tracker.UpdateBucketlist(ctx, 7, "renamed")
		})

		When("the bucketlist exists", func() {
			BeforeEach(func() {
				fakeRepo.GetBucketlistReturns(repository.Bucketlist{ID: 7, Name: "travel"}, nil)
				fakeRepo.UpdateBucketlistReturns(nil)
			})

			It("should rename the bucketlist", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(list.Name).To(Equal("renamed"))

				Expect(fakeRepo.UpdateBucketlistCallCount()).To(Equal(1))
				_, argList := fakeRepo.UpdateBucketlistArgsForCall(0)
				Expect(argList.ID).To(Equal(uint(7)))
				Expect(argList.Name).To(Equal("renamed"))
			})
		})

		When("the bucketlist does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetBucketlistReturns(repository.Bucketlist{}, repository.ErrBucketlistNotFound)
			})

			It("should return bucketlist not found error", func() {
				Expect(err).To(MatchError(core.ErrBucketlistNotFound))
				Expect(fakeRepo.UpdateBucketlistCallCount()).To(Equal(0))
			})
		})

		When("the update fails", func() {
			BeforeEach(func() {
				fakeRepo.GetBucketlistReturns(repository.Bucketlist{ID: 7}, nil)
				fakeRepo.UpdateBucketlistReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeleteBucketlist", func() {
		var err error

		JustBeforeEach(func() {
			err = tracker.DeleteBucketlist(ctx, 7)
		})

		When("deletion succeeds", func() {
			BeforeEach(func() {
				fakeRepo.DeleteBucketlistReturns(nil)
			})

			It("should delete the bucketlist", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.DeleteBucketlistCallCount()).To(Equal(1))
				_, argId := fakeRepo.DeleteBucketlistArgsForCall(0)
				Expect(argId).To(Equal(uint(7)))
			})
		})

		When("deletion fails", func() {
			BeforeEach(func() {
				fakeRepo.DeleteBucketlistReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListItems", func() {
		var (
			items []core.ItemRecord
			err   error
		)

		JustBeforeEach(func() {
			items, err = tracker.ListItems(ctx, 7)
		})

		When("the bucketlist has items", func() {
			BeforeEach(func() {
				fakeRepo.GetBucketlistItemsReturns([]repository.BucketlistItem{
					{ID: 1, Name: "skydiving", BucketlistID: 7},
					{ID: 2, Name: "surfing", BucketlistID: 7, Done: true},
				}, nil)
			})

			It("should return the item records", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(items).To(HaveLen(2))
				Expect(items[0].Name).To(Equal("skydiving"))
				Expect(items[1].Done).To(BeTrue())
			})
		})

		When("listing fails", func() {
			BeforeEach(func() {
				fakeRepo.GetBucketlistItemsReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CreateItem", func() {
		var (
			item core.ItemRecord
			err  error
		)

		BeforeEach(func() {
			fakeRepo.CreateItemStub = func(ctx context.Context, item repository.BucketlistItem) (repository.BucketlistItem, error) {
				item.ID = 3
				return item, nil
			}
		})

		JustBeforeEach(func() {
			item, err = tracker.CreateItem(ctx, 7, "skydiving")
		})

		When("creation succeeds", func() {
			It("should create a pending item", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(item.ID).To(Equal(uint(3)))
				Expect(item.Name).To(Equal("skydiving"))
				Expect(item.Done).To(BeFalse())

				Expect(fakeRepo.CreateItemCallCount()).To(Equal(1))
				_, argItem := fakeRepo.CreateItemArgsForCall(0)
				Expect(argItem.BucketlistID).To(Equal(uint(7)))
				Expect(argItem.Done).To(BeFalse())
			})
		})

		When("the name is already taken in the bucketlist", func() {
			BeforeEach(func() {
				fakeRepo.CreateItemStub = nil
				fakeRepo.CreateItemReturns(repository.BucketlistItem{}, repository.ErrItemExists)
			})

			It("should return item exists error", func() {
				Expect(err).To(MatchError(core.ErrItemExists))
			})
		})

		When("creation fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateItemStub = nil
				fakeRepo.CreateItemReturns(repository.BucketlistItem{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("UpdateItem", func() {
		var (
			done string
			item core.ItemRecord
			err  error
		)

		BeforeEach(func() {
			done = "true"
			fakeRepo.GetItemReturns(repository.BucketlistItem{
				ID:           3,
				Name:         "skydiving",
				BucketlistID: 7,
			}, nil)
			fakeRepo.UpdateItemReturns(nil)
		})

		JustBeforeEach(func() {
			item, err = tracker.UpdateItem(ctx, 3, "wingsuit", done)
		})

		When("done is the literal true", func() {
			It("should rename the item and mark it done", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(item.Name).To(Equal("wingsuit"))
				Expect(item.Done).To(BeTrue())

				Expect(fakeRepo.UpdateItemCallCount()).To(Equal(1))
				_, argItem := fakeRepo.UpdateItemArgsForCall(0)
				Expect(argItem.Name).To(Equal("wingsuit"))
				Expect(argItem.Done).To(BeTrue())
			})
		})

		When("done is capitalized True", func() {
			BeforeEach(func() {
				done = "True"
			})

			It("should mark the item done", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(item.Done).To(BeTrue())
			})
		})

		When("done is anything else", func() {
			BeforeEach(func() {
				done = "TRUE"
			})

			It("should reset the item to pending", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(item.Done).To(BeFalse())
			})
		})

		When("the item does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetItemReturns(repository.BucketlistItem{}, repository.ErrItemNotFound)
			})

			It("should return item not found error", func() {
				Expect(err).To(MatchError(core.ErrItemNotFound))
				Expect(fakeRepo.UpdateItemCallCount()).To(Equal(0))
			})
		})

		When("the new name collides within the bucketlist", func() {
			BeforeEach(func() {
				fakeRepo.UpdateItemReturns(repository.ErrItemExists)
			})

			It("should return item exists error", func() {
				Expect(err).To(MatchError(core.ErrItemExists))
			})
		})
	})

	Describe("DeleteItem", func() {
		var err error

		JustBeforeEach(func() {
			err = tracker.DeleteItem(ctx, 3)
		})

		When("deletion succeeds", func() {
			BeforeEach(func() {
				fakeRepo.DeleteItemReturns(nil)
			})

			It("should delete the item", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.DeleteItemCallCount()).To(Equal(1))
				_, argId := fakeRepo.DeleteItemArgsForCall(0)
				Expect(argId).To(Equal(uint(3)))
			})
		})

		When("deletion fails", func() {
			BeforeEach(func() {
				fakeRepo.DeleteItemReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
