package core

import (
	"bucketlist/internal/repository"
	tokenIssuer "bucketlist/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrUserExists error = errors.New("user already exists")
var ErrUserNotFound error = errors.New("user not found")
var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrTokenNotValid error = errors.New("token is not valid")
var ErrTokenExpired error = errors.New("token expired")
var ErrTokenRevoked error = errors.New("token has been revoked")
var ErrBucketlistNotFound error = errors.New("no such bucketlist")
var ErrItemNotFound error = errors.New("no such item in your bucketlist")
var ErrItemExists error = errors.New("an item with that name already exists in the bucketlist")
var ErrNotOwner error = errors.New("bucketlist belongs to another user")
var ErrInvalidPage error = errors.New("please specify a valid page")

const tokenValidityHours = 24

const (
	minPageLimit = 1
	maxPageLimit = 100
)

// Tracker holds the application's domain logic: user credentials, ownership
// checks and bucketlist/item bookkeeping.
type Tracker struct {
	logs        *zap.SugaredLogger
	repo        Repository
	jwtIssuer   TokenIssuer
	revocations RevocationList
}

func NewTracker(logger *zap.SugaredLogger, repo Repository, jwt TokenIssuer, revocations RevocationList) *Tracker {
	return &Tracker{
		logs:        logger,
		repo:        repo,
		jwtIssuer:   jwt,
		revocations: revocations,
	}
}

// Register creates a new user account with a bcrypt-hashed password.
func (t *Tracker) Register(ctx context.Context, msg RegisterMessage) (UserRecord, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserRecord{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := t.repo.CreateUser(ctx, repository.User{
		ID:           uuid.NewString(),
		Username:     msg.Username,
		Email:        msg.Email,
		PasswordHash: string(hash),
		RegisteredAt: time.Now(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return UserRecord{}, ErrUserExists
		}
		return UserRecord{}, fmt.Errorf("create user: %w", err)
	}

	t.logs.Infow("user registered", "userId", user.ID, "username", user.Username)

	return userToRecord(user), nil
}

// Authenticate checks the provided username and password against the database.
// If the credentials are valid, it returns a signed JWT token for the user.
func (t *Tracker) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := t.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Expiration: tokenValidityHours,
	}
	token := t.jwtIssuer.Generate(tokenInfo)
	signed, err := t.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// VerifyToken resolves a bearer token to the identity it was issued for. The
// stateless signature/expiry check and the revocation-list lookup are two
// separate steps; only the latter touches persisted session state.
func (t *Tracker) VerifyToken(ctx context.Context, token string) (Identity, error) {
	claims, err := t.jwtIssuer.Validate(token)
	if err != nil {
		if errors.Is(err, tokenIssuer.ErrTokenExpired) {
			return Identity{}, ErrTokenExpired
		}
		return Identity{}, fmt.Errorf("%s: %w", err, ErrTokenNotValid)
	}

	revoked, err := t.revocations.IsRevoked(ctx, token)
	if err != nil {
		return Identity{}, fmt.Errorf("revocation lookup: %w", err)
	}
	if revoked {
		return Identity{}, ErrTokenRevoked
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return Identity{}, ErrTokenNotValid
	}
	username, _ := claims["username"].(string)

	return Identity{UserID: sub, Username: username}, nil
}

// RevokeToken invalidates the token until its natural expiry.
func (t *Tracker) RevokeToken(ctx context.Context, token string) error {
	claims, err := t.jwtIssuer.Validate(token)
	if err != nil {
		return fmt.Errorf("%s: %w", err, ErrTokenNotValid)
	}

	ttl := time.Duration(tokenValidityHours) * time.Hour
	if expVal, ok := claims["exp"].(float64); ok {
		ttl = time.Until(time.Unix(int64(expVal), 0))
	}

	if err := t.revocations.Revoke(ctx, token, ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	t.logs.Infow("token revoked", "sub", claims["sub"])

	return nil
}

// OwnedBucketlist loads the bucketlist and verifies it belongs to the user.
func (t *Tracker) OwnedBucketlist(ctx context.Context, bucketlistID uint, userID string) (BucketlistRecord, error) {
	list, err := t.repo.GetBucketlist(ctx, bucketlistID)
	if err != nil {
		if errors.Is(err, repository.ErrBucketlistNotFound) {
			return BucketlistRecord{}, ErrBucketlistNotFound
		}
		return BucketlistRecord{}, fmt.Errorf("get bucketlist: %w", err)
	}

	if list.CreatedBy != userID {
		t.logs.Infow("cross-user bucketlist access rejected",
			"bucketlistId", bucketlistID,
			"owner", list.CreatedBy,
			"requestedBy", userID)
		return BucketlistRecord{}, ErrNotOwner
	}

	return bucketlistToRecord(list), nil
}

// ItemInBucketlist loads the item and verifies its parent is the named
// bucketlist. An existing item under a different parent reads as not found.
func (t *Tracker) ItemInBucketlist(ctx context.Context, itemID, bucketlistID uint) (ItemRecord, error) {
	item, err := t.repo.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return ItemRecord{}, ErrItemNotFound
		}
		return ItemRecord{}, fmt.Errorf("get item: %w", err)
	}

	if item.BucketlistID != bucketlistID {
		return ItemRecord{}, ErrItemNotFound
	}

	return itemToRecord(item), nil
}

// ListBucketlists pages through the user's bucketlists. The limit is clamped
// into [1,100] with negative values sign-flipped; a page below 1 or too large
// to address is rejected.
func (t *Tracker) ListBucketlists(ctx context.Context, userID string, query ListQuery) ([]BucketlistRecord, error) {
	if query.Page < 1 {
		return nil, ErrInvalidPage
	}

	limit := clampLimit(query.Limit)
	if query.Page-1 > math.MaxInt/limit {
		// offset would overflow; no such page can hold data anyway
		return nil, ErrInvalidPage
	}
	offset := (query.Page - 1) * limit

	lists, err := t.repo.GetUserBucketlists(ctx, userID, query.Query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("get user bucketlists: %w", err)
	}

	records := make([]BucketlistRecord, len(lists))
	for i, list := range lists {
		records[i] = bucketlistToRecord(list)
	}

	return records, nil
}

func (t *Tracker) CreateBucketlist(ctx context.Context, userID, name string) (BucketlistRecord, error) {
	list, err := t.repo.CreateBucketlist(ctx, repository.Bucketlist{
		Name:      name,
		CreatedBy: userID,
	})
	if err != nil {
		return BucketlistRecord{}, fmt.Errorf("create bucketlist: %w", err)
	}

	t.logs.Infow("bucketlist created", "bucketlistId", list.ID, "userId", userID)

	return bucketlistToRecord(list), nil
}

func (t *Tracker) UpdateBucketlist(ctx context.Context, bucketlistID uint, name string) (BucketlistRecord, error) {
	list, err := t.repo.GetBucketlist(ctx, bucketlistID)
	if err != nil {
		if errors.Is(err, repository.ErrBucketlistNotFound) {
			return BucketlistRecord{}, ErrBucketlistNotFound
		}
		return BucketlistRecord{}, fmt.Errorf("get bucketlist: %w", err)
	}

	list.Name = name
	if err := t.repo.UpdateBucketlist(ctx, list); err != nil {
		return BucketlistRecord{}, fmt.Errorf("update bucketlist: %w", err)
	}

	return bucketlistToRecord(list), nil
}

func (t *Tracker) DeleteBucketlist(ctx context.Context, bucketlistID uint) error {
	if err := t.repo.DeleteBucketlist(ctx, bucketlistID); err != nil {
		return fmt.Errorf("delete bucketlist: %w", err)
	}

	t.logs.Infow("bucketlist deleted", "bucketlistId", bucketlistID)

	return nil
}

func (t *Tracker) ListItems(ctx context.Context, bucketlistID uint) ([]ItemRecord, error) {
	items, err := t.repo.GetBucketlistItems(ctx, bucketlistID)
	if err != nil {
		return nil, fmt.Errorf("get bucketlist items: %w", err)
	}

	records := make([]ItemRecord, len(items))
	for i, item := range items {
		records[i] = itemToRecord(item)
	}

	return records, nil
}

// CreateItem adds an item to the bucketlist. A freshly created item always
// starts pending, whatever the caller supplied for done.
func (t *Tracker) CreateItem(ctx context.Context, bucketlistID uint, name string) (ItemRecord, error) {
	item, err := t.repo.CreateItem(ctx, repository.BucketlistItem{
		Name:         name,
		Done:         false,
		BucketlistID: bucketlistID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrItemExists) {
			return ItemRecord{}, ErrItemExists
		}
		return ItemRecord{}, fmt.Errorf("create item: %w", err)
	}

	t.logs.Infow("item created", "itemId", item.ID, "bucketlistId", bucketlistID)

	return itemToRecord(item), nil
}

// UpdateItem renames the item and sets its done flag. Only the literal
// strings "true" and "True" mark the item done; anything else resets it to
// pending.
func (t *Tracker) UpdateItem(ctx context.Context, itemID uint, name, done string) (ItemRecord, error) {
	item, err := t.repo.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return ItemRecord{}, ErrItemNotFound
		}
		return ItemRecord{}, fmt.Errorf("get item: %w", err)
	}

	item.Name = name
	item.Done = done == "true" || done == "True"

	if err := t.repo.UpdateItem(ctx, item); err != nil {
		if errors.Is(err, repository.ErrItemExists) {
			return ItemRecord{}, ErrItemExists
		}
		return ItemRecord{}, fmt.Errorf("update item: %w", err)
	}

	return itemToRecord(item), nil
}

func (t *Tracker) DeleteItem(ctx context.Context, itemID uint) error {
	if err := t.repo.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	t.logs.Infow("item deleted", "itemId", itemID)

	return nil
}

// clampLimit forces the page size into [1,100]. Negative values are
// sign-flipped rather than rejected.
func clampLimit(limit int) int {
	if limit < 0 {
		limit = -limit
	}
	if limit < minPageLimit {
		limit = minPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return limit
}

func userToRecord(user repository.User) UserRecord {
	return UserRecord{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		Admin:        user.Admin,
		RegisteredOn: user.RegisteredAt,
	}
}

func bucketlistToRecord(list repository.Bucketlist) BucketlistRecord {
	return BucketlistRecord{
		ID:           list.ID,
		Name:         list.Name,
		CreatedBy:    list.CreatedBy,
		DateCreated:  list.CreatedAt,
		DateModified: list.UpdatedAt,
	}
}

func itemToRecord(item repository.BucketlistItem) ItemRecord {
	return ItemRecord{
		ID:           item.ID,
		BucketlistID: item.BucketlistID,
		Name:         item.Name,
		Done:         item.Done,
		DateCreated:  item.CreatedAt,
		DateModified: item.UpdatedAt,
	}
}
