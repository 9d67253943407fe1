package repository

import (
	"bucketlist/internal/db"
	"context"
	"errors"
	"fmt"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUserExists error = errors.New("user already exists")
var ErrBucketlistNotFound error = errors.New("bucketlist not found")
var ErrItemNotFound error = errors.New("bucketlist item not found")
var ErrItemExists error = errors.New("bucketlist item already exists")

type BucketRepository struct {
	db Storage
}

func NewBucketRepository(db Storage) *BucketRepository {
	return &BucketRepository{
		db: db,
	}
}

func (r *BucketRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &Bucketlist{}, &BucketlistItem{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *BucketRepository) CreateUser(ctx context.Context, user User) (User, error) {
	err := r.db.SaveToTable(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrUserExists
		}
		return User{}, fmt.Errorf("save user: %w", err)
	}

	return user, nil
}

func (r *BucketRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *BucketRepository) CreateBucketlist(ctx context.Context, list Bucketlist) (Bucketlist, error) {
	err := r.db.SaveToTable(ctx, &list)
	if err != nil {
		return Bucketlist{}, fmt.Errorf("save bucketlist: %w", err)
	}

	return list, nil
}

func (r *BucketRepository) GetBucketlist(ctx context.Context, id uint) (Bucketlist, error) {
	var list Bucketlist

	err := r.db.GetOneBy(ctx, "id", id, &list)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Bucketlist{}, ErrBucketlistNotFound
		}
		return Bucketlist{}, fmt.Errorf("get bucketlist by id: %w", err)
	}

	return list, nil
}

// GetUserBucketlists returns one page of the user's bucketlists in insertion
// order. An empty nameQuery matches everything; a non-empty one is a
// case-insensitive substring filter.
func (r *BucketRepository) GetUserBucketlists(ctx context.Context, userID, nameQuery string, offset, limit int) ([]Bucketlist, error) {
	lists := []Bucketlist{}

	if nameQuery == "" {
		err := r.db.FindPage(ctx, &lists, offset, limit, "created_by = ?", userID)
		if err != nil {
			return nil, fmt.Errorf("get user bucketlists: %w", err)
		}
		return lists, nil
	}

	err := r.db.FindPage(ctx, &lists, offset, limit,
		"created_by = ? AND name ILIKE ?", userID, "%"+nameQuery+"%")
	if err != nil {
		return nil, fmt.Errorf("search user bucketlists: %w", err)
	}

	return lists, nil
}

func (r *BucketRepository) UpdateBucketlist(ctx context.Context, list Bucketlist) error {
	err := r.db.UpdateRecord(ctx, &list)
	if err != nil {
		return fmt.Errorf("update bucketlist: %w", err)
	}

	return nil
}

// DeleteBucketlist removes the bucketlist together with its items in a single
// commit-or-rollback unit.
func (r *BucketRepository) DeleteBucketlist(ctx context.Context, id uint) error {
	err := r.db.Transaction(ctx, func(tx db.Tx) error {
		if err := tx.DeleteBy(ctx, &BucketlistItem{}, "bucketlist_id", id); err != nil {
			return fmt.Errorf("delete bucketlist items: %w", err)
		}
		if err := tx.DeleteBy(ctx, &Bucketlist{}, "id", id); err != nil {
			return fmt.Errorf("delete bucketlist: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete bucketlist transaction: %w", err)
	}

	return nil
}

func (r *BucketRepository) CreateItem(ctx context.Context, item BucketlistItem) (BucketlistItem, error) {
	err := r.db.SaveToTable(ctx, &item)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return BucketlistItem{}, ErrItemExists
		}
		return BucketlistItem{}, fmt.Errorf("save bucketlist item: %w", err)
	}

	return item, nil
}

func (r *BucketRepository) GetItem(ctx context.Context, id uint) (BucketlistItem, error) {
	var item BucketlistItem

	err := r.db.GetOneBy(ctx, "id", id, &item)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return BucketlistItem{}, ErrItemNotFound
		}
		return BucketlistItem{}, fmt.Errorf("get item by id: %w", err)
	}

	return item, nil
}

func (r *BucketRepository) GetBucketlistItems(ctx context.Context, bucketlistID uint) ([]BucketlistItem, error) {
	items := []BucketlistItem{}

	err := r.db.GetAllBy(ctx, "bucketlist_id", bucketlistID, &items)
	if err != nil {
		return nil, fmt.Errorf("get bucketlist items: %w", err)
	}

	return items, nil
}

func (r *BucketRepository) UpdateItem(ctx context.Context, item BucketlistItem) error {
	err := r.db.UpdateRecord(ctx, &item)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrItemExists
		}
		return fmt.Errorf("update bucketlist item: %w", err)
	}

	return nil
}

func (r *BucketRepository) DeleteItem(ctx context.Context, id uint) error {
	err := r.db.DeleteBy(ctx, &BucketlistItem{}, "id", id)
	if err != nil {
		return fmt.Errorf("delete bucketlist item: %w", err)
	}

	return nil
}
