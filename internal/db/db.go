package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("record already exists")

// Tx is the slice of the storage surface available inside a transaction.
type Tx interface {
	SaveToTable(ctx context.Context, records any) error
	UpdateRecord(ctx context.Context, record any) error
	DeleteBy(ctx context.Context, model any, column string, value any) error
}

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *PostgresDB) SaveToTable(ctx context.Context, records any) error {

	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr {
		return fmt.Errorf("records type must be a pointer: %T", records)
	}

	if err := f.DB.WithContext(ctx).Create(records).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	tx := f.DB.WithContext(ctx).Where(query, value).Order("id").Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

// FindPage loads one page of records matching the query, ordered by primary key.
// Offset and limit are applied as-is; callers own the pagination arithmetic.
func (f *PostgresDB) FindPage(ctx context.Context, dest any, offset, limit int, query string, args ...any) error {
	tx := f.DB.WithContext(ctx).Where(query, args...).Order("id").Offset(offset).Limit(limit).Find(dest)
	if tx.Error != nil {
		return fmt.Errorf("getting page of records: %w", tx.Error)
	}
	return nil
}

func (f *PostgresDB) UpdateRecord(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).Save(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("updating record: %w", err)
	}
	return nil
}

func (f *PostgresDB) DeleteBy(ctx context.Context, model any, column string, value any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).Delete(model).Error
	if err != nil {
		return fmt.Errorf("deleting records by %q: %w", column, err)
	}
	return nil
}

// Transaction runs fn in a single commit-or-rollback unit. Any error returned
// by fn rolls the whole unit back.
func (f *PostgresDB) Transaction(ctx context.Context, fn func(tx Tx) error) error {
	err := f.DB.WithContext(ctx).Transaction(func(gtx *gorm.DB) error {
		return fn(&PostgresDB{DB: gtx})
	})
	if err != nil {
		return fmt.Errorf("run transaction: %w", err)
	}
	return nil
}
