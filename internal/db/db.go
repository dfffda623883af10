package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("duplicate record")

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

// Insert creates a single record, filling in its generated primary key.
// A unique constraint violation comes back as ErrDuplicate.
func (f *PostgresDB) Insert(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert record: %w", err)
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

// GetAllOrdered loads every row of the entity's table into the given slice
// pointer, ordered by the raw order clause.
func (f *PostgresDB) GetAllOrdered(ctx context.Context, order string, entity any) error {
	tx := f.DB.WithContext(ctx).Order(order).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records ordered by %q: %w", order, tx.Error)
	}
	return nil
}

// UpdateColumns sets the given columns on the rows matching the condition.
// ErrNotFound when no row matched.
func (f *PostgresDB) UpdateColumns(ctx context.Context, entity any, values map[string]any, query string, args ...any) error {
	tx := f.DB.WithContext(ctx).Model(entity).Where(query, args...).Updates(values)
	if tx.Error != nil {
		return fmt.Errorf("updating records: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteWhere removes the rows matching the condition. ErrNotFound when no
// row matched.
func (f *PostgresDB) DeleteWhere(ctx context.Context, entity any, query string, args ...any) error {
	tx := f.DB.WithContext(ctx).Where(query, args...).Delete(entity)
	if tx.Error != nil {
		return fmt.Errorf("deleting records: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
