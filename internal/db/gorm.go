package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

const pingTimeout = 5 * time.Second

type GormDB struct {
	DB *gorm.DB
}

func NewGormDB(ctx context.Context, dsn string) (*GormDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db conn: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &GormDB{
		DB: db,
	}, nil
}

func (f *GormDB) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}

// Create inserts a single record. Unique constraint violations come back as *DuplicateKeyError.
func (f *GormDB) Create(ctx context.Context, record any) error {
	if err := f.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert to table: %w", translate(err))
	}

	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
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

// Exists reports whether a row of model's table holds value in column. A non-empty excludeID
// leaves the row with that primary key out of the check.
func (f *GormDB) Exists(ctx context.Context, model any, column string, value any, excludeID string) (bool, error) {
	tx := f.DB.WithContext(ctx).Model(model).Where(fmt.Sprintf("%s = ?", column), value)
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, fmt.Errorf("counting records by %q: %w", column, err)
	}

	return count > 0, nil
}

// UpdateByID sets values on the row with the given primary key. ErrNotFound is returned when
// no row was touched.
func (f *GormDB) UpdateByID(ctx context.Context, model any, id string, values map[string]any) error {
	tx := f.DB.WithContext(ctx).Model(model).Where("id = ?", id).Updates(values)
	if tx.Error != nil {
		return fmt.Errorf("updating record %q: %w", id, translate(tx.Error))
	}

	if tx.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
