package posgrest

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// repository is a generic GORM-based repository for any entity type T.
type repository[T interface{}] struct {
	db *gorm.DB
}

// New creates a new generic repository instance for type T.
func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// CreateIfAbsent inserts entity unless a row with the same primary key exists.
// It reports whether this call inserted the row.
func (r *repository[T]) CreateIfAbsent(ctx context.Context, entity *T) (bool, error) {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(entity)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// UpdateWhere applies values to every row matching query and returns how many changed.
func (r *repository[T]) UpdateWhere(ctx context.Context, values map[string]interface{}, query string, args []interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(new(T)).Where(query, args...).Updates(values)
	return result.RowsAffected, result.Error
}

// DeleteWhere removes every row matching query.
func (r *repository[T]) DeleteWhere(ctx context.Context, query string, args []interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Where(query, args...).Delete(new(T))
	return result.RowsAffected, result.Error
}
