package utils

import (
	"context"
	"errors"
	"reflect"

	"github.com/Andersonriberpro/ribersolucoespack/config"
)

// check if id exists, using ctx's workspace_id in WHERE, return RecordNotFound error
func ValidateResourceId[T any](ctx context.Context, workspaceId string, id interface{}) error {

	count, err := ResourceCountWhere[T](ctx, workspaceId, "id = ?", id)
	if err != nil {
		return err
	}
	if count <= 0 {
		return ErrorRecordNotFound
	}

	return nil
}

func ValidateUnique[T any](ctx context.Context, workspaceId string, column string, value interface{}, exceptId interface{}) error {
	var count int64
	var err error
	if reflect.ValueOf(exceptId).IsZero() {
		count, err = ResourceCountWhere[T](ctx, workspaceId, column+" = ?", value)
	} else {
		count, err = ResourceCountWhere[T](ctx, workspaceId, column+" = ? AND NOT id = ?", value, exceptId)
	}

	if err != nil {
		return err
	}
	if count > 0 {
		return errors.New("duplicate " + column)
	}
	return nil
}

// count records, using WHERE workspace_id = ? AND $condition
// workspace_id can be blank for admin user
func ResourceCountWhere[T any](ctx context.Context, workspaceId string, condition string, value ...interface{}) (int64, error) {
	var model T

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Model(&model)
	var count int64
	if workspaceId != "" {
		dbCtx.Where("workspace_id = ?", workspaceId)
	}
	dbCtx.Where(condition, value...)
	if err := dbCtx.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
