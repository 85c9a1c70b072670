package repository

import (
	"context"
	"reflect"
	"time"

	"gorm.io/gorm"

	"likenovel/internal/shared/biztime"
	"likenovel/internal/shared/db"
	apperrors "likenovel/internal/shared/errors"
)

// Scope narrows or orders a query.
type Scope = func(*gorm.DB) *gorm.DB

// CrudOptions describes one plainly-stored resource.
type CrudOptions struct {
	// PrimaryKey is the id column name.
	PrimaryKey string
	// Creatable limits the columns an INSERT writes; audit columns are always written.
	Creatable db.AllowList
	// Updatable is the allow-list applied to update maps.
	Updatable db.AllowList
	// Order is the default list ordering.
	Order Scope
	// NotFound is the 404 message.
	NotFound string
}

// ListQuery pages a list. CountPerPage 0 returns every row.
type ListQuery struct {
	Page         int
	CountPerPage int
	Scopes       []Scope
}

// CrudRepository implements list/detail/create/update/delete for a gorm model M.
type CrudRepository[M any] struct {
	db   *gorm.DB
	opts CrudOptions
	now  func() time.Time
}

func NewCrudRepository[M any](db *gorm.DB, opts CrudOptions) *CrudRepository[M] {
	if opts.PrimaryKey == "" {
		opts.PrimaryKey = "id"
	}
	if opts.NotFound == "" {
		opts.NotFound = "Not Found"
	}
	return &CrudRepository[M]{db: db, opts: opts, now: biztime.Now}
}

// DB exposes the context transaction for resource-specific queries.
func (r *CrudRepository[M]) DB(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *CrudRepository[M]) List(ctx context.Context, q ListQuery) ([]M, int64, error) {
	query := r.DB(ctx).Model(new(M)).Scopes(q.Scopes...)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDB("count rows", err)
	}

	if r.opts.Order != nil {
		query = query.Scopes(r.opts.Order)
	}
	if q.CountPerPage > 0 {
		query = query.Scopes(db.Paginate(q.Page, q.CountPerPage))
	}

	rows := make([]M, 0)
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, wrapDB("list rows", err)
	}
	return rows, total, nil
}

// Get returns nil when the row does not exist.
func (r *CrudRepository[M]) Get(ctx context.Context, id int64, scopes ...Scope) (*M, error) {
	m, err := r.MustGet(ctx, id, scopes...)
	if apperrors.HasStatus(err, 404) {
		return nil, nil
	}
	return m, err
}

// MustGet is Get with the resource's 404.
func (r *CrudRepository[M]) MustGet(ctx context.Context, id int64, scopes ...Scope) (*M, error) {
	var m M
	err := r.DB(ctx).Scopes(scopes...).Where(r.opts.PrimaryKey+" = ?", id).First(&m).Error
	if err := db.CheckExistsOr404(err, r.opts.NotFound); err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts only the creatable columns plus audit columns and sets the primary key on m.
// The audit values of the insert map are written back onto m.
func (r *CrudRepository[M]) Create(ctx context.Context, m *M, writerID int64) error {
	query := r.DB(ctx)
	stmt := &gorm.Statement{DB: query}
	if err := stmt.Parse(m); err != nil {
		return wrapDB("parse model", err)
	}
	rv := reflect.ValueOf(m).Elem()

	fields := make(map[string]interface{}, len(stmt.Schema.DBNames))
	for _, name := range stmt.Schema.DBNames {
		value, _ := stmt.Schema.FieldsByDBName[name].ValueOf(ctx, rv)
		fields[name] = value
	}

	values := db.InsertMap(r.opts.Creatable, fields, writerID, r.now())
	cols := make([]string, 0, len(values))
	for name, value := range values {
		field, ok := stmt.Schema.FieldsByDBName[name]
		if !ok {
			continue
		}
		cols = append(cols, name)
		if _, fromModel := r.opts.Creatable[name]; fromModel {
			continue
		}
		if err := field.Set(ctx, rv, value); err != nil {
			return wrapDB("set "+name, err)
		}
	}

	if err := query.Select(cols).Create(m).Error; err != nil {
		return wrapDB("create row", err)
	}
	return nil
}

// Update applies the allow-listed fields. Unknown keys are ignored and the audit pair is
// always written, so an empty update still touches the row.
func (r *CrudRepository[M]) Update(ctx context.Context, id int64, fields map[string]interface{}, writerID int64) error {
	if _, err := r.MustGet(ctx, id); err != nil {
		return err
	}
	values := db.UpdateMap(r.opts.Updatable, fields, writerID, r.now())
	if err := r.DB(ctx).Model(new(M)).Where(r.opts.PrimaryKey+" = ?", id).Updates(values).Error; err != nil {
		return wrapDB("update row", err)
	}
	return nil
}

// Delete is a hard delete by primary key.
func (r *CrudRepository[M]) Delete(ctx context.Context, id int64) error {
	result := r.DB(ctx).Where(r.opts.PrimaryKey+" = ?", id).Delete(new(M))
	if result.Error != nil {
		return wrapDB("delete row", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(r.opts.NotFound)
	}
	return nil
}
