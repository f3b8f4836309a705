package store

import (
	"fmt"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-users-api/internal/query"
	"github.com/MKhiriev/go-users-api/models"
)

var usersTable = models.User{}.TableName()

const (
	columnID     = "id"
	columnActive = "active"
)

// userColumn binds an API field name to its column and to the models.User
// field it is scanned into. The password column is deliberately absent: it
// can be neither selected, filtered nor sorted on.
type userColumn struct {
	field  string
	column string
	target func(u *models.User) any
	value  func(u *models.User) any
}

var userColumns = []userColumn{
	{"id", "id", func(u *models.User) any { return &u.ID }, func(u *models.User) any { return u.ID }},
	{"name", "name", func(u *models.User) any { return &u.Name }, func(u *models.User) any { return u.Name }},
	{"email", "email", func(u *models.User) any { return &u.Email }, func(u *models.User) any { return u.Email }},
	{"role", "role", func(u *models.User) any { return &u.Role }, func(u *models.User) any { return u.Role }},
	{"photo", "photo", func(u *models.User) any { return &u.Photo }, func(u *models.User) any { return u.Photo }},
	{"active", "active", func(u *models.User) any { return &u.Active }, func(u *models.User) any { return u.Active }},
	{"createdAt", "created_at", func(u *models.User) any { return &u.CreatedAt }, func(u *models.User) any { return u.CreatedAt }},
	{"version", "version", func(u *models.User) any { return &u.Version }, func(u *models.User) any { return u.Version }},
}

func lookupUserColumn(field string) (userColumn, bool) {
	for _, c := range userColumns {
		if c.field == field {
			return c, true
		}
	}
	return userColumn{}, false
}

func userColumnNames(cols []userColumn) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.column
	}
	return names
}

func scanTargets(u *models.User, cols []userColumn) []any {
	targets := make([]any, len(cols))
	for i, c := range cols {
		targets[i] = c.target(u)
	}
	return targets
}

func toDocument(u *models.User, cols []userColumn) models.Document {
	doc := make(models.Document, len(cols))
	for _, c := range cols {
		doc[c.field] = c.value(u)
	}
	return doc
}

// userSelectBuilder implements [query.Builder] on top of squirrel. The first
// invalid part of the query is remembered and reported by ToSql.
type userSelectBuilder struct {
	statement sq.StatementBuilderType
	where     sq.And
	orderBy   []string
	columns   []userColumn
	skip      uint64
	limit     uint64
	err       error
}

func newUserSelectBuilder(statement sq.StatementBuilderType) *userSelectBuilder {
	return &userSelectBuilder{
		statement: statement,
		where:     sq.And{sq.Eq{columnActive: true}},
		orderBy:   []string{columnID + " ASC"},
		columns:   userColumns,
	}
}

func (b *userSelectBuilder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// ApplyFilter translates the predicate into WHERE conditions. Fields are
// visited in sorted order so the generated SQL is stable.
func (b *userSelectBuilder) ApplyFilter(p query.Predicate) {
	conditions, err := filterConditions(p)
	if err != nil {
		b.setErr(err)
		return
	}
	b.where = append(b.where, conditions...)
}

// ApplySort orders by the given fields and appends the id tie-break unless
// the list already contains it.
func (b *userSelectBuilder) ApplySort(fields []query.SortField) {
	orderBy := make([]string, 0, len(fields)+1)
	seen := make(map[string]bool, len(fields))

	for _, f := range fields {
		col, ok := lookupUserColumn(f.Field)
		if !ok {
			b.setErr(fmt.Errorf("%w: sort by %q", ErrUnknownField, f.Field))
			return
		}
		if seen[col.column] {
			continue
		}
		seen[col.column] = true

		direction := " ASC"
		if f.Desc {
			direction = " DESC"
		}
		orderBy = append(orderBy, col.column+direction)
	}

	if !seen[columnID] {
		orderBy = append(orderBy, columnID+" ASC")
	}
	b.orderBy = orderBy
}

// ApplyProjection narrows the selected columns. An inclusion list always
// keeps id; an empty projection selects every column.
func (b *userSelectBuilder) ApplyProjection(p query.Projection) {
	if len(p.Fields) == 0 {
		b.columns = userColumns
		return
	}

	named := make(map[string]bool, len(p.Fields))
	for _, field := range p.Fields {
		col, ok := lookupUserColumn(field)
		if !ok {
			b.setErr(fmt.Errorf("%w: field %q", ErrUnknownField, field))
			return
		}
		named[col.column] = true
	}

	columns := make([]userColumn, 0, len(userColumns))
	for _, c := range userColumns {
		keep := named[c.column]
		if p.Exclude {
			keep = !keep
		} else if c.column == columnID {
			keep = true
		}
		if keep {
			columns = append(columns, c)
		}
	}
	b.columns = columns
}

func (b *userSelectBuilder) ApplyWindow(skip, limit int) {
	b.skip, b.limit = 0, 0
	if skip > 0 {
		b.skip = uint64(skip)
	}
	if limit > 0 {
		b.limit = uint64(limit)
	}
}

// ToSql renders the SELECT together with the columns in scan order.
func (b *userSelectBuilder) ToSql() (string, []any, []userColumn, error) {
	if b.err != nil {
		return "", nil, nil, b.err
	}
	if len(b.columns) == 0 {
		return "", nil, nil, fmt.Errorf("%w: projection excludes every field", ErrUnknownField)
	}

	builder := b.statement.
		Select(userColumnNames(b.columns)...).
		From(usersTable).
		Where(b.where).
		OrderBy(b.orderBy...)

	if b.limit > 0 {
		builder = builder.Limit(b.limit)
		if b.skip > 0 {
			builder = builder.Offset(b.skip)
		}
	}

	q, args, err := builder.ToSql()
	if err != nil {
		return "", nil, nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return q, args, b.columns, nil
}

// CountSql renders a COUNT over the same conditions, ignoring order and window.
func (b *userSelectBuilder) CountSql() (string, []any, error) {
	if b.err != nil {
		return "", nil, b.err
	}

	q, args, err := b.statement.
		Select("COUNT(*)").
		From(usersTable).
		Where(b.where).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return q, args, nil
}

// filterConditions maps a predicate onto squirrel expressions:
// a scalar is =, a list is IN, nil is IS NULL and an operator object yields
// one comparison per operator.
func filterConditions(p query.Predicate) (sq.And, error) {
	fields := make([]string, 0, len(p))
	for field := range p {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	conditions := make(sq.And, 0, len(fields))
	for _, field := range fields {
		col, ok := lookupUserColumn(field)
		if !ok {
			return nil, fmt.Errorf("%w: filter by %q", ErrUnknownField, field)
		}

		switch v := p[field].(type) {
		case map[string]any:
			ops, err := operatorConditions(col.column, v)
			if err != nil {
				return nil, err
			}
			conditions = append(conditions, ops...)
		case query.Predicate:
			ops, err := operatorConditions(col.column, v)
			if err != nil {
				return nil, err
			}
			conditions = append(conditions, ops...)
		case []any:
			if !allScalars(v) {
				return nil, fmt.Errorf("%w: mixed list on %q", ErrInvalidFilterValue, field)
			}
			conditions = append(conditions, sq.Eq{col.column: v})
		default:
			conditions = append(conditions, sq.Eq{col.column: v})
		}
	}
	return conditions, nil
}

func allScalars(values []any) bool {
	for _, v := range values {
		switch v.(type) {
		case []any, map[string]any, query.Predicate, nil:
			return false
		}
	}
	return true
}

func operatorConditions(column string, ops map[string]any) (sq.And, error) {
	names := make([]string, 0, len(ops))
	for op := range ops {
		names = append(names, op)
	}
	slices.Sort(names)

	conditions := make(sq.And, 0, len(names))
	for _, op := range names {
		operand := ops[op]
		switch operand.(type) {
		case []any, map[string]any, nil:
			return nil, fmt.Errorf("%w: %s on %q", ErrInvalidFilterValue, op, column)
		}

		switch op {
		case query.OpGt:
			conditions = append(conditions, sq.Gt{column: operand})
		case query.OpGte:
			conditions = append(conditions, sq.GtOrEq{column: operand})
		case query.OpLt:
			conditions = append(conditions, sq.Lt{column: operand})
		case query.OpLte:
			conditions = append(conditions, sq.LtOrEq{column: operand})
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedOperator, op)
		}
	}
	return conditions, nil
}

// returningUserColumns lists every column returned by INSERT and UPDATE.
func returningUserColumns() string {
	return "RETURNING " + strings.Join(userColumnNames(userColumns), ", ")
}

func buildInsertUserQuery(statement sq.StatementBuilderType, user models.User) (string, []any, error) {
	q, args, err := statement.
		Insert(usersTable).
		Columns("name", "email", "role", "photo", "password").
		Values(user.Name, user.Email, user.Role, user.Photo, user.Password).
		Suffix(returningUserColumns()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return q, args, nil
}

func buildFindUserByIDQuery(statement sq.StatementBuilderType, id int64) (string, []any, error) {
	q, args, err := statement.
		Select(userColumnNames(userColumns)...).
		From(usersTable).
		Where(sq.Eq{columnID: id, columnActive: true}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return q, args, nil
}

// buildUpdateUserQuery sets only the non-nil fields of update and bumps the
// version.
func buildUpdateUserQuery(statement sq.StatementBuilderType, id int64, update models.UpdateUserRequest) (string, []any, error) {
	builder := statement.Update(usersTable)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Role != nil {
		builder = builder.Set("role", *update.Role)
	}
	if update.Photo != nil {
		builder = builder.Set("photo", *update.Photo)
	}

	q, args, err := builder.
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{columnID: id, columnActive: true}).
		Suffix(returningUserColumns()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return q, args, nil
}

func buildDeactivateUserQuery(statement sq.StatementBuilderType, id int64) (string, []any, error) {
	q, args, err := statement.
		Update(usersTable).
		Set(columnActive, false).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{columnID: id, columnActive: true}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return q, args, nil
}
