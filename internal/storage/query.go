package storage

import (
	"fmt"
	"strings"
	"time"
)

// Field names a filterable or sortable column of the sketches table.
type Field string

const (
	FieldID              Field = "id"
	FieldCreationDate    Field = "creation_date"
	FieldBookName        Field = "book_name"
	FieldChapter         Field = "chapter"
	FieldVerse           Field = "verse"
	FieldBookOrder       Field = "book_order"
	FieldCenterWord      Field = "center_word"
	FieldTextPosition    Field = "text_position"
	FieldDrawingData     Field = "drawing_data"
	FieldImageData       Field = "image_data"
	FieldImageDataDark   Field = "image_data_dark"
	FieldSharedDrawingID Field = "shared_drawing_id"
)

var knownFields = map[Field]bool{
	FieldID:              true,
	FieldCreationDate:    true,
	FieldBookName:        true,
	FieldChapter:         true,
	FieldVerse:           true,
	FieldBookOrder:       true,
	FieldCenterWord:      true,
	FieldTextPosition:    true,
	FieldDrawingData:     true,
	FieldImageData:       true,
	FieldImageDataDark:   true,
	FieldSharedDrawingID: true,
}

func (f Field) column() (string, error) {
	if !knownFields[f] {
		return "", fmt.Errorf("unknown field %q", string(f))
	}
	return string(f), nil
}

// Predicate is a boolean condition over sketch fields.
type Predicate interface {
	sql() (string, []any, error)
}

type eqPredicate struct {
	field Field
	value any
	fold  bool
}

func (p eqPredicate) sql() (string, []any, error) {
	col, err := p.field.column()
	if err != nil {
		return "", nil, err
	}
	if p.fold {
		return fmt.Sprintf("fold(%s) = fold(?)", col), []any{p.value}, nil
	}
	return col + " = ?", []any{p.value}, nil
}

// Eq matches records whose field equals v exactly.
func Eq(f Field, v any) Predicate {
	if t, ok := v.(time.Time); ok {
		v = t.UnixNano()
	}
	return eqPredicate{field: f, value: v}
}

// EqFold matches records whose string field equals s ignoring case.
func EqFold(f Field, s string) Predicate {
	return eqPredicate{field: f, value: s, fold: true}
}

type nullPredicate struct {
	field Field
	null  bool
}

func (p nullPredicate) sql() (string, []any, error) {
	col, err := p.field.column()
	if err != nil {
		return "", nil, err
	}
	if p.null {
		return col + " IS NULL", nil, nil
	}
	return col + " IS NOT NULL", nil, nil
}

// IsNull matches records whose optional field is absent.
func IsNull(f Field) Predicate {
	return nullPredicate{field: f, null: true}
}

// NotNull matches records whose optional field is present.
func NotNull(f Field) Predicate {
	return nullPredicate{field: f}
}

type andPredicate []Predicate

func (p andPredicate) sql() (string, []any, error) {
	if len(p) == 0 {
		return "1 = 1", nil, nil
	}
	parts := make([]string, 0, len(p))
	var args []any
	for _, sub := range p {
		clause, subArgs, err := sub.sql()
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, clause)
		args = append(args, subArgs...)
	}
	return "(" + strings.Join(parts, " AND ") + ")", args, nil
}

// And matches records satisfying every predicate. An empty And matches everything.
func And(ps ...Predicate) Predicate {
	return andPredicate(ps)
}

// Order is one sort key of a Query.
type Order struct {
	Field Field
	Desc  bool
}

// Asc sorts by f ascending.
func Asc(f Field) Order { return Order{Field: f} }

// Desc sorts by f descending.
func Desc(f Field) Order { return Order{Field: f, Desc: true} }

// Query selects sketches. A zero Query returns every record, oldest first.
type Query struct {
	Where   Predicate
	OrderBy []Order
	Limit   int // 0 means no limit
}

// build renders the query tail (WHERE / ORDER BY / LIMIT) and its arguments.
func (q Query) build() (string, []any, error) {
	var b strings.Builder
	var args []any

	if q.Where != nil {
		clause, whereArgs, err := q.Where.sql()
		if err != nil {
			return "", nil, err
		}
		b.WriteString(" WHERE ")
		b.WriteString(clause)
		args = whereArgs
	}

	orders := q.OrderBy
	if len(orders) == 0 {
		orders = []Order{Asc(FieldCreationDate)}
	}
	b.WriteString(" ORDER BY ")
	for i, o := range orders {
		col, err := o.Field.column()
		if err != nil {
			return "", nil, err
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(col)
		if o.Desc {
			b.WriteString(" DESC")
		}
	}
	// Ties are broken by id so results are deterministic.
	b.WriteString(", id")

	if q.Limit > 0 {
		b.WriteString(" LIMIT ?")
		args = append(args, q.Limit)
	}

	return b.String(), args, nil
}
