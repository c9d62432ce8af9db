package db

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elaundry/pkg/types"
)

var columns = map[string]string{"id": "b.id", "name": "b.name", "address": "b.address"}

func TestApplyListParams(t *testing.T) {
	base := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).Select("b.id").From("branches AS b")

	q := ApplyListParams(base, types.Filter{
		Filter:         map[string]interface{}{"name": "Gulshan", "secret": "x", "id": "1,2"},
		Sort:           map[string]string{"name": "DESC", "id": "asc", "password": "asc"},
		Limit:          10,
		Offset:         20,
		WithPagination: true,
	}, columns)

	sql, args, err := q.ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT b.id FROM branches AS b WHERE b.id IN ($1,$2) AND b.name = $3 ORDER BY b.id ASC, b.name DESC LIMIT 10 OFFSET 20",
		sql)
	assert.Equal(t, []interface{}{"1", "2", "Gulshan"}, args)
}

func TestApplyListParamsWithoutPagination(t *testing.T) {
	base := sq.Select("b.id").From("branches AS b")
	sql, _, err := ApplyListParams(base, types.Filter{Limit: 10, Offset: 5}, columns).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT b.id FROM branches AS b", sql)
}
