package orm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type widget struct {
	ID   uint
	Name string
}

func widgetDB(t *testing.T, n int) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&widget{}))
	for i := 1; i <= n; i++ {
		require.NoError(t, db.Create(&widget{Name: fmt.Sprintf("w%03d", i)}).Error)
	}
	return db
}

func TestPaginate(t *testing.T) {
	db := widgetDB(t, 45)

	var page []widget
	p, err := Paginate(db.Model(&widget{}).Order("id"), &page, 2, 20)
	require.NoError(t, err)

	assert.Len(t, page, 20)
	assert.Equal(t, "w021", page[0].Name)
	assert.Equal(t, Pagination{Page: 2, Limit: 20, Total: 45, LastPage: 3}, p)
}

func TestPaginateClampsInputs(t *testing.T) {
	db := widgetDB(t, 5)

	var page []widget
	p, err := Paginate(db.Model(&widget{}).Order("id"), &page, 0, -7)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, defaultLimit, p.Limit)
	assert.Len(t, page, 5)

	p, err = Paginate(db.Model(&widget{}).Order("id"), &page, 1, 10_000)
	require.NoError(t, err)
	assert.Equal(t, maxLimit, p.Limit)
}

func TestPaginateEmptyResult(t *testing.T) {
	db := widgetDB(t, 0)

	var page []widget
	p, err := Paginate(db.Model(&widget{}).Order("id"), &page, 1, 20)
	require.NoError(t, err)
	assert.Empty(t, page)
	assert.Equal(t, 1, p.LastPage)
	assert.Zero(t, p.Total)
}
