package migration

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"likenovel/internal/infrastructure/persistence/models"
	applogger "likenovel/internal/shared/logger"
)

func TestEmbeddedScriptsAreAnnotated(t *testing.T) {
	entries, err := fs.ReadDir(scripts, scriptsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		body, err := fs.ReadFile(scripts, scriptsDir+"/"+e.Name())
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(body), "-- +goose Up"), e.Name())
		assert.True(t, strings.Contains(string(body), "-- +goose Down"), e.Name())
	}
}

func TestEmbeddedSchemaCoversEveryModel(t *testing.T) {
	body, err := fs.ReadFile(scripts, scriptsDir+"/00001_init_schema.sql")
	require.NoError(t, err)

	type tabler interface{ TableName() string }
	for _, m := range models.All() {
		name := m.(tabler).TableName()
		assert.Contains(t, string(body), "CREATE TABLE "+name+" (", name)
	}
}

func TestAutoMigrate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, AutoMigrate(db))
	assert.True(t, db.Migrator().HasTable("tb_user_giftbook"))
	assert.True(t, db.Migrator().HasTable("tb_chat_room_report"))
}

func TestNewStrategy(t *testing.T) {
	log := applogger.NewNopLogger()
	assert.Equal(t, "gorm_auto_migrate", NewStrategy("development", log).GetName())
	assert.Equal(t, "goose", NewStrategy("production", log).GetName())
}
