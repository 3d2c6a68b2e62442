package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadFrom_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadFrom("")
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "bookstore-db", cfg.Database.Path)
	assert.Equal(t, 1, cfg.Database.MaxOpenConns)
	assert.Equal(t, 0, cfg.Database.MaxIdleConns)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "results.txt", cfg.Export.File)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "stderr", cfg.Log.Output)
}

func TestLoadFrom_File(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /var/lib/bookstore/books.db
  debug: true
export:
  file: export.txt
log:
  level: debug
  format: json
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/bookstore/books.db", cfg.Database.Path)
	assert.True(t, cfg.Database.Debug)
	assert.Equal(t, "export.txt", cfg.Export.File)
	assert.Equal(t, "json", cfg.Log.Format)
	// 文件中未出现的key使用默认值
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
}

func TestLoadFrom_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BOOKSTORE_DATABASE_PATH", "override-db")
	t.Setenv("BOOKSTORE_EXPORT_FILE", "out.txt")
	t.Setenv("BOOKSTORE_LOG_LEVEL", "error")

	cfg, err := LoadFrom("")
	require.NoError(t, err)

	assert.Equal(t, "override-db", cfg.Database.Path)
	assert.Equal(t, "out.txt", cfg.Export.File)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_ConfigFileFromEnv(t *testing.T) {
	path := writeConfig(t, "export:\n  file: from-env.txt\n")
	t.Setenv(EnvConfigFile, path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env.txt", cfg.Export.File)
}

func TestLoadFrom_Errors(t *testing.T) {
	t.Run("显式指定的文件不存在", func(t *testing.T) {
		_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeConfigError))
	})

	t.Run("不支持的驱动", func(t *testing.T) {
		_, err := LoadFrom(writeConfig(t, "database:\n  driver: oracle\n"))
		assert.ErrorContains(t, err, "oracle")
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeConfigError))
	})

	t.Run("导出文件为空", func(t *testing.T) {
		_, err := LoadFrom(writeConfig(t, "export:\n  file: \"\"\n"))
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeConfigError))
	})

	t.Run("无效的日志格式", func(t *testing.T) {
		_, err := LoadFrom(writeConfig(t, "log:\n  format: xml\n"))
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeConfigError))
	})

	t.Run("配置文件格式错误", func(t *testing.T) {
		_, err := LoadFrom(writeConfig(t, "database: [\n"))
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeConfigError))
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:      "db",
		Port:      3306,
		User:      "book",
		Password:  "secret",
		DBName:    "bookstore",
		Charset:   "utf8mb4",
		ParseTime: true,
		Loc:       "Asia/Shanghai",
	}
	assert.Equal(t,
		"book:secret@tcp(db:3306)/bookstore?charset=utf8mb4&parseTime=true&loc=Asia%2FShanghai",
		d.DSN())
}
