package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
)

// Config 全局配置结构
// 设计说明：使用Viper管理配置，支持YAML文件、环境变量覆盖
// 没有任何配置文件时使用默认值（sqlite文件bookstore-db、导出文件results.txt）
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Export   ExportConfig   `mapstructure:"export"`
	Log      LogConfig      `mapstructure:"log"`
}

// 支持的数据库驱动
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // sqlite | mysql
	Path   string `mapstructure:"path"`   // sqlite数据库文件（相对于工作目录）
	Debug  bool   `mapstructure:"debug"`  // 打印SQL

	// 以下仅mysql使用
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	User      string `mapstructure:"user"`
	Password  string `mapstructure:"password"`
	DBName    string `mapstructure:"dbname"`
	Charset   string `mapstructure:"charset"`
	ParseTime bool   `mapstructure:"parse_time"`
	Loc       string `mapstructure:"loc"`

	// 连接池：max_idle_conns为0时每次操作结束即关闭连接
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN 生成MySQL连接字符串
// 格式：user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=Local
// 注意：loc参数需要URL编码（Asia/Shanghai → Asia%2FShanghai）
func (d DatabaseConfig) DSN() string {
	loc := url.QueryEscape(d.Loc)
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.Charset, d.ParseTime, loc)
}

type ExportConfig struct {
	File string `mapstructure:"file"` // 查询结果导出文件，每次导出覆盖
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug | info | warn | error
	Format string `mapstructure:"format"` // text | json
	Output string `mapstructure:"output"` // stdout | stderr | /path/to/file
}

// EnvConfigFile 指定配置文件路径的环境变量
const EnvConfigFile = "BOOKSTORE_CONFIG"

// Load 加载配置
// 支持：
// 1. 环境变量BOOKSTORE_CONFIG指定配置文件
// 2. 默认查找./config/config.yaml、./config.yaml（不存在时使用默认值）
// 3. 环境变量覆盖（如BOOKSTORE_DATABASE_PATH → database.path）
func Load() (*Config, error) {
	return LoadFrom(os.Getenv(EnvConfigFile))
}

// LoadFrom 从指定文件加载配置，path为空时按默认路径查找
// 显式指定的文件不存在时返回错误
func LoadFrom(path string) (*Config, error) {
	// .env文件可选
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, apperrors.WrapCode(err, apperrors.ErrCodeConfigError, "读取配置文件失败")
		}
	}

	// 环境变量绑定（BOOKSTORE_DATABASE_PATH → database.path）
	v.SetEnvPrefix("BOOKSTORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeConfigError, "解析配置失败")
	}

	if err := validate(&cfg); err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeConfigError, "配置校验失败")
	}

	return &cfg, nil
}

// setDefaults 默认值与原有行为保持一致
// 所有key都需要注册默认值，AutomaticEnv才能在Unmarshal时生效
func setDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", "bookstore-db")
	v.SetDefault("database.debug", false)
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "bookstore")
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parse_time", true)
	v.SetDefault("database.loc", "Local")
	v.SetDefault("database.max_open_conns", 1)
	v.SetDefault("database.max_idle_conns", 0)
	v.SetDefault("database.conn_max_lifetime", time.Hour)

	v.SetDefault("export.file", "results.txt")

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.output", "stderr")
}

// validate 配置校验
func validate(cfg *Config) error {
	switch cfg.Database.Driver {
	case DriverSQLite:
		if cfg.Database.Path == "" {
			return fmt.Errorf("sqlite数据库文件路径不能为空")
		}
	case DriverMySQL:
		if cfg.Database.Port <= 0 || cfg.Database.Port > 65535 {
			return fmt.Errorf("无效的数据库端口: %d", cfg.Database.Port)
		}
	default:
		return fmt.Errorf("不支持的数据库驱动: %s", cfg.Database.Driver)
	}

	if cfg.Export.File == "" {
		return fmt.Errorf("导出文件名不能为空")
	}

	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("无效的日志格式: %s", cfg.Log.Format)
	}

	return nil
}
