package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookstore-inventory/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架，默认sqlite文件，可切换mysql
// 2. 连接池max_idle_conns默认为0，每次操作使用新连接并在结束后关闭
// 3. 开启database.debug时打印SQL
// 4. 自动建表（AutoMigrate），失败即返回错误，由调用方终止程序
//
// 返回的cleanup用于关闭连接池
func NewDB(cfg *config.Config) (*gorm.DB, func(), error) {
	// 1. 选择驱动
	dialector, err := openDialector(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	// 2. 配置GORM日志
	logLevel := logger.Silent
	if cfg.Database.Debug {
		logLevel = logger.Info
	}

	// 3. 连接数据库
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	cleanup := func() { _ = sqlDB.Close() }

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	// 6. 建表（已存在时不做修改）
	if err := autoMigrate(db); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("数据库建表失败: %w", err)
	}

	return db, cleanup, nil
}

// openDialector 根据配置选择GORM驱动
func openDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return sqlite.Open(cfg.Path), nil
	case config.DriverMySQL:
		return mysql.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", cfg.Driver)
	}
}

// autoMigrate 自动建表
// AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&BookModel{})
}

// BookModel GORM图书模型
// 设计说明:
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/book/entity.go是领域实体，不依赖GORM
// 3. 书名唯一由领域服务检查，表上不加唯一索引
type BookModel struct {
	ID     uint   `gorm:"primaryKey"`
	Title  string `gorm:"not null"`
	Author string `gorm:"not null"`
	Qty    int64  `gorm:"column:qty;not null"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}
