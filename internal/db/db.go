package db

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open 建立数据库连接，不执行迁移。
// databaseURL 以 postgres:// 开头时使用 Postgres 驱动，
// 否则按 SQLite 文件路径处理；为空时回退到默认值 portfolio.db。
func Open(databaseURL string) (*gorm.DB, error) {
	dsn := strings.TrimSpace(databaseURL)
	if dsn == "" {
		dsn = "portfolio.db"
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	if err := ensureParentDir(dsn); err != nil {
		return nil, err
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

// Migrate 为全部内容模型建表，只新增不修改已有表结构。
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&Publication{},
		&Award{},
		&Conference{},
		&Media{},
		&Education{},
		&Experience{},
		&ResearchArea{},
		&CVProfile{},
		&ContactInfo{},
		&CVSection{},
		&MarkdownCV{},
		&RepresentativeWork{},
		&GalleryImage{},
		&ResearchHighlight{},
		&CoverArt{},
	)
}

// Ping 检查数据库可达性，启动时仅记录结果而不中断进程。
func Ping(ctx context.Context, gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
