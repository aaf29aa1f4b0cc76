package db

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB 是一个全局的数据库连接实例
var DB *gorm.DB

// Init 初始化数据库连接并执行自动迁移。
// databaseURL 为 Postgres 连接串；为空时回退到本地 sqlite 文件，方便开发调试。
// 建表在进程启动时一次性完成，请求路径上不再做任何惰性迁移。
func Init(databaseURL string) error {
	var dialector gorm.Dialector
	url := strings.TrimSpace(databaseURL)
	if url == "" {
		dialector = sqlite.Open("cornerstone.db")
	} else {
		dialector = postgres.Open(url)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return err
	}

	return Migrate(DB)
}

// Migrate 为核心模型创建表，幂等。
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&PortfolioPost{},
		&MediaUpload{},
	)
}
