package database

import (
	"ai_interviewer_backend/internal/config"
	"ai_interviewer_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedDefaults(db)

	return db, nil
}

// Migrate 测试里用 sqlite 内存库时也走同一份迁移
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Role{},
		&model.InterviewConfig{},
		&model.Question{},
		&model.InterviewSession{},
		&model.SessionQuestion{},
		&model.InterviewReport{},
	)
}

// 默认岗位，首次启动时写入，方便前端直接开面
func seedDefaults(db *gorm.DB) {
	var count int64
	db.Model(&model.Role{}).Count(&count)
	if count > 0 {
		return
	}

	defaultRoles := []model.Role{
		{Name: "前端工程师", Description: "React / TypeScript / 工程化"},
		{Name: "后端工程师", Description: "Go / 数据库 / 分布式"},
		{Name: "算法工程师", Description: "机器学习 / 大模型应用"},
	}
	for i := range defaultRoles {
		db.Create(&defaultRoles[i])
	}
}
