// @title AI Interviewer 后端 API
// @version 1.0
// @description AI 模拟面试平台的后端服务器，提供出题、会话、评价与报告能力。

// @contact.name API支持
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

package main

import (
	"ai_interviewer_backend/internal/app"
	"ai_interviewer_backend/internal/config"
	"ai_interviewer_backend/pkg/configwatcher"
	"ai_interviewer_backend/pkg/logger"
	"flag"
	"log"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 设置迁移标志
	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 迁移完成后直接退出
	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	// 监听配置变更，运行时切换 LLM 模型
	go configwatcher.WatchConfig("configs/config.yaml", application.ReloadLLM)

	application.Run()
}
