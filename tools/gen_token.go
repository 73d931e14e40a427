package main

import (
	"flag"
	"fmt"
	"log"

	"test-platform/internal/config"
	"test-platform/internal/pkg/crypto"
)

func main() {
	configPath := flag.String("config", "config.yaml", "配置文件路径")
	userID := flag.String("user", "admin", "用户 ID")
	orgID := flag.String("org", "demo-org", "组织 ID")
	name := flag.String("name", "管理员", "用户名称")
	flag.Parse()

	if *userID == "" || *orgID == "" {
		log.Fatal("user 和 org 不能为空")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	token, err := crypto.GenerateToken(*userID, *orgID, *name, cfg.JWT.Secret, cfg.JWT.ExpireHours)
	if err != nil {
		log.Fatalf("生成 Token 失败: %v", err)
	}

	fmt.Printf("用户: %s (%s)\n", *userID, *orgID)
	fmt.Printf("有效期: %d 小时\n", cfg.JWT.ExpireHours)
	fmt.Printf("Authorization: Bearer %s\n", token)
}
