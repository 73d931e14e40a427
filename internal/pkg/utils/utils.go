package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateUUID 生成 UUID
func GenerateUUID() string {
	return uuid.New().String()
}

// NextID 生成按时间递增的 id，同一进程内严格单调
func NextID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return GenerateUUID()
	}
	return id.String()
}

// Distinct 去除空白和重复项，保持原有顺序
func Distinct(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}
