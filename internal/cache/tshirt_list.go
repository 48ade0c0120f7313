package cache

import (
	"context"
	"time"

	"github.com/meeple-tees/internal/models"
)

const tshirtListKey = "tshirts:list"

// tshirtListTTL 列表缓存过期时间；任何库存变更都会主动失效，TTL 只是兜底
const tshirtListTTL = 5 * time.Minute

// GetTShirtList 读取 SKU 列表缓存
func GetTShirtList(ctx context.Context) ([]models.TShirt, bool, error) {
	var items []models.TShirt
	hit, err := GetJSON(ctx, tshirtListKey, &items)
	if err != nil || !hit {
		return nil, false, err
	}
	return items, true, nil
}

// SetTShirtList 写入 SKU 列表缓存
func SetTShirtList(ctx context.Context, items []models.TShirt) error {
	return SetJSON(ctx, tshirtListKey, items, tshirtListTTL)
}

// InvalidateTShirtList 使 SKU 列表缓存失效
func InvalidateTShirtList(ctx context.Context) error {
	return Del(ctx, tshirtListKey)
}
