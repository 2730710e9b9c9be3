package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"shophub/models"

	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "cart:"

// CartRepository persists each user's cart as a single JSON value under
// a fixed key. The whole list is read back on access and rewritten on
// every mutation; concurrent writers race with last-write-wins, same as
// the client-side storage it replaces.
type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

func (r *CartRepository) Get(ctx context.Context, userID int) ([]models.CartLine, error) {
	raw, err := models.RedisClient.Get(ctx, cartKey(userID)).Result()
	if err == redis.Nil {
		return []models.CartLine{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	var lines []models.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	if lines == nil {
		lines = []models.CartLine{}
	}

	return lines, nil
}

func (r *CartRepository) Save(ctx context.Context, userID int, lines []models.CartLine) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := models.RedisClient.Set(ctx, cartKey(userID), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to write cart: %w", err)
	}

	return nil
}

func (r *CartRepository) Clear(ctx context.Context, userID int) error {
	if err := models.RedisClient.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func cartKey(userID int) string {
	return fmt.Sprintf("%s%d", cartKeyPrefix, userID)
}
