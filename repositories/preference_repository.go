package repositories

import (
	"context"
	"fmt"

	"shophub/models"

	"github.com/redis/go-redis/v9"
)

// PreferenceRepository stores small per-user UI preferences as plain
// key-value strings.
type PreferenceRepository struct{}

func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{}
}

func (r *PreferenceRepository) GetLanguage(ctx context.Context, userID int) (string, error) {
	lang, err := models.RedisClient.Get(ctx, langKey(userID)).Result()
	if err == redis.Nil {
		return "en", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read language preference: %w", err)
	}
	return lang, nil
}

func (r *PreferenceRepository) SetLanguage(ctx context.Context, userID int, lang string) error {
	if err := models.RedisClient.Set(ctx, langKey(userID), lang, 0).Err(); err != nil {
		return fmt.Errorf("failed to write language preference: %w", err)
	}
	return nil
}

func langKey(userID int) string {
	return fmt.Sprintf("pref:lang:%d", userID)
}
