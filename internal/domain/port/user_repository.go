package port

import (
	"context"

	"defect-scanner/internal/domain/entity"
)

// UserRepository — хранилище пользователей бота.
type UserRepository interface {
	// Get возвращает пользователя, создавая нового при первом обращении.
	Get(ctx context.Context, userID, chatID int64) (*entity.User, error)

	// Save сохраняет состояние пользователя.
	Save(ctx context.Context, user *entity.User) error
}
