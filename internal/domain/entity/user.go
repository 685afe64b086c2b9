package entity

// UserState — этап диалога проверки детали.
type UserState string

const (
	StateMainMenu      UserState = "main_menu"      // в главном меню
	StateAwaitingPhoto UserState = "awaiting_photo" // ждём фото детали
	StateProcessing    UserState = "processing"     // идёт детекция
)

// User — пользователь бота и его текущий этап диалога.
type User struct {
	ID     int64     // Telegram User ID
	ChatID int64     // Telegram Chat ID
	State  UserState // текущий этап диалога
}

// NewUser создаёт пользователя в главном меню.
func NewUser(userID, chatID int64) *User {
	return &User{
		ID:     userID,
		ChatID: chatID,
		State:  StateMainMenu,
	}
}

// SetState переводит пользователя на другой этап диалога.
func (u *User) SetState(state UserState) {
	u.State = state
}
