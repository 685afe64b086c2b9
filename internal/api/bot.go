package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"defect-scanner/internal/container"
	"defect-scanner/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я сканер дефектов на деталях.

📸 Отправьте мне фото детали, и я найду дефекты, измерю их и вынесу вердикт PASS/FAIL.

📋 Команды:
/check — начать проверку детали
/report — выгрузить CSV-отчёт по последней проверке
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться сканером:

1️⃣ Отправьте фото детали
2️⃣ Конвейер найдёт контуры дефектов и классифицирует их
3️⃣ Вы получите сводку и фото с разметкой по типам дефектов

💡 Рекомендации:
• Снимайте при хорошем освещении
• Используйте однотонный фон
• Фото должно быть чётким

📋 Команды:
/check — начать проверку
/report — CSV-отчёт по последней проверке
/cancel — отменить операцию`

	msgAwaitingPhoto   = "📸 Отправьте фото детали для проверки на дефекты."
	msgCancelled       = "❌ Операция отменена. Отправьте /check для новой проверки."
	msgSendPhoto       = "📸 Пожалуйста, отправьте фото детали для проверки на дефекты."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Обрабатываю изображение..."
	msgNoReport        = "📭 Ещё не было ни одной проверки — отчёт строить не из чего."
	msgBadPhoto        = "⚠️ Не удалось распознать изображение. Попробуйте сделать другое фото."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте сделать другое фото."
)

// Bot — Telegram-интерфейс сканера дефектов.
type Bot struct {
	api       *tgbotapi.BotAPI
	services  *container.Container
	detection entity.DetectionConfig
	log       *zap.SugaredLogger
}

// NewBot создаёт нового бота.
func NewBot(token string, services *container.Container, detection entity.DetectionConfig, log *zap.SugaredLogger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Infof("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:       api,
		services:  services,
		detection: detection,
		log:       log,
	}, nil
}

// Run запускает основной цикл обработки сообщений.
func (b *Bot) Run() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	ctx := context.Background()

	for update := range updates {
		if update.Message == nil {
			continue
		}

		b.handleMessage(ctx, update.Message)
	}

	return nil
}

// handleMessage обрабатывает входящее сообщение.
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	user, err := b.services.UserService.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		b.log.Errorf("get user: %v", err)
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg)
		return
	}

	// Текстовое сообщение (не команда)
	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота.
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	switch msg.Command() {
	case "start":
		b.services.UserService.Cancel(ctx, user.ID, user.ChatID)
		b.sendMessage(msg.Chat.ID, msgStart)

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "check":
		b.services.UserService.BeginCheck(ctx, user.ID, user.ChatID)
		b.sendMessage(msg.Chat.ID, msgAwaitingPhoto)

	case "cancel":
		b.services.UserService.Cancel(ctx, user.ID, user.ChatID)
		b.sendMessage(msg.Chat.ID, msgCancelled)

	case "report":
		b.sendReport(msg.Chat.ID, user.ID)

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// handlePhoto прогоняет присланное фото через конвейер детекции и
// отвечает сводкой и размеченным изображением.
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID

	b.services.UserService.SetState(ctx, userID, chatID, entity.StateProcessing)
	b.sendMessage(chatID, msgProcessing)

	// Берём файл с максимальным разрешением.
	photo := msg.Photo[len(msg.Photo)-1]

	imageData, err := b.downloadFile(photo.FileID)
	if err != nil {
		b.log.Errorf("download photo: %v", err)
		b.sendMessage(chatID, msgProcessingError)
		b.services.UserService.Cancel(ctx, userID, chatID)
		return
	}

	out, err := b.services.InspectionService.ProcessPhoto(ctx, userID, imageData, b.detection)
	if err != nil {
		b.log.Errorf("process photo: %v", err)
		if errors.Is(err, entity.ErrInvalidInput) {
			b.sendMessage(chatID, msgBadPhoto)
		} else {
			b.sendMessage(chatID, msgProcessingError)
		}
		b.services.UserService.Cancel(ctx, userID, chatID)
		return
	}

	b.sendMessage(chatID, out.Summary)
	if out.Result.HasDefects() && len(out.Result.Annotated) > 0 {
		annotated := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{
			Name:  "annotated.jpg",
			Bytes: out.Result.Annotated,
		})
		if _, err := b.api.Send(annotated); err != nil {
			b.log.Errorf("send annotated photo: %v", err)
		}
	}

	b.services.UserService.Cancel(ctx, userID, chatID)
}

// sendReport выгружает CSV-отчёт по последней проверке пользователя.
func (b *Bot) sendReport(chatID, userID int64) {
	data, err := b.services.InspectionService.ExportReport(userID, fmt.Sprintf("telegram_%d", userID))
	if err != nil {
		b.sendMessage(chatID, msgNoReport)
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  "defect_report.csv",
		Bytes: data,
	})
	if _, err := b.api.Send(doc); err != nil {
		b.log.Errorf("send report: %v", err)
	}
}

// downloadFile скачивает файл из Telegram.
func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	fileURL := file.Link(b.api.Token)

	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение.
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Errorf("send message: %v", err)
	}
}
