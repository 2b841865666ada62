package services

import (
	"html"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"planboard/internal/models"
	"planboard/internal/planning"
)

// NotifyService pushes task events to team members with a linked telegram
// chat. A service built without a bot token is a no-op; callers never have
// to check for nil.
type NotifyService struct {
	bot *tgbotapi.BotAPI
}

func NewNotifyService(botToken string) *NotifyService {
	if botToken == "" {
		return &NotifyService{}
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Printf("[tg][init][err] %v", err)
		return &NotifyService{}
	}
	log.Printf("[tg][init] authorized as @%s", bot.Self.UserName)
	return &NotifyService{bot: bot}
}

func (n *NotifyService) SendMessage(chatID int64, text string) error {
	if n == nil || n.bot == nil || chatID == 0 {
		return nil
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if _, err := n.bot.Send(msg); err != nil {
		log.Printf("[tg][send][err] chatID=%d: %v", chatID, err)
		return err
	}
	return nil
}

func (n *NotifyService) NotifyTask(chatID int64, prefix string, t *models.Task) {
	if t == nil {
		return
	}
	text := prefix + "\n" +
		"• <b>" + html.EscapeString(t.Name) + "</b>\n" +
		"• Status: <code>" + string(t.Status) + "</code>\n" +
		"• Priority: <code>" + string(t.Priority) + "</code>\n" +
		"• Due: <code>" + planning.FormatDate(t.EndDate) + "</code>"
	_ = n.SendMessage(chatID, text)
}
