package bot

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Run starts the Telegram front door: on /start the bot replies with an
// inline button that opens the web app. Blocks on the update loop.
func Run(token, webappURL string) error {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return err
	}
	log.Printf("Bot authorized as @%s", api.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	for update := range api.GetUpdatesChan(updateConfig) {
		if update.Message == nil || !update.Message.IsCommand() {
			continue
		}
		if update.Message.Command() != "start" {
			continue
		}

		msg := tgbotapi.NewMessage(update.Message.Chat.ID, "Нажмите кнопку, чтобы открыть приложение ответов.")
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonURL("Открыть приложение", webappURL),
			),
		)
		if _, err := api.Send(msg); err != nil {
			log.Printf("Failed to send start reply: %v", err)
		}
	}
	return nil
}
