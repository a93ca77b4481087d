// Package telegram wires the salon services to bot commands, menu
// callbacks and the admin intake conversation.
package telegram

import (
	"fmt"
	"strings"

	"salonbot/salon/config"
)

const (
	textGreeting = "Привет! 💅 Я бот салона красоты.\nВыберите, что вас интересует:"

	textBooked      = "Вы записаны 💖"
	textSlotTaken   = "Время уже занято ❌"
	textNoSlots     = "Свободных окон нет 💔"
	textPickSlot    = "Выберите удобное время:"
	textCancelled   = "Запись отменена 🌷"
	textNoBooking   = "У вас нет активной записи 🌸"
	textHasBooking  = "У вас уже есть запись 💫 Сначала отмените её."
	textTryAgain    = "Что-то пошло не так, попробуйте ещё раз 🙏"
	textEmptyWorks  = "Пока здесь пусто 🌱 Загляните позже!"
	textAdminDenied = "⛔ Доступ только для администратора"

	textAdminMenu        = "Панель администратора 🛠"
	textSendPortfolio    = "Пришлите фото работы 📸"
	textSendReview       = "Пришлите фото отзыва с подписью 💬"
	textSendSlot         = "Введите дату и время в формате ДД.ММ.ГГГГ ЧЧ:ММ\nНапример: 25.12.2026 14:00"
	textNeedPhoto        = "Нужно именно фото 📷 Попробуйте ещё раз."
	textNeedCaption      = "Добавьте к фото подпись с текстом отзыва ✍️"
	textBadSlot          = "Не понимаю дату 😔 Формат: ДД.ММ.ГГГГ ЧЧ:ММ"
	textPortfolioAdded   = "Работа добавлена ✅"
	textReviewAdded      = "Отзыв добавлен ✅"
	textIntakeCancelled  = "Действие отменено 👌"
	textNothingToRespond = "Выберите действие из меню 👇"
)

func slotAddedText(label string) string {
	return fmt.Sprintf("Окно %s добавлено ✅", label)
}

func bookedText(label string) string {
	return fmt.Sprintf("%s\n📅 %s", textBooked, label)
}

func cancelledText(label string) string {
	return fmt.Sprintf("%s\nОкно %s снова свободно.", textCancelled, label)
}

func priceText(items []config.PriceItem) string {
	var b strings.Builder
	b.WriteString("<b>Прайс-лист 💅</b>\n\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%s — %s\n", item.Name, item.Cost)
	}
	return strings.TrimRight(b.String(), "\n")
}

func galleryCaption(base string, index, count int) string {
	pos := fmt.Sprintf("%d/%d", index+1, count)
	if base == "" {
		return pos
	}
	return base + "\n\n" + pos
}
