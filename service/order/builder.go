// Package order turns materialized cart lines into totals, an order message and the
// messaging links that carry it.
package order

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"storefront.GO/model/entity/catalog"
	"storefront.GO/service/reconcile"
	"storefront.GO/service/settings"
)

// FallbackCurrency is used when the configured currency code is empty or unknown.
const FallbackCurrency = "EGP"

// Summary is a snapshot of an order. Later catalog changes do not affect it.
type Summary struct {
	Lines []reconcile.LineItem `json:"lines"`
	Total float64              `json:"total"`
}

// Links are prefilled messaging URLs.
type Links struct {
	WhatsApp string `json:"whatsapp"`
	Telegram string `json:"telegram"`
}

// Builder formats orders for one storefront configuration.
type Builder struct {
	Currency       string
	Locale         string
	WhatsAppNumber string
	TelegramBot    string
}

// NewBuilder takes the currency and contact identifiers from s.
func NewBuilder(s settings.Settings, locale string) *Builder {
	return &Builder{
		Currency:       s.Currency,
		Locale:         locale,
		WhatsAppNumber: s.WhatsAppNumber,
		TelegramBot:    s.TelegramBot,
	}
}

// Summarize copies lines and totals them.
func (b *Builder) Summarize(lines []reconcile.LineItem) Summary {
	s := Summary{Lines: make([]reconcile.LineItem, len(lines))}
	copy(s.Lines, lines)
	for _, l := range s.Lines {
		s.Total += l.Subtotal()
	}
	return s
}

// FormatPrice renders amount in the builder's currency and locale.
func (b *Builder) FormatPrice(amount float64) string {
	return FormatPrice(amount, b.Currency, b.Locale)
}

// FormatPrice renders amount as currency code for locale. It is deterministic for
// identical arguments.
func FormatPrice(amount float64, code, locale string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.MustParseISO(FallbackCurrency)
	}
	tag := language.Make(locale)
	p := message.NewPrinter(tag)
	return p.Sprint(currency.Symbol(unit.Amount(amount)))
}

// RenderMessage writes one line per item and a total line.
func (b *Builder) RenderMessage(lines []reconcile.LineItem) string {
	summary := b.Summarize(lines)
	var sb strings.Builder
	sb.WriteString("My order:\n")
	for _, l := range summary.Lines {
		fmt.Fprintf(&sb, "%d × %s — %s\n", l.Quantity, l.Product.Name, b.FormatPrice(l.Subtotal()))
	}
	fmt.Fprintf(&sb, "Total: %s", b.FormatPrice(summary.Total))
	return sb.String()
}

// Links prefills the WhatsApp and Telegram chats with msg.
func (b *Builder) Links(msg string) Links {
	number := b.WhatsAppNumber
	if number == "" {
		number = settings.Defaults().WhatsAppNumber
	}
	bot := b.TelegramBot
	if bot == "" {
		bot = settings.Defaults().TelegramBot
	}
	text := encodeText(msg)
	return Links{
		WhatsApp: "https://wa.me/" + url.PathEscape(number) + "?text=" + text,
		Telegram: "https://t.me/" + url.PathEscape(bot) + "?text=" + text,
	}
}

// ProductInquiry is the message sent from a product page, with its links.
func (b *Builder) ProductInquiry(p catalog.Product) (string, Links) {
	msg := "I want to order " + p.Name
	return msg, b.Links(msg)
}

func encodeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
