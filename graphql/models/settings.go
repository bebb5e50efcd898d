package models

import "storefront.GO/service/settings"

type Settings struct {
	Currency         string
	WhatsAppNumber   string
	TelegramBot      string
	TelegramGroupURL string
	InstagramURL     string
	FacebookURL      string
	LogoURL          string
	PrimaryColor     string
	SecondaryColor   string
	AccentColor      string
	BannerImages     []string
	BannerAnimations []string
	BannerInterval   int32
}

func NewSettings(s settings.Settings) *Settings {
	out := &Settings{
		Currency:         s.Currency,
		WhatsAppNumber:   s.WhatsAppNumber,
		TelegramBot:      s.TelegramBot,
		TelegramGroupURL: s.TelegramGroupURL,
		InstagramURL:     s.InstagramURL,
		FacebookURL:      s.FacebookURL,
		LogoURL:          s.LogoURL,
		PrimaryColor:     s.PrimaryColor,
		SecondaryColor:   s.SecondaryColor,
		AccentColor:      s.AccentColor,
		BannerImages:     s.BannerImages,
		BannerAnimations: s.BannerAnimations,
		BannerInterval:   int32(s.BannerInterval),
	}
	if out.BannerImages == nil {
		out.BannerImages = []string{}
	}
	if out.BannerAnimations == nil {
		out.BannerAnimations = []string{}
	}
	return out
}
