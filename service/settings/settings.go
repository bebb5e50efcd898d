// Package settings reads the storefront's presentation settings document.
package settings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/mitchellh/mapstructure"

	"storefront.GO/core/notify"
	"storefront.GO/service/catalog"
)

// Settings is the presentation configuration published next to the catalog.
type Settings struct {
	PrimaryColor     string   `json:"primaryColor" mapstructure:"primaryColor"`
	SecondaryColor   string   `json:"secondaryColor" mapstructure:"secondaryColor"`
	AccentColor      string   `json:"accentColor" mapstructure:"accentColor"`
	LogoURL          string   `json:"logoUrl" mapstructure:"logoUrl"`
	InstagramURL     string   `json:"instagramUrl" mapstructure:"instagramUrl"`
	FacebookURL      string   `json:"facebookUrl" mapstructure:"facebookUrl"`
	TelegramBot      string   `json:"telegramBot" mapstructure:"telegramBot"`
	TelegramGroupURL string   `json:"telegramGroupUrl" mapstructure:"telegramGroupUrl"`
	WhatsAppNumber   string   `json:"whatsappNumber" mapstructure:"whatsappNumber"`
	Currency         string   `json:"currency" mapstructure:"currency"`
	BannerImages     []string `json:"bannerImages" mapstructure:"bannerImages"`
	BannerAnimations []string `json:"bannerAnimations" mapstructure:"bannerAnimations"`
	// BannerInterval is in milliseconds.
	BannerInterval int `json:"bannerInterval" mapstructure:"bannerInterval"`
}

// Defaults is the fallback used when the settings document cannot be read.
func Defaults() Settings {
	return Settings{
		PrimaryColor:     "#FF6B9B",
		SecondaryColor:   "#FFD1DC",
		AccentColor:      "#FFD700",
		LogoURL:          "https://via.placeholder.com/50",
		InstagramURL:     "#",
		FacebookURL:      "#",
		TelegramBot:      "roaa_bot",
		TelegramGroupURL: "#",
		WhatsAppNumber:   "201050043254",
		Currency:         "EGP",
		BannerImages:     []string{"https://via.placeholder.com/1200x600"},
		BannerAnimations: []string{"animate__fadeIn"},
		BannerInterval:   5000,
	}
}

// Load fetches and decodes the settings document. It never fails: on any error the
// defaults are returned, the visitor is notified and the error is reported.
func Load(ctx context.Context, fetcher catalog.DocumentFetcher, name string, notifier notify.Notifier) (Settings, error) {
	if notifier == nil {
		notifier = notify.Discard
	}
	s, err := load(ctx, fetcher, name)
	if err != nil {
		log.Printf("settings: failed to load %s, using defaults: %v", name, err)
		notifier.Notify("Failed to load settings, using the default settings")
		return Defaults(), err
	}
	return s, nil
}

func load(ctx context.Context, fetcher catalog.DocumentFetcher, name string) (Settings, error) {
	body, err := fetcher.Fetch(ctx, name)
	if err != nil {
		return Settings{}, err
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return Settings{}, &catalog.LoadError{Resource: name, Reason: catalog.ErrEmpty}
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return Settings{}, &catalog.LoadError{Resource: name, Reason: catalog.ErrMalformed, Err: err}
	}
	if raw == nil {
		return Settings{}, &catalog.LoadError{Resource: name, Reason: catalog.ErrEmpty}
	}

	var s Settings
	cfg := &mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &s,
		TagName:          "mapstructure",
	}
	d, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return Settings{}, err
	}
	if err := d.Decode(raw); err != nil {
		return Settings{}, &catalog.LoadError{Resource: name, Reason: catalog.ErrMalformed, Err: fmt.Errorf("decode settings: %w", err)}
	}
	return s.withDefaults(), nil
}

// withDefaults fills every empty field from Defaults.
func (s Settings) withDefaults() Settings {
	d := Defaults()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&s.PrimaryColor, d.PrimaryColor)
	fill(&s.SecondaryColor, d.SecondaryColor)
	fill(&s.AccentColor, d.AccentColor)
	fill(&s.LogoURL, d.LogoURL)
	fill(&s.InstagramURL, d.InstagramURL)
	fill(&s.FacebookURL, d.FacebookURL)
	fill(&s.TelegramBot, d.TelegramBot)
	fill(&s.TelegramGroupURL, d.TelegramGroupURL)
	fill(&s.WhatsAppNumber, d.WhatsAppNumber)
	fill(&s.Currency, d.Currency)
	if len(s.BannerImages) == 0 {
		s.BannerImages = d.BannerImages
	}
	if len(s.BannerAnimations) == 0 {
		s.BannerAnimations = d.BannerAnimations
	}
	if s.BannerInterval <= 0 {
		s.BannerInterval = d.BannerInterval
	}
	return s
}

// Banner returns the banner image and animation shown at rotation step i.
func (s Settings) Banner(i int) (image, animation string) {
	if i < 0 {
		i = -i
	}
	image, animation = "https://via.placeholder.com/1200x600", "animate__fadeIn"
	if n := len(s.BannerImages); n > 0 {
		image = s.BannerImages[i%n]
	}
	if n := len(s.BannerAnimations); n > 0 {
		animation = s.BannerAnimations[i%n]
	}
	return image, animation
}
