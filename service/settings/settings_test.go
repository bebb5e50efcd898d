package settings

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"storefront.GO/core/notify"
	"storefront.GO/service/catalog"
)

type stubFetcher map[string]string

func (f stubFetcher) Fetch(_ context.Context, name string) ([]byte, error) {
	body, ok := f[name]
	if !ok {
		return nil, &catalog.LoadError{Resource: name, Reason: catalog.ErrUnreachable, Err: fmt.Errorf("no such document")}
	}
	return []byte(body), nil
}

func TestLoad_Document(t *testing.T) {
	f := stubFetcher{"settings.json": `{
		"currency": "USD",
		"whatsappNumber": 201000000000,
		"telegramBot": "shop_bot",
		"bannerImages": ["b1.jpg", "b2.jpg"],
		"bannerInterval": "7000",
		"unknown": true
	}`}
	rec := &notify.Recorder{}
	s, err := Load(context.Background(), f, "settings.json", rec)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Currency != "USD" || s.TelegramBot != "shop_bot" || s.WhatsAppNumber != "201000000000" {
		t.Errorf("settings = %+v", s)
	}
	if s.BannerInterval != 7000 {
		t.Errorf("BannerInterval = %d", s.BannerInterval)
	}
	if !reflect.DeepEqual(s.BannerImages, []string{"b1.jpg", "b2.jpg"}) {
		t.Errorf("BannerImages = %v", s.BannerImages)
	}
	if s.PrimaryColor != Defaults().PrimaryColor {
		t.Errorf("missing PrimaryColor should default, got %q", s.PrimaryColor)
	}
	if len(rec.Messages) != 0 {
		t.Errorf("unexpected notifications %v", rec.Messages)
	}
}

func TestLoad_FallsBackToDefaults(t *testing.T) {
	cases := map[string]stubFetcher{
		"missing":   {},
		"empty":     {"settings.json": ""},
		"null":      {"settings.json": "null"},
		"not json":  {"settings.json": "{"},
		"array":     {"settings.json": `[1,2]`},
		"bad field": {"settings.json": `{"bannerImages": {"a": 1}}`},
	}
	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			rec := &notify.Recorder{}
			s, err := Load(context.Background(), f, "settings.json", rec)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !reflect.DeepEqual(s, Defaults()) {
				t.Errorf("settings = %+v, want defaults", s)
			}
			if rec.Last() != "Failed to load settings, using the default settings" {
				t.Errorf("notification = %q", rec.Last())
			}
		})
	}
}

func TestLoad_ErrorReason(t *testing.T) {
	_, err := Load(context.Background(), stubFetcher{"settings.json": "   "}, "settings.json", nil)
	if !errors.Is(err, catalog.ErrEmpty) {
		t.Errorf("err = %v, want ErrEmpty", err)
	}
}

func TestBanner(t *testing.T) {
	s := Settings{BannerImages: []string{"a", "b"}, BannerAnimations: []string{"fade"}}
	if img, anim := s.Banner(3); img != "b" || anim != "fade" {
		t.Errorf("Banner(3) = %q, %q", img, anim)
	}
	if img, _ := (Settings{}).Banner(0); img == "" {
		t.Error("Banner without images should fall back to a placeholder")
	}
}
