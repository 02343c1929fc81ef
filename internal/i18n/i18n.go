// Package i18n is the storefront translation lookup: a static key-to-string
// table for Thai and English plus the persisted current-locale selection.
package i18n

import (
	"log/slog"

	"github.com/eshoplabs/go-shop-state/internal/pubsub"
	"github.com/eshoplabs/go-shop-state/internal/storage"
)

type Locale string

const (
	LocaleThai    Locale = "th"
	LocaleEnglish Locale = "en"
)

// Translator resolves translation keys against the current locale. The
// selection is persisted under the language key so it survives restarts.
type Translator struct {
	kv     storage.KV
	log    *slog.Logger
	locale Locale
	stream *pubsub.Broadcaster[Locale]
}

func New(kv storage.KV, log *slog.Logger, fallback Locale) *Translator {
	t := &Translator{
		kv:     kv,
		log:    log,
		locale: fallback,
		stream: pubsub.New[Locale](),
	}
	raw, ok, err := kv.Get(storage.KeyLanguage)
	if err != nil {
		log.Warn("load locale", "error", err)
		return t
	}
	if ok {
		switch Locale(raw) {
		case LocaleThai, LocaleEnglish:
			t.locale = Locale(raw)
		}
	}
	return t
}

func (t *Translator) Locale() Locale { return t.locale }

func (t *Translator) SetLocale(l Locale) {
	if l != LocaleThai && l != LocaleEnglish {
		return
	}
	t.locale = l
	if err := t.kv.Set(storage.KeyLanguage, string(l)); err != nil {
		t.log.Warn("save locale", "error", err)
	}
	t.stream.Publish(l)
}

// Subscribe registers fn for locale changes.
func (t *Translator) Subscribe(fn func(Locale)) (unsubscribe func()) {
	return t.stream.Subscribe(fn)
}

// T returns the string for key in the current locale, or the key itself when
// no translation exists.
func (t *Translator) T(key string) string {
	e, ok := table[key]
	if !ok {
		t.log.Warn("translation missing", "key", key)
		return key
	}
	if t.locale == LocaleEnglish {
		return e.en
	}
	return e.th
}
