// Package i18n provides the message catalogs used for rejection messages, help output and
// built-in option descriptions.
//
// The system-wide bundle returned by Default is loaded from the embedded locales and is
// immutable. Parsers may be given their own bundle through earg.WithBundle.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var systemLocales embed.FS

var (
	ErrInvalidLanguage                    = errors.New("invalid language in filename")
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrInvalidTranslations                = errors.New("invalid translations")
	ErrEmptyTranslations                  = errors.New("empty translations")
	ErrFailedToSetString                  = errors.New("failed to set string")
	ErrLanguageNotFound                   = errors.New("language not found")
	ErrMissingKey                         = errors.New("missing key")
	ErrExtraKey                           = errors.New("extra key")
	ErrBundleImmutable                    = errors.New("bundle is immutable and cannot be modified")
)

// Bundle holds translations per language and a message printer per language
type Bundle struct {
	mu          sync.RWMutex
	defaultLang language.Tag
	// language.Tag -> map[string]string, in load order
	translations *orderedmap.OrderedMap
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
	matcher      language.Matcher
	immutable    bool
}

var (
	defaultBundle     *Bundle
	defaultBundleOnce sync.Once
)

// Default returns the immutable system bundle
func Default() *Bundle {
	defaultBundleOnce.Do(func() {
		b, err := NewBundle()
		if err != nil {
			panic("failed to load embedded locales: " + err.Error())
		}
		b.immutable = true
		defaultBundle = b
	})

	return defaultBundle
}

// NewBundle returns a mutable bundle loaded with the system translations
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(systemLocales, "locales")
}

// NewEmptyBundle returns a bundle without translations, defaulting to English
func NewEmptyBundle() *Bundle {
	return &Bundle{
		defaultLang:  language.English,
		translations: orderedmap.New(),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
		matcher:      language.NewMatcher([]language.Tag{language.English}),
	}
}

// NewBundleWithFS loads every <lang>.json file found in dir. The default language is
// always loaded first so that the other languages can be validated against it.
func NewBundleWithFS(fs embed.FS, dir string) (*Bundle, error) {
	b := NewEmptyBundle()

	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var deferred []language.Tag
	files := map[language.Tag]string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		lang, err := language.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}
		files[lang] = path.Join(dir, entry.Name())
		if lang != b.defaultLang {
			deferred = append(deferred, lang)
		}
	}

	file, ok := files[b.defaultLang]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.defaultLang)
	}
	if err := b.loadFile(fs, b.defaultLang, file); err != nil {
		return nil, err
	}

	sort.Slice(deferred, func(i, j int) bool {
		return deferred[i].String() < deferred[j].String()
	})
	for _, lang := range deferred {
		if err := b.loadFile(fs, lang, files[lang]); err != nil {
			return nil, err
		}
	}

	return b, nil
}

func (b *Bundle) loadFile(fs embed.FS, lang language.Tag, file string) error {
	data, err := fs.ReadFile(file)
	if err != nil {
		return err
	}

	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidTranslations, file, err)
	}

	return b.AddLanguage(lang, translations)
}

// AddLanguage adds or merges translations for lang. A language other than the default must
// define exactly the keys of the default language.
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	if b.immutable {
		return ErrBundleImmutable
	}
	if len(translations) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyTranslations, lang)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	merged := make(map[string]string, len(translations))
	existing, found := b.translations.Get(lang)
	if found {
		for k, v := range existing.(map[string]string) {
			merged[k] = v
		}
	}
	for k, v := range translations {
		merged[k] = v
	}

	if lang != b.defaultLang {
		if errs := b.validate(lang, merged); len(errs) > 0 {
			return fmt.Errorf("%w: %s: %w", ErrInvalidTranslations, lang, errors.Join(errs...))
		}
	}

	for k, v := range translations {
		if err := b.catalog.SetString(lang, k, v); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrFailedToSetString, k, err)
		}
	}

	b.translations.Set(lang, merged)
	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))
	b.matcher = language.NewMatcher(b.languagesLocked())

	return nil
}

func (b *Bundle) validate(lang language.Tag, translations map[string]string) []error {
	defaults, found := b.translations.Get(b.defaultLang)
	if !found {
		return []error{fmt.Errorf("%w: %s", ErrLanguageNotFound, b.defaultLang)}
	}

	var errs []error
	for key := range defaults.(map[string]string) {
		if _, ok := translations[key]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrMissingKey, lang, key))
		}
	}
	for key := range translations {
		if _, ok := defaults.(map[string]string)[key]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrExtraKey, lang, key))
		}
	}

	return errs
}

// T translates key in the default language. key is a message key such as
// "earg.msg.try_help", not a format string.
func (b *Bundle) T(key message.Reference, args ...interface{}) string {
	b.mu.RLock()
	lang := b.defaultLang
	b.mu.RUnlock()

	return b.TL(lang, key, args...)
}

// TL translates key in lang, falling back to the closest supported language
func (b *Bundle) TL(lang language.Tag, key message.Reference, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if p, ok := b.printers[lang]; ok {
		return p.Sprintf(key, args...)
	}
	if b.matcher != nil {
		_, idx, conf := b.matcher.Match(lang)
		if conf != language.No {
			if p, ok := b.printers[b.languagesLocked()[idx]]; ok {
				return p.Sprintf(key, args...)
			}
		}
	}
	if p, ok := b.printers[b.defaultLang]; ok {
		return p.Sprintf(key, args...)
	}

	msg, _ := key.(string)
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// HasKey returns true when key is translated in lang
func (b *Bundle) HasKey(lang language.Tag, key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	translations, found := b.translations.Get(lang)
	if !found {
		return false
	}
	_, ok := translations.(map[string]string)[key]

	return ok
}

// Languages returns the loaded languages in load order
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.languagesLocked()
}

func (b *Bundle) languagesLocked() []language.Tag {
	langs := make([]language.Tag, 0, b.translations.Len())
	for pair := b.translations.Oldest(); pair != nil; pair = pair.Next() {
		langs = append(langs, pair.Key.(language.Tag))
	}

	return langs
}

// SetDefaultLanguage changes the language used by T
func (b *Bundle) SetDefaultLanguage(lang language.Tag) error {
	if b.immutable {
		return ErrBundleImmutable
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, found := b.translations.Get(lang); !found {
		return fmt.Errorf("%w: %s", ErrLanguageNotFound, lang)
	}
	b.defaultLang = lang

	return nil
}

// DefaultLanguage returns the language used by T
func (b *Bundle) DefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.defaultLang
}

// GetMessage implements MessageProvider. It returns the unformatted message for key in the
// default language, then English, then key itself.
func (b *Bundle) GetMessage(key string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.lookupLocked(b.defaultLang, key)
}

// ForLanguage returns a MessageProvider resolving raw messages in lang, falling back to the
// default language and then to English
func (b *Bundle) ForLanguage(lang language.Tag) MessageProvider {
	return languageProvider{bundle: b, lang: lang}
}

type languageProvider struct {
	bundle *Bundle
	lang   language.Tag
}

func (p languageProvider) GetMessage(key string) string {
	p.bundle.mu.RLock()
	defer p.bundle.mu.RUnlock()

	return p.bundle.lookupLocked(p.lang, key)
}

func (b *Bundle) lookupLocked(lang language.Tag, key string) string {
	candidates := []language.Tag{lang}
	if b.matcher != nil {
		if _, idx, conf := b.matcher.Match(lang); conf != language.No {
			candidates = append(candidates, b.languagesLocked()[idx])
		}
	}
	candidates = append(candidates, b.defaultLang, language.English)

	for _, tag := range candidates {
		if translations, found := b.translations.Get(tag); found {
			if msg, ok := translations.(map[string]string)[key]; ok {
				return msg
			}
		}
	}

	return key
}
