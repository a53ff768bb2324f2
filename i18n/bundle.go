// Package i18n provides the translation bundle used for error and usage messages.
//
// The default bundle embeds en, de and fr translations. A Parser can be pointed at a
// different bundle (see ecp.WithBundle) without affecting the package default.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/napalu/ecp/internal/messages"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	ErrInvalidLanguage                    = errors.New("invalid language in filename")
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrInvalidTranslations                = errors.New("invalid translations")
	ErrEmptyTranslations                  = errors.New("empty translations")
	ErrFailedToSetString                  = errors.New("failed to set string")
	ErrLanguageNotFound                   = errors.New("language not found")
	ErrDefaultLanguageNotFound            = errors.New("default " + ErrLanguageNotFound.Error())
	ErrExtraKey                           = errors.New("extra key")
	ErrMissingKey                         = errors.New("missing key")
)

type Bundle struct {
	mu             sync.RWMutex
	defaultLang    language.Tag
	translations   map[language.Tag]map[string]string
	catalog        *catalog.Builder
	printers       map[language.Tag]*message.Printer
	validatedLangs map[language.Tag]struct{}
	matcher        language.Matcher
	supported      []language.Tag
}

var defaultBundle *Bundle

func init() {
	var err error
	defaultBundle, err = NewBundleWithFS(defaultLocales, "locales")
	if err != nil {
		panic("failed to load embedded locales: " + err.Error())
	}
}

// Default returns the package-wide bundle holding the built-in translations.
func Default() *Bundle {
	return defaultBundle
}

// NewBundle returns a fresh bundle loaded with the built-in translations.
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(defaultLocales, "locales")
}

// NewEmptyBundle returns a bundle without translations. English is the default language.
func NewEmptyBundle() *Bundle {
	return &Bundle{
		defaultLang:    language.English,
		translations:   make(map[language.Tag]map[string]string),
		catalog:        catalog.NewBuilder(),
		printers:       make(map[language.Tag]*message.Printer),
		validatedLangs: make(map[language.Tag]struct{}),
	}
}

// NewBundleWithFS loads every <lang>.json file found in dirPrefix. The default language
// is loaded first so that the other languages can be validated against its keys.
func NewBundleWithFS(fsys fs.FS, dirPrefix string) (*Bundle, error) {
	b := NewEmptyBundle()

	if err := b.loadWithFS(fsys, dirPrefix); err != nil {
		return nil, err
	}

	if _, exists := b.translations[b.defaultLang]; !exists {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.defaultLang)
	}

	b.validatedLangs[b.defaultLang] = struct{}{}

	return b, nil
}

// LoadFromString adds the translations of a JSON object to lang.
func (b *Bundle) LoadFromString(lang language.Tag, jsonTranslations string) error {
	var translations map[string]string
	if err := json.Unmarshal([]byte(jsonTranslations), &translations); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidTranslations, lang, err)
	}

	return b.AddLanguage(lang, translations)
}

// T returns the translation for the given key in the default language
func (b *Bundle) T(key string, args ...interface{}) string {
	return b.TL(b.GetDefaultLanguage(), key, args...)
}

// TL returns the translation for the given language and key. Unknown languages fall back
// to the default language, unknown keys are returned as-is.
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if _, exists := b.translations[lang]; !exists {
		lang = b.defaultLang
	}

	if len(args) == 0 {
		if msg, ok := b.translations[lang][key]; ok {
			return msg
		}
		return key
	}

	if p, exists := b.printers[lang]; exists {
		return p.Sprintf(key, args...)
	}

	return key
}

// AddLanguage adds a new language to the bundle or merges into an existing one
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	existing := b.translations[lang]
	merged := make(map[string]string, len(existing)+len(translations))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range translations {
		merged[k] = v
	}

	original := b.translations[lang]
	b.translations[lang] = merged

	// only new non-default languages are checked against the default key set
	var errs []error
	if lang != b.defaultLang && original == nil {
		errs = b.validateLanguage(lang)
	}

	if len(errs) > 0 {
		if original == nil {
			delete(b.translations, lang)
		} else {
			b.translations[lang] = original
		}
		return fmt.Errorf("%w: %s: %w", ErrInvalidTranslations, lang, errors.Join(errs...))
	}

	for key, value := range translations {
		if err := b.catalog.SetString(lang, key, value); err != nil {
			delete(merged, key)
			return fmt.Errorf("%w: %s: %w", ErrFailedToSetString, key, err)
		}
	}

	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))
	if original == nil {
		b.supported = append(b.supported, lang)
		sort.Slice(b.supported, func(i, j int) bool {
			return b.supported[i].String() < b.supported[j].String()
		})
		b.matcher = nil
	}

	return nil
}

// HasLanguage checks if a language is supported
func (b *Bundle) HasLanguage(lang language.Tag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, exists := b.translations[lang]
	return exists
}

// Languages returns the supported languages sorted by their BCP 47 representation
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	langs := make([]language.Tag, len(b.supported))
	copy(langs, b.supported)

	return langs
}

// Match returns the supported language closest to the preferred tags. When nothing matches the
// default language is returned together with false.
func (b *Bundle) Match(preferred ...language.Tag) (language.Tag, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.supported) == 0 {
		return b.defaultLang, false
	}
	if b.matcher == nil {
		b.matcher = language.NewMatcher(b.supported)
	}

	_, index, confidence := b.matcher.Match(preferred...)
	if confidence == language.No {
		return b.defaultLang, false
	}

	return b.supported[index], true
}

// HasKey checks if a key exists in a language
func (b *Bundle) HasKey(lang language.Tag, key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	translations, exists := b.translations[lang]
	if !exists {
		return false
	}

	_, exists = translations[key]
	return exists
}

// SetDefaultLanguage sets the default language
func (b *Bundle) SetDefaultLanguage(lang language.Tag) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.defaultLang = lang
}

// GetDefaultLanguage returns the default language
func (b *Bundle) GetDefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.defaultLang
}

// TranslateError renders err in lang. Translatable errors are rendered from their key and
// arguments, their wrapped chain is rendered recursively and joined with ": ". Any other
// error is rendered with its own Error method.
func (b *Bundle) TranslateError(lang language.Tag, err error) string {
	if err == nil {
		return ""
	}

	tr, ok := err.(TranslatableError)
	if !ok {
		return err.Error()
	}

	msg := b.TL(lang, tr.Key(), tr.Args()...)
	if wrapped := tr.Unwrap(); wrapped != nil {
		msg += b.separator(lang) + b.TranslateError(lang, wrapped)
	}

	return msg
}

// separator joins the messages of a wrapped error chain; bundles without the key use ": "
func (b *Bundle) separator(lang language.Tag) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, tag := range []language.Tag{lang, b.defaultLang} {
		if sep, ok := b.translations[tag][messages.MsgSeparatorKey]; ok {
			return sep
		}
	}

	return ": "
}

func (b *Bundle) loadWithFS(fsys fs.FS, dirPrefix string) error {
	entries, err := fs.ReadDir(fsys, dirPrefix)
	if err != nil {
		return err
	}

	deferred := make([]fs.DirEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		lang, err := language.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}
		if lang != b.defaultLang {
			deferred = append(deferred, entry)
			continue
		}
		if err := b.processLangFile(fsys, lang, path.Join(dirPrefix, entry.Name())); err != nil {
			return err
		}
	}

	for _, entry := range deferred {
		lang := language.MustParse(strings.TrimSuffix(entry.Name(), ".json"))
		if err := b.processLangFile(fsys, lang, path.Join(dirPrefix, entry.Name())); err != nil {
			return err
		}
	}

	return nil
}

func (b *Bundle) processLangFile(fsys fs.FS, lang language.Tag, filePath string) error {
	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return err
	}

	return b.LoadFromString(lang, string(data))
}

func (b *Bundle) validateLanguage(lang language.Tag) []error {
	var errs []error

	translations, exists := b.translations[lang]
	if !exists {
		return []error{fmt.Errorf("%w: %s", ErrLanguageNotFound, lang)}
	}

	if len(translations) == 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrEmptyTranslations, lang))
	}

	defaultTranslations, exists := b.translations[b.defaultLang]
	if !exists {
		return append(errs, fmt.Errorf("%w: %s", ErrDefaultLanguageNotFound, b.defaultLang))
	}

	for key := range defaultTranslations {
		if _, exists := translations[key]; !exists {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrMissingKey, lang, key))
		}
	}

	for key := range translations {
		if _, exists := defaultTranslations[key]; !exists {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrExtraKey, lang, key))
		}
	}

	return errs
}
