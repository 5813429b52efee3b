// Package i18n localizes the advisory and notice texts returned to players.
//
// The language of an edit session is resolved once, when the session is
// opened, and every message for that session is printed in it.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// Key identifies a localized message.
type Key string

// Message keys
const (
	WarningMinClasses         Key = "warning.min_classes"
	WarningClassLimit         Key = "warning.class_limit"
	WarningLevelSum           Key = "warning.level_sum"
	NoticeClassExists         Key = "notice.class_exists"
	NoticeSpellNotImplemented Key = "notice.spell_not_implemented"
	ConfirmUnsavedChanges     Key = "confirm.unsaved_changes"
)

// BaseLanguage must be present in every locale set.
const BaseLanguage = "en"

//go:embed locales/*.yaml
var embeddedLocales embed.FS

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Translator prints messages in one of the supported languages.
type Translator struct {
	catalog   *catalog.Builder
	matcher   language.Matcher
	supported []language.Tag
}

// New loads the embedded locales. defaultLanguage is used when a preference
// cannot be matched; empty means BaseLanguage.
func New(defaultLanguage string) (*Translator, error) {
	return Load(embeddedLocales, defaultLanguage)
}

// Load reads locales/*.yaml from fsys.
func Load(fsys fs.FS, defaultLanguage string) (*Translator, error) {
	if defaultLanguage == "" {
		defaultLanguage = BaseLanguage
	}
	fallback, err := language.Parse(defaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("parse default language %q: %w", defaultLanguage, err)
	}

	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locales: %w", err)
	}
	sort.Strings(paths)

	builder := catalog.NewBuilder(catalog.Fallback(fallback))
	tags := make(map[string]language.Tag, len(paths))
	for _, p := range paths {
		tag, err := loadLocale(fsys, p, builder)
		if err != nil {
			return nil, err
		}
		tags[tag.String()] = tag
	}

	if _, ok := tags[BaseLanguage]; !ok {
		return nil, fmt.Errorf("base language %s is not defined", BaseLanguage)
	}
	if _, ok := tags[fallback.String()]; !ok {
		return nil, fmt.Errorf("default language %s is not defined", fallback)
	}

	// The fallback goes first so an unmatched preference resolves to it.
	supported := []language.Tag{fallback}
	names := make([]string, 0, len(tags))
	for name := range tags {
		if name != fallback.String() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		supported = append(supported, tags[name])
	}

	return &Translator{
		catalog:   builder,
		matcher:   language.NewMatcher(supported),
		supported: supported,
	}, nil
}

func loadLocale(fsys fs.FS, p string, builder *catalog.Builder) (language.Tag, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return language.Und, fmt.Errorf("read locale %s: %w", p, err)
	}

	var file localeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return language.Und, fmt.Errorf("parse locale %s: %w", p, err)
	}

	name := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if file.Locale != name {
		return language.Und, fmt.Errorf("locale %s: locale %q must match file name", p, file.Locale)
	}

	tag, err := language.Parse(file.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("locale %s: %w", p, err)
	}

	for key, msg := range file.Messages {
		if err := builder.SetString(tag, key, msg); err != nil {
			return language.Und, fmt.Errorf("locale %s: key %s: %w", p, key, err)
		}
	}
	return tag, nil
}

// Resolve picks the supported language closest to preference. preference
// may be a single tag or an Accept-Language list.
func (t *Translator) Resolve(preference string) string {
	preference = strings.TrimSpace(preference)
	if preference == "" {
		return t.supported[0].String()
	}

	desired, _, err := language.ParseAcceptLanguage(preference)
	if err != nil || len(desired) == 0 {
		return t.supported[0].String()
	}

	_, idx, confidence := t.matcher.Match(desired...)
	if confidence == language.No {
		return t.supported[0].String()
	}
	return t.supported[idx].String()
}

// Sprintf prints key in lang. Unknown languages print in the default language.
func (t *Translator) Sprintf(lang string, key Key, args ...any) string {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = t.supported[0]
	}
	printer := message.NewPrinter(tag, message.Catalog(t.catalog))
	return printer.Sprintf(string(key), args...)
}

// Languages returns the supported language tags, default first.
func (t *Translator) Languages() []string {
	out := make([]string, len(t.supported))
	for i, tag := range t.supported {
		out[i] = tag.String()
	}
	return out
}
