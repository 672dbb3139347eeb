// Package messages resolves shortcut action ids to human readable text.
package messages

import (
	"embed"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages.*.toml
var builtin embed.FS

// BuiltinFiles are the embedded message files.
var BuiltinFiles = []string{"messages.en.toml", "messages.de.toml"}

// Catalog holds the action descriptions of every loaded language.
type Catalog struct {
	bundle *i18n.Bundle
}

// New loads the embedded messages plus any extra go-i18n message files.
// The language of an extra file is taken from its name, as in
// "messages.fr.toml".
func New(extraFiles ...string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, name := range BuiltinFiles {
		if _, err := bundle.LoadMessageFileFS(builtin, name); err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
	}
	for _, path := range extraFiles {
		if _, err := bundle.LoadMessageFile(path); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	return &Catalog{bundle: bundle}, nil
}

// Languages returns the languages with at least one message.
func (c *Catalog) Languages() []string {
	tags := c.bundle.LanguageTags()
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.String())
	}
	return out
}

// Lookup returns the text of an action in the best matching language.
// Languages are tried in order and English is the last resort.
func (c *Catalog) Lookup(action string, langs ...string) (text, lang string, ok bool) {
	loc := i18n.NewLocalizer(c.bundle, langs...)
	// When no requested language has the message, go-i18n returns the
	// English text along with a *MessageNotFoundErr.
	text, tag, err := loc.LocalizeWithTag(&i18n.LocalizeConfig{MessageID: action})
	if text == "" {
		return "", "", false
	}
	var notFound *i18n.MessageNotFoundErr
	if err != nil && !errors.As(err, &notFound) {
		return "", "", false
	}
	return text, tag.String(), true
}

// Describe returns the text of an action, or the action id itself when no
// language has a message for it.
func (c *Catalog) Describe(action string, langs ...string) string {
	if text, _, ok := c.Lookup(action, langs...); ok {
		return text
	}
	return action
}
