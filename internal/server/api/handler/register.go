package handler

import (
	"github.com/Alia5/kbdoverlay/internal/server/api"
	"github.com/Alia5/kbdoverlay/overlay"
)

// Register installs every lookup route on r. d may be nil, in which case
// shortcut responses carry no description.
func Register(r *api.Router, t *overlay.Table, d Describer, config api.ServerConfig, version string) {
	r.Register("ping", Ping(version))
	r.Register("locale/list", LocaleList(t))
	r.Register("locale/{id}", Locale(t))
	r.Register("locale/{id}/key", LocaleKey(t))
	r.Register("layout/list", LayoutList(t))
	r.Register("layout/{name}", Layout(t))
	r.Register("shortcut/list", ShortcutList(t, d, config.Lang))
	r.Register("shortcut/resolve", ShortcutResolve(t, d, config.Lang))
	r.Register("shortcut/action", ShortcutAction(t, d, config.Lang))
	r.Register("resolve", Resolve(t))
	r.Register("validate", Validate(t))
	r.RegisterStream("session/{locale}", KeySession(t, d, config))
}
