package handler

import (
	"log/slog"

	"github.com/Alia5/kbdoverlay/apitypes"
	"github.com/Alia5/kbdoverlay/internal/server/api"
)

// ServerName identifies this server in ping responses.
const ServerName = "kbdoverlay"

// Ping returns a handler reporting the server identity and version.
func Ping(version string) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		return writeJSON(res, apitypes.PingResponse{Server: ServerName, Version: version})
	}
}
