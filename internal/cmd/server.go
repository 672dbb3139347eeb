package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Alia5/kbdoverlay/internal/configpaths"
	"github.com/Alia5/kbdoverlay/internal/log"
	"github.com/Alia5/kbdoverlay/internal/server/api"
	"github.com/Alia5/kbdoverlay/internal/server/api/auth"
	"github.com/Alia5/kbdoverlay/internal/server/api/handler"
	"github.com/Alia5/kbdoverlay/overlay"
)

type Server struct {
	ApiServerConfig api.ServerConfig `embed:"" prefix:"api."`
	AllowErrors     bool             `help:"Serve even if the table has validation errors" env:"KBDOVERLAY_ALLOW_ERRORS"`
	PasswordFile    string           `help:"Read the API password from this file, generating one if it does not exist" type:"path" env:"KBDOVERLAY_PASSWORD_FILE"`
}

// Run is called by Kong when the server command is executed.
func (s *Server) Run(g *Globals, logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.StartServer(ctx, g, logger, rawLogger)
}

func (s *Server) StartServer(ctx context.Context, g *Globals, logger *slog.Logger, rawLogger log.RawLogger) error {
	if s.ApiServerConfig.Addr == "" {
		logger.Error("API server address must be set (default :3243).")
		return fmt.Errorf("API server address must be set (default :3243)")
	}

	t, err := g.LoadTable(logger)
	if err != nil {
		return err
	}
	findings := t.Validate()
	for _, f := range findings {
		if f.Severity == overlay.SeverityError {
			logger.Error("table validation", "finding", f.String())
		} else {
			logger.Debug("table validation", "finding", f.String())
		}
	}
	if overlay.HasErrors(findings) && !s.AllowErrors {
		return fmt.Errorf("table has validation errors; fix the data files or pass --allow-errors")
	}

	cat, err := g.LoadCatalog()
	if err != nil {
		return err
	}
	if s.PasswordFile != "" && s.ApiServerConfig.Password == "" {
		pwd, err := loadOrCreatePassword(s.PasswordFile, logger)
		if err != nil {
			return err
		}
		s.ApiServerConfig.Password = pwd
	}
	if s.ApiServerConfig.Lang == "" {
		s.ApiServerConfig.Lang = g.Lang
	}

	logger.Info("Starting kbdoverlay lookup server", "version", Version, "auth", s.ApiServerConfig.Password != "",
		"locales", len(t.LocaleIDs()), "shortcuts", len(t.Shortcuts()), "languages", cat.Languages())

	apiSrv := api.New(s.ApiServerConfig.Addr, s.ApiServerConfig, logger, rawLogger)
	handler.Register(apiSrv.Router(), t, cat, s.ApiServerConfig, Version)
	if err := apiSrv.Start(); err != nil {
		logger.Error("failed to start API server", "error", err)
		return err
	}

	<-ctx.Done()
	apiSrv.Close()
	apiSrv.Wait()
	return nil
}

func loadOrCreatePassword(path string, logger *slog.Logger) (string, error) {
	if b, err := os.ReadFile(path); err == nil {
		if pwd := strings.TrimSpace(string(b)); pwd != "" {
			return pwd, nil
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("read password file: %w", err)
	}
	pwd, err := auth.GeneratePassword()
	if err != nil {
		return "", fmt.Errorf("generate API password: %w", err)
	}
	if err := configpaths.EnsureDir(path); err != nil {
		return "", fmt.Errorf("create password file dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(pwd+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("write password file: %w", err)
	}
	logger.Info("Generated API server password", "path", path)
	return pwd, nil
}
