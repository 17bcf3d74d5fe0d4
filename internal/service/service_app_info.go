package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-rsa-vault/internal/config"
	"github.com/MKhiriev/go-rsa-vault/internal/logger"
)

// versionService answers GET /api/version with the version the server was
// configured with.
type versionService struct {
	version string
}

// NewAppInfoService refuses to start a server that cannot report its
// version. Surrounding whitespace in APP_VERSION is dropped.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Msg("serving app version")
	return versionService{version: version}, nil
}

func (s versionService) GetAppVersion(context.Context) string {
	return s.version
}
