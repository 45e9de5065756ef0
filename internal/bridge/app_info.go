package bridge

import (
	"os"
	"runtime"

	"github.com/MKhiriev/toolbox-vault/internal/config"
	"github.com/MKhiriev/toolbox-vault/models"
)

// NewAppMetadata assembles what get-app-metadata reports. AppPath is the
// running executable, or empty when it cannot be found.
func NewAppMetadata(cfg config.App, build models.AppBuildInfo) (models.AppMetadata, error) {
	if cfg.Version == "" {
		return models.AppMetadata{}, ErrVersionIsNotSpecified
	}

	var appPath string
	if exe, err := os.Executable(); err == nil {
		appPath = exe
	}

	return models.AppMetadata{
		Name:        cfg.Name,
		Version:     cfg.Version,
		Platform:    runtime.GOOS,
		Arch:        runtime.GOARCH,
		AppPath:     appPath,
		BuildDate:   build.BuildDate(),
		BuildCommit: build.BuildCommit(),
	}, nil
}
