package service

import (
	"context"

	"github.com/akovalev/go-field-sync/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
}

func NewAppInfoService(buildInfo models.AppBuildInfo) AppInfoService {
	return &appInfoService{buildInfo: buildInfo}
}

// BuildInfo implements [AppInfoService].
func (s *appInfoService) BuildInfo(_ context.Context) models.VersionResponse {
	return models.VersionResponse{
		BuildVersion: s.buildInfo.BuildVersion(),
		BuildDate:    s.buildInfo.BuildDate(),
		BuildCommit:  s.buildInfo.BuildCommit(),
	}
}
