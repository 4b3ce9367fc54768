package service

import (
	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
)

type ClientServices struct {
	SessionService ClientSessionService
	ContentService ClientContentService
	ProjectService ClientProjectService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	sessionSvc := NewClientSessionService(localStore.SessionRepository, serverAdapter, logger)

	return &ClientServices{
		SessionService: sessionSvc,
		ContentService: NewClientContentService(serverAdapter, sessionSvc, logger),
		ProjectService: NewClientProjectService(serverAdapter, sessionSvc, logger),
	}
}
