package service

import (
	"github.com/MKhiriev/nurse-notes/internal/adapter"
	"github.com/MKhiriev/nurse-notes/internal/logger"
	"github.com/MKhiriev/nurse-notes/internal/session"
)

type ClientServices struct {
	AuthService ClientAuthService
}

func NewClientServices(api adapter.AuthAPI, sessionStore *session.Store, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(api, sessionStore, logger),
	}
}
