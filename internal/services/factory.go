package services

import (
	"github.com/sirupsen/logrus"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	EchoService EchoService
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(logger *logrus.Logger) *ServiceContainer {
	if logger == nil {
		logger = logrus.New()
	}

	return &ServiceContainer{
		EchoService: NewEchoService(logger),
	}
}
