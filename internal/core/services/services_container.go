package services

import (
	portsrepo "github.com/SscSPs/ratechart_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ratechart_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Session = NewSessionService()

	dropdowns := NewDropdownService()
	container.ChartDropdown = dropdowns
	container.IncentiveDropdown = dropdowns

	container.CodeValue = NewCodeValueService(repos.CodeValueRepo)

	container.RateSlab = NewRateSlabService(
		repos.RateSlabRepo,
		WithSessionAuthenticator(container.Session),
		WithChartDropdownService(container.ChartDropdown),
		WithIncentiveDropdownService(container.IncentiveDropdown),
		WithCodeValueService(container.CodeValue),
	)

	return container
}
