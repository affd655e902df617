package services

import (
	portsrepo "github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/ports/repositories"
	portssvc "github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/ports/services"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/pkg/config"
)

// NewServiceContainer wires the repositories into the service facades consumed
// by the handler layer.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Employee: NewEmployeeService(repos.EmployeeRepo),
		Leave:    NewLeaveService(repos.LeaveRepo),
		Token:    NewTokenService(cfg),
	}
}
