package services

// ServiceContainer bundles the service facades handed to the handler layer.
type ServiceContainer struct {
	Employee EmployeeSvcFacade
	Leave    LeaveSvcFacade
	Token    TokenSvcFacade
}
