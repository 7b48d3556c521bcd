package services

import (
	portsrepo "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/repositories"
	portssvc "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/services"
	"github.com/Grupo02-6P/grupo02-sub001/internal/export"
	"github.com/Grupo02-6P/grupo02-sub001/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, exporter *export.Exporter) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The user service doubles as the role authorizer for everything else.
	container.User = NewUserService(repos.UserRepo)
	authorizer := portssvc.RoleAuthorizerSvc(container.User)

	container.Auth = NewAuthService(repos.UserRepo, cfg)
	container.Account = NewAccountService(repos.AccountRepo, WithAccountRoleAuthorizer(authorizer))

	journal := NewJournalService(repos.JournalRepo, repos.AccountRepo, WithJournalRoleAuthorizer(authorizer))
	container.Journal = journal

	container.Title = NewTitleService(repos.TitleRepo, repos.AccountRepo, journal, cfg.CashAccountCode,
		WithTitleRoleAuthorizer(authorizer))

	container.Report = NewReportService(repos.ReportingRepo, exporter, WithReportRoleAuthorizer(authorizer))

	return container
}
