package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/greenhouse/console/internal/core/domain"
	"github.com/greenhouse/console/internal/core/ports"
)

// DashboardService loads the role landing pages. Each list is fetched
// concurrently; a failed list is logged and left empty so one broken
// resource does not blank the page.
type DashboardService struct {
	plants    ports.PlantService
	seeds     ports.SeedService
	journal   ports.JournalService
	employees ports.EmployeeService
	clients   ports.ClientService
	admins    ports.AdminService
	log       zerolog.Logger
}

func NewDashboardService(
	plants ports.PlantService,
	seeds ports.SeedService,
	journal ports.JournalService,
	employees ports.EmployeeService,
	clients ports.ClientService,
	admins ports.AdminService,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		plants:    plants,
		seeds:     seeds,
		journal:   journal,
		employees: employees,
		clients:   clients,
		admins:    admins,
		log:       logger.With().Str("component", "dashboard").Logger(),
	}
}

// load runs fetch and stores its result in dst, or an empty slice on failure.
func load[T any](ctx context.Context, g *errgroup.Group, log zerolog.Logger, name string, dst *[]T, fetch func(context.Context) ([]T, error)) {
	g.Go(func() error {
		items, err := fetch(ctx)
		if err != nil {
			log.Warn().Err(err).Str("list", name).Msg("dashboard list unavailable, showing empty")
			items = nil
		}
		if items == nil {
			items = []T{}
		}
		*dst = items
		return nil
	})
}

func (s *DashboardService) Admin(ctx context.Context) *ports.AdminDashboard {
	var (
		d ports.AdminDashboard
		g errgroup.Group
	)
	load(ctx, &g, s.log, "plants", &d.Plants, func(ctx context.Context) ([]domain.Plant, error) {
		return s.plants.ListPlants(ctx, ports.PlantFilter{})
	})
	load(ctx, &g, s.log, "seeds", &d.Seeds, func(ctx context.Context) ([]domain.Seed, error) {
		return s.seeds.ListSeeds(ctx, ports.SeedFilter{})
	})
	load(ctx, &g, s.log, "growth_stages", &d.GrowthStages, s.journal.ListGrowthStages)
	load(ctx, &g, s.log, "employees", &d.Employees, func(ctx context.Context) ([]domain.Employee, error) {
		return s.employees.ListEmployees(ctx, nil)
	})
	load(ctx, &g, s.log, "clients", &d.Clients, func(ctx context.Context) ([]domain.Client, error) {
		return s.clients.ListClients(ctx, nil)
	})
	load(ctx, &g, s.log, "administrators", &d.Administrators, s.admins.ListAdministrators)
	_ = g.Wait()
	return &d
}

func (s *DashboardService) Employee(ctx context.Context) *ports.EmployeeDashboard {
	var (
		d ports.EmployeeDashboard
		g errgroup.Group
	)
	load(ctx, &g, s.log, "plants", &d.Plants, func(ctx context.Context) ([]domain.Plant, error) {
		return s.plants.ListPlants(ctx, ports.PlantFilter{})
	})
	load(ctx, &g, s.log, "seeds", &d.Seeds, func(ctx context.Context) ([]domain.Seed, error) {
		return s.seeds.ListSeeds(ctx, ports.SeedFilter{})
	})
	load(ctx, &g, s.log, "growth_stages", &d.GrowthStages, s.journal.ListGrowthStages)
	load(ctx, &g, s.log, "records", &d.Records, s.journal.ListMyRecords)
	_ = g.Wait()
	return &d
}

func (s *DashboardService) Client(ctx context.Context) *ports.ClientDashboard {
	var (
		d ports.ClientDashboard
		g errgroup.Group
	)
	load(ctx, &g, s.log, "plants", &d.Plants, func(ctx context.Context) ([]domain.Plant, error) {
		return s.plants.ListPlants(ctx, ports.PlantFilter{})
	})
	load(ctx, &g, s.log, "seeds", &d.Seeds, func(ctx context.Context) ([]domain.Seed, error) {
		return s.seeds.ListSeeds(ctx, ports.SeedFilter{})
	})
	_ = g.Wait()
	return &d
}
