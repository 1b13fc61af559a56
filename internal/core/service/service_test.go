package service

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/greenhouse/console/internal/core/domain"
	"github.com/greenhouse/console/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Filter forwarding
// ---------------------------------------------------------------------------

func TestListPlants_NoFiltersForwardsNil(t *testing.T) {
	api := &stubPlantsAPI{}
	svc := NewPlantService(api, discardLogger)

	if _, err := svc.ListPlants(context.Background(), ports.PlantFilter{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(api.listCalls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(api.listCalls))
	}
	if got := api.listCalls[0]; got.Family != nil || got.Species != nil {
		t.Errorf("expected nil filters, got %+v", got)
	}
}

func TestListPlants_ForwardsGivenFilters(t *testing.T) {
	api := &stubPlantsAPI{}
	svc := NewPlantService(api, discardLogger)

	_, _ = svc.ListPlants(context.Background(), ports.PlantFilter{Species: strPtr("ficus")})
	got := api.listCalls[0]
	if got.Family != nil {
		t.Errorf("family should stay nil, got %q", *got.Family)
	}
	if got.Species == nil || *got.Species != "ficus" {
		t.Errorf("species not forwarded: %+v", got)
	}
}

func TestListRecords_NoFiltersForwardsNil(t *testing.T) {
	api := &stubJournalAPI{}
	svc := NewJournalService(api, &stubGrowthStagesAPI{}, discardLogger)

	_, _ = svc.ListRecords(context.Background(), ports.JournalFilter{})
	if got := api.listCalls[0]; got != (ports.JournalListParams{}) {
		t.Errorf("expected all-nil params, got %+v", got)
	}
}

func TestListMyRecords_SendsNoEmployeeFilter(t *testing.T) {
	api := &stubJournalAPI{records: []ports.JournalRecordDto{{Id: strPtr("r1"), PlantId: "p1", EmployeeId: strPtr("e1")}}}
	svc := NewJournalService(api, &stubGrowthStagesAPI{}, discardLogger)

	records, err := svc.ListMyRecords(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.listCalls[0].EmployeeId != nil {
		t.Errorf("employee filter must be absent, got %q", *api.listCalls[0].EmployeeId)
	}
	if len(records) != 1 || records[0].EmployeeID != "e1" {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestListClientsEmployeesUsers_NilFilters(t *testing.T) {
	ctx := context.Background()

	clients := &stubClientsAPI{}
	_, _ = NewClientService(clients, discardLogger).ListClients(ctx, nil)
	if clients.listCalls[0].Search != nil {
		t.Error("client search should be nil")
	}

	employees := &stubEmployeesAPI{}
	_, _ = NewEmployeeService(employees, discardLogger).ListEmployees(ctx, nil)
	if employees.listCalls[0].Position != nil {
		t.Error("employee position should be nil")
	}

	users := &stubUsersAPI{}
	_, _ = NewUserService(users, &stubAuthAPI{}, discardLogger).ListUsers(ctx, nil)
	if users.listCalls[0].Role != nil {
		t.Error("user role should be nil")
	}
}

// ---------------------------------------------------------------------------
// Seeds scenario
// ---------------------------------------------------------------------------

func TestListSeeds_MatureOnly(t *testing.T) {
	mature, immature := "MATURE", "IMMATURE"
	api := &stubSeedsAPI{seeds: []ports.SeedDto{
		{Id: strPtr("s1"), Name: "Tomato", Maturity: &mature},
		{Id: strPtr("s2"), Name: "Basil", Maturity: &immature},
		{Id: strPtr("s3"), Name: "Pepper", Maturity: &mature},
		{Id: strPtr("s4"), Name: "Mint", Maturity: &immature},
	}}
	svc := NewSeedService(api, discardLogger)

	m := domain.MaturityMature
	seeds, err := svc.ListSeeds(context.Background(), ports.SeedFilter{Maturity: &m})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seeds) != 2 {
		t.Fatalf("expected 2 mature seeds, got %d", len(seeds))
	}
	for _, s := range seeds {
		if s.Maturity != domain.MaturityMature {
			t.Errorf("unexpected maturity %q for %s", s.Maturity, s.ID)
		}
	}

	got := api.listCalls[0]
	if got.Maturity == nil || *got.Maturity != "MATURE" {
		t.Errorf("maturity not forwarded: %+v", got)
	}
	if got.Viability != nil {
		t.Errorf("viability must be nil, got %d", *got.Viability)
	}
}

func TestListSeeds_ViabilityFilter(t *testing.T) {
	api := &stubSeedsAPI{}
	svc := NewSeedService(api, discardLogger)

	v := domain.ViabilityHigh
	_, _ = svc.ListSeeds(context.Background(), ports.SeedFilter{Viability: &v})
	got := api.listCalls[0]
	if got.Viability == nil || *got.Viability != 3 || got.Maturity != nil {
		t.Errorf("unexpected params: %+v", got)
	}
}

// ---------------------------------------------------------------------------
// Payload forwarding
// ---------------------------------------------------------------------------

func TestCreatePlant_ForwardsDtoUnchanged(t *testing.T) {
	api := &stubPlantsAPI{}
	svc := NewPlantService(api, discardLogger)

	in := ports.PlantDto{
		Name:         "Monstera",
		Family:       strPtr("Araceae"),
		Condition:    i32Ptr(1),
		Light:        i32Ptr(2),
		Reproduction: i32Ptr(2),
	}
	created, err := svc.CreatePlant(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(api.created[0].PlantDto, in) {
		t.Errorf("payload changed: %+v", api.created[0].PlantDto)
	}
	if created.ID != "plant-1" || created.Family != "Araceae" || created.Light != domain.LightPartialShade {
		t.Errorf("unexpected view model: %+v", created)
	}
}

func TestUpdateSeed_ForwardsDtoAndID(t *testing.T) {
	api := &stubSeedsAPI{}
	svc := NewSeedService(api, discardLogger)

	in := ports.SeedDto{Name: "Chili", Quantity: i32Ptr(40)}
	if err := svc.UpdateSeed(context.Background(), "s9", in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.updated[0].Id != "s9" || !reflect.DeepEqual(api.updated[0].SeedDto, in) {
		t.Errorf("unexpected update request: %+v", api.updated[0])
	}
}

func TestCreateRecord_ForwardsDtoUnchanged(t *testing.T) {
	api := &stubJournalAPI{}
	svc := NewJournalService(api, &stubGrowthStagesAPI{}, discardLogger)

	in := ports.JournalRecordDto{PlantId: "p1", Note: strPtr("new leaves"), Condition: i32Ptr(9)}
	created, err := svc.CreateRecord(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(api.created[0].JournalRecordDto, in) {
		t.Errorf("payload changed: %+v", api.created[0].JournalRecordDto)
	}
	if created.Condition != domain.ConditionUnknown {
		t.Errorf("out-of-range condition should normalize to 0, got %d", created.Condition)
	}
}

func TestMapping_DefaultsAndNormalization(t *testing.T) {
	api := &stubPlantsAPI{plants: []ports.PlantDto{
		{Id: strPtr("p1"), Name: "Aloe", Condition: i32Ptr(42), Flower: i32Ptr(2), Fruit: i32Ptr(-1)},
	}}
	svc := NewPlantService(api, discardLogger)

	plants, err := svc.ListPlants(context.Background(), ports.PlantFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := plants[0]
	if p.Family != "" || p.Species != "" || p.Description != "" {
		t.Errorf("missing optional fields should default to empty: %+v", p)
	}
	if p.Condition != 0 || p.Fruit != 0 || p.Flower != domain.FlowerPresent {
		t.Errorf("unexpected enum normalization: %+v", p)
	}
}

func TestListPlants_EmptyResponseIsNotNil(t *testing.T) {
	svc := NewPlantService(&stubPlantsAPI{}, discardLogger)
	plants, err := svc.ListPlants(context.Background(), ports.PlantFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plants == nil {
		t.Error("expected empty slice, got nil")
	}
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func TestErrors_PropagatedVerbatim(t *testing.T) {
	cause := errors.New("X")
	svc := NewSeedService(&stubSeedsAPI{err: cause}, discardLogger)

	_, err := svc.ListSeeds(context.Background(), ports.SeedFilter{})
	if err == nil || err.Error() != "X" {
		t.Fatalf("expected message %q, got %v", "X", err)
	}
	if !errors.Is(err, cause) {
		t.Error("expected the original error value")
	}
}

func TestErrors_NonErrorFailureUsesFallback(t *testing.T) {
	svc := NewPlantService(&stubPlantsAPI{panicValue: "boom"}, discardLogger)

	_, err := svc.ListPlants(context.Background(), ports.PlantFilter{})
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Failed to fetch the plant list" {
		t.Errorf("expected fallback message, got %q", err.Error())
	}
	var f *Failure
	if !errors.As(err, &f) || f.Op != "ListPlants" {
		t.Errorf("expected *Failure for ListPlants, got %#v", err)
	}
}

func TestErrors_PanicWithErrorKeepsMessage(t *testing.T) {
	svc := NewPlantService(&stubPlantsAPI{panicValue: errors.New("decoder exploded")}, discardLogger)

	_, err := svc.ListPlants(context.Background(), ports.PlantFilter{})
	if err == nil || err.Error() != "decoder exploded" {
		t.Fatalf("expected panic error message, got %v", err)
	}
}

func TestErrors_ServerErrorWithoutMessageUsesFallback(t *testing.T) {
	cause := &stubServerError{status: http.StatusInternalServerError}
	svc := NewSeedService(&stubSeedsAPI{err: cause}, discardLogger)

	_, err := svc.ListSeeds(context.Background(), ports.SeedFilter{})
	if err == nil || err.Error() != "Failed to fetch the seed list" {
		t.Fatalf("expected fallback, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("fallback must wrap the cause")
	}
}

func TestErrors_ServerMessagePassedThrough(t *testing.T) {
	svc := NewPlantService(&stubPlantsAPI{err: &stubServerError{status: http.StatusConflict, message: "name taken"}}, discardLogger)

	_, err := svc.CreatePlant(context.Background(), ports.PlantDto{Name: "x"})
	if err == nil || err.Error() != "name taken" {
		t.Fatalf("expected server message, got %v", err)
	}
}

func TestErrors_VoidOperations(t *testing.T) {
	svc := NewPlantService(&stubPlantsAPI{err: &stubServerError{status: http.StatusNotFound}}, discardLogger)

	if err := svc.DeletePlant(context.Background(), "p1"); err == nil || err.Error() != "Failed to delete the plant" {
		t.Fatalf("expected delete fallback, got %v", err)
	}
	if err := svc.UpdatePlant(context.Background(), "p1", ports.PlantDto{}); err == nil || err.Error() != "Failed to update the plant" {
		t.Fatalf("expected update fallback, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Current employee id cache
// ---------------------------------------------------------------------------

func TestCurrentEmployeeID_CachesAfterFirstCall(t *testing.T) {
	api := &stubEmployeesAPI{profile: &ports.EmployeeDto{Id: strPtr("emp-7"), Username: "eve"}}
	svc := NewEmployeeService(api, discardLogger)

	first, err := svc.CurrentEmployeeID(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.CurrentEmployeeID(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != "emp-7" || second != "emp-7" {
		t.Errorf("unexpected ids %q %q", first, second)
	}
	if api.meCalls != 1 {
		t.Errorf("expected exactly 1 network call, got %d", api.meCalls)
	}
}

func TestCurrentEmployeeID_MissingIDIsNotCached(t *testing.T) {
	api := &stubEmployeesAPI{profile: &ports.EmployeeDto{Username: "eve"}}
	svc := NewEmployeeService(api, discardLogger)

	if _, err := svc.CurrentEmployeeID(context.Background()); !errors.Is(err, domain.ErrMissingEmployeeID) {
		t.Fatalf("expected ErrMissingEmployeeID, got %v", err)
	}

	api.profile = &ports.EmployeeDto{Id: strPtr("emp-8")}
	id, err := svc.CurrentEmployeeID(context.Background())
	if err != nil || id != "emp-8" {
		t.Fatalf("expected fresh fetch to succeed, got %q %v", id, err)
	}
	if api.meCalls != 2 {
		t.Errorf("expected 2 network calls, got %d", api.meCalls)
	}
}

func TestCurrentEmployeeID_NetworkFailureDistinctFromMissingID(t *testing.T) {
	api := &stubEmployeesAPI{meErr: errors.New("connection reset")}
	svc := NewEmployeeService(api, discardLogger)

	_, err := svc.CurrentEmployeeID(context.Background())
	if err == nil || errors.Is(err, domain.ErrMissingEmployeeID) {
		t.Fatalf("expected network error, got %v", err)
	}
}

func TestCurrentEmployeeID_Invalidate(t *testing.T) {
	api := &stubEmployeesAPI{profile: &ports.EmployeeDto{Id: strPtr("emp-1")}}
	svc := NewEmployeeService(api, discardLogger)

	_, _ = svc.CurrentEmployeeID(context.Background())
	svc.Invalidate()
	api.profile = &ports.EmployeeDto{Id: strPtr("emp-2")}

	id, _ := svc.CurrentEmployeeID(context.Background())
	if id != "emp-2" || api.meCalls != 2 {
		t.Errorf("expected refetch after invalidate, got %q after %d calls", id, api.meCalls)
	}
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

func TestDeleteUser_AlwaysNotImplemented(t *testing.T) {
	svc := NewUserService(&stubUsersAPI{}, &stubAuthAPI{}, discardLogger)

	for _, id := range []string{"", "u1", "does-not-exist"} {
		err := svc.DeleteUser(context.Background(), id)
		if !errors.Is(err, domain.ErrNotImplemented) {
			t.Fatalf("DeleteUser(%q): expected ErrNotImplemented, got %v", id, err)
		}
		if err.Error() != "user deletion is not implemented" {
			t.Errorf("unexpected message %q", err.Error())
		}
	}
}

func TestCurrentUser_MapsRole(t *testing.T) {
	auth := &stubAuthAPI{me: &ports.UserDto{Id: strPtr("u1"), Username: "ada", Role: domain.RoleEmployee}}
	svc := NewUserService(&stubUsersAPI{}, auth, discardLogger)

	u, err := svc.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != "u1" || u.Role != domain.RoleEmployee || u.Email != "" {
		t.Errorf("unexpected user: %+v", u)
	}
}

// ---------------------------------------------------------------------------
// Other families
// ---------------------------------------------------------------------------

func TestAdminService_CreateAndList(t *testing.T) {
	api := &stubAdministratorsAPI{admins: []ports.AdministratorDto{{Id: strPtr("a1"), Username: "root"}}}
	svc := NewAdminService(api, discardLogger)

	admins, err := svc.ListAdministrators(context.Background())
	if err != nil || len(admins) != 1 || admins[0].Username != "root" {
		t.Fatalf("unexpected list result: %+v %v", admins, err)
	}
	created, err := svc.CreateAdministrator(context.Background(), ports.AdministratorDto{Username: "ops", FullName: strPtr("Ops Team")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "admin-1" || created.FullName != "Ops Team" {
		t.Errorf("unexpected admin: %+v", created)
	}
}

func TestClientService_CurrentClient(t *testing.T) {
	svc := NewClientService(&stubClientsAPI{}, discardLogger)
	c, err := svc.CurrentClient(context.Background())
	if err != nil || c.ID != "client-1" {
		t.Fatalf("unexpected result: %+v %v", c, err)
	}
}

func TestJournalService_GrowthStages(t *testing.T) {
	stages := &stubGrowthStagesAPI{stages: []ports.GrowthStageDto{{Id: strPtr("g1"), Name: "Seedling", Order: i32Ptr(1)}}}
	svc := NewJournalService(&stubJournalAPI{}, stages, discardLogger)

	list, err := svc.ListGrowthStages(context.Background())
	if err != nil || len(list) != 1 || list[0].Order != 1 {
		t.Fatalf("unexpected stages: %+v %v", list, err)
	}
	created, err := svc.CreateGrowthStage(context.Background(), ports.GrowthStageDto{Name: "Flowering"})
	if err != nil || created.ID != "stage-1" {
		t.Fatalf("unexpected created stage: %+v %v", created, err)
	}
}
