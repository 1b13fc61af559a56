package greenhouseapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/greenhouse/console/internal/core/ports"
)

const (
	clientsPath        = "/api/clients"
	employeesPath      = "/api/employees"
	administratorsPath = "/api/administrators"
	usersPath          = "/api/users"
)

type ClientsAPI struct{ t *transport }

var _ ports.ClientsAPI = (*ClientsAPI)(nil)

func (a *ClientsAPI) ListClients(ctx context.Context, params ports.ClientsListParams) ([]ports.ClientDto, error) {
	q := url.Values{}
	setString(q, "search", params.Search)

	var out []ports.ClientDto
	if err := a.t.do(ctx, http.MethodGet, clientsPath, q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *ClientsAPI) CreateClient(ctx context.Context, req ports.ClientsCreateRequest) (*ports.ClientDto, error) {
	var out ports.ClientDto
	if err := a.t.do(ctx, http.MethodPost, clientsPath, nil, req.ClientDto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ClientsAPI) UpdateClient(ctx context.Context, req ports.ClientsUpdateRequest) error {
	return a.t.do(ctx, http.MethodPut, itemPath(clientsPath, req.Id), nil, req.ClientDto, nil)
}

func (a *ClientsAPI) DeleteClient(ctx context.Context, id string) error {
	return a.t.do(ctx, http.MethodDelete, itemPath(clientsPath, id), nil, nil, nil)
}

func (a *ClientsAPI) Me(ctx context.Context) (*ports.ClientDto, error) {
	var out ports.ClientDto
	if err := a.t.do(ctx, http.MethodGet, clientsPath+"/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type EmployeesAPI struct{ t *transport }

var _ ports.EmployeesAPI = (*EmployeesAPI)(nil)

func (a *EmployeesAPI) ListEmployees(ctx context.Context, params ports.EmployeesListParams) ([]ports.EmployeeDto, error) {
	q := url.Values{}
	setString(q, "position", params.Position)

	var out []ports.EmployeeDto
	if err := a.t.do(ctx, http.MethodGet, employeesPath, q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *EmployeesAPI) CreateEmployee(ctx context.Context, req ports.EmployeesCreateRequest) (*ports.EmployeeDto, error) {
	var out ports.EmployeeDto
	if err := a.t.do(ctx, http.MethodPost, employeesPath, nil, req.EmployeeDto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *EmployeesAPI) UpdateEmployee(ctx context.Context, req ports.EmployeesUpdateRequest) error {
	return a.t.do(ctx, http.MethodPut, itemPath(employeesPath, req.Id), nil, req.EmployeeDto, nil)
}

func (a *EmployeesAPI) DeleteEmployee(ctx context.Context, id string) error {
	return a.t.do(ctx, http.MethodDelete, itemPath(employeesPath, id), nil, nil, nil)
}

// Me returns the employee profile of the token holder.
func (a *EmployeesAPI) Me(ctx context.Context) (*ports.EmployeeDto, error) {
	var out ports.EmployeeDto
	if err := a.t.do(ctx, http.MethodGet, employeesPath+"/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type AdministratorsAPI struct{ t *transport }

var _ ports.AdministratorsAPI = (*AdministratorsAPI)(nil)

func (a *AdministratorsAPI) ListAdministrators(ctx context.Context) ([]ports.AdministratorDto, error) {
	var out []ports.AdministratorDto
	if err := a.t.do(ctx, http.MethodGet, administratorsPath, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *AdministratorsAPI) CreateAdministrator(ctx context.Context, req ports.AdministratorsCreateRequest) (*ports.AdministratorDto, error) {
	var out ports.AdministratorDto
	if err := a.t.do(ctx, http.MethodPost, administratorsPath, nil, req.AdministratorDto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AdministratorsAPI) DeleteAdministrator(ctx context.Context, id string) error {
	return a.t.do(ctx, http.MethodDelete, itemPath(administratorsPath, id), nil, nil, nil)
}

type UsersAPI struct{ t *transport }

var _ ports.UsersAPI = (*UsersAPI)(nil)

func (a *UsersAPI) ListUsers(ctx context.Context, params ports.UsersListParams) ([]ports.UserDto, error) {
	q := url.Values{}
	setString(q, "role", params.Role)

	var out []ports.UserDto
	if err := a.t.do(ctx, http.MethodGet, usersPath, q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
