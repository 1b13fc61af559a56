package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenhouse/console/internal/core/ports"
)

type EmployeeHandler struct {
	employees ports.EmployeeService
}

func NewEmployeeHandler(employees ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

// List supports the optional position query filter.
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.employees.ListEmployees(c.Request().Context(), queryPtr(c, "position"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) Create(c echo.Context) error {
	var dto ports.EmployeeDto
	if err := bindValid(c, &dto); err != nil {
		return err
	}
	created, err := h.employees.CreateEmployee(c.Request().Context(), dto)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *EmployeeHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var dto ports.EmployeeDto
	if err := bindValid(c, &dto); err != nil {
		return err
	}
	if err := h.employees.UpdateEmployee(c.Request().Context(), id, dto); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.employees.DeleteEmployee(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// MyID returns the id of the signed-in employee.
func (h *EmployeeHandler) MyID(c echo.Context) error {
	id, err := h.employees.CurrentEmployeeID(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"id": id})
}

type ClientHandler struct {
	clients ports.ClientService
}

func NewClientHandler(clients ports.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// List supports the optional search query filter.
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.clients.ListClients(c.Request().Context(), queryPtr(c, "search"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Create(c echo.Context) error {
	var dto ports.ClientDto
	if err := bindValid(c, &dto); err != nil {
		return err
	}
	created, err := h.clients.CreateClient(c.Request().Context(), dto)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *ClientHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var dto ports.ClientDto
	if err := bindValid(c, &dto); err != nil {
		return err
	}
	if err := h.clients.UpdateClient(c.Request().Context(), id, dto); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ClientHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.clients.DeleteClient(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Profile returns the client record of the signed-in client.
func (h *ClientHandler) Profile(c echo.Context) error {
	client, err := h.clients.CurrentClient(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

type AdminHandler struct {
	admins ports.AdminService
	users  ports.UserService
}

func NewAdminHandler(admins ports.AdminService, users ports.UserService) *AdminHandler {
	return &AdminHandler{admins: admins, users: users}
}

func (h *AdminHandler) List(c echo.Context) error {
	admins, err := h.admins.ListAdministrators(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admins)
}

func (h *AdminHandler) Create(c echo.Context) error {
	var dto ports.AdministratorDto
	if err := bindValid(c, &dto); err != nil {
		return err
	}
	created, err := h.admins.CreateAdministrator(c.Request().Context(), dto)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.admins.DeleteAdministrator(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListUsers supports the optional role query filter.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.users.ListUsers(c.Request().Context(), queryPtr(c, "role"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// DeleteUser is routed so the console gets a definite answer; the backend
// has no such operation.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.users.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
