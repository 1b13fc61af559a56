package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Role is the closed set of console actors.
type Role int

const (
	RoleUnknown Role = iota
	RoleAdministrator
	RoleEmployee
	RoleClient
)

// wireRoles is the server's integer encoding of the role enum.
var wireRoles = map[int]Role{
	0: RoleAdministrator,
	1: RoleEmployee,
	2: RoleClient,
}

var roleNames = map[Role]string{
	RoleAdministrator: "Administrator",
	RoleEmployee:      "Employee",
	RoleClient:        "Client",
}

var roleHomes = map[Role]string{
	RoleAdministrator: "/admin",
	RoleEmployee:      "/employee",
	RoleClient:        "/client",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "Unknown"
}

// HomePath returns the console entry point for the role, or the login page
// for RoleUnknown.
func (r Role) HomePath() string {
	if p, ok := roleHomes[r]; ok {
		return p
	}
	return LoginPath
}

// LoginPath is where anonymous callers are sent.
const LoginPath = "/login"

// ParseRole decodes the server's role field. It accepts the exact enum name
// or its integer code; everything else is RoleUnknown.
func ParseRole(v string) Role {
	for r, name := range roleNames {
		if v == name {
			return r
		}
	}
	if code, err := strconv.Atoi(v); err == nil {
		return RoleFromCode(code)
	}
	return RoleUnknown
}

// RoleFromCode decodes the server's integer form of the role enum.
func RoleFromCode(code int) Role {
	if r, ok := wireRoles[code]; ok {
		return r
	}
	return RoleUnknown
}

// MarshalJSON renders the role by name.
func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON accepts either the enum name or its integer code. null
// decodes to RoleUnknown.
func (r *Role) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*r = RoleUnknown
		return nil
	}
	var code int
	if err := json.Unmarshal(b, &code); err == nil {
		*r = RoleFromCode(code)
		return nil
	}
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	*r = ParseRole(name)
	return nil
}
