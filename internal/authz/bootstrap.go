package authz

import (
	"fmt"

	"github.com/rajat6235/Robusters-POS-sub001/internal/constants"
)

// RoleSeed is a preconfigured role definition.
type RoleSeed struct {
	Role     string
	Inherits []string
	Policies []Policy
}

// BuiltinRoleSeeds returns the fixed staff role matrix. Managers run the
// counter and may request cancellations; admins additionally decide
// cancellations and manage settings.
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: constants.RoleManager,
			Policies: []Policy{
				{Object: "/pos/me", Action: "GET"},
				{Object: "/pos/menu/*", Action: "GET"},
				{Object: "/pos/orders", Action: "GET"},
				{Object: "/pos/orders", Action: "POST"},
				{Object: "/pos/orders/preview", Action: "POST"},
				{Object: "/pos/orders/:id", Action: "GET"},
				{Object: "/pos/orders/by-order-no/:order_no", Action: "GET"},
				{Object: "/pos/orders/:id/cancellation-request", Action: "POST"},
				{Object: "/pos/customers", Action: "GET"},
				{Object: "/pos/customers/:id", Action: "GET"},
			},
		},
		{
			Role:     constants.RoleAdmin,
			Inherits: []string{constants.RoleManager},
			Policies: []Policy{
				{Object: "/pos/orders/:id/cancellation-decision", Action: "POST"},
				{Object: "/pos/settings", Action: "*"},
				{Object: "/pos/settings/:key", Action: "*"},
				{Object: "/pos/activity", Action: "GET"},
			},
		},
	}
}

// BootstrapBuiltinRoles seeds the fixed role matrix.
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		role, err := s.EnsureRole(seed.Role)
		if err != nil {
			return err
		}

		for _, parent := range seed.Inherits {
			parentRole, err := NormalizeRole(parent)
			if err != nil {
				return err
			}
			if _, err := s.enforcer.AddNamedGroupingPolicy("g", role, parentRole); err != nil {
				return fmt.Errorf("link role inheritance failed: %w", err)
			}
		}

		for _, policy := range seed.Policies {
			if err := s.GrantRolePolicy(role, policy.Object, policy.Action); err != nil {
				return err
			}
		}
	}
	return s.enforcer.LoadPolicy()
}
