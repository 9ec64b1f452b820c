package domain

type PrincipalKind string

const (
	PrincipalKindUser     PrincipalKind = "user"
	PrincipalKindSupplier PrincipalKind = "supplier"
)

const (
	RoleFinanceManager = "finance_manager"
	RoleSupplyManager  = "supply_manager"
	RoleSupplier       = "supplier"
	RoleStaff          = "staff"
)

// Principal is the authenticated caller, resolved once at the HTTP boundary.
// Users arrive via bearer tokens, suppliers via session cookies; past the
// boundary both are just an identity plus a role set.
type Principal struct {
	Kind  PrincipalKind `json:"kind"`
	ID    int32         `json:"id"`
	Roles []string      `json:"roles"`
}

func (p Principal) HasRole(role string) bool {
	if p.Kind == PrincipalKindSupplier && role == RoleSupplier {
		return true
	}
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (p Principal) IsSupplier() bool {
	return p.Kind == PrincipalKindSupplier || p.HasRole(RoleSupplier)
}
