package models

// Role enumerates back-office user roles. Authentication happens upstream;
// the service only needs the role to decide what a caller may view.
type Role string

const (
	RoleAdmin           Role = "ADMIN"
	RoleLandlord        Role = "LANDLORD"
	RolePropertyManager Role = "PROPERTY_MANAGER"
	RoleTenant          Role = "TENANT"
)

// Capabilities is the set of view permissions derived from a role.
type Capabilities struct {
	CanViewReports      bool
	CanViewFinancials   bool
	CanViewAllTenants   bool
	CanManageProperties bool
}

// CapabilitiesFor maps a role to its capability set. Unknown roles get no
// capabilities.
func CapabilitiesFor(r Role) Capabilities {
	switch r {
	case RoleAdmin:
		return Capabilities{
			CanViewReports:      true,
			CanViewFinancials:   true,
			CanViewAllTenants:   true,
			CanManageProperties: true,
		}
	case RoleLandlord:
		return Capabilities{
			CanViewReports:      true,
			CanViewFinancials:   true,
			CanViewAllTenants:   true,
			CanManageProperties: true,
		}
	case RolePropertyManager:
		return Capabilities{
			CanViewReports:      true,
			CanViewFinancials:   true,
			CanViewAllTenants:   true,
			CanManageProperties: false,
		}
	case RoleTenant:
		return Capabilities{}
	}
	return Capabilities{}
}
