package domain

type Capability string

const (
	CapDashboard    Capability = "dashboard"
	CapTracking     Capability = "tracking"
	CapConsignments Capability = "consignments"
	CapDirectory    Capability = "directory"
	CapReports      Capability = "reports"
	CapIncidents    Capability = "incidents"
	CapSettings     Capability = "settings"
)

// Static (role, capability) authorization table. Roles are free-form
// strings matched at login; unknown roles get the field-agent view.
var roleCapabilities = map[string]map[Capability]bool{
	"admin": {
		CapDashboard:    true,
		CapTracking:     true,
		CapConsignments: true,
		CapDirectory:    true,
		CapReports:      true,
		CapIncidents:    true,
		CapSettings:     true,
	},
	"inspector": {
		CapDashboard:    true,
		CapTracking:     true,
		CapConsignments: true,
		CapReports:      true,
		CapIncidents:    true,
	},
	"depot-officer": {
		CapDashboard:    true,
		CapConsignments: true,
		CapDirectory:    true,
	},
	"field-agent": {
		CapTracking:     true,
		CapConsignments: true,
		CapIncidents:    true,
	},
}

// Can reports whether a role holds a capability.
func Can(role string, cap Capability) bool {
	caps, ok := roleCapabilities[role]
	if !ok {
		caps = roleCapabilities["field-agent"]
	}
	return caps[cap]
}

// Capabilities returns the capability set granted to a role.
func Capabilities(role string) []Capability {
	caps, ok := roleCapabilities[role]
	if !ok {
		caps = roleCapabilities["field-agent"]
	}
	out := make([]Capability, 0, len(caps))
	for c, granted := range caps {
		if granted {
			out = append(out, c)
		}
	}
	return out
}

// Registered operator account. Login is a role-string match/create with
// no credential validation.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}
