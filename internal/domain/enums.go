package domain

// Category is the subject area a piece of feedback is filed under.
type Category string

const (
	CategoryCommunication     Category = "Communication"
	CategoryManagement        Category = "Management"
	CategoryWorkEnvironment   Category = "Work Environment"
	CategoryProcesses         Category = "Processes"
	CategoryToolsTechnology   Category = "Tools & Technology"
	CategoryTeamDynamics      Category = "Team Dynamics"
	CategoryCareerDevelopment Category = "Career Development"
	CategoryCompanyCulture    Category = "Company Culture"
	CategoryOther             Category = "Other"
)

// Categories lists every category in form order.
var Categories = []Category{
	CategoryCommunication,
	CategoryManagement,
	CategoryWorkEnvironment,
	CategoryProcesses,
	CategoryToolsTechnology,
	CategoryTeamDynamics,
	CategoryCareerDevelopment,
	CategoryCompanyCulture,
	CategoryOther,
}

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryCommunication, CategoryManagement, CategoryWorkEnvironment,
		CategoryProcesses, CategoryToolsTechnology, CategoryTeamDynamics,
		CategoryCareerDevelopment, CategoryCompanyCulture, CategoryOther:
		return true
	}
	return false
}

// Role is the self-declared job role of the person submitting feedback.
type Role string

const (
	RoleSoftwareEngineer Role = "Software Engineer"
	RoleProductManager   Role = "Product Manager"
	RoleDesigner         Role = "Designer"
	RoleMarketing        Role = "Marketing"
	RoleSales            Role = "Sales"
	RoleHR               Role = "HR"
	RoleOperations       Role = "Operations"
	RoleExecutive        Role = "Executive"
	RoleOther            Role = "Other"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleSoftwareEngineer, RoleProductManager, RoleDesigner, RoleMarketing,
		RoleSales, RoleHR, RoleOperations, RoleExecutive, RoleOther:
		return true
	}
	return false
}

// Priority is the submitter's assessment of how pressing an issue is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// DefaultPriority is applied when a submission leaves priority empty.
const DefaultPriority = PriorityMedium

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// IsElevated reports whether p counts towards urgency patterns.
func (p Priority) IsElevated() bool {
	return p == PriorityHigh || p == PriorityUrgent
}

// Status is the resolution state of a feedback record.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusResolved   Status = "resolved"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// Dimension names one question of the weekly pulse check.
type Dimension string

const (
	DimensionSatisfaction  Dimension = "satisfaction"
	DimensionWorkload      Dimension = "workload"
	DimensionCommunication Dimension = "communication"
	DimensionGrowth        Dimension = "growth"
	DimensionTeamwork      Dimension = "teamwork"
)

// Dimensions lists every pulse dimension in form order.
var Dimensions = []Dimension{
	DimensionSatisfaction,
	DimensionWorkload,
	DimensionCommunication,
	DimensionGrowth,
	DimensionTeamwork,
}

func (d Dimension) String() string { return string(d) }

func (d Dimension) IsValid() bool {
	switch d {
	case DimensionSatisfaction, DimensionWorkload, DimensionCommunication,
		DimensionGrowth, DimensionTeamwork:
		return true
	}
	return false
}

// DashboardScope selects the audience-specific partition of categories.
type DashboardScope string

const (
	ScopeAll      DashboardScope = "all"
	ScopeTeamLead DashboardScope = "team_lead"
	ScopeHR       DashboardScope = "hr"
)

func (s DashboardScope) String() string { return string(s) }

func (s DashboardScope) IsValid() bool {
	switch s {
	case ScopeAll, ScopeTeamLead, ScopeHR:
		return true
	}
	return false
}

// Includes reports whether category c is visible under scope s.
// The empty scope behaves like ScopeAll.
func (s DashboardScope) Includes(c Category) bool {
	switch s {
	case ScopeTeamLead:
		return isTeamLeadCategory(c)
	case ScopeHR:
		return isHRCategory(c)
	case ScopeAll, "":
		return true
	}
	return false
}

func isTeamLeadCategory(c Category) bool {
	switch c {
	case CategoryManagement, CategoryProcesses, CategoryTeamDynamics, CategoryToolsTechnology:
		return true
	}
	return false
}

func isHRCategory(c Category) bool {
	switch c {
	case CategoryWorkEnvironment, CategoryCareerDevelopment, CategoryCompanyCulture, CategoryCommunication:
		return true
	}
	return false
}

// PatternType classifies a detected feedback trend.
type PatternType string

const (
	PatternVolume  PatternType = "Volume"
	PatternUrgency PatternType = "Urgency"
)

func (p PatternType) String() string { return string(p) }
