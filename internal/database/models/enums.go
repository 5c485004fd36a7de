package models

// ProjectStatus represents the lifecycle status of a project
type ProjectStatus string

const (
	ProjectStatusUnderDevelopment     ProjectStatus = "Under_Development"
	ProjectStatusDevelopedNotDeployed ProjectStatus = "Developed_Not_Deployed"
	ProjectStatusDeployed             ProjectStatus = "Deployed"
	ProjectStatusDeployedEnhancements ProjectStatus = "Deployed_Enhancements"
	ProjectStatusInactive             ProjectStatus = "Inactive"
)

// PersonRole represents the role of a person in the organization
type PersonRole string

const (
	PersonRoleTeamLead  PersonRole = "TeamLead"
	PersonRoleDeveloper PersonRole = "Developer"
	PersonRoleTester    PersonRole = "Tester"
)

// TaskStatus represents the progress status of a task
type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "Created"
	TaskStatusInProgress TaskStatus = "InProgress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

// IsValid checks if the ProjectStatus is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusUnderDevelopment, ProjectStatusDevelopedNotDeployed, ProjectStatusDeployed, ProjectStatusDeployedEnhancements, ProjectStatusInactive:
		return true
	}
	return false
}

// IsValid checks if the PersonRole is valid
func (r PersonRole) IsValid() bool {
	switch r {
	case PersonRoleTeamLead, PersonRoleDeveloper, PersonRoleTester:
		return true
	}
	return false
}

// IsValid checks if the TaskStatus is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusCreated, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}
