package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"project-tracker-backend/internal/config"
	"project-tracker-backend/internal/database"
	"project-tracker-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type PersonData struct {
	Name    string `yaml:"name"`
	Role    string `yaml:"role"`
	Picture string `yaml:"picture,omitempty"`
}

type ProjectData struct {
	Name              string   `yaml:"name"`
	Description       string   `yaml:"description,omitempty"`
	StartDate         string   `yaml:"start_date"`
	Status            string   `yaml:"status"`
	TeamLeadName      string   `yaml:"team_lead_name"`
	TeamMemberNames   []string `yaml:"team_member_names,omitempty"`
	ClientName        string   `yaml:"client_name,omitempty"`
	ToolStack         string   `yaml:"tool_stack,omitempty"`
	Database          string   `yaml:"database,omitempty"`
	DeploymentDetails string   `yaml:"deployment_details,omitempty"`
	UsersCount        int      `yaml:"users_count,omitempty"`
}

type HardwareData struct {
	Name           string `yaml:"name"`
	Description    string `yaml:"description,omitempty"`
	DateOfPurchase string `yaml:"date_of_purchase"`
	IssuedToName   string `yaml:"issued_to_name,omitempty"`
}

type TaskData struct {
	ProjectName  string `yaml:"project_name"`
	AssigneeName string `yaml:"assignee_name,omitempty"`
	Title        string `yaml:"title"`
	StartDate    string `yaml:"start_date"`
	EndDate      string `yaml:"end_date"`
	Status       string `yaml:"status"`
}

// File structures
type PersonsFile struct {
	Persons []PersonData `yaml:"persons"`
}

type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

type HardwareFile struct {
	Hardware []HardwareData `yaml:"hardware"`
}

type TasksFile struct {
	Tasks []TaskData `yaml:"tasks"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	persons, err := loadPersons(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load persons: %w", err)
	}

	projects, err := loadProjects(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	hardware, err := loadHardware(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load hardware: %w", err)
	}

	tasks, err := loadTasks(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	// Persons first; everything else references them by name.
	personMap := make(map[string]*models.Person)
	createdPersons := 0
	for _, p := range persons {
		person, created, err := createPerson(db, p)
		if err != nil {
			return fmt.Errorf("failed to create person %q: %w", p.Name, err)
		}
		personMap[p.Name] = person
		if created {
			createdPersons++
		}
	}
	log.Printf("Persons: %d loaded (%d created)", len(persons), createdPersons)

	projectMap := make(map[string]*models.Project)
	createdProjects := 0
	for _, p := range projects {
		project, created, err := createProject(db, p, personMap)
		if err != nil {
			return fmt.Errorf("failed to create project %q: %w", p.Name, err)
		}
		projectMap[p.Name] = project
		if created {
			createdProjects++
		}
	}
	log.Printf("Projects: %d loaded (%d created)", len(projects), createdProjects)

	createdHardware := 0
	for _, h := range hardware {
		_, created, err := createHardware(db, h, personMap)
		if err != nil {
			return fmt.Errorf("failed to create hardware %q: %w", h.Name, err)
		}
		if created {
			createdHardware++
		}
	}
	log.Printf("Hardware: %d loaded (%d created)", len(hardware), createdHardware)

	createdTasks := 0
	for _, t := range tasks {
		_, created, err := createTask(db, t, projectMap, personMap)
		if err != nil {
			return fmt.Errorf("failed to create task %q: %w", t.Title, err)
		}
		if created {
			createdTasks++
		}
	}
	log.Printf("Tasks: %d loaded (%d created)", len(tasks), createdTasks)

	return nil
}

func loadPersons(dataDir string) ([]PersonData, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "persons.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var file PersonsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Persons, nil
}

func loadProjects(dataDir string) ([]ProjectData, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "projects.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var file ProjectsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Projects, nil
}

func loadHardware(dataDir string) ([]HardwareData, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "hardware.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var file HardwareFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Hardware, nil
}

func loadTasks(dataDir string) ([]TaskData, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "tasks.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var file TasksFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Tasks, nil
}

func createPerson(db *gorm.DB, data PersonData) (*models.Person, bool, error) {
	var existing models.Person
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	role := models.PersonRole(data.Role)
	if !role.IsValid() {
		return nil, false, fmt.Errorf("invalid role %q", data.Role)
	}

	person := &models.Person{
		Name: data.Name,
		Role: role,
	}
	if data.Picture != "" {
		person.Picture = &data.Picture
	}
	if err := db.Create(person).Error; err != nil {
		return nil, false, err
	}
	return person, true, nil
}

func createProject(db *gorm.DB, data ProjectData, personMap map[string]*models.Person) (*models.Project, bool, error) {
	var existing models.Project
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	status := models.ProjectStatus(data.Status)
	if !status.IsValid() {
		return nil, false, fmt.Errorf("invalid status %q", data.Status)
	}

	lead, ok := personMap[data.TeamLeadName]
	if !ok {
		return nil, false, fmt.Errorf("unknown team lead %q", data.TeamLeadName)
	}

	startDate, err := time.Parse("2006-01-02", data.StartDate)
	if err != nil {
		return nil, false, fmt.Errorf("invalid start_date %q: %w", data.StartDate, err)
	}

	members := make([]models.Person, 0, len(data.TeamMemberNames))
	for _, name := range data.TeamMemberNames {
		member, ok := personMap[name]
		if !ok {
			return nil, false, fmt.Errorf("unknown team member %q", name)
		}
		members = append(members, *member)
	}

	project := &models.Project{
		Name:              data.Name,
		StartDate:         startDate,
		Status:            status,
		TeamLeadID:        lead.ID,
		ClientName:        data.ClientName,
		ToolStack:         data.ToolStack,
		Database:          data.Database,
		DeploymentDetails: data.DeploymentDetails,
		UsersCount:        data.UsersCount,
		TeamMembers:       members,
	}
	if data.Description != "" {
		project.Description = &data.Description
	}
	if err := db.Create(project).Error; err != nil {
		return nil, false, err
	}
	return project, true, nil
}

func createHardware(db *gorm.DB, data HardwareData, personMap map[string]*models.Person) (*models.Hardware, bool, error) {
	var existing models.Hardware
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	purchased, err := time.Parse("2006-01-02", data.DateOfPurchase)
	if err != nil {
		return nil, false, fmt.Errorf("invalid date_of_purchase %q: %w", data.DateOfPurchase, err)
	}

	hw := &models.Hardware{
		Name:           data.Name,
		DateOfPurchase: purchased,
	}
	if data.Description != "" {
		hw.Description = &data.Description
	}
	if data.IssuedToName != "" {
		person, ok := personMap[data.IssuedToName]
		if !ok {
			return nil, false, fmt.Errorf("unknown person %q", data.IssuedToName)
		}
		hw.IssuedToID = &person.ID
	}
	if err := db.Create(hw).Error; err != nil {
		return nil, false, err
	}
	return hw, true, nil
}

func createTask(db *gorm.DB, data TaskData, projectMap map[string]*models.Project, personMap map[string]*models.Person) (*models.Task, bool, error) {
	project, ok := projectMap[data.ProjectName]
	if !ok {
		return nil, false, fmt.Errorf("unknown project %q", data.ProjectName)
	}

	var existing models.Task
	err := db.Where("project_id = ? AND title = ?", project.ID, data.Title).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	status := models.TaskStatus(data.Status)
	if !status.IsValid() {
		return nil, false, fmt.Errorf("invalid status %q", data.Status)
	}

	startDate, err := time.Parse("2006-01-02", data.StartDate)
	if err != nil {
		return nil, false, fmt.Errorf("invalid start_date %q: %w", data.StartDate, err)
	}
	endDate, err := time.Parse("2006-01-02", data.EndDate)
	if err != nil {
		return nil, false, fmt.Errorf("invalid end_date %q: %w", data.EndDate, err)
	}

	task := &models.Task{
		ProjectID: project.ID,
		Title:     data.Title,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    status,
	}
	if data.AssigneeName != "" {
		person, ok := personMap[data.AssigneeName]
		if !ok {
			return nil, false, fmt.Errorf("unknown person %q", data.AssigneeName)
		}
		task.PersonID = &person.ID
	}
	if err := db.Create(task).Error; err != nil {
		return nil, false, err
	}
	return task, true, nil
}
