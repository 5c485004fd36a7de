package repository

import (
	"project-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonRepository handles database operations for persons
type PersonRepository struct {
	db *gorm.DB
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// Create creates a new person
func (r *PersonRepository) Create(person *models.Person) error {
	return r.db.Create(person).Error
}

// GetByID retrieves a person by ID with its relations populated
func (r *PersonRepository) GetByID(id uuid.UUID) (*models.Person, error) {
	var person models.Person
	err := r.db.
		Preload("LeadingProjects").
		Preload("MemberOfProjects").
		Preload("AssignedHardware").
		First(&person, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// GetByIDs retrieves the persons for the given IDs without relations
func (r *PersonRepository) GetByIDs(ids []uuid.UUID) ([]models.Person, error) {
	var persons []models.Person
	if len(ids) == 0 {
		return persons, nil
	}
	err := r.db.Find(&persons, "id IN ?", ids).Error
	if err != nil {
		return nil, err
	}
	return persons, nil
}

// GetAll retrieves all persons with their relations populated
func (r *PersonRepository) GetAll() ([]models.Person, error) {
	var persons []models.Person
	err := r.db.
		Preload("LeadingProjects").
		Preload("MemberOfProjects").
		Preload("AssignedHardware").
		Find(&persons).Error
	if err != nil {
		return nil, err
	}
	return persons, nil
}

// Update saves changes to an existing person
func (r *PersonRepository) Update(person *models.Person) error {
	return r.db.Save(person).Error
}

// Delete removes a person. Membership rows for the person are removed as well;
// projects the person leads or belongs to are left untouched.
func (r *PersonRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("person_id = ?", id).Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Person{}, "id = ?", id).Error
	})
}
