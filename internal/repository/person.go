package repository

import (
	"workclock-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PersonRepository handles database operations for the directory cache
type PersonRepository struct {
	db *gorm.DB
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// ListByBoard retrieves the cached people for a board ordered by name.
func (r *PersonRepository) ListByBoard(boardID string) ([]models.Person, error) {
	var people []models.Person
	err := r.db.Where("board_id = ?", boardID).Order("name ASC").Find(&people).Error
	if err != nil {
		return nil, err
	}
	return people, nil
}

// ReplaceBoard replaces the cached snapshot for one board in a single
// transaction: upsert every fetched person, then drop rows for people no
// longer assigned.
func (r *PersonRepository) ReplaceBoard(boardID string, people []models.Person) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(people) == 0 {
			return tx.Delete(&models.Person{}, "board_id = ?", boardID).Error
		}

		ids := make([]string, 0, len(people))
		for i := range people {
			people[i].BoardID = boardID
			ids = append(ids, people[i].ExternalID)
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "board_id"}, {Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "avatar_url", "timezone", "updated_at"}),
		}).Create(&people).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Person{},
			"board_id = ? AND external_id NOT IN ?", boardID, ids).Error
	})
}

// Count returns the number of cached people for a board.
func (r *PersonRepository) Count(boardID string) (int64, error) {
	var total int64
	err := r.db.Model(&models.Person{}).Where("board_id = ?", boardID).Count(&total).Error
	return total, err
}
