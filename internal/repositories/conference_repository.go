package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"eventPlanner/internal/models"
)

const guestSearchLimit = 10

type ConferenceRepository struct {
	db *gorm.DB
}

func NewConferenceRepository(db *gorm.DB) *ConferenceRepository {
	return &ConferenceRepository{
		db: db,
	}
}

func (cr *ConferenceRepository) ListElements(ctx context.Context, eventID uint) ([]models.ConferenceElement, error) {
	var elements []models.ConferenceElement
	err := cr.db.WithContext(ctx).Where("event_id = ?", eventID).Order("created_at").Find(&elements).Error
	return elements, err
}

func (cr *ConferenceRepository) FindElement(ctx context.Context, eventID, elementID uint) (*models.ConferenceElement, error) {
	var element models.ConferenceElement
	if err := cr.db.WithContext(ctx).Where("id = ? AND event_id = ?", elementID, eventID).First(&element).Error; err != nil {
		return nil, translate(err)
	}
	return &element, nil
}

func (cr *ConferenceRepository) SaveElement(ctx context.Context, element *models.ConferenceElement) error {
	return cr.db.WithContext(ctx).Save(element).Error
}

func (cr *ConferenceRepository) CreateElements(ctx context.Context, elements []*models.ConferenceElement) error {
	return cr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, element := range elements {
			if err := tx.Create(element).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteElement removes the element and unseats any guest assigned to it.
func (cr *ConferenceRepository) DeleteElement(ctx context.Context, eventID, elementID uint) error {
	return cr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteResult(tx.Where("event_id = ?", eventID).Delete(&models.ConferenceElement{}, elementID)); err != nil {
			return err
		}
		return tx.Model(&models.ConferenceGuest{}).
			Where("event_id = ? AND element_id = ?", eventID, elementID).
			Updates(map[string]interface{}{"element_id": nil, "seat_number": nil}).Error
	})
}

func (cr *ConferenceRepository) ListGroups(ctx context.Context, eventID uint) ([]models.ConferenceGroup, error) {
	var groups []models.ConferenceGroup
	err := cr.db.WithContext(ctx).Where("event_id = ?", eventID).Order("name").Find(&groups).Error
	return groups, err
}

func (cr *ConferenceRepository) FindGroup(ctx context.Context, eventID, groupID uint) (*models.ConferenceGroup, error) {
	var group models.ConferenceGroup
	if err := cr.db.WithContext(ctx).Where("id = ? AND event_id = ?", groupID, eventID).First(&group).Error; err != nil {
		return nil, translate(err)
	}
	return &group, nil
}

func (cr *ConferenceRepository) SaveGroup(ctx context.Context, group *models.ConferenceGroup) error {
	return cr.db.WithContext(ctx).Save(group).Error
}

func (cr *ConferenceRepository) CreateGroup(ctx context.Context, group *models.ConferenceGroup) error {
	return cr.db.WithContext(ctx).Create(group).Error
}

func (cr *ConferenceRepository) DeleteGroup(ctx context.Context, eventID, groupID uint) error {
	return cr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteResult(tx.Where("event_id = ?", eventID).Delete(&models.ConferenceGroup{}, groupID)); err != nil {
			return err
		}
		return tx.Model(&models.ConferenceGuest{}).
			Where("event_id = ? AND group_id = ?", eventID, groupID).
			Update("group_id", nil).Error
	})
}

func (cr *ConferenceRepository) ListGuests(ctx context.Context, eventID uint) ([]models.ConferenceGuest, error) {
	var guests []models.ConferenceGuest
	err := cr.db.WithContext(ctx).Where("event_id = ?", eventID).Order("name").Find(&guests).Error
	return guests, err
}

func (cr *ConferenceRepository) FindGuest(ctx context.Context, eventID, guestID uint) (*models.ConferenceGuest, error) {
	var guest models.ConferenceGuest
	if err := cr.db.WithContext(ctx).Where("id = ? AND event_id = ?", guestID, eventID).First(&guest).Error; err != nil {
		return nil, translate(err)
	}
	return &guest, nil
}

func (cr *ConferenceRepository) SaveGuest(ctx context.Context, guest *models.ConferenceGuest) error {
	return cr.db.WithContext(ctx).Save(guest).Error
}

func (cr *ConferenceRepository) DeleteGuest(ctx context.Context, eventID, guestID uint) error {
	return deleteResult(cr.db.WithContext(ctx).Where("event_id = ?", eventID).Delete(&models.ConferenceGuest{}, guestID))
}

// SearchGuests matches name or email, case-insensitively.
func (cr *ConferenceRepository) SearchGuests(ctx context.Context, eventID uint, query string) ([]models.ConferenceGuest, error) {
	var guests []models.ConferenceGuest
	pattern := "%" + strings.ToLower(query) + "%"
	err := cr.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Where(cr.db.Where("LOWER(name) LIKE ?", pattern).Or("LOWER(email) LIKE ?", pattern)).
		Order("name").
		Limit(guestSearchLimit).
		Find(&guests).Error
	return guests, err
}

func (cr *ConferenceRepository) ListSeatedGuests(ctx context.Context, eventID uint) ([]models.ConferenceGuest, error) {
	var guests []models.ConferenceGuest
	err := cr.db.WithContext(ctx).
		Where("event_id = ? AND element_id IS NOT NULL", eventID).
		Order("element_id").
		Order("seat_number").
		Find(&guests).Error
	return guests, err
}

func (cr *ConferenceRepository) FindGuestBySeat(ctx context.Context, eventID, elementID uint, seatNumber int) (*models.ConferenceGuest, error) {
	var guest models.ConferenceGuest
	err := cr.db.WithContext(ctx).
		Where("event_id = ? AND element_id = ? AND seat_number = ?", eventID, elementID, seatNumber).
		First(&guest).Error
	if err != nil {
		return nil, translate(err)
	}
	return &guest, nil
}
