package repositories

import (
	"context"

	"gorm.io/gorm"

	"eventPlanner/internal/models"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

func (er *EventRepository) CreateEvent(ctx context.Context, event *models.Event) error {
	return er.db.WithContext(ctx).Create(event).Error
}

func (er *EventRepository) ListOwnedEvents(ctx context.Context, userID uint, domain string) ([]models.Event, error) {
	var events []models.Event
	err := er.db.WithContext(ctx).
		Where("user_id = ? AND domain = ?", userID, domain).
		Order("updated_at DESC").
		Find(&events).Error
	return events, err
}

func (er *EventRepository) FindOwnedEvent(ctx context.Context, id, userID uint, domain string) (*models.Event, error) {
	var event models.Event
	err := er.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND domain = ?", id, userID, domain).
		First(&event).Error
	if err != nil {
		return nil, translate(err)
	}
	return &event, nil
}

// FindEvent looks an event up without an ownership check, for public kiosk routes.
func (er *EventRepository) FindEvent(ctx context.Context, id uint, domain string) (*models.Event, error) {
	var event models.Event
	if err := er.db.WithContext(ctx).Where("id = ? AND domain = ?", id, domain).First(&event).Error; err != nil {
		return nil, translate(err)
	}
	return &event, nil
}

func (er *EventRepository) SaveEvent(ctx context.Context, event *models.Event) error {
	return er.db.WithContext(ctx).Save(event).Error
}

func (er *EventRepository) DeleteEvent(ctx context.Context, event *models.Event) error {
	return deleteResult(er.db.WithContext(ctx).Delete(event))
}
