package repositories

import (
	"context"

	"gorm.io/gorm"

	"eventPlanner/internal/models"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{
		db: db,
	}
}

func (sr *SessionRepository) ListSessions(ctx context.Context, eventID uint) ([]models.EventSession, error) {
	var sessions []models.EventSession
	err := sr.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("session_date").
		Order("start_time").
		Find(&sessions).Error
	return sessions, err
}

func (sr *SessionRepository) FindSession(ctx context.Context, eventID, sessionID uint) (*models.EventSession, error) {
	var session models.EventSession
	if err := sr.db.WithContext(ctx).Where("id = ? AND event_id = ?", sessionID, eventID).First(&session).Error; err != nil {
		return nil, translate(err)
	}
	return &session, nil
}

func (sr *SessionRepository) SaveSession(ctx context.Context, session *models.EventSession) error {
	return sr.db.WithContext(ctx).Save(session).Error
}

func (sr *SessionRepository) DeleteSession(ctx context.Context, eventID, sessionID uint) error {
	return deleteResult(sr.db.WithContext(ctx).Where("event_id = ?", eventID).Delete(&models.EventSession{}, sessionID))
}
