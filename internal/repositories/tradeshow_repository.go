package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"eventPlanner/internal/models"
)

const vendorSearchLimit = 10

type TradeshowRepository struct {
	db *gorm.DB
}

func NewTradeshowRepository(db *gorm.DB) *TradeshowRepository {
	return &TradeshowRepository{
		db: db,
	}
}

func (tr *TradeshowRepository) ListBooths(ctx context.Context, eventID uint) ([]models.TradeshowBooth, error) {
	var booths []models.TradeshowBooth
	err := tr.db.WithContext(ctx).Where("event_id = ?", eventID).Order("label").Find(&booths).Error
	return booths, err
}

func (tr *TradeshowRepository) FindBooth(ctx context.Context, eventID, boothID uint) (*models.TradeshowBooth, error) {
	var booth models.TradeshowBooth
	if err := tr.db.WithContext(ctx).Where("id = ? AND event_id = ?", boothID, eventID).First(&booth).Error; err != nil {
		return nil, translate(err)
	}
	return &booth, nil
}

// FindBoothByVendor returns the booth a vendor is assigned to, if any.
func (tr *TradeshowRepository) FindBoothByVendor(ctx context.Context, eventID, vendorID uint) (*models.TradeshowBooth, error) {
	var booth models.TradeshowBooth
	if err := tr.db.WithContext(ctx).Where("event_id = ? AND vendor_id = ?", eventID, vendorID).First(&booth).Error; err != nil {
		return nil, translate(err)
	}
	return &booth, nil
}

func (tr *TradeshowRepository) SaveBooth(ctx context.Context, booth *models.TradeshowBooth) error {
	return tr.db.WithContext(ctx).Save(booth).Error
}

func (tr *TradeshowRepository) SaveBooths(ctx context.Context, booths []*models.TradeshowBooth) error {
	return tr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, booth := range booths {
			if err := tx.Save(booth).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (tr *TradeshowRepository) ListAssignedBooths(ctx context.Context, eventID uint) ([]models.TradeshowBooth, error) {
	var booths []models.TradeshowBooth
	err := tr.db.WithContext(ctx).Where("event_id = ? AND vendor_id IS NOT NULL", eventID).Order("label").Find(&booths).Error
	return booths, err
}

func (tr *TradeshowRepository) DeleteBooth(ctx context.Context, eventID, boothID uint) error {
	return deleteResult(tr.db.WithContext(ctx).Where("event_id = ?", eventID).Delete(&models.TradeshowBooth{}, boothID))
}

func (tr *TradeshowRepository) ListVendors(ctx context.Context, eventID uint) ([]models.TradeshowVendor, error) {
	var vendors []models.TradeshowVendor
	err := tr.db.WithContext(ctx).Where("event_id = ?", eventID).Order("company_name").Find(&vendors).Error
	return vendors, err
}

func (tr *TradeshowRepository) FindVendor(ctx context.Context, eventID, vendorID uint) (*models.TradeshowVendor, error) {
	var vendor models.TradeshowVendor
	if err := tr.db.WithContext(ctx).Where("id = ? AND event_id = ?", vendorID, eventID).First(&vendor).Error; err != nil {
		return nil, translate(err)
	}
	return &vendor, nil
}

func (tr *TradeshowRepository) SaveVendor(ctx context.Context, vendor *models.TradeshowVendor) error {
	return tr.db.WithContext(ctx).Save(vendor).Error
}

// DeleteVendor removes the vendor and frees its booth.
func (tr *TradeshowRepository) DeleteVendor(ctx context.Context, eventID, vendorID uint) error {
	return tr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteResult(tx.Where("event_id = ?", eventID).Delete(&models.TradeshowVendor{}, vendorID)); err != nil {
			return err
		}
		return tx.Model(&models.TradeshowBooth{}).
			Where("event_id = ? AND vendor_id = ?", eventID, vendorID).
			Updates(map[string]interface{}{"vendor_id": nil, "status": models.BoothStatusAvailable}).Error
	})
}

func (tr *TradeshowRepository) SearchVendors(ctx context.Context, eventID uint, query string) ([]models.TradeshowVendor, error) {
	var vendors []models.TradeshowVendor
	pattern := "%" + strings.ToLower(query) + "%"
	err := tr.db.WithContext(ctx).
		Where("event_id = ? AND LOWER(company_name) LIKE ?", eventID, pattern).
		Order("company_name").
		Limit(vendorSearchLimit).
		Find(&vendors).Error
	return vendors, err
}

func (tr *TradeshowRepository) ListRoutes(ctx context.Context, eventID uint) ([]models.TradeshowRoute, error) {
	var routes []models.TradeshowRoute
	err := tr.db.WithContext(ctx).Where("event_id = ?", eventID).Order("created_at DESC").Find(&routes).Error
	return routes, err
}

func (tr *TradeshowRepository) FindRoute(ctx context.Context, eventID, routeID uint) (*models.TradeshowRoute, error) {
	var route models.TradeshowRoute
	if err := tr.db.WithContext(ctx).Where("id = ? AND event_id = ?", routeID, eventID).First(&route).Error; err != nil {
		return nil, translate(err)
	}
	return &route, nil
}

func (tr *TradeshowRepository) SaveRoute(ctx context.Context, route *models.TradeshowRoute) error {
	return tr.db.WithContext(ctx).Save(route).Error
}

func (tr *TradeshowRepository) DeleteRoute(ctx context.Context, eventID, routeID uint) error {
	return deleteResult(tr.db.WithContext(ctx).Where("event_id = ?", eventID).Delete(&models.TradeshowRoute{}, routeID))
}
