// blogsum/sources/psql/dao/dao.summary.go
package dao

import (
	"context"

	"blogsum/blogsum/sources/psql/models"

	"gorm.io/gorm"
)

type SummaryDAO struct {
	DB *gorm.DB
}

func NewSummaryDAO(db *gorm.DB) *SummaryDAO {
	return &SummaryDAO{DB: db}
}

func (dao *SummaryDAO) CreateSummary(ctx context.Context, summary *models.Summary) error {
	return dao.DB.WithContext(ctx).Create(summary).Error
}

// GetAllSummaries returns every stored summary, newest first.
func (dao *SummaryDAO) GetAllSummaries(ctx context.Context) ([]models.Summary, error) {
	var summaries []models.Summary
	err := dao.DB.WithContext(ctx).Order("created_at desc").Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (dao *SummaryDAO) GetSummaryByID(ctx context.Context, id uint) (*models.Summary, error) {
	var summary models.Summary
	err := dao.DB.WithContext(ctx).First(&summary, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (dao *SummaryDAO) DeleteSummary(ctx context.Context, id uint) error {
	return dao.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Summary{}).Error
}
