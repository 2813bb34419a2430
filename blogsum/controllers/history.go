// blogsum/controllers/history.go
package controllers

import (
	"context"

	"blogsum/blogsum/sources/psql/dao"
	"blogsum/blogsum/sources/psql/models"
)

type HistoryController struct {
	dao *dao.SummaryDAO
}

func NewHistoryController(dao *dao.SummaryDAO) *HistoryController {
	return &HistoryController{dao: dao}
}

func (c *HistoryController) GetAllSummaries(ctx context.Context) ([]models.Summary, error) {
	return c.dao.GetAllSummaries(ctx)
}

func (c *HistoryController) GetSummaryByID(ctx context.Context, id uint) (*models.Summary, error) {
	return c.dao.GetSummaryByID(ctx, id)
}

func (c *HistoryController) DeleteSummary(ctx context.Context, id uint) error {
	return c.dao.DeleteSummary(ctx, id)
}
