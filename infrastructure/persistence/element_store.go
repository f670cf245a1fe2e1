package persistence

import (
	"context"
	"fmt"

	"github.com/helixml/periodic/domain/element"
	"github.com/helixml/periodic/domain/repository"
	"github.com/helixml/periodic/internal/database"
)

// StateStore implements element.StateStore using GORM.
type StateStore struct {
	database.Repository[element.State, StateModel]
}

// NewStateStore creates a new StateStore.
func NewStateStore(db database.Database) StateStore {
	return StateStore{
		Repository: database.NewRepository[element.State, StateModel](db, StateMapper{}, "state"),
	}
}

// Rename sets the name of an existing state.
func (s StateStore) Rename(ctx context.Context, id int64, name string) error {
	result := s.DB(ctx).Model(&StateModel{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return fmt.Errorf("rename state %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: state %d", database.ErrNotFound, id)
	}
	return nil
}

// SeriesStore implements element.SeriesStore using GORM.
type SeriesStore struct {
	database.Repository[element.Series, SeriesModel]
}

// NewSeriesStore creates a new SeriesStore.
func NewSeriesStore(db database.Database) SeriesStore {
	return SeriesStore{
		Repository: database.NewRepository[element.Series, SeriesModel](db, SeriesMapper{}, "series"),
	}
}

// ElementStore implements element.Store using GORM.
type ElementStore struct {
	database.Repository[element.Element, ElementModel]
}

// NewElementStore creates a new ElementStore.
func NewElementStore(db database.Database) ElementStore {
	return ElementStore{
		Repository: database.NewRepository[element.Element, ElementModel](db, ElementMapper{}, "element"),
	}
}

// DiscoveryYears returns the distinct discovery years in ascending order.
func (s ElementStore) DiscoveryYears(ctx context.Context) ([]int64, error) {
	var years []int64
	err := s.DB(ctx).Model(&ElementModel{}).
		Distinct("discovery_year").
		Order("discovery_year ASC").
		Pluck("discovery_year", &years).Error
	if err != nil {
		return nil, fmt.Errorf("discovery years: %w", err)
	}
	return years, nil
}

// AssignSeries points every element matching the options at seriesID.
func (s ElementStore) AssignSeries(ctx context.Context, seriesID int64, options ...repository.Option) (int64, error) {
	if len(repository.Build(options...).Conditions()) == 0 {
		return 0, fmt.Errorf("assign series: refusing to update without conditions")
	}
	db := database.ApplyConditions(s.DB(ctx).Model(&ElementModel{}), options...)
	result := db.Update("series_id", seriesID)
	if result.Error != nil {
		return 0, fmt.Errorf("assign series %d: %w", seriesID, result.Error)
	}
	return result.RowsAffected, nil
}
