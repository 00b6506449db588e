package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pokedex-api/backend/app/apperr"
	"pokedex-api/backend/app/models"
)

type PokemonRepository struct{ db *gorm.DB }

func NewPokemonRepository(db *gorm.DB) *PokemonRepository { return &PokemonRepository{db: db} }

func (r *PokemonRepository) List(ctx context.Context) ([]models.Pokemon, error) {
	var out []models.Pokemon
	if err := r.db.WithContext(ctx).Order("external_id ASC").Find(&out).Error; err != nil {
		return nil, translate(err, nil, nil, "list pokemons")
	}
	for i := range out {
		out[i].Normalize()
	}
	return out, nil
}

func (r *PokemonRepository) FindByExternalID(ctx context.Context, externalID int) (*models.Pokemon, error) {
	var p models.Pokemon
	if err := r.db.WithContext(ctx).Where("external_id = ?", externalID).First(&p).Error; err != nil {
		return nil, translate(err, apperr.ErrPokemonNotFound, nil, "find pokemon")
	}
	p.Normalize()
	return &p, nil
}

func (r *PokemonRepository) Exists(ctx context.Context, externalID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Pokemon{}).Where("external_id = ?", externalID).Count(&count).Error
	return count > 0, translate(err, nil, nil, "count pokemons")
}

func (r *PokemonRepository) Create(ctx context.Context, p *models.Pokemon) error {
	if err := p.Validate(); err != nil {
		return apperr.Wrap(apperr.KindValidation, err.Error(), err)
	}
	p.Normalize()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	err := r.db.WithContext(ctx).Create(p).Error
	return translate(err, nil, apperr.ErrDuplicatePokemon, "create pokemon")
}

// Replace overwrites the entry stored under externalID with p. The external
// id from the route, the storage id and the creation time are kept whatever p
// carries.
func (r *PokemonRepository) Replace(ctx context.Context, externalID int, p *models.Pokemon) (*models.Pokemon, error) {
	existing, err := r.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	p.ExternalID = externalID
	if err := p.Validate(); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err.Error(), err)
	}
	p.Normalize()
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, translate(err, nil, apperr.ErrDuplicatePokemon, "update pokemon")
	}
	return p, nil
}

func (r *PokemonRepository) DeleteByExternalID(ctx context.Context, externalID int) error {
	res := r.db.WithContext(ctx).Where("external_id = ?", externalID).Delete(&models.Pokemon{})
	if res.Error != nil {
		return translate(res.Error, nil, nil, "delete pokemon")
	}
	if res.RowsAffected == 0 {
		return apperr.ErrPokemonNotFound
	}
	return nil
}
