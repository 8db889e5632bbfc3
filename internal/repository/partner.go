package repository

import (
	"github.com/jmoiron/sqlx"

	"goalnudge/internal/model"
)

type PartnerRepository interface {
	Create(partner *model.AccountabilityPartner) error
	ByGoal(goalID string) ([]*model.AccountabilityPartner, error)
}

type partnerRepository struct {
	db *sqlx.DB
}

func NewPartnerRepository(db *sqlx.DB) PartnerRepository {
	return &partnerRepository{db: db}
}

func (r *partnerRepository) Create(partner *model.AccountabilityPartner) error {
	query := `INSERT INTO accountability_partners (id, goal_id, email, phone, created_at)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query,
		partner.ID,
		partner.GoalID,
		partner.Email,
		partner.Phone,
		partner.CreatedAt,
	)

	return err
}

func (r *partnerRepository) ByGoal(goalID string) ([]*model.AccountabilityPartner, error) {
	var partners []*model.AccountabilityPartner
	query := `SELECT * FROM accountability_partners WHERE goal_id = $1 ORDER BY created_at ASC`

	err := r.db.Select(&partners, query, goalID)
	if err != nil {
		return nil, err
	}

	return partners, nil
}
