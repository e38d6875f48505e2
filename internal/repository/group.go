package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"yatube/internal/model"
)

type groupRepository struct {
	db *sqlx.DB
}

func NewGroupRepository(db *sqlx.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) GetByID(ctx context.Context, id int64) (*model.Group, error) {
	query := `SELECT id, title, slug, description FROM groups WHERE id = $1`
	var group model.Group
	err := r.db.GetContext(ctx, &group, query, id)
	if err == sql.ErrNoRows {
		return nil, model.ErrGroupNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}
	return &group, nil
}

func (r *groupRepository) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	query := `SELECT id, title, slug, description FROM groups WHERE slug = $1`
	var group model.Group
	err := r.db.GetContext(ctx, &group, query, slug)
	if err == sql.ErrNoRows {
		return nil, model.ErrGroupNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get group by slug: %w", err)
	}
	return &group, nil
}

func (r *groupRepository) List(ctx context.Context) ([]model.Group, error) {
	query := `SELECT id, title, slug, description FROM groups ORDER BY title ASC`
	var groups []model.Group
	err := r.db.SelectContext(ctx, &groups, query)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}
