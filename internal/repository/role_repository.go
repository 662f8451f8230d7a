package repository

import (
	"ai_interviewer_backend/internal/model"

	"gorm.io/gorm"
)

type RoleRepository struct {
	DB *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{DB: db}
}

func (r *RoleRepository) Create(role *model.Role) error {
	return r.DB.Create(role).Error
}

func (r *RoleRepository) FindByID(id string) (*model.Role, error) {
	var role model.Role
	err := r.DB.First(&role, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *RoleRepository) List() ([]model.Role, error) {
	var roles []model.Role
	err := r.DB.Order("created_at asc").Find(&roles).Error
	return roles, err
}

func (r *RoleRepository) Delete(id string) error {
	return r.DB.Delete(&model.Role{}, "id = ?", id).Error
}

func (r *RoleRepository) CreateConfig(cfg *model.InterviewConfig) error {
	return r.DB.Create(cfg).Error
}

func (r *RoleRepository) FindConfigByID(id string) (*model.InterviewConfig, error) {
	var cfg model.InterviewConfig
	err := r.DB.Preload("Role").First(&cfg, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *RoleRepository) ListConfigs() ([]model.InterviewConfig, error) {
	var cfgs []model.InterviewConfig
	err := r.DB.Preload("Role").Order("created_at desc").Find(&cfgs).Error
	return cfgs, err
}

func (r *RoleRepository) DeleteConfig(id string) error {
	return r.DB.Delete(&model.InterviewConfig{}, "id = ?", id).Error
}
