package service

import (
	"ai_interviewer_backend/internal/model"
	"ai_interviewer_backend/internal/repository"
	"ai_interviewer_backend/internal/util"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// RoleService 面试岗位与出题配置的维护
type RoleService struct {
	roleRepo *repository.RoleRepository
}

func NewRoleService(roleRepo *repository.RoleRepository) *RoleService {
	return &RoleService{roleRepo: roleRepo}
}

type CreateRoleRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *RoleService) CreateRole(req CreateRoleRequest) (*model.Role, error) {
	role := &model.Role{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}
	if err := s.roleRepo.Create(role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *RoleService) GetRole(id string) (*model.Role, error) {
	role, err := s.roleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrRoleNotFound
		}
		return nil, err
	}
	return role, nil
}

func (s *RoleService) ListRoles() ([]model.Role, error) {
	return s.roleRepo.List()
}

func (s *RoleService) DeleteRole(id string) error {
	if _, err := s.GetRole(id); err != nil {
		return err
	}
	return s.roleRepo.Delete(id)
}

type CreateConfigRequest struct {
	Name           string `json:"name" binding:"required"`
	RoleID         string `json:"roleId" binding:"required"`
	TotalQuestions int    `json:"totalQuestions" binding:"required,min=1,max=50"`
	TechRatio      int    `json:"techRatio" binding:"min=0,max=100"`
}

func (s *RoleService) CreateConfig(req CreateConfigRequest) (*model.InterviewConfig, error) {
	if _, err := s.GetRole(req.RoleID); err != nil {
		return nil, err
	}

	cfg := &model.InterviewConfig{
		Name:           strings.TrimSpace(req.Name),
		RoleID:         req.RoleID,
		TotalQuestions: req.TotalQuestions,
		TechRatio:      req.TechRatio,
	}
	if err := s.roleRepo.CreateConfig(cfg); err != nil {
		return nil, err
	}
	return s.GetConfig(cfg.ID)
}

func (s *RoleService) GetConfig(id string) (*model.InterviewConfig, error) {
	cfg, err := s.roleRepo.FindConfigByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrConfigNotFound
		}
		return nil, err
	}
	return cfg, nil
}

func (s *RoleService) ListConfigs() ([]model.InterviewConfig, error) {
	return s.roleRepo.ListConfigs()
}

func (s *RoleService) DeleteConfig(id string) error {
	if _, err := s.GetConfig(id); err != nil {
		return err
	}
	return s.roleRepo.DeleteConfig(id)
}
