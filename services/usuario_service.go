package services

import (
	"inventario-app/models"
	"inventario-app/repositories"
)

type UsuarioService struct {
	repo *repositories.UsuarioRepository
}

func NewUsuarioService(repo *repositories.UsuarioRepository) *UsuarioService {
	return &UsuarioService{repo: repo}
}

// Create usuario
func (s *UsuarioService) CreateUsuario(usuario *models.Usuario) error {
	return s.repo.Create(usuario)
}

// Get usuario by ID
func (s *UsuarioService) GetUsuarioByID(id uint) (*models.Usuario, error) {
	return s.repo.GetByID(id)
}

// Get all usuarios
func (s *UsuarioService) GetAllUsuarios() ([]models.Usuario, error) {
	return s.repo.GetAll()
}

// Update usuario
func (s *UsuarioService) UpdateUsuario(usuario *models.Usuario) error {
	return s.repo.Update(usuario)
}

// Delete usuario
func (s *UsuarioService) DeleteUsuario(id uint) error {
	return s.repo.Delete(id)
}

func (s *UsuarioService) GetUsuarioByEmail(email string) (*models.Usuario, error) {
	return s.repo.GetByEmail(email)
}
