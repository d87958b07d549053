package models

import "time"

const (
	TipoAdmin   = "admin"
	TipoUsuario = "usuario"
)

type Usuario struct {
	ID            uint      `json:"usuario_id" gorm:"primaryKey"`
	Nombre        string    `json:"nombre" gorm:"size:100;not null"`
	Email         string    `json:"email" gorm:"size:150;not null;unique"`
	Contrasena    string    `json:"-" gorm:"not null"`
	Tipo          string    `json:"tipo" gorm:"size:20;not null;default:'usuario'"`
	Estado        bool      `json:"estado" gorm:"default:true"`
	FechaRegistro time.Time `json:"fecha_registro" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"-"`
}

func (u *Usuario) EsAdmin() bool {
	return u.Tipo == TipoAdmin
}

type UserSession struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"user_id" gorm:"not null;index"`
	SessionID      string    `json:"session_id" gorm:"size:64;not null;index"`
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	LastActivityAt time.Time `json:"last_activity_at"`
	ExpiresAt      time.Time `json:"expires_at"`
	CreatedAt      time.Time `json:"created_at"`
}

type LoginLog struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	SessionID   string     `json:"session_id" gorm:"size:64;index"`
	Email       string     `json:"email"`
	LoginAt     *time.Time `json:"login_at"`
	LogoutAt    *time.Time `json:"logout_at"`
	IPAddress   string     `json:"ip_address"`
	UserAgent   string     `json:"user_agent"`
	LoginStatus string     `json:"login_status"` // SUCCESS | FAILED
	CreatedAt   time.Time  `json:"created_at"`
}
