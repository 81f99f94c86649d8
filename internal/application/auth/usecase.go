package auth

import (
	"crypto/subtle"

	"github.com/google/uuid"
	"github.com/usse-dev/almacen-api/internal/application/dto"
	"github.com/usse-dev/almacen-api/internal/domain"
	"github.com/usse-dev/almacen-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Credential la credencial compartida del almacén. Esto no es un modelo de
// seguridad: una sola credencial de operador contra configuración, como
// colaborador externo del núcleo.
type Credential struct {
	Username     string
	Password     string
	PasswordHash string // bcrypt; si está definido tiene prioridad sobre Password
}

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase login con credencial compartida que emite un token de sesión.
// El session_id del token es el que ata el builder de movimientos al operador.
type UseCase struct {
	cred   Credential
	jwtCfg JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(cred Credential, jwtCfg JWTConfig) *UseCase {
	return &UseCase{cred: cred, jwtCfg: jwtCfg}
}

// Login verifica usuario/contraseña contra la credencial configurada y genera
// un JWT con un session_id nuevo. Devuelve ErrNoAutorizado si no coincide.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if subtle.ConstantTimeCompare([]byte(in.Usuario), []byte(uc.cred.Username)) != 1 {
		return nil, domain.ErrNoAutorizado
	}
	if uc.cred.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(uc.cred.PasswordHash), []byte(in.Contrasena)); err != nil {
			return nil, domain.ErrNoAutorizado
		}
	} else if subtle.ConstantTimeCompare([]byte(in.Contrasena), []byte(uc.cred.Password)) != 1 {
		return nil, domain.ErrNoAutorizado
	}

	sessionID := uuid.New().String()
	token, err := jwt.Generate(uc.jwtCfg.Secret, in.Usuario, sessionID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Operador: in.Usuario}, nil
}
