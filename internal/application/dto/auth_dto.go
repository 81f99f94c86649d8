package dto

// LoginRequest body para POST /api/auth/login (credencial compartida del almacén).
type LoginRequest struct {
	Usuario    string `json:"usuario" validate:"required"`
	Contrasena string `json:"contrasena" validate:"required"`
}

// LoginResponse token de sesión emitido tras el login.
type LoginResponse struct {
	Token    string `json:"token"`
	Operador string `json:"operador"`
}
