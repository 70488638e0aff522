package errors

import "fmt"

// InvalidInputError representa un error de validación del request.
// El mensaje se devuelve tal cual al caller.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

// NewInvalidInputError crea un nuevo error de validación
func NewInvalidInputError(field, message string) *InvalidInputError {
	return &InvalidInputError{
		Field:   field,
		Message: message,
	}
}

// AuthError indica que falta una credencial o que fue rechazada.
type AuthError struct {
	Provider string
	Err      error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s authentication failed: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s authentication failed", e.Provider)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError crea un nuevo error de autenticación
func NewAuthError(provider string, err error) *AuthError {
	return &AuthError{Provider: provider, Err: err}
}

// RepoNotFoundError indica que el repositorio no existe en el proveedor.
type RepoNotFoundError struct {
	Repo string
}

func (e *RepoNotFoundError) Error() string {
	return fmt.Sprintf("Repository '%s' not found. Please check the repository name.", e.Repo)
}

// NewRepoNotFoundError crea un nuevo error de repositorio no encontrado
func NewRepoNotFoundError(repo string) *RepoNotFoundError {
	return &RepoNotFoundError{Repo: repo}
}

// UpstreamError indica una falla de un servicio externo (GitHub o Gemini).
type UpstreamError struct {
	Service string
	Op      string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Service, e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError crea un nuevo error de servicio externo
func NewUpstreamError(service, op string, err error) *UpstreamError {
	return &UpstreamError{Service: service, Op: op, Err: err}
}

// NotConfiguredError indica que un servicio requerido no tiene configuración.
type NotConfiguredError struct {
	Service string
	Reason  string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("%s not configured: %s", e.Service, e.Reason)
}

// NewNotConfiguredError crea un nuevo error de servicio no configurado
func NewNotConfiguredError(service, reason string) *NotConfiguredError {
	return &NotConfiguredError{Service: service, Reason: reason}
}
