package dto

// ErrorResponse cuerpo de error HTTP. Error lleva el texto legible; Code un identificador estable.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
