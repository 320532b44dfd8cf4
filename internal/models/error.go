package models

// ErrorResponse representa el cuerpo de un error de almacenamiento o de request
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse representa el cuerpo de una confirmación o de un 404
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse representa la respuesta de creación cuando el ID es relevante
type CreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// NewErrorResponse crea una respuesta de error con el mensaje tal cual
func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{Error: err.Error()}
}

// NewMessageResponse crea una respuesta con mensaje
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}
