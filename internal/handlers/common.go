package handlers

type ErrorResponse struct {
	Error string `json:"error" example:"qualcosa è andato storto"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operazione completata"`
}
