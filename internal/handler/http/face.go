package http

import (
	"encoding/json"
	"net/http"

	"github.com/haergo/haergo-backend-go/internal/domain/face"
	"github.com/haergo/haergo-backend-go/internal/handler/http/response"
)

type FaceHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Check(w http.ResponseWriter, r *http.Request)
	Descriptor(w http.ResponseWriter, r *http.Request)
}

type faceHandlerImpl struct {
	faceService face.FaceService
}

func NewFaceHandler(faceService face.FaceService) FaceHandler {
	return &faceHandlerImpl{
		faceService: faceService,
	}
}

// Register implements FaceHandler.
func (h *faceHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req face.RegisterFaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.faceService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Face profile stored", result)
}

// Check implements FaceHandler.
func (h *faceHandlerImpl) Check(w http.ResponseWriter, r *http.Request) {
	result, err := h.faceService.Check(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Descriptor implements FaceHandler.
func (h *faceHandlerImpl) Descriptor(w http.ResponseWriter, r *http.Request) {
	result, err := h.faceService.Descriptor(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
