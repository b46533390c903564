// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/yomira-docs/internal/platform/middleware"
	requestutil "github.com/taibuivan/yomira-docs/internal/platform/request"
	"github.com/taibuivan/yomira-docs/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer of the tag service.
type Handler struct {
	service *Service
}

// NewHandler constructs a new tag [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the tag endpoints.
//
// Every route requires an authenticated caller; the gate is applied once to
// the whole group.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/list", handler.listTags)
	router.Get("/stats", handler.tagStats)
	router.Put("/", handler.createTag)
	router.Post("/{id:[a-z0-9-]+}", handler.updateTag)
	router.Delete("/{id:[a-z0-9-]+}", handler.deleteTag)

	return router
}

// # Payloads

type tagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type listResponse struct {
	Tags []*Tag `json:"tags"`
}

type statsResponse struct {
	Stats []*TagStat `json:"stats"`
}

type idResponse struct {
	ID string `json:"id"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// # Endpoints

func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	tags, err := handler.service.ListTags(request.Context(), ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, listResponse{Tags: tags})
}

func (handler *Handler) tagStats(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	stats, err := handler.service.GetTagStats(request.Context(), ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, statsResponse{Stats: stats})
}

func (handler *Handler) createTag(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input, err := decodeTagRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := handler.service.CreateTag(request.Context(), ownerID, CreateInput{
		Name:  input.Name,
		Color: input.Color,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, idResponse{ID: id})
}

func (handler *Handler) updateTag(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input, err := decodeTagRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := handler.service.UpdateTag(request.Context(), ownerID, requestutil.Param(request, "id"), UpdateInput{
		Name:  input.Name,
		Color: input.Color,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, idResponse{ID: id})
}

func (handler *Handler) deleteTag(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteTag(request.Context(), ownerID, requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, statusResponse{Status: "ok"})
}

// decodeTagRequest reads name and color from a form-encoded or JSON body.
// An empty body yields empty fields.
func decodeTagRequest(request *http.Request) (tagRequest, error) {
	var input tagRequest

	if requestutil.IsForm(request) {
		values, err := requestutil.FormValues(request, FieldName, FieldColor)
		if err != nil {
			return input, err
		}
		input.Name = values[FieldName]
		input.Color = values[FieldColor]
		return input, nil
	}

	if request.Body == nil || request.Body == http.NoBody || request.ContentLength == 0 {
		return input, nil
	}

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		return input, err
	}
	return input, nil
}
