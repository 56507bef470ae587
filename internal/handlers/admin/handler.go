package admin

import (
	"net/http"
	"strconv"
	"workation/infras/otel"
	"workation/internal/domains/inquiry/analytics"
	inquiryService "workation/internal/domains/inquiry/service"
	settingsDto "workation/internal/domains/settings/model/dto"
	settingsService "workation/internal/domains/settings/service"
	"workation/shared/constant"
	"workation/shared/failure"
	"workation/shared/validator"
	"workation/transport/http/middleware"
	"workation/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Handler exposes the admin dashboard surface: the filtered inquiry list,
// the summary stats, and the mirror endpoint settings.
type Handler struct {
	inquiryService  inquiryService.Inquiry
	settingsService settingsService.Settings
	middleware      middleware.Auth
	otel            otel.Otel
}

func New(inquirySvc inquiryService.Inquiry, settingsSvc settingsService.Settings, mw middleware.Auth, ot otel.Otel) Handler {
	return Handler{
		inquiryService:  inquirySvc,
		settingsService: settingsSvc,
		middleware:      mw,
		otel:            ot,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(handler.middleware.Admin)

		r.Get("/inquiries", handler.GetInquiries)
		r.Get("/inquiries/{id}", handler.GetInquiryByID)
		r.Get("/stats", handler.GetStats)
		r.Get("/settings/mirror", handler.GetMirrorSettings)
		r.Put("/settings/mirror", handler.UpdateMirrorSettings)
	})
}

// GetInquiries returns the inquiry collection, newest first.
// @Summary List inquiries
// @Description Retrieve the inquiry collection with optional search, package and period filters.
// @Tags Admin
// @Accept json
// @Produce json
// @Param search query string false "Case-insensitive match over name, company, email and phone"
// @Param package query string false "Exact package key"
// @Param period query string false "One of today, week, month"
// @Success 200 {object} dto.GetInquiriesResponse "Inquiry collection view"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/admin/inquiries [get]
// @Security BearerAuth
func (handler *Handler) GetInquiries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInquiries")
	defer scope.End()

	criteria := analytics.Criteria{
		Search:  r.URL.Query().Get(constant.RequestParamSearch),
		Package: r.URL.Query().Get(constant.RequestParamPackage),
		Period:  r.URL.Query().Get(constant.RequestParamPeriod),
	}

	if err := validator.ValidateStruct(&criteria); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(w, err)

		return
	}

	res, err := handler.inquiryService.GetAll(ctx, criteria)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inquiries")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiries retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetInquiryByID returns a single inquiry.
// @Summary Get an inquiry by ID
// @Description Retrieve a single inquiry by its submission-time identifier.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Inquiry ID"
// @Success 200 {object} dto.InquiryResponse "Inquiry details"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/inquiries/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetInquiryByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInquiryByID")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		err := failure.BadRequestFromString("inquiry id must be an integer")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.inquiryService.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get inquiry by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiry retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetStats returns the dashboard summary.
// @Summary Get inquiry stats
// @Description Retrieve totals, today's count, the rolling seven-day count and the most requested package.
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} dto.StatsResponse "Dashboard summary"
// @Failure 401 {object} response.Error
// @Router /v1/admin/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	res, err := handler.inquiryService.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stats retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetMirrorSettings returns the configured mirror endpoint.
// @Summary Get mirror settings
// @Description Retrieve the sheet endpoint inquiries are mirrored to.
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} dto.MirrorSettingsResponse "Mirror settings"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/settings/mirror [get]
// @Security BearerAuth
func (handler *Handler) GetMirrorSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMirrorSettings")
	defer scope.End()

	res, err := handler.settingsService.GetMirrorSettings(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get mirror settings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateMirrorSettings stores a new mirror endpoint.
// @Summary Update mirror settings
// @Description Store the sheet endpoint inquiries are mirrored to. An empty URL disables mirroring.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.UpdateMirrorSettingsRequest true "Update Mirror Settings Request"
// @Success 200 {object} response.Message "Mirror settings updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/settings/mirror [put]
// @Security BearerAuth
func (handler *Handler) UpdateMirrorSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMirrorSettings")
	defer scope.End()

	req := settingsDto.UpdateMirrorSettingsRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.settingsService.UpdateMirrorSettings(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update mirror settings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Mirror settings updated successfully")

	response.WithMessage(w, http.StatusOK, "Mirror settings updated successfully")
}
