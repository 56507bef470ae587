package inquiry

import (
	"net/http"
	"workation/infras/otel"
	"workation/internal/domains/inquiry/model/dto"
	"workation/internal/domains/inquiry/service"
	"workation/shared/constant"
	"workation/shared/validator"
	"workation/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Handler exposes the public inquiry surface. Submission is open to visitors;
// everything that reads the collection lives behind the admin surface.
type Handler struct {
	service service.Inquiry
	otel    otel.Otel
}

func New(service service.Inquiry, ot otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    ot,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/inquiries", func(r chi.Router) {
		r.Post("/", handler.CreateInquiry)
	})
}

// CreateInquiry handles a visitor inquiry submission.
// @Summary Submit a workation inquiry
// @Description Persist a new inquiry locally and mirror it to the configured sheet endpoint.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param request body dto.CreateInquiryRequest true "Create Inquiry Request"
// @Success 201 {object} response.Message "Inquiry submitted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inquiries [post]
func (handler *Handler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateInquiry")
	defer scope.End()

	req := dto.CreateInquiryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create inquiry")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiry submitted successfully")

	response.WithMessage(w, http.StatusCreated, "Inquiry submitted successfully")
}
