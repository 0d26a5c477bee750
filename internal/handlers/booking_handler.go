package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/MediLinkServices01/telehealth-scheduler/internal/domain/booking"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/httperr"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/httpresp"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/middleware"
	ucBooking "github.com/MediLinkServices01/telehealth-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	startUC   *ucBooking.StartBooking
	updateUC  *ucBooking.UpdateDraft
	advanceUC *ucBooking.Advance
	retreatUC *ucBooking.Retreat
	confirmUC *ucBooking.Confirm
	listUC    *ucBooking.ListPatientAppointments
}

func NewBookingHandler(
	startUC *ucBooking.StartBooking,
	updateUC *ucBooking.UpdateDraft,
	advanceUC *ucBooking.Advance,
	retreatUC *ucBooking.Retreat,
	confirmUC *ucBooking.Confirm,
	listUC *ucBooking.ListPatientAppointments,
) *BookingHandler {
	return &BookingHandler{
		startUC:   startUC,
		updateUC:  updateUC,
		advanceUC: advanceUC,
		retreatUC: retreatUC,
		confirmUC: confirmUC,
		listUC:    listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type StartBookingRequest struct {
	PractitionerID uint `json:"practitioner_id" binding:"required"`
}

type UpdateDraftRequest struct {
	Date          *string `json:"date"`
	Time          *string `json:"time"`
	Modality      *string `json:"modality"`
	Reason        *string `json:"reason"`
	Urgency       *string `json:"urgency"`
	Notes         *string `json:"notes"`
	PaymentMethod *string `json:"payment_method"`
}

// ======================================================
// RESPONSES
// ======================================================

type workflowResponse struct {
	ID     string       `json:"id"`
	Step   int          `json:"step"`
	Label  string       `json:"step_label"`
	Exited bool         `json:"exited"`
	Draft  domain.Draft `json:"draft"`
}

func toWorkflowResponse(w *domain.Workflow) workflowResponse {
	return workflowResponse{
		ID:     w.ID,
		Step:   int(w.Step),
		Label:  w.Step.Label(),
		Exited: w.Exited,
		Draft:  w.Draft,
	}
}

// ======================================================
// WIZARD
// ======================================================

func (h *BookingHandler) Start(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)

	var req StartBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	w, err := h.startUC.Execute(c.Request.Context(), patientID, req.PractitionerID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.Created(c, toWorkflowResponse(w))
}

func (h *BookingHandler) Get(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)

	// UpdateDraft with an empty patch is a plain read.
	w, err := h.updateUC.Execute(c.Request.Context(), c.Param("id"), patientID, ucBooking.UpdateDraftInput{})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, toWorkflowResponse(w))
}

func (h *BookingHandler) Update(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	w, err := h.updateUC.Execute(c.Request.Context(), c.Param("id"), patientID, ucBooking.UpdateDraftInput{
		Date:          req.Date,
		Time:          req.Time,
		Modality:      req.Modality,
		Reason:        req.Reason,
		Urgency:       req.Urgency,
		Notes:         req.Notes,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, toWorkflowResponse(w))
}

func (h *BookingHandler) Advance(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)

	w, err := h.advanceUC.Execute(c.Request.Context(), c.Param("id"), patientID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, toWorkflowResponse(w))
}

func (h *BookingHandler) Retreat(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)

	w, err := h.retreatUC.Execute(c.Request.Context(), c.Param("id"), patientID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, toWorkflowResponse(w))
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)

	ap, err := h.confirmUC.Execute(c.Request.Context(), c.Param("id"), patientID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// SUPPORTING READS
// ======================================================

func (h *BookingHandler) ListSlots(c *gin.Context) {
	httpresp.List(c, domain.TimeSlots)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)

	out, err := h.listUC.Execute(c.Request.Context(), patientID)
	if err != nil {
		httperr.Internal(c, "list_failed", "Could not list appointments.")
		return
	}

	httpresp.List(c, out)
}
