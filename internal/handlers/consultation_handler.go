package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/MediLinkServices01/telehealth-scheduler/internal/domain/session"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/httperr"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/httpresp"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/middleware"
	ucConsultation "github.com/MediLinkServices01/telehealth-scheduler/internal/usecase/consultation"
)

// ======================================================
// HANDLER
// ======================================================

type ConsultationHandler struct {
	activateUC *ucConsultation.ActivateSession
	startUC    *ucConsultation.StartSession
	endUC      *ucConsultation.EndSession
	toggleUC   *ucConsultation.ToggleDevice
	sendUC     *ucConsultation.SendMessage
	summaryUC  *ucConsultation.Summary
}

func NewConsultationHandler(
	activateUC *ucConsultation.ActivateSession,
	startUC *ucConsultation.StartSession,
	endUC *ucConsultation.EndSession,
	toggleUC *ucConsultation.ToggleDevice,
	sendUC *ucConsultation.SendMessage,
	summaryUC *ucConsultation.Summary,
) *ConsultationHandler {
	return &ConsultationHandler{
		activateUC: activateUC,
		startUC:    startUC,
		endUC:      endUC,
		toggleUC:   toggleUC,
		sendUC:     sendUC,
		summaryUC:  summaryUC,
	}
}

func caller(c *gin.Context) ucConsultation.Caller {
	return ucConsultation.Caller{
		UserID:         c.MustGet(middleware.ContextUserID).(uint),
		PractitionerID: middleware.PractitionerID(c),
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ActivateSessionRequest struct {
	AppointmentID string `json:"appointment_id" binding:"required"`
}

type ToggleDeviceRequest struct {
	Device string `json:"device" binding:"required"`
}

type SendMessageRequest struct {
	Text string `json:"text"`
}

// ======================================================
// RESPONSES
// ======================================================

type sessionResponse struct {
	ID             string `json:"id"`
	AppointmentID  string `json:"appointment_id"`
	Phase          string `json:"phase"`
	ElapsedSeconds int    `json:"elapsed_seconds"`
}

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		ID:             s.ID,
		AppointmentID:  s.AppointmentID,
		Phase:          string(s.Phase()),
		ElapsedSeconds: s.Elapsed(),
	}
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *ConsultationHandler) Activate(c *gin.Context) {
	var req ActivateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	s, err := h.activateUC.Execute(c.Request.Context(), req.AppointmentID, caller(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.Created(c, toSessionResponse(s))
}

func (h *ConsultationHandler) Start(c *gin.Context) {
	s, err := h.startUC.Execute(c.Param("id"), caller(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, toSessionResponse(s))
}

func (h *ConsultationHandler) End(c *gin.Context) {
	s, err := h.endUC.Execute(c.Param("id"), caller(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, toSessionResponse(s))
}

func (h *ConsultationHandler) ToggleDevice(c *gin.Context) {
	var req ToggleDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	on, err := h.toggleUC.Execute(c.Param("id"), caller(c), ucConsultation.Device(req.Device))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"device": req.Device, "enabled": on})
}

// ======================================================
// CHAT
// ======================================================

func (h *ConsultationHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	msg, err := h.sendUC.Execute(c.Request.Context(), c.Param("id"), caller(c), req.Text)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.Created(c, msg)
}

func (h *ConsultationHandler) ListMessages(c *gin.Context) {
	out, err := h.summaryUC.ListMessages(c.Request.Context(), c.Param("id"), caller(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *ConsultationHandler) Summary(c *gin.Context) {
	out, err := h.summaryUC.Execute(c.Request.Context(), c.Param("id"), caller(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, out)
}
