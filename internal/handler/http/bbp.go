package http

import (
	"net/http"

	"github.com/MKhiriev/bbp-gateway/internal/app"
	"github.com/MKhiriev/bbp-gateway/internal/gateway"
	"github.com/MKhiriev/bbp-gateway/internal/logger"
	"github.com/MKhiriev/bbp-gateway/internal/utils"
	"github.com/MKhiriev/bbp-gateway/models"
)

func (h *Handler) enrollCompany(w http.ResponseWriter, r *http.Request) {
	req, ok := bindBody[models.EnrollRequest](h, w, r)
	if !ok {
		return
	}
	h.writeOutcome(w, r, h.gateway.EnrollCompany(r.Context(), req))
}

func (h *Handler) addUser(w http.ResponseWriter, r *http.Request) {
	req, ok := bindBody[models.AddUserRequest](h, w, r)
	if !ok {
		return
	}
	h.writeOutcome(w, r, h.gateway.AddUser(r.Context(), req))
}

func (h *Handler) approvePayment(w http.ResponseWriter, r *http.Request) {
	h.writeOutcome(w, r, h.gateway.ApprovePayment(r.Context(),
		queryParam(r, "userId"),
		queryParam(r, "paymentId"),
	))
}

func (h *Handler) userEntitlements(w http.ResponseWriter, r *http.Request) {
	h.writeOutcome(w, r, h.gateway.UserEntitlements(r.Context(),
		queryParam(r, "companyId"),
		queryParam(r, "userId"),
	))
}

func (h *Handler) setUserEntitlements(w http.ResponseWriter, r *http.Request) {
	req, ok := bindBody[models.SetUserEntitlementRequest](h, w, r)
	if !ok {
		return
	}
	h.writeOutcome(w, r, h.gateway.SetUserEntitlements(r.Context(), req))
}

func (h *Handler) activateCompany(w http.ResponseWriter, r *http.Request) {
	req, ok := bindBody[models.EnrollRequest](h, w, r)
	if !ok {
		return
	}
	h.writeOutcome(w, r, h.gateway.ActivateCompany(r.Context(), req))
}

func (h *Handler) deactivateCompany(w http.ResponseWriter, r *http.Request) {
	h.writeOutcome(w, r, h.gateway.DeactivateCompany(r.Context(), queryParam(r, "consumerId")))
}

func (h *Handler) deactivateCompanyExt(w http.ResponseWriter, r *http.Request) {
	h.writeOutcome(w, r, h.gateway.DeactivateCompanyExt(r.Context(), queryParam(r, "consumerId")))
}

func (h *Handler) updateUserRole(w http.ResponseWriter, r *http.Request) {
	h.writeOutcome(w, r, h.gateway.UpdateUserRole(r.Context(),
		queryParam(r, "companyId"),
		queryParam(r, "userId"),
	))
}

func (h *Handler) searchUser(w http.ResponseWriter, r *http.Request) {
	h.writeOutcome(w, r, h.gateway.SearchUser(r.Context(), queryParam(r, "userId")))
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	req, ok := bindBody[models.UpdateUserRequest](h, w, r)
	if !ok {
		return
	}
	h.writeOutcome(w, r, h.gateway.UpdateUser(r.Context(), req))
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	h.writeOutcome(w, r, h.gateway.DeleteUser(r.Context(),
		queryParam(r, "userId"),
		queryParam(r, "companyId"),
	))
}

// writeOutcome renders a gateway outcome. Only successes carry a body;
// server errors get a fixed message so backend details never leak.
func (h *Handler) writeOutcome(w http.ResponseWriter, r *http.Request, out gateway.Outcome) {
	status := out.Status()

	switch out.Kind {
	case gateway.Success:
		if _, err := utils.WriteJSON(w, out.Payload, status); err != nil {
			logger.FromContextOr(r.Context(), h.logger).Err(err).Msg("error writing response")
		}
	case gateway.ServerError:
		msg := app.MsgInternalServerError
		if out.Timeout() {
			msg = app.MsgBackendTimeout
		}
		http.Error(w, msg, status)
	default:
		w.WriteHeader(status)
	}
}
