package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, withGZip, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version/", h.getVersion)

	// company lifecycle
	router.Post("/api/bbp/company/enroll", h.enrollCompany)
	router.Post("/api/bbp/company/activate", h.activateCompany)
	router.Post("/api/bbp/company/deactivate", h.deactivateCompany)
	router.Post("/api/bbp/company/deactivate/ext", h.deactivateCompanyExt)

	// payments and entitlements
	router.Post("/api/bbp/payment/approve", h.approvePayment)
	router.Get("/api/bbp/user/entitlements", h.userEntitlements)
	router.Put("/api/bbp/user/entitlements", h.setUserEntitlements)
	router.Put("/api/bbp/user/role", h.updateUserRole)

	// users
	router.Post("/api/bbp/user", h.addUser)
	router.Put("/api/bbp/user", h.updateUser)
	router.Delete("/api/bbp/user", h.deleteUser)
	router.Get("/api/bbp/user/search", h.searchUser)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
