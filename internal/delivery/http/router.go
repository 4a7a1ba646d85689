package http

import (
	"net/http"

	"safeclinic/internal/delivery/http/handler"
	"safeclinic/internal/delivery/http/middleware"
	"safeclinic/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	patientHandler      *handler.PatientHandler
	doctorHandler       *handler.DoctorHandler
	receptionistHandler *handler.ReceptionistHandler
	specialityHandler   *handler.SpecialityHandler
	notificationHandler *handler.NotificationHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	roleMiddleware      *middleware.RoleMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	requestLogger       *middleware.RequestLoggerMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	receptionistHandler *handler.ReceptionistHandler,
	specialityHandler *handler.SpecialityHandler,
	notificationHandler *handler.NotificationHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	roleMiddleware *middleware.RoleMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	requestLogger *middleware.RequestLoggerMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		patientHandler:      patientHandler,
		doctorHandler:       doctorHandler,
		receptionistHandler: receptionistHandler,
		specialityHandler:   specialityHandler,
		notificationHandler: notificationHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		roleMiddleware:      roleMiddleware,
		corsMiddleware:      corsMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
		requestLogger:       requestLogger,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Public registration: patient self-service and one-time receptionist
	// bootstrap.
	api.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/receptionists/register", r.receptionistHandler.RegisterFirst).Methods(http.MethodPost)

	// Everything below requires an access token.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	receptionistOnly := r.roleMiddleware.RequireRole(entity.RoleReceptionist)
	staffOnly := r.roleMiddleware.RequireRole(entity.RoleDoctor, entity.RoleReceptionist)

	// Patients: listing is staff-only; single-profile access is refined by
	// ownership inside the handler.
	protected.Handle("/patients", staffOnly(http.HandlerFunc(r.patientHandler.List))).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	protected.Handle("/patients/{id}", receptionistOnly(http.HandlerFunc(r.patientHandler.Deactivate))).Methods(http.MethodDelete)

	// Doctors
	protected.Handle("/doctors", receptionistOnly(http.HandlerFunc(r.doctorHandler.Create))).Methods(http.MethodPost)
	protected.HandleFunc("/doctors", r.doctorHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/speciality/{speciality}", r.doctorHandler.ListBySpeciality).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.Update).Methods(http.MethodPut)
	protected.Handle("/doctors/{id}", receptionistOnly(http.HandlerFunc(r.doctorHandler.Deactivate))).Methods(http.MethodDelete)

	// Receptionists
	protected.Handle("/receptionists", receptionistOnly(http.HandlerFunc(r.receptionistHandler.Create))).Methods(http.MethodPost)
	protected.Handle("/receptionists", receptionistOnly(http.HandlerFunc(r.receptionistHandler.List))).Methods(http.MethodGet)
	protected.Handle("/receptionists/{id}", receptionistOnly(http.HandlerFunc(r.receptionistHandler.Get))).Methods(http.MethodGet)
	protected.Handle("/receptionists/{id}", receptionistOnly(http.HandlerFunc(r.receptionistHandler.Deactivate))).Methods(http.MethodDelete)

	// Specialities: readable by any authenticated user, mutations are
	// receptionist-only.
	protected.HandleFunc("/specialities", r.specialityHandler.List).Methods(http.MethodGet)
	protected.Handle("/specialities", receptionistOnly(http.HandlerFunc(r.specialityHandler.Create))).Methods(http.MethodPost)
	protected.Handle("/specialities/{id}", receptionistOnly(http.HandlerFunc(r.specialityHandler.Update))).Methods(http.MethodPut)
	protected.Handle("/specialities/{id}", receptionistOnly(http.HandlerFunc(r.specialityHandler.Delete))).Methods(http.MethodDelete)

	// Notifications (own records only)
	protected.HandleFunc("/notifications", r.notificationHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/read-all", r.notificationHandler.MarkAllAsRead).Methods(http.MethodPut)
	protected.HandleFunc("/notifications/{id}/read", r.notificationHandler.MarkAsRead).Methods(http.MethodPut)

	// Audit trail (receptionist-only)
	protected.Handle("/audit-logs", receptionistOnly(http.HandlerFunc(r.auditLogHandler.List))).Methods(http.MethodGet)
	protected.Handle("/audit-logs/{id}", receptionistOnly(http.HandlerFunc(r.auditLogHandler.Get))).Methods(http.MethodGet)

	// Appointments and schedules are routed but not built yet.
	protected.HandleFunc("/appointments", handler.NotImplemented)
	protected.HandleFunc("/appointments/{id}", handler.NotImplemented)
	protected.HandleFunc("/schedules", handler.NotImplemented)
	protected.HandleFunc("/schedules/{id}", handler.NotImplemented)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.rateLimitMiddleware.Handle)
	r.router.Use(r.requestLogger.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
