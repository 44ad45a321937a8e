package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/foratask/foratask-backend-go/internal/handler/http/middleware"
	"github.com/foratask/foratask-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	Payroll      PayrollHandler
	Organization OrganizationHandler
	Notification NotificationHandler
}

func NewRouter(jwtService jwt.Service, logger *slog.Logger, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// The stream authenticates with its own short-lived token, so it
		// sits outside the access-token group.
		r.Get("/notifications/stream", h.Notification.Stream)

		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Get("/today", h.Attendance.TodayStatus)
				r.Get("/history", h.Attendance.History)
				r.Get("/history/{userId}", h.Attendance.History)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/daily", h.Attendance.Daily)
					r.Get("/analytics/{userId}", h.Attendance.Analytics)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/requests", h.Leave.Apply)
				r.Get("/requests", h.Leave.ListRequests)
				r.Delete("/requests/{requestId}", h.Leave.Cancel)
				r.Get("/balance", h.Leave.Balance)
				r.Get("/balance/{userId}", h.Leave.Balance)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSupervisor)
					r.Patch("/requests/{requestId}", h.Leave.Process)
				})
			})

			r.Route("/salary", func(r chi.Router) {
				r.Get("/config/{userId}", h.Payroll.GetConfig)
				r.Get("/records", h.Payroll.Records)
				r.Get("/records/{userId}", h.Payroll.Records)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Put("/config/{userId}", h.Payroll.UpsertConfig)
					r.Post("/generate/{userId}", h.Payroll.Generate)
					r.Patch("/records/{recordId}/pay", h.Payroll.MarkPaid)
					r.Get("/summary", h.Payroll.Summary)
				})
			})

			r.Route("/organization", func(r chi.Router) {
				r.Get("/settings", h.Organization.GetSettings)
				r.Get("/holidays/upcoming", h.Organization.UpcomingHolidays)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Patch("/settings", h.Organization.UpdateSettings)
					r.Post("/locations", h.Organization.AddLocation)
					r.Put("/locations/{locationId}", h.Organization.UpdateLocation)
					r.Delete("/locations/{locationId}", h.Organization.DeleteLocation)
					r.Post("/holidays", h.Organization.AddHoliday)
					r.Delete("/holidays/{holidayId}", h.Organization.DeleteHoliday)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Get("/unread-count", h.Notification.UnreadCount)
				r.Get("/sse-token", h.Notification.GetSSEToken)
				r.Patch("/{notificationId}/read", h.Notification.MarkAsRead)
				r.Patch("/read-all", h.Notification.MarkAllAsRead)
			})
		})
	})

	return r
}
