package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/canteen-scheduler/internal/audit"
	"github.com/BruksfildServices01/canteen-scheduler/internal/auth"
	"github.com/BruksfildServices01/canteen-scheduler/internal/config"
	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/canteen-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/canteen-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/canteen-scheduler/internal/middleware"
	ucCanteen "github.com/BruksfildServices01/canteen-scheduler/internal/usecase/canteen"
	ucReservation "github.com/BruksfildServices01/canteen-scheduler/internal/usecase/reservation"
	ucStudent "github.com/BruksfildServices01/canteen-scheduler/internal/usecase/student"
)

// Deps are the process-wide singletons built in main.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Locker reservation.Locker
	Audit  *audit.Dispatcher
	Log    *zerolog.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(d.Log),
		middleware.CORSMiddleware(),
		middleware.SubjectMiddleware(d.Config),
	)

	// ======================================================
	// INFRA
	// ======================================================
	canteenRepo := infraRepo.NewCanteenGormRepository(d.DB)
	reservationRepo := infraRepo.NewReservationGormRepository(d.DB)
	studentRepo := infraRepo.NewStudentGormRepository(d.DB)

	authService := auth.NewService(studentRepo, d.Log)

	// ======================================================
	// USE CASES
	// ======================================================
	canteenHandler := handlers.NewCanteenHandler(
		ucCanteen.NewCreateCanteen(canteenRepo, d.Audit),
		ucCanteen.NewGetCanteen(canteenRepo),
		ucCanteen.NewListCanteens(canteenRepo),
		ucCanteen.NewUpdateCanteen(canteenRepo, d.Audit),
		ucCanteen.NewDeleteCanteen(canteenRepo, d.Audit, d.Log),
		ucCanteen.NewCanteenStatus(canteenRepo, d.Config.StatusMaxRangeDays),
	)

	reservationHandler := handlers.NewReservationHandler(
		ucReservation.NewAdmitReservation(reservationRepo, d.Locker, d.Audit, d.Log),
		ucReservation.NewCancelReservation(reservationRepo, d.Audit),
		ucReservation.NewGetReservation(reservationRepo),
	)

	studentHandler := handlers.NewStudentHandler(
		ucStudent.NewCreateStudent(studentRepo, d.Audit, d.Config.VerifyEmailDomain),
		ucStudent.NewGetStudent(studentRepo),
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	requireAdmin := middleware.RequireAdmin(authService)

	// ======================================================
	// STUDENTS
	// ======================================================
	r.POST("/students", studentHandler.Create)
	r.GET("/students/:id", studentHandler.Get)

	// ======================================================
	// CANTEENS
	// ======================================================
	canteens := r.Group("/canteens")
	{
		canteens.GET("", canteenHandler.List)
		canteens.GET("/status", canteenHandler.StatusAll)
		canteens.GET("/:id", canteenHandler.Get)
		canteens.GET("/:id/status", canteenHandler.Status)

		canteens.POST("", requireAdmin, canteenHandler.Create)
		canteens.PUT("/:id", requireAdmin, canteenHandler.Update)
		canteens.DELETE("/:id", requireAdmin, canteenHandler.Delete)
	}

	// ======================================================
	// RESERVATIONS
	// ======================================================
	reservations := r.Group("/reservations")
	{
		reservations.POST("", reservationHandler.Create)
		reservations.GET("/:id", reservationHandler.Get)
		reservations.DELETE("/:id", middleware.RequireSubject(), reservationHandler.Cancel)
	}

	r.GET("/audit-logs", requireAdmin, auditLogsHandler.List)
}
