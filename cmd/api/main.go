package main

import (
	"os"
	"reflect"
	"strings"

	"vetclinic/cmd/internal/auth"
	"vetclinic/cmd/internal/domain/sqlite"
	"vetclinic/cmd/internal/domain/sqlite/repository"
	"vetclinic/cmd/internal/routes"
	"vetclinic/cmd/internal/service"
	"vetclinic/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("failed to load .env file", err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	secureCookies := os.Getenv("APP_ENV") == "production"

	validate := validator.New()
	registerValidators(validate)

	// Init SQLite
	db, err := sqlite.Init()
	if err != nil {
		log.Fatal("failed to initialize database", err)
	}

	tokens := auth.NewTokenIssuer(secret)

	// Getting repositories
	userRepo := repository.NewUserRepository(db)
	petRepo := repository.NewPetRepository(db)
	apptRepo := repository.NewAppointmentRepository(db)
	examRepo := repository.NewExamRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Getting services
	userService := service.NewUserService(userRepo, validate, tokens)
	petService := service.NewPetService(petRepo, userRepo, validate)
	apptService := service.NewAppointmentService(apptRepo, petRepo, userRepo, validate)
	examService := service.NewExamService(examRepo, petRepo, validate)
	paymentService := service.NewPaymentService(paymentRepo, userRepo, validate)

	// Getting routes
	userRoutes := routes.NewUserDefault(userService, secureCookies)
	petRoutes := routes.NewPetDefault(petService)
	apptRoutes := routes.NewAppointmentDefault(apptService)
	examRoutes := routes.NewExamDefault(examService)
	paymentRoutes := routes.NewPaymentDefault(paymentService)

	e := echo.New()
	e.Use(middleware.CORS())

	sessionGate := auth.Middleware(tokens)

	// Users
	e.POST("/users/register", userRoutes.Register)
	e.POST("/users/login", userRoutes.Login)

	users := e.Group("/users", sessionGate)
	users.POST("/logout", userRoutes.Logout)
	users.GET("/me", userRoutes.Me)
	users.GET("/:id", userRoutes.GetUser)
	users.PUT("/:id", userRoutes.UpdateUser)
	users.DELETE("/:id", userRoutes.DeleteUser)

	// Pets
	pets := e.Group("/pets", sessionGate)
	pets.POST("", petRoutes.CreatePet)
	pets.GET("/:id", petRoutes.GetPet)
	pets.PUT("/:id", petRoutes.UpdatePet)
	pets.DELETE("/:id", petRoutes.DeletePet)
	pets.GET("/user/:userId", petRoutes.GetPetsByUser)

	// Appointments
	appts := e.Group("/appointments", sessionGate)
	appts.POST("", apptRoutes.CreateAppointment)
	appts.POST("/schedule", apptRoutes.ScheduleAppointment)
	appts.GET("/:id", apptRoutes.GetAppointment)
	appts.DELETE("/:id", apptRoutes.DeleteAppointment)
	appts.GET("/user/:userId", apptRoutes.GetAppointmentsByUser)

	// Exams
	exams := e.Group("/exams", sessionGate)
	exams.POST("", examRoutes.CreateExam)
	exams.POST("/schedule", examRoutes.ScheduleExam)
	exams.GET("/:id", examRoutes.GetExam)
	exams.DELETE("/:id", examRoutes.DeleteExam)
	exams.GET("/user/:userId", examRoutes.GetExamsByUser)

	// Payments
	payments := e.Group("/payments", sessionGate)
	payments.POST("", paymentRoutes.CreatePayment)
	payments.GET("/:id", paymentRoutes.GetPayment)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	err = e.Start(":" + port)
	if err != nil {
		e.Logger.Fatal(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("calendardate", validators.IsCalendarDate)

	// Error messages name fields by their json tag.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
