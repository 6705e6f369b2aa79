package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	controller "fleetdesk/controllers"
	"fleetdesk/middleware"
	"fleetdesk/services"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authService := services.NewAuthService(db, logrus.WithField("component", "auth"))
	authController := controller.NewAuthController(authService, log.New(os.Stdout, "AUTH: ", log.LstdFlags))

	auth := app.Group("/auth", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	auth.Post("/login", middleware.LoginRateLimiter(), authController.Login)
}

func SetupAPIRoutes(app *fiber.App, db *gorm.DB) {
	officeService := services.NewOfficeService(db, logrus.WithField("component", "office"))
	teamService := services.NewTeamService(db, logrus.WithField("component", "team"))
	driverService := services.NewDriverService(db, logrus.WithField("component", "driver"))
	vehicleService := services.NewVehicleService(db, logrus.WithField("component", "vehicle"))
	memberService := services.NewMemberService(db, logrus.WithField("component", "member"))
	eventService := services.NewEventService(db, logrus.WithField("component", "event"))

	officeController := controller.NewOfficeController(officeService, log.New(os.Stdout, "OFFICE: ", log.LstdFlags))
	teamController := controller.NewTeamController(teamService, log.New(os.Stdout, "TEAM: ", log.LstdFlags))
	driverController := controller.NewDriverController(driverService, log.New(os.Stdout, "DRIVER: ", log.LstdFlags))
	vehicleController := controller.NewVehicleController(vehicleService, log.New(os.Stdout, "VEHICLE: ", log.LstdFlags))
	memberController := controller.NewMemberController(memberService, log.New(os.Stdout, "MEMBER: ", log.LstdFlags))
	eventController := controller.NewEventController(eventService, log.New(os.Stdout, "EVENT: ", log.LstdFlags))

	requestLogger := logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	})

	// Office routes
	office := app.Group("/office", requestLogger)
	office.Post("/", officeController.CreateOffice)
	office.Get("/", officeController.GetOffices)
	office.Get("/:id", officeController.GetOffice)
	office.Get("/:id/team", officeController.GetOfficeTeam)
	office.Put("/:id", officeController.UpdateOffice)
	office.Delete("/:id", officeController.DeleteOffice)

	// Team routes
	team := app.Group("/team", requestLogger)
	team.Post("/", teamController.CreateTeam)
	team.Get("/", teamController.GetTeams)
	team.Get("/:id", teamController.GetTeam)
	team.Get("/:id/office", teamController.GetTeamOffice)
	team.Put("/:id", teamController.UpdateTeam)
	team.Delete("/:id", teamController.DeleteTeam)

	// Driver routes
	driver := app.Group("/driver", requestLogger)
	driver.Post("/", driverController.CreateDriver)
	driver.Get("/", driverController.GetDrivers)
	driver.Get("/region/:region", driverController.GetDriversByRegion)
	driver.Get("/:id", driverController.GetDriver)
	driver.Put("/:id", driverController.UpdateDriver)
	driver.Delete("/:id", driverController.DeleteDriver)

	// Vehicle routes
	vehicle := app.Group("/vehicle", requestLogger)
	vehicle.Post("/", vehicleController.CreateVehicle)
	vehicle.Get("/", vehicleController.GetVehicles)
	vehicle.Get("/type/:type", vehicleController.GetVehiclesByType)
	vehicle.Get("/:id", vehicleController.GetVehicle)
	vehicle.Get("/:id/driver", vehicleController.GetVehicleDriver)
	vehicle.Put("/:id", vehicleController.UpdateVehicle)
	vehicle.Delete("/:id", vehicleController.DeleteVehicle)

	// Member routes
	member := app.Group("/member", requestLogger)
	member.Post("/", memberController.CreateMember)
	member.Get("/", memberController.GetMembers)
	member.Get("/:id", memberController.GetMember)
	member.Get("/:id/team", memberController.GetMemberTeam)
	member.Get("/:id/office", memberController.GetMemberOffice)
	member.Get("/:id/vehicle", memberController.GetMemberVehicle)
	member.Get("/:id/driver", memberController.GetMemberDriver)
	member.Put("/:id", memberController.UpdateMember)
	member.Delete("/:id", memberController.DeleteMember)

	// Event routes require a logged-in office
	event := app.Group("/event", middleware.Protected(), requestLogger)
	event.Post("/", eventController.CreateEvent)
	event.Get("/", eventController.GetEvents)
	event.Get("/team/:teamID", eventController.GetEventsByTeam)
	event.Get("/office/:officeID", eventController.GetEventsByOffice)
	event.Get("/filter/date-range", eventController.GetEventsByDateRange)
	event.Get("/filter/problem-type/:type", eventController.GetEventsByProblemType)
	event.Get("/:id", eventController.GetEvent)
	event.Get("/:id/office", eventController.GetEventOffice)
	event.Get("/:id/team", eventController.GetEventTeam)
	event.Put("/:id", eventController.UpdateEvent)
	event.Post("/:id/report", eventController.ReportProblem)
	event.Post("/:id/finish", eventController.FinishEvent)
	event.Delete("/:id", eventController.DeleteEvent)

	log.Println("API routes initialized successfully")
}

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	SetupAuthRoutes(app, db)
	SetupAPIRoutes(app, db)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested resource was not found",
		})
	})
}
