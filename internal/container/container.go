package container

import (
	app "defect-scanner/internal/application"
	"defect-scanner/internal/domain/port"
)

type Container struct {
	UserService       *app.UserService
	InspectionService *app.InspectionService
}

func New(userRepo port.UserRepository, detector port.DefectDetector, describer port.DefectDescriber, reporter port.ReportWriter) *Container {
	userService := app.NewUserService(userRepo)
	inspectionService := app.NewInspectionService(detector, describer, reporter)

	return &Container{
		UserService:       userService,
		InspectionService: inspectionService,
	}
}
