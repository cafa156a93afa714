package routes

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tire-service/internal/controllers"
	"tire-service/internal/dto"
	"tire-service/internal/entities"
	"tire-service/internal/integrations/backend"
	"tire-service/internal/services"
	"tire-service/pkg/middleware"
	"tire-service/pkg/session"
)

type crudHandlers interface {
	List(echo.Context) error
	Get(echo.Context) error
	Create(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

func mountCRUD(g *echo.Group, path string, ctrl crudHandlers) {
	g.GET(path, ctrl.List)
	g.POST(path, ctrl.Create)
	g.GET(path+"/:id", ctrl.Get)
	g.PUT(path+"/:id", ctrl.Update)
	g.DELETE(path+"/:id", ctrl.Delete)
}

// runDirectoryRouter - справочники менеджера. Изменение услуг сбрасывает кеш прайсов.
func runDirectoryRouter(
	secureGroup *echo.Group,
	client *backend.Client,
	onServicesChanged func(ctx context.Context),
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
) {
	manager := secureGroup.Group("", authMW.RequireRole(session.RoleManager))

	clients := services.NewResourceService[entities.Client](client, backend.PathClients, logger)
	mountCRUD(manager, "/clients", controllers.NewResourceController[entities.Client, dto.CreateClientDTO, dto.UpdateClientDTO](clients, "Клиенты", logger))

	vehicles := services.NewResourceService[entities.Vehicle](client, "", logger)
	mountCRUD(manager, "/clients/:clientId/vehicles", controllers.NewVehicleController[entities.Vehicle, dto.CreateVehicleDTO, dto.UpdateVehicleDTO](vehicles, logger))

	workers := services.NewResourceService[entities.Worker](client, backend.PathWorkers, logger)
	mountCRUD(manager, "/workers", controllers.NewResourceController[entities.Worker, dto.CreateWorkerDTO, dto.UpdateWorkerDTO](workers, "Сотрудники", logger))

	serviceItems := services.NewResourceService[entities.Service](client, backend.PathServices, logger).OnChange(onServicesChanged)
	mountCRUD(manager, "/services", controllers.NewResourceController[entities.Service, dto.CreateServiceDTO, dto.UpdateServiceDTO](serviceItems, "Услуги", logger))

	contracts := services.NewResourceService[entities.Contract](client, backend.PathContracts, logger).OnChange(onServicesChanged)
	mountCRUD(manager, "/contracts", controllers.NewResourceController[entities.Contract, dto.CreateContractDTO, dto.UpdateContractDTO](contracts, "Договоры", logger))

	materials := controllers.NewResourceController[entities.Material, struct{}, struct{}](
		services.NewResourceService[entities.Material](client, backend.PathMaterials, logger), "Материалы", logger)
	manager.GET("/materials", materials.List)
	manager.GET("/materials/:id", materials.Get)

	salary := controllers.NewResourceController[entities.SalaryAdjustment, dto.CreateSalaryAdjustmentDTO, struct{}](
		services.NewResourceService[entities.SalaryAdjustment](client, backend.PathSalary, logger), "Премии и штрафы", logger)
	manager.GET("/salary", salary.List)
	manager.POST("/salary", salary.Create)
}
