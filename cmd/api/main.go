package main

import (
	"log"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.env is optional outside local dev
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Promotion{},
		&model.Order{},
		&model.OrderItem{},
		&model.OrderStatusHistory{},
		&model.Payment{},
		&model.AuditLog{},
	); err != nil {
		log.Fatal(err)
	}

	//repositories
	txManager := infraRepo.NewTxManagerGorm(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	promotionRepo := infraRepo.NewPromotionGormRepository(gormDB)
	auditLogRepo := infraRepo.NewAuditLogGormRepository(gormDB)

	//usecases
	authUC := usecase.NewAuthUsecase(userRepo, cfg.JWTSecret)
	orderUC := usecase.NewOrderUsecase(txManager, cfg.ShippingFee)
	adminOrderUC := usecase.NewAdminOrderUsecase(txManager)
	adminAuditLogUC := usecase.NewAdminAuditLogUsecase(auditLogRepo)
	paymentUC := usecase.NewPaymentUsecase(txManager)
	promotionUC := usecase.NewPromotionUsecase(promotionRepo)

	//handlers
	authH := handler.NewAuthHandler(authUC)
	orderH := handler.NewOrderHandler(orderUC)
	adminOrderH := handler.NewAdminOrderHandler(adminOrderUC)
	adminAuditLogH := handler.NewAdminAuditLogHandler(adminAuditLogUC)
	paymentH := handler.NewPaymentHandler(paymentUC)
	promotionH := handler.NewPromotionHandler(promotionUC)

	e := server.New(cfg)
	server.RegisterRoutes(e, cfg, authH, orderH, adminOrderH, adminAuditLogH, paymentH, promotionH)

	if err := server.Start(e, cfg.Port); err != nil {
		log.Fatal(err)
	}
}
