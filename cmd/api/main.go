package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/yoshihide-okabe/deploy-back/internal/config"
	"github.com/yoshihide-okabe/deploy-back/internal/handler"
	"github.com/yoshihide-okabe/deploy-back/internal/model"
	"github.com/yoshihide-okabe/deploy-back/internal/repository"
	"github.com/yoshihide-okabe/deploy-back/internal/service"
	"github.com/yoshihide-okabe/deploy-back/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

func main() {
	// 1. Load Config (fails fast when DATABASE_URL is missing)
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// 2. Setup Database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database. \n", err)
	}
	// Auto Migrate (for production prefer a dedicated migration tool)
	if err := db.AutoMigrate(&model.Product{}, &model.Transaction{}, &model.TransactionDetail{}); err != nil {
		log.Fatal("Failed to migrate schema: ", err)
	}

	// 3. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	txRepo := repository.NewTransactionRepo(db)

	catalogService := service.NewCatalogService(productRepo)
	purchaseService := service.NewPurchaseService(productRepo, txRepo, db)

	productHandler := handler.NewProductHandler(catalogService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService)

	// 4. Seed demo catalog when empty
	seedProducts(productRepo)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "POS Backend v1.0",
	})

	// Middleware
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(logger.New())  // Request logging
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendOrigin,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
	}))

	// 6. Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hello, World!"})
	})
	app.Get("/product/:code", productHandler.GetProduct)
	app.Post("/purchase", purchaseHandler.SubmitPurchase)

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedProducts loads a demo product master on first boot so the register has
// something to scan. Real catalogs are maintained out-of-band.
func seedProducts(productRepo repository.ProductRepository) {
	count, err := productRepo.Count()
	if err != nil {
		log.Printf("Warning: Failed to count products: %v", err)
		return
	}
	if count > 0 {
		return
	}

	demo := []model.Product{
		{Code: "4901085673034", Name: "おーいお茶", Price: 150},
		{Code: "4902102112116", Name: "綾鷹", Price: 160},
		{Code: "4901330539436", Name: "ポテトチップス うすしお", Price: 180},
		{Code: "4902555112473", Name: "明治ミルクチョコレート", Price: 120},
		{Code: "4901777018888", Name: "キリン 午後の紅茶", Price: 140},
	}
	if err := productRepo.CreateBatch(demo); err != nil {
		log.Printf("Warning: Failed to seed products: %v", err)
		return
	}
	log.Printf("✅ Seeded %d demo products", len(demo))
}
