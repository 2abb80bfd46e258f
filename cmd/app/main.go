package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"foodorder/cmd"
	"foodorder/internal/adapters/out/postgres/customerrepo"
	"foodorder/internal/adapters/out/postgres/itemrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/item"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)
	migrateDatabase(db)
	seedCatalog(db)

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:                      goDotEnvVariable("HTTP_PORT"),
		DBHost:                        goDotEnvVariable("DB_HOST"),
		DBPort:                        goDotEnvVariable("DB_PORT"),
		DBUser:                        goDotEnvVariable("DB_USER"),
		DBPassword:                    goDotEnvVariable("DB_PASSWORD"),
		DBName:                        goDotEnvVariable("DB_NAME"),
		DBSslMode:                     goDotEnvVariable("DB_SSLMODE"),
		NotFoundOnEmptyCustomerOrders: envBool("NOT_FOUND_ON_EMPTY_CUSTOMER_ORDERS", true),
		StaleOrderSchedule:            envDefault("STALE_ORDER_SCHEDULE", "@every 5m"),
		StaleOrderTTL:                 envDuration("STALE_ORDER_TTL", time.Hour),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func envDefault(key, fallback string) string {
	if v := goDotEnvVariable(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := goDotEnvVariable(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		log.Fatalf("Invalid boolean for %s: %v", key, err)
	}
	return parsed
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := goDotEnvVariable(key)
	if v == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("Invalid duration for %s: %v", key, err)
	}
	return parsed
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func migrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&itemrepo.ItemDTO{},
		&customerrepo.CustomerDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

// seedCatalog loads a starter catalog and demo customers into an empty
// database so the API is usable out of the box.
func seedCatalog(db *gorm.DB) {
	ctx := context.Background()

	var itemCount int64
	if err := db.Model(&itemrepo.ItemDTO{}).Count(&itemCount).Error; err != nil {
		log.Fatalf("Failed to inspect catalog: %v", err)
	}

	if itemCount == 0 {
		items := seedItems()
		repo := itemrepo.NewGormItemRepository(db)
		for _, it := range items {
			if err := repo.Add(ctx, it); err != nil {
				log.Fatalf("Failed to seed catalog: %v", err)
			}
		}
	}

	var customerCount int64
	if err := db.Model(&customerrepo.CustomerDTO{}).Count(&customerCount).Error; err != nil {
		log.Fatalf("Failed to inspect customers: %v", err)
	}

	if customerCount == 0 {
		customers := seedCustomers()
		repo := customerrepo.NewGormCustomerRepository(db)
		for _, c := range customers {
			if err := repo.Add(ctx, c); err != nil {
				log.Fatalf("Failed to seed customers: %v", err)
			}
		}
	}
}

func seedItems() []*item.Item {
	entries := []struct {
		name  string
		price string
	}{
		{"Margherita Pizza", "20.00"},
		{"Cheese Burger", "15.50"},
		{"Caesar Salad", "12.00"},
		{"Orange Soda", "5.00"},
	}

	items := make([]*item.Item, 0, len(entries))
	for _, entry := range entries {
		price, err := kernel.NewMoneyFromString(entry.price)
		if err != nil {
			log.Fatalf("Invalid seed price %q: %v", entry.price, err)
		}
		it, err := item.NewItem(kernel.NewUUID(), entry.name, price)
		if err != nil {
			log.Fatalf("Invalid seed item %q: %v", entry.name, err)
		}
		items = append(items, it)
	}
	return items
}

func seedCustomers() []*customer.Customer {
	entries := []struct {
		name    string
		address string
	}{
		{"Alice Johnson", "12 Baker Street"},
		{"Bruno Costa", "400 Ocean Drive"},
	}

	customers := make([]*customer.Customer, 0, len(entries))
	for _, entry := range entries {
		c, err := customer.NewCustomer(kernel.NewUUID(), entry.name, entry.address)
		if err != nil {
			log.Fatalf("Invalid seed customer %q: %v", entry.name, err)
		}
		customers = append(customers, c)
	}
	return customers
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
