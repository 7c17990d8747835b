package main

import (
	"log"

	"room_manager/config"
	"room_manager/database"
	"room_manager/handler"
	"room_manager/middleware"
	"room_manager/repository"
	"room_manager/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	db, err := database.Connect()
	if err != nil {
		log.Fatal(err)
	}

	h := handler.New(repository.New(db))
	router.SetupRoutes(app, h)

	port := config.Config("PORT")
	if port == "" {
		port = "8002"
	}
	log.Fatal(app.Listen(":" + port))
}
