package main

import (
	_ "github.com/Prossima-Tech/emprise-order-tracking-system-sub002/docs"
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Procurement Tracking API
// @version         1.0
// @description     Procurement workflow service (budgetary offers, EMDs, LOAs, purchase orders) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
