package main

import (
	_ "storerating/docs"
	"storerating/internal/api"

	log "github.com/sirupsen/logrus"
)

// @title Store Rating API
// @version 1.0
// @description Users rate stores, store owners follow their ratings, admins manage accounts and stores.
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	log.Info("App start")
	api.StartServer()
	log.Info("App terminated")
}
