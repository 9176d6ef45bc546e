package main

import (
	"github.com/Ha-r-i/Picolo-Cafe-Website/config"
	"github.com/Ha-r-i/Picolo-Cafe-Website/di"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/logger"
)

// @title Picolo Cafe API
// @version 1.0
// @description Backend for the Picolo Cafe website and its admin panel.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
