package handler

import (
	"net/http"

	"github.com/Ha-r-i/Picolo-Cafe-Website/config"
	"github.com/Ha-r-i/Picolo-Cafe-Website/di"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}
