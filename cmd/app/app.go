package main

import (
	"os"

	"github.com/DRSN-tech/catalog/internal/app"
	config "github.com/DRSN-tech/catalog/internal/cfg"
	"github.com/DRSN-tech/catalog/pkg/logger"
)

//go:generate swag init --dir ../../ --generalInfo cmd/app/app.go --output ../../docs

//	@title			Catalog API
//	@version		1.0
//	@description	Каталог украшений: категории, товары, отзывы и обратная связь.
//	@host			localhost:8080
//	@BasePath		/api/v1
func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
