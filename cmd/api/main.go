package main

import (
	"perftracker/cmd"
	"perftracker/internal/util"

	"go.uber.org/zap"
)

func main() {
	log := zap.S()
	cfg, err := util.LoadConfig("")
	if err != nil {
		log.Fatal(err)
	}
	deps, err := cmd.InitializeDependencies(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(deps)

	log.Infow("starting api", "port", cfg.Port, "provider", cfg.Provider)
	err = deps.ApiHandler.StartApi(cfg.Port)
	if err != nil {
		log.Fatal(err)
	}
}
