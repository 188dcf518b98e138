package main

import (
	"fmt"
	"log"
	"os"

	"github.com/valyala/fasthttp"

	"division-engine/internal/config"
	"division-engine/internal/engine"
	"division-engine/internal/handler"
	"division-engine/internal/logger"
	"division-engine/internal/stateregistry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	slogger := logger.Setup(cfg.LogLevel)

	eng := engine.New(stateregistry.Default())
	h := handler.New(eng, slogger)

	slogger.Info("division engine starting", "port", cfg.Port)
	if err := fasthttp.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), h.HandleCalculation); err != nil {
		slogger.Error("server failed", "error", err)
		os.Exit(1)
	}
}
