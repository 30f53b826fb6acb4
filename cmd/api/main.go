package main

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-gateway/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-insights-gateway/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-insights-gateway/internal/api"
	"github.com/vfg2006/ads-insights-gateway/internal/config"
	"github.com/vfg2006/ads-insights-gateway/internal/usecases/authenticating"
	"github.com/vfg2006/ads-insights-gateway/internal/usecases/insighting"
	"github.com/vfg2006/ads-insights-gateway/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Configure(cfg.App.LogLevel); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		_ = log.Configure("info")
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gate, err := authenticating.NewGate(cfg)
	if err != nil {
		logrus.Fatal(err)
	}

	// Um único http.Client compartilhado; o timeout de cada relatório vem do contexto
	metaClient := metaclient.NewClient(cfg, &http.Client{})
	metaIntegrator := meta.New(cfg, metaClient)

	insightService := insighting.NewService(metaIntegrator)

	logrus.WithFields(logrus.Fields{
		"auth_policy":   cfg.Auth.Policy,
		"meta_version":  cfg.Meta.Version,
		"ad_account_id": metaclient.NormalizeAccountID(cfg.Meta.AdAccountID),
	}).Info("Gateway de insights configurado")

	server, err := api.New(cfg, insightService, gate)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
