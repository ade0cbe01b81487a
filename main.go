package main

import (
	"os"
	"os/signal"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/kylycht/converter/controller/converter"
	_ "github.com/kylycht/converter/docs"
	"github.com/kylycht/converter/service"
	"github.com/kylycht/converter/service/exchangerate"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//	@title			Currency Converter
//	@version		1.0
//	@description	Converts amounts between currencies using live exchangerate.host rates with a static fallback table

// @host		localhost:3000
func main() {
	content, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Error().Err(err).Msg("unable to read configuration file")
		os.Exit(1)
	}

	cfg := Config{}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		log.Error().Err(err).Msg("unable to read configuration file")
		os.Exit(1)
	}

	if cfg.BaseCurrency == "" {
		cfg.BaseCurrency = "USD"
	}

	if err := New(cfg); err != nil {
		log.Error().Err(err).Msg("unable to initialize application")
		os.Exit(1)
	}
}

func New(cfg Config) error {
	a := Application{cfg: cfg}
	return a.init()
}

type Application struct {
	cfg         Config         // application configuration
	fiberApp    *fiber.App     // underlying fiber application
	ratesClient service.Rates  // exchange rates provider
	stopC       chan os.Signal // handle interrupt for clean up(close connections, etc)
}

func (a *Application) init() error {
	a.fiberApp = fiber.New()
	a.stopC = make(chan os.Signal)
	signal.Notify(a.stopC, os.Interrupt)

	ratesClient, err := exchangerate.New(a.cfg.RatesBaseURL)
	if err != nil {
		log.Error().Err(err).Msg("unable to create rates client")
		return err
	}

	a.ratesClient = ratesClient
	a.buildRoutes()
	go a.stop()
	log.Debug().Msg("preparing fiber http server")

	if err := a.fiberApp.Listen(a.cfg.HTTPPort); err != nil {
		log.Error().Err(err).Msg("unable to start http server")
	}

	return nil
}

func (a *Application) buildRoutes() {
	c := converter.New(a.ratesClient, a.cfg.BaseCurrency)

	a.fiberApp.Get("/swagger/*", swagger.HandlerDefault)
	a.fiberApp.Get("/convert", c.Convert)
	a.fiberApp.Get("/rates", c.Rates)
	a.fiberApp.Get("/currencies", c.Currencies)
}

func (a *Application) stop() {
	<-a.stopC
	a.fiberApp.Shutdown()
	os.Exit(0)
}
