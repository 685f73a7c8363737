package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"outreach_backend/internal/compose"
	"outreach_backend/internal/config"
	"outreach_backend/internal/discovery"
	"outreach_backend/internal/dispatch"
	"outreach_backend/internal/events"
	"outreach_backend/internal/http/router"
	"outreach_backend/internal/outreach"
	"outreach_backend/internal/tracking"
	trackingdomain "outreach_backend/internal/tracking/domain"
	platformevents "outreach_backend/platform/events"
	"outreach_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)
	if cfg.IsDevelopment() {
		log.Info("running in development mode - messages will be logged but not sent")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Tracking store is the only stateful dependency; failing to open it is fatal.
	trackingModule, err := tracking.NewModule(cfg.DataDir, eventBus, log)
	if err != nil {
		log.Error("failed to initialize tracking store", "error", err)
		panic("failed to initialize tracking store: " + err.Error())
	}
	log.Info("tracking store ready", "data_dir", cfg.DataDir)

	finder := discovery.NewService(log, discoveryProviders(cfg, log)...)

	var generator compose.Generator
	if g, err := compose.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel); err != nil {
		log.Error("failed to initialize message generator, using template fallback", "error", err)
	} else if g != nil {
		generator = g
	}
	composer := compose.NewComposer(generator, cfg.IsDevelopment(), log)

	dispatcher := dispatch.NewDispatcher(cfg.IsDevelopment(), log, dispatchChannels(cfg, log)...)

	outreachModule := outreach.NewModule(finder, composer, dispatcher, trackingModule.Service(), cfg.MaxContractors, log)

	// Surface recorded responses in the logs without coupling the store to it.
	eventBus.Subscribe(trackingdomain.EventResponseRecorded, platformevents.HandlerFunc(
		func(ctx context.Context, event platformevents.Event) error {
			if e, ok := event.(trackingdomain.ResponseRecordedEvent); ok {
				log.Info("outreach response recorded",
					"outreach_id", e.OutreachID, "project_id", e.ProjectID,
					"channel", e.Channel, "type", string(e.Type), "status", string(e.NewStatus))
			}
			return nil
		}))

	engine := router.New(cfg, log, trackingModule, outreachModule)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}

// discoveryProviders assembles the provider list in priority order. A
// provider without configuration is simply left out.
func discoveryProviders(cfg *config.Config, log *logger.Logger) []discovery.Provider {
	var providers []discovery.Provider

	if places := discovery.NewGooglePlacesProvider(cfg.GooglePlacesAPIKey, cfg.ProviderTimeout, log); places != nil {
		providers = append(providers, places)
	}
	providers = append(providers, discovery.NewDirectoryScrapeProvider(log))

	return providers
}

// dispatchChannels assembles the channel list in attempt order. In
// development every channel is registered so the simulated dispatch covers
// the full sequence; in production a channel without credentials is left out.
func dispatchChannels(cfg *config.Config, log *logger.Logger) []dispatch.Channel {
	var channels []dispatch.Channel

	if cfg.EmailConfigured() || cfg.IsDevelopment() {
		channels = append(channels, dispatch.NewEmailChannel(
			cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword,
			cfg.FromEmail, cfg.EmailFromName))
	} else {
		log.Warn("email configuration incomplete - email channel disabled")
	}

	if cfg.SMSConfigured() || cfg.IsDevelopment() {
		twilio := dispatch.NewTwilioClient(
			cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber,
			cfg.OutboundPerSec, log)
		channels = append(channels, dispatch.NewSMSChannel(twilio))

		if cfg.VoiceEnabled || cfg.IsDevelopment() {
			channels = append(channels, dispatch.NewVoiceChannel(twilio))
		}
	} else {
		log.Warn("twilio configuration incomplete - sms and voice channels disabled")
	}

	return channels
}
