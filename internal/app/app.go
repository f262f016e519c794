package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-webhook-service/config"
	"github.com/jeffleon2/draftea-webhook-service/internal/dispatcher"
	"github.com/jeffleon2/draftea-webhook-service/internal/handlers"
	"github.com/jeffleon2/draftea-webhook-service/internal/ledger"
	"github.com/jeffleon2/draftea-webhook-service/internal/metrics"
	"github.com/jeffleon2/draftea-webhook-service/internal/models"
	"github.com/jeffleon2/draftea-webhook-service/internal/poscallback"
	"github.com/jeffleon2/draftea-webhook-service/internal/publisher"
	"github.com/jeffleon2/draftea-webhook-service/internal/repository/posgrest"
	"github.com/jeffleon2/draftea-webhook-service/internal/service"
	"github.com/jeffleon2/draftea-webhook-service/internal/signature"
	"github.com/jeffleon2/draftea-webhook-service/internal/store"
	"github.com/jeffleon2/draftea-webhook-service/internal/subscriber"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const TransportKafka = "kafka"

type App struct {
	config    *config.Config
	Router    *gin.Engine
	Service   *service.WebhookService
	server    *http.Server
	publisher *publisher.KafkaPublisher
	consumer  *subscriber.RetryConsumer
}

func (a *App) Initialize(cfg *config.Config) error {
	a.config = cfg
	configureLogging(cfg.APP)

	verifier := signature.NewVerifier(cfg.Webhook.Secret, cfg.Webhook.ReplayTolerance)
	if !verifier.HasSecret() {
		logrus.Errorf("%s: WEBHOOK_SECRET is empty, every delivery will be rejected", models.ErrConfiguration)
	}

	dispatchLedger, err := a.initLedger()
	if err != nil {
		return err
	}

	transport := strings.ToLower(cfg.POS.Transport)
	if transport == TransportKafka || cfg.POS.RetryEnabled {
		a.publisher = publisher.NewKafkaPublisher(
			cfg.Kafka.BrokerList(),
			[]string{cfg.Kafka.PosTopic, cfg.Kafka.RetryTopic, cfg.Kafka.DLQTopic},
			cfg.Kafka.GetRetryConfig(),
		)
	}

	var posClient dispatcher.PosClient
	if transport == TransportKafka {
		posClient = poscallback.NewKafkaClient(a.publisher, cfg.Kafka.PosTopic)
	} else {
		if cfg.POS.CallbackURL == "" {
			logrus.Errorf("%s: POS_CALLBACK_URL is empty, terminal statuses cannot be delivered", models.ErrConfiguration)
		}
		posClient = poscallback.NewHTTPClient(cfg.POS.CallbackURL, cfg.POS.CallbackTimeout)
	}

	var retryQueue dispatcher.RetryQueue
	if cfg.POS.RetryEnabled {
		retryQueue = publisher.NewRetryQueue(a.publisher, cfg.Kafka.RetryTopic)
	}

	posDispatcher := dispatcher.NewDispatcher(posClient, dispatchLedger, retryQueue, cfg.POS.TerminalStatusList())

	if cfg.POS.RetryEnabled {
		a.consumer = subscriber.NewRetryConsumer(
			cfg.Kafka.BrokerList(),
			cfg.Kafka.RetryTopic,
			cfg.Kafka.ConsumerGroup,
			posDispatcher,
			a.publisher,
			cfg.Kafka.DLQTopic,
			cfg.Kafka.GetRetryConfig(),
		)
	}

	a.Service = service.NewWebhookService(verifier, store.NewStatusStore(), posDispatcher, cfg.POS.CallbackTimeout).
		WithTrackedStatuses(cfg.POS.TerminalStatusList())
	webhookHandler := handlers.NewWebhookHandler(a.Service, cfg.Webhook.SignatureHeader)

	metrics.RegisterMetrics(prometheus.DefaultRegisterer)

	gin.SetMode(gin.ReleaseMode)
	a.Router = gin.New()
	a.Router.Use(gin.Recovery(), requestLogger())
	a.RegisterRoutes(webhookHandler)

	a.server = &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.APP.PORT),
		Handler:      a.Router,
		ReadTimeout:  cfg.APP.ReadTimeout,
		WriteTimeout: cfg.APP.WriteTimeout,
	}

	logrus.WithFields(logrus.Fields{
		"transport":      transport,
		"retry_enabled":  cfg.POS.RetryEnabled,
		"durable_ledger": cfg.DB.Enabled(),
		"terminal":       cfg.POS.TerminalStatusList(),
	}).Info("Webhook service initialized")

	return nil
}

func (a *App) initLedger() (dispatcher.Ledger, error) {
	if !a.config.DB.Enabled() {
		return ledger.NewMemory(), nil
	}

	db, err := a.config.DB.GormConnect()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.PosDispatch{}); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %w", err)
	}
	return ledger.NewPostgres(posgrest.New[models.PosDispatch](db)), nil
}

// Run serves HTTP (and the retry consumer when enabled) until ctx is cancelled,
// then drains in-flight dispatches before closing Kafka resources.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logrus.Infof("Listening on %s", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if a.consumer != nil {
		g.Go(func() error {
			a.consumer.Listen(gctx)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return a.server.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	a.shutdown()
	return err
}

func (a *App) shutdown() {
	a.Service.Wait()
	if a.consumer != nil {
		if err := a.consumer.Close(); err != nil {
			logrus.Errorf("Error closing retry consumer: %s", err.Error())
		}
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			logrus.Errorf("Error closing kafka publisher: %s", err.Error())
		}
	}
	logrus.Info("Webhook service stopped")
}

func configureLogging(cfg config.APP) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("Unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if strings.EqualFold(cfg.LogFormat, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logrus.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Debug("Request handled")
	}
}
