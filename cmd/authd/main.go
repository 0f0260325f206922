package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Crystara-Markets/supra-multiwallet/adapters/events"
	"github.com/Crystara-Markets/supra-multiwallet/adapters/nonce"
	"github.com/Crystara-Markets/supra-multiwallet/adapters/store"
	"github.com/Crystara-Markets/supra-multiwallet/adapters/tokenizer"
	"github.com/Crystara-Markets/supra-multiwallet/adapters/verifier"
	"github.com/Crystara-Markets/supra-multiwallet/config"
	"github.com/Crystara-Markets/supra-multiwallet/service"
	transport "github.com/Crystara-Markets/supra-multiwallet/transport/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := watermill.NewStdLogger(false, false)

	// Redis backs both the event stream and the replay guard when
	// configured; without it the service runs single-instance with an
	// in-process bus.
	var publisher message.Publisher
	var redisClient *redis.Client

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient = redis.NewClient(opts)

		publisher, err = redisstream.NewPublisher(
			redisstream.PublisherConfig{Client: redisClient},
			logger,
		)
		if err != nil {
			log.Fatalf("Failed to create Redis publisher: %v", err)
		}
	} else {
		publisher = gochannel.NewGoChannel(gochannel.Config{}, logger)
	}

	noncer := nonce.NewCodec(cfg.Secret, nonce.WithTTL(cfg.NonceTTL), nonce.WithMaxSkew(cfg.NonceMaxSkew))
	sigVerifier := verifier.NewEd25519Verifier()
	jwtTokenizer := tokenizer.NewJWTTokenizer(cfg.Secret)
	eventPub := events.NewWatermillPublisher(publisher)

	var opts []service.Option
	if cfg.ReplayGuard {
		if redisClient != nil {
			opts = append(opts, service.WithReplayGuard(store.NewRedisStore(redisClient, cfg.NonceTTL)))
		} else {
			opts = append(opts, service.WithReplayGuard(store.NewMemoryStore(cfg.NonceTTL)))
		}
	}

	authService := service.NewAuthService(noncer, sigVerifier, jwtTokenizer, eventPub, opts...)

	router := transport.SetupRouter(authService, cfg.Production)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("auth service listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutCtx)
}
