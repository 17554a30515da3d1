package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"soundbridge/internal/activity"
	"soundbridge/internal/artwork"
	"soundbridge/internal/config"
	"soundbridge/internal/discord"
	"soundbridge/internal/domain"
	"soundbridge/internal/soundcloud"
	transport "soundbridge/internal/transport/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// AppOptions is the full dependency graph, exported so tests can validate it
var AppOptions = fx.Options(
	fx.Provide(
		newLogger,
		config.Load,
		newMetadataService,
		newAssetStore,
		newImageSource,
		newIPC,
		newPresenceConnection,
		newRotator,
		newResolver,
		newUpdater,
		newRouter,
	),
	fx.Invoke(registerHooks),
)

func main() {
	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		AppOptions,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(err)
	}

	<-ctx.Done()

	if err := app.Stop(context.Background()); err != nil {
		panic(err)
	}
}

// newLogger creates the zap logger shared by every component
func newLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

func newMetadataService(logger *zap.Logger, cfg *config.Config) domain.MetadataService {
	return soundcloud.NewClient(logger, cfg.SoundCloud.ClientID)
}

func newAssetStore(logger *zap.Logger, cfg *config.Config) domain.AssetStore {
	return discord.NewAssetClient(logger, cfg.Discord.ClientID, cfg.Discord.APIKey)
}

func newImageSource(logger *zap.Logger) domain.ImageSource {
	return artwork.NewSource(logger)
}

func newIPC(logger *zap.Logger, cfg *config.Config) *discord.IPC {
	return discord.NewIPC(logger, cfg.Discord.ClientID)
}

func newPresenceConnection(ipc *discord.IPC) domain.PresenceConnection {
	return ipc
}

func newRotator(logger *zap.Logger, cfg *config.Config) *activity.Rotator {
	return activity.NewRotator(logger, cfg.ScrollDirection)
}

func newResolver(
	logger *zap.Logger,
	cfg *config.Config,
	assets domain.AssetStore,
	images domain.ImageSource,
	metadata domain.MetadataService,
) *activity.Resolver {
	return activity.NewResolver(logger, assets, images, cfg.UploadArtwork, metadata.SanitizeArtworkURL)
}

func newUpdater(
	logger *zap.Logger,
	cfg *config.Config,
	metadata domain.MetadataService,
	resolver *activity.Resolver,
	rotator *activity.Rotator,
	presence domain.PresenceConnection,
) *activity.Updater {
	opts := activity.Options{
		CustomMessages:   cfg.CustomMessages,
		ListenButtonText: cfg.ListenButtonText,
		StaticBigURL:     cfg.StaticBigURL(),
		StaticSmallURL:   cfg.StaticSmallURL(),
	}
	return activity.NewUpdater(logger, opts, metadata, resolver, rotator, presence)
}

func newRouter(logger *zap.Logger, updater *activity.Updater, presence domain.PresenceConnection) *gin.Engine {
	return transport.SetupRouter(logger, updater, presence)
}

// registerHooks connects the presence transport and runs the ingest server
// over the application lifecycle
func registerHooks(
	lc fx.Lifecycle,
	logger *zap.Logger,
	cfg *config.Config,
	ipc *discord.IPC,
	router *gin.Engine,
) {
	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	daemonCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Discord may not be running yet; updates fail NotConnected
			// until the background loop manages to connect
			if err := ipc.Connect(ctx); err != nil {
				logger.Warn("discord not reachable yet, will keep trying", zap.Error(err))
			}
			go reconnectLoop(daemonCtx, logger, ipc)

			go func() {
				logger.Info("ingest server listening", zap.String("addr", cfg.Server.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("ingest server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			if err := server.Shutdown(ctx); err != nil {
				logger.Warn("ingest server shutdown failed", zap.Error(err))
			}
			return ipc.Close()
		},
	})
}

// reconnectLoop re-establishes the presence connection whenever it is down
func reconnectLoop(ctx context.Context, logger *zap.Logger, ipc *discord.IPC) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ipc.Status() {
				continue
			}
			if err := ipc.Connect(ctx); err != nil {
				logger.Debug("discord still not reachable", zap.Error(err))
			}
		}
	}
}
