package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/QuangTung97/event-checkout/config"
	"github.com/QuangTung97/event-checkout/pkg/grpclib"
	"github.com/QuangTung97/event-checkout/pkg/otellib"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"

	_ "github.com/go-sql-driver/mysql"
	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const serviceName = "event-checkout"

func newGRPCServer(logger *zap.Logger, tp trace.TracerProvider) *grpc.Server {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(grpclib.RecoveryHandlerFunc)),
			grpc_ctxtags.UnaryServerInterceptor(),
			grpc_prometheus.UnaryServerInterceptor,

			otellib.UnaryServerInterceptor(tp),
			otellib.SetTraceInfoInterceptor(logger),

			grpc_zap.UnaryServerInterceptor(logger),
		),
		grpc.ChainStreamInterceptor(
			grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandler(grpclib.RecoveryHandlerFunc)),
			grpc_ctxtags.StreamServerInterceptor(),
			grpc_prometheus.StreamServerInterceptor,
			grpc_zap.StreamServerInterceptor(logger),
		),
	)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	grpc_prometheus.EnableHandlingTimeHistogram()
	grpc_prometheus.Register(grpcServer)

	return grpcServer
}

func startServer() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	defer func() { _ = logger.Sync() }()

	tracerProvider, shutdown := otellib.InitOtel(serviceName, conf.Env, conf.Jaeger)
	defer shutdown()

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	db := conf.MySQL.MustConnect()
	defer func() { _ = db.Close() }()

	svc := newServices(conf, db, tracerProvider)
	defer svc.close()

	grpcServer := newGRPCServer(logger, tracerProvider)

	httpHandler := svc.handler(conf).Routes(
		otellib.HTTPTraceMiddleware(tracerProvider),
		otellib.HTTPMiddleware(logger),
	)

	startHTTPAndGRPCServers(conf, logger, grpcServer, httpHandler, svc.drain)
}

func startHTTPAndGRPCServers(
	conf config.Config, logger *zap.Logger, grpcServer *grpc.Server, handler http.Handler,
	drain func(ctx context.Context) error,
) {
	logger.Info("listening",
		zap.String("grpc", conf.Server.GRPC.ListenString()),
		zap.String("http", conf.Server.HTTP.ListenString()),
	)

	httpServer := &http.Server{
		Addr:              conf.Server.HTTP.ListenString(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
		logger.Info("Shutdown HTTP server successfully")
	}()

	go func() {
		defer wg.Done()

		listener, err := net.Listen("tcp", conf.Server.GRPC.ListenString())
		if err != nil {
			panic(err)
		}

		err = grpcServer.Serve(listener)
		if err != nil {
			panic(err)
		}
		logger.Info("Shutdown gRPC server successfully")
	}()

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	grpcServer.GracefulStop()
	err := httpServer.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	wg.Wait()

	err = drain(ctx)
	if err != nil {
		logger.Warn("confirmations still pending at shutdown", zap.Error(err))
	}
}

func remind(eventID int64) error {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	defer func() { _ = logger.Sync() }()

	tracerProvider, shutdown := otellib.InitOtel(serviceName+"-remind", conf.Env, conf.Jaeger)
	defer shutdown()

	db := conf.MySQL.MustConnect()
	defer func() { _ = db.Close() }()

	svc := newServices(conf, db, tracerProvider)
	defer svc.close()

	ctx := otellib.ToContext(context.Background(), logger)
	counts, err := svc.reminder.Remind(ctx, eventID)
	if err != nil {
		return err
	}

	fmt.Printf("sent: %d, skipped: %d, filtered: %d, failed: %d\n",
		counts.Sent, counts.Skipped, counts.Filtered, counts.Failed)
	return nil
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the server",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}

func remindCommand() *cobra.Command {
	var eventID int64
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "send event reminders to the participants of an event",
		RunE: func(cmd *cobra.Command, args []string) error {
			if eventID <= 0 {
				return fmt.Errorf("--event-id is required")
			}
			return remind(eventID)
		},
	}
	cmd.Flags().Int64Var(&eventID, "event-id", 0, "event id")
	return cmd
}

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
		remindCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
