package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/database"
	"github.com/Guyuepp/forum-api/internal/repository"
	"github.com/Guyuepp/forum-api/internal/repository/rdb"
	myRedis "github.com/Guyuepp/forum-api/internal/repository/redis"
	"github.com/Guyuepp/forum-api/internal/rest"
	"github.com/Guyuepp/forum-api/internal/rest/middleware"
	"github.com/Guyuepp/forum-api/internal/usecase/comment"
	"github.com/Guyuepp/forum-api/internal/usecase/like"
	"github.com/Guyuepp/forum-api/internal/usecase/reply"
	"github.com/Guyuepp/forum-api/internal/usecase/thread"
)

const (
	defaultTimeout     = 30
	defaultAddress     = ":5000"
	defaultCacheDB     = 0
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func init() {
	// the .env file is optional, the environment may already be set
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, reading configuration from the environment")
	}
}

func setupLogger() {
	if os.Getenv("LOG_FORMAT") == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// newBloomRepo connects to redis. An empty CACHE_HOST disables the bloom filter.
func newBloomRepo(ctx context.Context) (domain.BloomRepository, func(), error) {
	cacheHost := os.Getenv("CACHE_HOST")
	if cacheHost == "" {
		logrus.Warn("CACHE_HOST is empty, running without the bloom filter")
		return nil, func() {}, nil
	}

	cacheDB, err := strconv.Atoi(os.Getenv("CACHE_DB"))
	if err != nil {
		logrus.Info("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + os.Getenv("CACHE_PORT"),
		Password: os.Getenv("CACHE_PASS"),
		DB:       cacheDB,
	})
	closeFn := func() {
		if err := client.Close(); err != nil {
			logrus.Errorf("got error when closing the cache connection: %v", err)
		}
	}

	if _, err := client.Ping(ctx).Result(); err != nil {
		closeFn()
		return nil, nil, err
	}

	bloomBitSize, err := strconv.ParseUint(os.Getenv("BLOOM_FILTER_SIZE"), 10, 64)
	if err != nil || bloomBitSize == 0 {
		logrus.Info("invalid bloom bit size, using default size")
		bloomBitSize = myRedis.DefaultBitSize
	}
	return myRedis.NewRedisBloomRepo(client, bloomBitSize), closeFn, nil
}

func main() {
	setupLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// prepare database
	db, err := database.Open(ctx, database.Config{
		Driver:        os.Getenv("DATABASE_DRIVER"),
		Host:          os.Getenv("DATABASE_HOST"),
		Port:          os.Getenv("DATABASE_PORT"),
		User:          os.Getenv("DATABASE_USER"),
		Pass:          os.Getenv("DATABASE_PASS"),
		Name:          os.Getenv("DATABASE_NAME"),
		TimeZone:      os.Getenv("DATABASE_TIMEZONE"),
		MaxRetry:      dbMaxRetry,
		RetryInterval: dbRetryIntervalSec * time.Second,
	})
	if err != nil {
		logrus.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close(db)

	// prepare cache
	bloomRepo, closeCache, err := newBloomRepo(ctx)
	if err != nil {
		logrus.Fatalf("failed to open connection to cache: %v", err)
	}
	defer closeCache()

	// Prepare Repository
	threadDBRepo := rdb.NewThreadRepository(db, domain.DefaultIDGenerator)
	threadRepo := repository.NewThreadRepository(threadDBRepo, bloomRepo)
	commentRepo := rdb.NewCommentRepository(db, domain.DefaultIDGenerator)
	replyRepo := rdb.NewReplyRepository(db, domain.DefaultIDGenerator)

	// Build service Layer
	threadSvc := thread.NewService(threadRepo, commentRepo, replyRepo, bloomRepo)
	commentSvc := comment.NewService(threadRepo, commentRepo)
	replySvc := reply.NewService(threadRepo, commentRepo, replyRepo)
	likeSvc := like.NewService(threadRepo, commentRepo)

	// Prepare bloom filter
	if err := threadSvc.InitBloomFilter(ctx); err != nil {
		logrus.Errorf("failed to init bloom filter: %v", err)
		return
	}

	// prepare gin
	if logrus.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	route := gin.Default()
	route.Use(middleware.CORS())
	timeout, err := strconv.Atoi(os.Getenv("CONTEXT_TIMEOUT"))
	if err != nil {
		logrus.Info("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	route.Use(middleware.SetRequestContextWithTimeout(time.Duration(timeout) * time.Second))

	// Register routes
	rest.RegisterRoutes(route, middleware.AuthMiddleware(), rest.Handlers{
		Thread:  rest.NewThreadHandler(threadSvc),
		Comment: rest.NewCommentHandler(commentSvc),
		Reply:   rest.NewReplyHandler(replySvc),
		Like:    rest.NewLikeHandler(likeSvc),
	})

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exiting")
}
