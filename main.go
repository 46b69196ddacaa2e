// File: classtrack/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"classtrack/config"
	"classtrack/database"
	classRepoPkg "classtrack/database/repository/class"
	exceptionRepoPkg "classtrack/database/repository/exception"
	scheduleRepoPkg "classtrack/database/repository/schedule"
	studentRepoPkg "classtrack/database/repository/student"
	"classtrack/handlers"
	"classtrack/middleware"
	"classtrack/routes"
	classService "classtrack/services/class"
	scheduleService "classtrack/services/schedule"
	studentService "classtrack/services/student"
	"classtrack/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	classRepo := classRepoPkg.NewMongoClassRepo()
	studentRepo := studentRepoPkg.NewMongoStudentRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	exceptionRepo := exceptionRepoPkg.NewMongoExceptionRepo()

	for _, repo := range []interface{ EnsureIndexes() error }{
		classRepo, studentRepo, scheduleRepo, exceptionRepo,
	} {
		if err := repo.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
		}
	}

	// services.
	classSvc, err := classService.NewDefaultClassService(classRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize class service: %v", err)
	}

	studentSvc, err := studentService.NewDefaultStudentService(studentRepo, classRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize student service: %v", err)
	}

	aggregateTTL := time.Duration(config.AppConfig.AggregateCacheTTL) * time.Second
	if aggregateTTL <= 0 {
		aggregateTTL = 5 * time.Minute
	}
	aggregateCache := scheduleService.NewRedisAggregateCache(utils.GetCacheClient(), aggregateTTL)

	scheduleSvc, err := scheduleService.NewDefaultScheduleService(classRepo, scheduleRepo, exceptionRepo, aggregateCache)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize schedule service: %v", err)
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Class:    handlers.NewClassHandler(classSvc),
		Student:  handlers.NewStudentHandler(studentSvc),
		Schedule: handlers.NewScheduleHandler(scheduleSvc),
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), utils.GetAuthCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
