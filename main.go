package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"beforeafter/auth"
	"beforeafter/config"
	"beforeafter/core"
	"beforeafter/database"
	"beforeafter/handlers"
	"beforeafter/service"
	"beforeafter/tools"
	"beforeafter/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load environment variables and parse CLI flags
	config.ParseFlags()

	logFile, err := setupLogging(config.Settings.LogFilePath)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Admin backend starting up...")

	// Initialize database
	if err := database.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize services
	service.InitServices(database.DB)

	// Admin authentication. A plain-text ADMIN_PASSWORD is hashed once at
	// startup; an empty password leaves the admin locked out until configured.
	passwordHash := config.Settings.AdminPasswordHash
	if passwordHash == "" && config.Settings.AdminPassword != "" {
		passwordHash, err = auth.HashPassword(config.Settings.AdminPassword)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
	}
	if passwordHash == "" {
		log.Println("WARNING: No admin password configured; set ADMIN_PASSWORD or ADMIN_PASSWORD_HASH to enable login")
	}
	authMgr := auth.NewManager(passwordHash, time.Duration(config.Settings.SessionTTLHours)*time.Hour)
	nonceSvc := auth.NewNonceService(config.Settings.NonceSecret, time.Duration(config.Settings.NonceTickHours)*time.Hour)

	// In-memory render cache and public route table
	renderCache := core.NewRenderCache(config.Settings.CacheMaxEntries)
	rules := core.NewRewriteRules()
	rebuildRewriteRules(rules)

	// Debug tool registry
	registry := tools.NewRegistry(tools.Deps{
		Settings: service.GlobalServices.Settings,
		Gallery:  service.GlobalServices.Gallery,
		Cache:    renderCache,
		Rewrites: rules,
		Errors:   core.ErrorLoggerInstance,
	})

	handlers.Init(authMgr, nonceSvc, registry, renderCache, rules)

	// Start goroutine monitor
	go monitorGoroutines()

	// Set Gin mode
	if config.Settings.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Direct Gin logs to the configured log file
	gin.DefaultWriter = log.Writer()
	gin.DefaultErrorWriter = log.Writer()
	gin.DisableConsoleColor()

	// Create router
	r := gin.Default()
	r.SetHTMLTemplate(web.Templates())

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Root path redirect
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/admin/settings/general")
	})

	// Admin pages
	admin := r.Group("/admin")
	{
		admin.GET("/login", handlers.ShowLoginPage)
		admin.POST("/login", handlers.Login)
		admin.POST("/logout", handlers.Logout)
		admin.GET("/nonce", handlers.GetNonce)

		admin.GET("/settings/general", handlers.ShowGeneralPage)
		admin.POST("/settings/general", handlers.SaveGeneralPage)
		admin.GET("/settings/defaults", handlers.ShowDefaultsPage)
		admin.POST("/settings/defaults", handlers.SaveDefaultsPage)

		admin.GET("/tools", handlers.ShowToolsPage)
		admin.POST("/ajax", handlers.DispatchTool)
	}

	// Health and metrics routes
	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/metrics", handlers.GetMetrics)
	}

	// Find an available port
	port := findAvailablePort(config.Settings.Port)
	if port != config.Settings.Port {
		log.Printf("Default port %d is busy. Switched to %d", config.Settings.Port, port)
	}

	addr := fmt.Sprintf("127.0.0.1:%d", port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Admin backend listening on http://127.0.0.1:%d", port)
		log.Printf("Open browser at: http://127.0.0.1:%d/admin/login", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Optionally open browser automatically
	if config.Settings.OpenBrowser {
		go func() {
			time.Sleep(1500 * time.Millisecond)
			openBrowser(fmt.Sprintf("http://127.0.0.1:%d/admin/login", port))
		}()
	}

	// Wait for OS interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Received interrupt signal")

	log.Println("Admin backend shutting down...")

	// Close database connection
	if err := database.CloseDB(); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	// Gracefully shut down HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// rebuildRewriteRules builds the public route table from the stored gallery
// base and the published gallery slugs.
func rebuildRewriteRules(rules *core.RewriteRules) {
	slugs, err := service.GlobalServices.Gallery.PublishedSlugs()
	if err != nil {
		log.Printf("Warning: Failed to load published slugs: %v", err)
		slugs = nil
	}
	rules.Rebuild(service.GlobalServices.Settings.Defaults().GalleryBase, slugs)
}

// findAvailablePort searches for an available port
func findAvailablePort(startPort int) int {
	for port := startPort; port < startPort+100; port++ {
		addr := fmt.Sprintf("127.0.0.1:%d", port)
		listener, err := net.Listen("tcp", addr)
		if err == nil {
			listener.Close()
			return port
		}
	}
	log.Fatal("No available ports found")
	return startPort
}

// openBrowser opens the default browser
func openBrowser(url string) {
	var err error
	switch {
	case fileExists("/usr/bin/xdg-open"):
		err = runCommand("xdg-open", url)
	case fileExists("/usr/bin/open"):
		err = runCommand("open", url)
	default:
		// Windows
		err = runCommand("cmd", "/c", "start", url)
	}
	if err != nil {
		log.Printf("Failed to open browser: %v", err)
		log.Printf("Please manually open: %s", url)
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func runCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}

	// Wait asynchronously to avoid zombie processes
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("Browser process exited with error: %v", err)
		}
	}()

	return nil
}

// monitorGoroutines tracks goroutine count to prevent leaks
func monitorGoroutines() {
	ticker := time.NewTicker(time.Duration(config.Settings.GoroutineMonitorIntervalSeconds) * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		count := runtime.NumGoroutine()
		if count > config.Settings.GoroutineWarnThreshold {
			log.Printf("WARNING: High goroutine count detected: %d", count)
		} else if config.Settings.LogLevel == "DEBUG" {
			log.Printf("Current goroutine count: %d", count)
		}
	}
}
