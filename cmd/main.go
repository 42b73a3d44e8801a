package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/gommon/log"

	"veoboard/pkg/draft"
	"veoboard/pkg/server"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	dir := os.Getenv("DRAFT_DIR")
	if dir == "" {
		dir = "drafts"
	}

	delay := draft.DefaultDelay
	if ms := os.Getenv("DRAFT_DEBOUNCE_MS"); ms != "" {
		n, err := strconv.Atoi(ms)
		if err != nil || n <= 0 {
			log.Warnf("Ignoring invalid DRAFT_DEBOUNCE_MS %q", ms)
		} else {
			delay = time.Duration(n) * time.Millisecond
		}
	}

	drafts, err := draft.New(dir, delay)
	if err != nil {
		log.Fatalf("Failed to open draft store at %s: %v", dir, err)
	}
	log.Infof("Draft store at %s (debounce %s)", dir, delay)

	srv := server.NewServer(ctx, drafts)
	srv.Echo.Logger.SetLevel(log.INFO)

	addr := ":8080"
	if envAddr := os.Getenv("PORT"); envAddr != "" {
		addr = ":" + envAddr
	}

	finishedShutDown := make(chan struct{})
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(ctx); err != nil {
			log.Fatal(err)
		}
		done()
		close(finishedShutDown)
	}()

	if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error(err)
	}
	<-finishedShutDown
}
