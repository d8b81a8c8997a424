package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/danilovkiri/dk_go_secret_decoder/internal/api/rest"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/app"
	"github.com/danilovkiri/dk_go_secret_decoder/internal/config"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func printBuildMetadata() {
	for _, meta := range []struct{ name, value string }{
		{"Build version", buildVersion},
		{"Build date", buildDate},
		{"Build commit", buildCommit},
	} {
		if meta.value == "" {
			meta.value = "N/A"
		}
		fmt.Printf("%s: %s\n", meta.name, meta.value)
	}
}

func main() {
	printBuildMetadata()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// storage closers are released through wg once ctx is cancelled
	wg := &sync.WaitGroup{}
	cfg := config.NewDefaultConfiguration()
	if err := cfg.Parse(); err != nil {
		log.Fatal(err)
	}
	a, err := app.New(ctx, wg, cfg)
	if err != nil {
		log.Fatal(err)
	}
	server, err := rest.InitServer(ctx, cfg, a.Processor, a.Metrics)
	if err != nil {
		log.Fatal(err)
	}
	// set a listener for os.Signal
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-done
		log.Print("Server shutdown attempted")
		ctxTO, cancelTO := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelTO()
		if err := server.Shutdown(ctxTO); err != nil {
			log.Println("Server shutdown failed:", err)
		}
		cancel()
	}()
	log.Print("Server start attempted on ", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
	// wait for the storage to be closed before exiting
	wg.Wait()
	log.Print("Server shutdown succeeded")
}
