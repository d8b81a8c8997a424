package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	grpcapi "github.com/danilovkiri/dk_go_secret_decoder/internal/api/grpc"
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
	// make a top-level file logger for logging critical errors
	flog, err := os.OpenFile(`server.log`, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatal(err)
	}
	defer flog.Close()
	mainlog := log.New(flog, `grpc `, log.LstdFlags|log.Lshortfile)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}
	cfg := config.NewDefaultConfiguration()
	if err = cfg.Parse(); err != nil {
		mainlog.Fatal(err)
	}
	a, err := app.New(ctx, wg, cfg)
	if err != nil {
		mainlog.Fatal(err)
	}
	server, err := grpcapi.InitServer(ctx, a.Processor)
	if err != nil {
		mainlog.Fatal(err)
	}
	s, err := grpcapi.NewGRPCServer(cfg, server)
	if err != nil {
		mainlog.Fatal(err)
	}
	listen, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		mainlog.Fatal(err)
	}
	// set a listener for os.Signal
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-done
		mainlog.Print("Server shutdown attempted")
		s.GracefulStop()
		cancel()
	}()
	mainlog.Print("Server start attempted on ", cfg.GRPCAddress)
	if err := s.Serve(listen); err != nil {
		mainlog.Fatal(err)
	}
	wg.Wait()
	mainlog.Print("Server shutdown succeeded")
}
