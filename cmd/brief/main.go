// Command brief runs one enrichment and prints the resulting context block.
//
//	brief -config configs/production.yaml "arsenal vs chelsea"
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/Vodeneev/betbrief/internal/enricher/service"
	"github.com/Vodeneev/betbrief/internal/pkg/config"
	"github.com/Vodeneev/betbrief/internal/pkg/logging"
)

const defaultConfigPath = "configs/production.yaml"

func main() {
	var configPath string
	var message string
	var verbose bool

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = defaultConfigPath
	}

	flag.StringVar(&configPath, "config", defaultConfig, "Path to config file (can be set via CONFIG_PATH env var)")
	flag.StringVar(&message, "m", "", "Message to enrich (or pass it as arguments)")
	flag.BoolVar(&verbose, "v", false, "Log at debug level to stderr")
	flag.Parse()

	if message == "" {
		message = strings.Join(flag.Args(), " ")
	}
	if strings.TrimSpace(message) == "" {
		fmt.Fprintln(os.Stderr, "usage: brief [-config path] [-v] <message>")
		os.Exit(2)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = config.Default()
	}

	// stdout carries the brief, logs go to stderr
	level := logging.ParseLevel("warn")
	if verbose {
		level = logging.ParseLevel("debug")
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).With("service", "brief")

	svc, err := service.New(cfg, logger)
	if err != nil {
		log.Fatalf("brief: %v", err)
	}

	res := svc.Enrich(context.Background(), message)
	svc.Close()

	fmt.Fprintf(os.Stderr, "intent: %s\n", res.Intent.Kind)
	if !res.Found {
		fmt.Fprintln(os.Stderr, "no football context found")
		os.Exit(1)
	}
	fmt.Println(res.Text)
}
