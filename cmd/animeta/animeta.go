package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Agurato/animeta/internal/business"
	"github.com/Agurato/animeta/internal/infrastructure"
	"github.com/Agurato/animeta/internal/service/server"
)

// Environment variables names
const (
	EnvJikanURL        = "JIKAN_BASE_URL"
	EnvRequestInterval = "REQUEST_INTERVAL"
	EnvHTTPTimeout     = "HTTP_TIMEOUT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvListenAddr      = "LISTEN_ADDR"
)

const defaultListenAddr = ":8080"

func main() {
	godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the command line and returns the process exit code
func run(args []string, stdout io.Writer) int {
	flags := flag.NewFlagSet("animeta", flag.ContinueOnError)
	serve := flags.Bool("serve", false, "serve titles over HTTP (env: "+EnvListenAddr+")")
	search := flags.String("search", "", "print the ID of the anime best matching this name")
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), "usage: animeta [-serve] [-search name] [mal_id...]")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}

	level, err := zerolog.ParseLevel(getEnv(EnvLogLevel, "info"))
	if err != nil {
		log.Error().Err(err).Msg("Invalid " + EnvLogLevel)
		return 2
	}
	zerolog.SetGlobalLevel(level)

	interval, err := getEnvDuration(EnvRequestInterval, business.DefaultRequestInterval)
	if err != nil {
		log.Error().Err(err).Msg("Invalid " + EnvRequestInterval)
		return 2
	}
	timeout, err := getEnvDuration(EnvHTTPTimeout, infrastructure.DefaultTimeout)
	if err != nil {
		log.Error().Err(err).Msg("Invalid " + EnvHTTPTimeout)
		return 2
	}

	gateway := infrastructure.NewJikanGateway(os.Getenv(EnvJikanURL), timeout)
	tf := business.NewTitleFetcher(gateway, business.WithRequestInterval(interval))

	if *serve {
		addr := getEnv(EnvListenAddr, defaultListenAddr)
		log.Info().Str("addr", addr).Msg("Serving titles")
		if err := server.NewServer(server.NewTitleHandler(tf)).Run(addr); err != nil {
			log.Error().Err(err).Msg("Server stopped")
			return 1
		}
		return 0
	}

	ctx := context.Background()
	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")

	if *search != "" {
		id, err := tf.FindTitleID(ctx, *search)
		if err != nil {
			log.Error().Err(err).Str("name", *search).Msg("Could not search title")
			return 1
		}
		fmt.Fprintln(stdout, id)
		return 0
	}

	if flags.NArg() == 0 {
		flags.Usage()
		return 2
	}

	code := 0
	for _, arg := range flags.Args() {
		id, err := strconv.Atoi(arg)
		if err != nil || id < 0 {
			log.Error().Str("arg", arg).Msg("Not a MyAnimeList ID")
			code = 1
			continue
		}
		title, err := tf.GetFullTitleDetails(ctx, id)
		if err != nil {
			var upstreamErr *infrastructure.UpstreamError
			if errors.As(err, &upstreamErr) && upstreamErr.StatusCode == http.StatusTooManyRequests {
				log.Warn().Int("malID", id).Msg("Rate limited by Jikan, skipping")
				continue
			}
			log.Error().Err(err).Int("malID", id).Msg("Could not fetch title details")
			code = 1
			continue
		}
		if err := encoder.Encode(title); err != nil {
			log.Error().Err(err).Int("malID", id).Msg("Could not print title")
			return 1
		}
	}
	return code
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	return time.ParseDuration(value)
}
