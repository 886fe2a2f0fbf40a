package main

import (
	"bytes"
	"context"
	"fmt"
	"fruitstock-telegram-bot/config"
	"fruitstock-telegram-bot/internal/database"
	"fruitstock-telegram-bot/internal/metrics"
	sentryutil "fruitstock-telegram-bot/internal/sentry"
	"fruitstock-telegram-bot/internal/stock"
	"fruitstock-telegram-bot/internal/telegram"
	"fruitstock-telegram-bot/internal/tracker"
	"fruitstock-telegram-bot/lib/translation"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	botMetrics = metrics.NewBotMetrics(prometheus.DefaultRegisterer)
)

func init() {
	config.InitConfig()
	setupLogging()
}

func main() {
	translation.Configure("locales", config.GetString("lang"))
	log.Infof("Using %q translations", translation.GetLanguage())
	sentryutil.Init(config.GetString("sentry_dsn"), config.GetString("profile"))
	defer sentryutil.Flush()

	err := database.InitDB(config.GetString("db_path"))
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	botMetrics.LoadFromDB()

	profile, err := stock.LookupProfile(config.GetString("profile"))
	if err != nil {
		log.Fatalf("Failed to load stock profile: %v", err)
	}

	channelID := config.GetInt64("channel_id")
	if channelID == 0 {
		log.Fatal("CHANNEL_ID is required")
	}

	fetcher := stock.NewFetcher(config.GetString("stock_api_url"), config.GetDuration("http_timeout"))
	renderer := stock.NewRenderer(profile)

	bot, err := telegram.NewBot(telegram.BotConfig{
		Token:          config.GetString("telegram_bot_token"),
		Debug:          config.GetBool("debug"),
		UpdatesTimeout: 60,
		SourceURL:      config.GetString("source_url"),
	}, fetcher, renderer)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	service := tracker.NewService(
		tracker.New(channelID, fetcher, bot, renderer),
		tracker.Config{
			PollInterval:      config.GetDuration("poll_interval"),
			CountdownInterval: config.GetDuration("countdown_interval"),
		},
		botMetrics,
		sentryutil.TickObserver(),
	)
	bot.SetCooldownSource(service.Cooldowns)
	go service.Run(ctx)

	updates, err := bot.GetUpdatesChannel()
	if err != nil {
		log.Fatalf("Failed to get updates channel: %v", err)
	}

	go handleUpdates(bot, updates)

	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				botMetrics.SaveToDB()
			}
		}
	}()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		cancel()
		bot.Bot.StopReceivingUpdates()
		botMetrics.SaveToDB()
		sentryutil.Flush()
		log.Println("Metrics saved, shutting down...")
		os.Exit(0)
	}()

	if err := launchMetricsAndHealthServer(config.GetInt("metrics_port"), service); err != nil {
		log.Fatalf("Failed to start metrics and health server: %v", err)
	}
}

func setupLogging() {
	log.SetLevel(log.InfoLevel)
	if config.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}
	log.Debug("Starting stock bot...")
}

func handleUpdates(bot *telegram.Bot, updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.Message == nil || !update.Message.IsCommand() {
			continue
		}

		botMetrics.MessagesHandled.Inc()
		handleCommand(bot, update)
	}
}

func handleCommand(bot *telegram.Bot, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			stackBuf := make([]byte, 1024)
			stackSize := runtime.Stack(stackBuf, false)
			stackTrace := bytes.TrimRight(stackBuf[:stackSize], "\x00")
			log.Errorf("Recovered from panic: %v\nStack trace: %s", r, stackTrace)
		}
	}()

	text := bot.HandleUpdate(update)
	if text == "" {
		botMetrics.CommandsProcessed.Inc()
		return
	}

	err := bot.Reply(telegram.Message{
		ChatID:    update.Message.Chat.ID,
		Text:      text,
		MessageID: update.Message.MessageID,
	})

	if err != nil {
		log.Errorf("Failed to send message: %v", err)
	} else {
		botMetrics.CommandsProcessed.Inc()
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// statusHandler answers keep-alive pings with the outcome of the last tick.
func statusHandler(service *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		last, at := service.LastResult()
		if at.IsZero() {
			fmt.Fprintln(w, "Bot is alive. No tick completed yet.")
			return
		}
		fmt.Fprintf(w, "Bot is alive. Last tick %s: %s (%s)\n", humanize.Time(at), last.Status, last.Action)
	}
}

func launchMetricsAndHealthServer(port int, service *tracker.Service) error {
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/health", healthCheckHandler)
	http.HandleFunc("/", statusHandler(service))

	log.Infof("Launching metrics and health endpoint on :%d", port)
	return http.ListenAndServe(fmt.Sprintf(":%d", port), http.DefaultServeMux)
}
