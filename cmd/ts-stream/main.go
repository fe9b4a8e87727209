// Command ts-stream logs in to TradeStation and tails live data: quotes
// for the given symbols and, when account IDs are configured, order and
// position updates. It is both a demo of the library and a handy probe
// for checking API connectivity.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	tradestation "tradestation-go"
	"tradestation-go/internal/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	symbolsFlag := flag.String("symbols", "", "comma-separated symbols to stream (overrides config)")
	accountsFlag := flag.String("accounts", "", "comma-separated account IDs to stream (overrides config)")
	demo := flag.Bool("demo", false, "use the simulated-trading host")
	flag.Parse()

	// Credentials are commonly kept in a .env next to the binary.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != "" {
		level, errLevel := log.ParseLevel(cfg.LogLevel)
		if errLevel != nil {
			log.Fatalf("bad log-level %q: %v", cfg.LogLevel, errLevel)
		}
		log.SetLevel(level)
	}

	symbols := cfg.Symbols
	if *symbolsFlag != "" {
		symbols = strings.Split(*symbolsFlag, ",")
	}
	accounts := cfg.AccountIDs
	if *accountsFlag != "" {
		accounts = strings.Split(*accountsFlag, ",")
	}
	if len(symbols) == 0 && len(accounts) == 0 {
		log.Fatal("nothing to stream: set symbols or account-ids")
	}

	client, err := tradestation.New(tradestation.Config{
		ClientID:      cfg.ClientID,
		ClientSecret:  cfg.ClientSecret,
		Demo:          *demo || cfg.Demo,
		CallbackPort:  cfg.CallbackPort,
		RefreshMargin: cfg.RefreshMargin(),
	})
	if err != nil {
		log.Fatalf("build client: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.RefreshToken != "" {
		client.SetRefreshToken(cfg.RefreshToken)
	} else if err = client.Login(ctx); err != nil {
		log.Fatalf("login: %v", err)
	}

	var wg sync.WaitGroup

	if len(symbols) > 0 {
		quotes, errStream := client.StreamQuotes(ctx, symbols)
		if errStream != nil {
			log.Fatalf("stream quotes: %v", errStream)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			tail(quotes, "quotes")
		}()
	}

	if len(accounts) > 0 {
		orders, errStream := client.StreamOrders(ctx, accounts)
		if errStream != nil {
			log.Fatalf("stream orders: %v", errStream)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			tail(orders, "orders")
		}()

		positions, errStream := client.StreamPositions(ctx, accounts, true)
		if errStream != nil {
			log.Fatalf("stream positions: %v", errStream)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			tail(positions, "positions")
		}()
	}

	<-ctx.Done()
	log.Info("shutting down")
	wg.Wait()
}

func tail(s *tradestation.Stream, name string) {
	defer s.Close()
	for ev := range s.Events() {
		switch msg := ev.(type) {
		case *tradestation.Heartbeat:
			log.WithField("stream", name).Debug("heartbeat")
		case *tradestation.StreamStatus:
			log.WithField("stream", name).Infof("status: %s", msg.StreamStatus)
		case *tradestation.QuoteStream:
			log.WithField("stream", name).Infof("%s last=%s bid=%s ask=%s", msg.Symbol, msg.Last, msg.Bid, msg.Ask)
		case *tradestation.Order:
			log.WithField("stream", name).Infof("order %s %s %s", msg.OrderID, msg.Status, msg.StatusDescription)
		case *tradestation.Position:
			if msg.Deleted {
				log.WithField("stream", name).Infof("position %s closed", msg.PositionID)
				continue
			}
			log.WithField("stream", name).Infof("position %s %s %s @ %s", msg.Symbol, msg.LongShort, msg.Quantity, msg.AveragePrice)
		case *tradestation.StreamErrorResponse:
			log.WithField("stream", name).Warnf("stream error: %s: %s", msg.Error, msg.Message)
		case *tradestation.StreamOrderErrorResponse:
			log.WithField("stream", name).Warnf("order stream error for %s: %s", msg.AccountID, msg.Message)
		case *tradestation.StreamPositionsErrorResponse:
			log.WithField("stream", name).Warnf("position stream error for %s: %s", msg.AccountID, msg.Message)
		default:
			log.WithField("stream", name).Debugf("message: %+v", ev)
		}
	}
	if err := s.Err(); err != nil {
		log.WithField("stream", name).Errorf("stream ended: %v", err)
	}
}
