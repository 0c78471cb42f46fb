package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	charmlog "github.com/charmbracelet/log"

	"suggestbox/internal/config"
	"suggestbox/internal/domain"
	"suggestbox/internal/eventbus"
	"suggestbox/internal/fetch"
	"suggestbox/internal/logger"
	"suggestbox/internal/match"
	"suggestbox/internal/suggest"
	"suggestbox/internal/ui"
)

func main() {
	local := flag.Bool("local", false, "filter the built-in set synchronously instead of simulating a backend")
	configPath := flag.String("config", "", "path to config file")
	verbose := flag.Bool("verbose", false, "debug logging")
	flag.Parse()

	logger.SetVerbose(*verbose)

	// The TUI owns the terminal, so logs go to a file
	logFile, err := os.OpenFile("suggestbox.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log := logger.NewWriter(logFile, "suggestbox")

	bus := eventbus.New()

	var configSvc config.Service
	if *configPath != "" {
		configSvc = config.NewServiceWithPath(bus, *configPath)
	} else {
		configSvc = config.NewService(bus)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		log.Warn("config load failed, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}

	engine, err := buildEngine(cfg, bus, *local, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "engine setup: %v\n", err)
		os.Exit(1)
	}
	defer engine.Close()

	model := ui.NewModel(engine, renderTicker, nil)
	model.SetTitle("suggestbox — ticker search")
	model.SetMaxVisible(cfg.UI.MaxVisible)
	model.SetWidth(cfg.UI.Width)

	p := tea.NewProgram(model, tea.WithAltScreen())

	// Forward engine events into the program so async updates repaint
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Warn("event channel full, dropping event", "type", e.Type())
		}
	}
	for _, et := range []eventbus.EventType{
		eventbus.EventResultsApplied,
		eventbus.EventVisibilityChanged,
		eventbus.EventPopularLoaded,
		eventbus.EventItemSelected,
		eventbus.EventFetchFailed,
	} {
		bus.Subscribe(et, forward)
	}
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Quit cleanly on interrupt
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running program: %v\n", err)
		os.Exit(1)
	}

	close(eventChan)
}

// buildEngine assembles the suggestion engine from config and flags:
// a synchronous filter over the built-in set, a remote JSON endpoint, or a
// simulated backend with artificial latency.
func buildEngine(cfg *config.Config, bus eventbus.EventBus, local bool, log *charmlog.Logger) (*suggest.Engine[Ticker], error) {
	opts := suggest.DefaultOptions()
	opts.MaxResults = cfg.Engine.MaxResults
	opts.Debounce = time.Duration(cfg.Engine.DebounceMs) * time.Millisecond
	opts.ShowPopularOnFocus = cfg.Engine.ShowPopularOnFocus
	if cfg.Engine.PopularLoad == "eager" {
		opts.PopularLoad = domain.PopularEager
	}

	var source suggest.Source[Ticker]
	switch {
	case local:
		source = suggest.FilterSource[Ticker]{
			Items:     tickers,
			Predicate: match.Substring(tickerKey),
		}
	case cfg.Backend.Endpoint != "":
		fn, err := fetch.JSON[Ticker](cfg.Backend.Endpoint, fetch.Options{
			QueryParam:     cfg.Backend.QueryParam,
			RequestsPerSec: cfg.Backend.RequestsPerSec,
		})
		if err != nil {
			return nil, err
		}
		source = suggest.FetchSource[Ticker]{Fetch: fn}
	default:
		source = suggest.FetchSource[Ticker]{Fetch: simulatedFetch}
	}

	return suggest.New(suggest.Config[Ticker]{
		Source: source,
		ID:     func(t Ticker) string { return t.Symbol },
		OnSelect: func(t Ticker) {
			log.Info("selected", "symbol", t.Symbol, "name", t.Name)
		},
		PopularFetch: func(ctx context.Context) ([]Ticker, error) {
			select {
			case <-time.After(80 * time.Millisecond):
				return popularTickers, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		},
		Bus:     bus,
		Logger:  log.WithPrefix("suggest"),
		Options: opts,
	})
}

func tickerKey(t Ticker) string {
	return t.Symbol + " " + t.Name
}

// simulatedFetch answers like a remote endpoint would, latency included.
func simulatedFetch(ctx context.Context, query string) ([]Ticker, error) {
	select {
	case <-time.After(120 * time.Millisecond):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	q := strings.ToLower(query)
	var out []Ticker
	for _, t := range tickers {
		if strings.Contains(strings.ToLower(tickerKey(t)), q) {
			out = append(out, t)
		}
	}
	return out, nil
}

func renderTicker(t Ticker, selected bool) string {
	return fmt.Sprintf("%-6s %s", t.Symbol, t.Name)
}
