package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"

	"belote-engine/internal/bot"
	"belote-engine/internal/config"
	"belote-engine/internal/database"
	"belote-engine/internal/game"
	"belote-engine/internal/protocol"
	"belote-engine/internal/server"
	"belote-engine/internal/shared"
)

func main() {
	envFile := flag.String("env", ".env", "dotenv file to load before reading the environment")
	serve := flag.String("serve", "", "serve the results API on this address instead of playing")
	noStore := flag.Bool("no-store", false, "do not record the match result")
	verbose := flag.Bool("v", false, "write engine logs to stderr")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Config: %v", err)
	}

	if *serve != "" {
		db, err := database.New(cfg.DB.Driver, cfg.DB.DSN)
		if err != nil {
			log.Fatalf("Database: %v", err)
		}
		defer db.Close()

		mux := http.NewServeMux()
		server.HandleRoutes(mux, db)
		log.Printf("Serving results on %s", *serve)
		log.Fatal(http.ListenAndServe(*serve, mux))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := play(ctx, cfg, os.Stdout, *verbose, !*noStore); err != nil {
		log.Fatal(err)
	}
}

// play runs one autoplayed match, writing a JSON line per event to out.
func play(ctx context.Context, cfg config.Config, out io.Writer, verbose, store bool) error {
	var deciders [shared.NumSeats]game.Decider
	for i, name := range cfg.Bots {
		d, err := bot.NewFromName(name, cfg.Seed+uint64(i)+1)
		if err != nil {
			return fmt.Errorf("seat %d: %w", i, err)
		}
		deciders[i] = d
	}

	logger := log.New(io.Discard, "", 0)
	if verbose {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	e, err := game.NewEngine(cfg.Players, cfg.Rules, shared.NewSeededShuffler(cfg.Seed), game.WithLogger(logger))
	if err != nil {
		return err
	}

	emit := func(msgType string, payload interface{}) {
		data, err := protocol.NewMessage(msgType, payload)
		if err != nil {
			log.Printf("Encoding %s: %v", msgType, err)
			return
		}
		fmt.Fprintln(out, string(data))
	}
	emit(protocol.TypeMatchStart, protocol.MatchStart(e))

	reported := 0
	observe := func(ev game.Event) {
		if ev.Kind == game.NeedDecision && ev.Decision == game.DecidePlay {
			for n := reported + 1; n <= len(e.Tricks()); n++ {
				if p, ok := protocol.TrickEnd(e, n); ok {
					emit(protocol.TypeTrickEnd, p)
				}
			}
			reported = len(e.Tricks())
		}
		if ev.Kind == game.RoundEnded {
			if r := ev.Round; !r.Redeal && reported < len(r.Tricks) {
				t := r.Tricks[len(r.Tricks)-1]
				p := protocol.TrickEndPayload{Number: len(r.Tricks), WinnerID: e.Players[t.Winner].ID, Points: t.Points(r.Contract.Trump)}
				for _, pc := range t.Cards {
					p.Cards = append(p.Cards, pc.Card)
				}
				emit(protocol.TypeTrickEnd, p)
			}
			reported = 0
		}
		data, err := protocol.FromEvent(e, ev)
		if err != nil {
			log.Printf("Encoding event: %v", err)
			return
		}
		fmt.Fprintln(out, string(data))
	}

	result, err := game.Run(ctx, e, deciders, observe)
	if err != nil {
		emit(protocol.TypeError, protocol.ErrorPayload{Message: err.Error()})
		return fmt.Errorf("match %s: %w", e.ID, err)
	}
	if !store {
		return nil
	}

	db, err := database.New(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return fmt.Errorf("opening results store: %w", err)
	}
	defer db.Close()
	if err := db.Insert(database.NewMatchResult(e, result, cfg.Seed)); err != nil {
		return fmt.Errorf("storing match %s: %w", e.ID, err)
	}
	log.Printf("Match %s stored in %s", e.ID, db.TableName())
	return nil
}
