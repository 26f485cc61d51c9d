package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/feltworks/holdem/internal/console"
	"github.com/feltworks/holdem/internal/deck"
	"github.com/feltworks/holdem/internal/game"
	"github.com/feltworks/holdem/internal/randutil"
	"github.com/feltworks/holdem/internal/store"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

type CLI struct {
	Config  string `short:"c" help:"Path to table configuration file" default:"holdem.hcl"`
	Seed    *int64 `help:"Random seed for reproducible games"`
	Debug   bool   `short:"d" help:"Enable debug logging"`
	LogFile string `help:"Debug log destination" default:"holdem-debug.log"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli)

	fmt.Print(titleStyle.Render(" ♠ ♥ Texas Hold'em ♦ ♣ "))
	fmt.Println()
	fmt.Println()

	if err := run(&cli); err != nil {
		log.Fatal("Failed to run game", "error", err)
	}
	kctx.Exit(0)
}

func run(cli *CLI) error {
	cfg, err := game.LoadConfig(cli.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, closeLog, err := newLogger(cli)
	if err != nil {
		return err
	}
	defer closeLog()

	var seed int64
	if cli.Seed != nil {
		seed = *cli.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)
	logger.Info("starting session", "seed", seed, "config", cli.Config)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term := console.New(os.Stdin, os.Stdout)
	printRules(term, cfg)

	players, err := setUpPlayers(term, cfg)
	if err != nil {
		return err
	}

	agents := make(map[string]game.Agent, len(players))
	for _, p := range players {
		if p.Control == game.Human {
			agents[p.Name] = game.NewHumanAgent(term, term)
		} else {
			agents[p.Name] = game.NewBotAgent(rng, cfg.Table.RaiseThreshold)
		}
	}

	g := game.New(game.Options{
		Config:  cfg,
		Roster:  game.NewRoster(players...),
		Deck:    deck.New(rng),
		Agents:  agents,
		Display: term,
		Input:   term,
		Save:    saveTo(cfg.Table.SavePath),
		Logger:  logger,
	})
	return g.Run(ctx)
}

func newLogger(cli *CLI) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeLog := func() {}

	if cli.Debug {
		f, err := os.OpenFile(cli.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create debug log: %w", err)
		}
		w = f
		closeLog = func() {
			if err := f.Close(); err != nil {
				log.Error("Failed to close debug log", "error", err)
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           log.DebugLevel,
	})
	return logger, closeLog, nil
}

func printRules(term *console.Console, cfg *game.Config) {
	term.Announce("Welcome to the table!")
	term.Announce(fmt.Sprintf("Each player starts with %d chips. Hands run pre-flop", cfg.Table.StartingChips))
	term.Announce("through the river with a betting round per street, then a showdown.")
	term.Announce("On your turn enter Bet, Raise, Call, Check or Fold.")
	term.Announce("")
}

// setUpPlayers builds the roster, either from a saved game or interactively.
func setUpPlayers(term *console.Console, cfg *game.Config) ([]*game.Player, error) {
	answer, err := term.ReadToken("Would you like to load a saved game? (y/n): ")
	if err != nil {
		return nil, err
	}
	if answer == "y" || answer == "Y" {
		players, err := loadPlayers(term, cfg.Table.SavePath)
		if err == nil {
			return players, nil
		}
		log.Warn("could not load saved game", "error", err)
		term.Announce("Unable to load saved game, starting fresh.")
	}
	return newPlayers(term, cfg)
}

func loadPlayers(term *console.Console, path string) ([]*game.Player, error) {
	records, err := store.Load(path)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("saved game at %s has no players", path)
	}

	players := make([]*game.Player, len(records))
	for i, r := range records {
		name := r.Name
		control := game.Human
		if isBotName(name) {
			control = game.Automated
			name = "Bot " + name[len("Bot_"):]
		}
		p := game.NewPlayer(name, control, r.Chips)
		p.GamesWon = r.GamesWon
		p.HandsPlayed = r.HandsPlayed
		p.HandsWon = r.HandsWon
		players[i] = p
	}
	term.Announce(fmt.Sprintf("Loaded %d players from the saved game.", len(players)))
	return players, nil
}

func newPlayers(term *console.Console, cfg *game.Config) ([]*game.Player, error) {
	seats := cfg.Table.Seats

	var humans int
	for {
		n, err := term.ReadInt(fmt.Sprintf("How many human players? (0-%d): ", seats))
		if err == nil && n >= 0 && n <= seats {
			humans = n
			break
		}
		if err == io.EOF {
			return nil, fmt.Errorf("input closed during setup")
		}
		term.Announce("Invalid input. Please enter a valid player count.")
	}

	players := make([]*game.Player, 0, seats)
	for i := 1; i <= humans; i++ {
		name, err := term.ReadToken(fmt.Sprintf("Enter a name for player %d: ", i))
		if err != nil {
			return nil, fmt.Errorf("input closed during setup")
		}
		players = append(players, game.NewPlayer(name, game.Human, cfg.Table.StartingChips))
	}
	for i := 1; len(players) < seats; i++ {
		name := fmt.Sprintf("Bot %d", i)
		players = append(players, game.NewPlayer(name, game.Automated, cfg.Table.StartingChips))
	}
	return players, nil
}

// saveTo adapts the store to the game's save hook.
func saveTo(path string) game.SaveFunc {
	return func(players []*game.Player) error {
		records := make([]store.Record, len(players))
		for i, p := range players {
			records[i] = store.Record{
				Name:        sanitizeName(p.Name),
				Chips:       p.Chips,
				GamesWon:    p.GamesWon,
				HandsPlayed: p.HandsPlayed,
				HandsWon:    p.HandsWon,
			}
		}
		return store.Save(path, records)
	}
}

// The save format is whitespace-delimited, so bot names like "Bot 1" are
// written as "Bot_1" and mapped back on load.
func sanitizeName(name string) string {
	out := []rune(name)
	for i, r := range out {
		if r == ' ' || r == '\t' {
			out[i] = '_'
		}
	}
	return string(out)
}

func isBotName(name string) bool {
	const prefix = "Bot_"
	return len(name) > len(prefix) && name[:len(prefix)] == prefix
}
