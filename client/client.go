package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"
	"trashtalk/domain"
	"trashtalk/infrastructure/grpc/client"

	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string        `envconfig:"BOARD_SERVER_ADDR" default:"localhost:8080"`
	Token         string        `envconfig:"BOARD_TOKEN"`
	Sender        string        `envconfig:"BOARD_SENDER"`
	Timeout       time.Duration `envconfig:"BOARD_TIMEOUT" default:"5s"`
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"INFO"`
	Colours       bool          `envconfig:"BOARD_COLOURS" default:"true"`
}

const usage = `usage: client <command> [flags]

commands:
  instantiate -count N     create the board
  add -text T [-nickname]  post a message
  count                    print the counter
  messages                 print every message
`

func main() {
	code, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

func run(args []string) (int, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return exitConfig, nil
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, config.Timeout)
	defer cancel()

	conn, err := grpc.NewClient(config.ServerAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerAddress, err)
	}
	defer func() {
		log.Debug("Closing connection...")
		_ = conn.Close()
	}()

	board := client.NewBoardClient(conn, config.Token)
	if config.Sender != "" {
		board = board.WithSender(config.Sender)
	}
	out := printer{colours: config.Colours}

	switch command := args[0]; command {
	case "instantiate":
		flags := flag.NewFlagSet(command, flag.ContinueOnError)
		count := flags.Int("count", 0, "initial counter value")
		if err := flags.Parse(args[1:]); err != nil {
			return exitConfig, err
		}
		if *count > math.MaxInt32 || *count < math.MinInt32 {
			return exitConfig, fmt.Errorf("count %d does not fit in 32 bits", *count)
		}
		res, err := board.Instantiate(ctx, int32(*count))
		if err != nil {
			return exitRuntime, err
		}
		out.response(res)
	case "add":
		flags := flag.NewFlagSet(command, flag.ContinueOnError)
		text := flags.String("text", "", "message text")
		nickname := flags.String("nickname", "", "optional author nickname")
		if err := flags.Parse(args[1:]); err != nil {
			return exitConfig, err
		}
		res, err := board.AddMessage(ctx, domain.Message{Text: *text, Nickname: *nickname})
		if err != nil {
			return exitRuntime, err
		}
		out.response(res)
	case "count":
		res, err := board.GetCount(ctx)
		if err != nil {
			return exitRuntime, err
		}
		fmt.Println(res.Count)
	case "messages":
		res, err := board.GetMessages(ctx)
		if err != nil {
			return exitRuntime, err
		}
		for i, m := range res.Messages {
			out.message(i, m)
		}
	default:
		fmt.Fprint(os.Stderr, usage)
		return exitConfig, fmt.Errorf("unknown command %q", command)
	}
	return exitOK, nil
}

type printer struct {
	colours bool
}

func (p printer) response(res domain.Response) {
	for _, a := range res.Attributes {
		key := a.Key
		if p.colours {
			key = color.New(color.FgCyan).Render(key)
		}
		fmt.Printf("%s=%s\n", key, a.Value)
	}
}

func (p printer) message(i int, m domain.Message) {
	nickname := m.Nickname
	if nickname == "" {
		nickname = "-"
	}
	if p.colours {
		nickname = color.New(color.BgBlack, color.FgGreen).Render(nickname)
	}
	fmt.Printf("%3d %s %s\n", i, nickname, m.Text)
}
