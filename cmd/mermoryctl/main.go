// Command mermoryctl manages decks and runs study sessions against a
// mermory server.
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/dtroode/mermory-server/internal/api/grpc/apiv1"
	"github.com/dtroode/mermory-server/internal/token"
)

const usage = `usage: mermoryctl [flags] <command> [args]

commands:
  decks [query]                         list decks, optionally filtered
  deck <deck-id>                        show a deck with its cards
  create-deck <title> [description]     create an empty deck
  update-deck <deck-id> <title> [description]
  delete-deck <deck-id>
  add-card <deck-id> <front> <back>
  update-card <deck-id> <card-id> <front> <back>
  delete-card <deck-id> <card-id>
  study <deck-id>                       study a deck interactively
  token <subject>                       print a bearer token signed with --secret

flags:
`

type options struct {
	addr     string
	token    string
	secret   string
	tokenTTL time.Duration
	useTLS   bool
	insecure bool
	timeout  time.Duration
	json     bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, dial); err != nil {
		fmt.Fprintln(os.Stderr, "mermoryctl:", err)
		os.Exit(1)
	}
}

type dialFunc func(opts options) (grpc.ClientConnInterface, io.Closer, error)

func dial(opts options) (grpc.ClientConnInterface, io.Closer, error) {
	creds := insecure.NewCredentials()
	if opts.useTLS {
		creds = credentials.NewTLS(&tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: opts.insecure, //nolint:gosec // opt-in for self-signed dev certificates
		})
	}
	conn, err := grpc.NewClient(opts.addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", opts.addr, err)
	}
	return conn, conn, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func run(ctx context.Context, args []string, in io.Reader, out io.Writer, dial dialFunc) error {
	var opts options
	fs := pflag.NewFlagSet("mermoryctl", pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVarP(&opts.addr, "addr", "a", envOr("MERMORY_ADDR", "localhost:50051"), "server address")
	fs.StringVarP(&opts.token, "token", "t", os.Getenv("MERMORY_TOKEN"), "bearer token sent with every call")
	fs.StringVar(&opts.secret, "secret", os.Getenv("JWT_SECRET"), "signing secret for the token command")
	fs.DurationVar(&opts.tokenTTL, "ttl", 24*time.Hour, "lifetime of tokens issued by the token command")
	fs.BoolVar(&opts.useTLS, "tls", false, "connect with TLS")
	fs.BoolVar(&opts.insecure, "insecure", false, "skip TLS certificate verification")
	fs.DurationVar(&opts.timeout, "timeout", 10*time.Second, "per-call timeout")
	fs.BoolVar(&opts.json, "json", false, "print responses as JSON")
	fs.Usage = func() {
		fmt.Fprint(out, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("missing command")
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]

	if cmd == "token" {
		return issueToken(out, opts, rest)
	}

	conn, closer, err := dial(opts)
	if err != nil {
		return err
	}
	defer closer.Close()

	if opts.token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+opts.token)
	}

	c := &cli{
		decks:   apiv1.NewDecksClient(conn),
		study:   apiv1.NewStudyClient(conn),
		in:      in,
		out:     out,
		timeout: opts.timeout,
		json:    opts.json,
	}
	return c.dispatch(ctx, cmd, rest)
}

func issueToken(out io.Writer, opts options, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: token <subject>")
	}
	if opts.secret == "" {
		return errors.New("--secret (or JWT_SECRET) is required")
	}
	tok, err := token.NewJWT(opts.secret, token.WithTTL(opts.tokenTTL)).GenerateAccessToken(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, tok)
	return err
}
