package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"barkgo/internal/config"
	"barkgo/pkg/bark"
	"barkgo/pkg/logx"
)

// Exit codes mirror the client's error taxonomy so shell callers can
// branch on the failure kind.
const (
	exitOK         = 0
	exitUsage      = 1
	exitValidation = 2
	exitNetwork    = 3
	exitServer     = 4
)

func main() {
	var (
		cfgPath = flag.String("config", "", "path to config file (json or yaml)")
		server  = flag.String("server", "", "bark server base URL (default: public endpoint)")
		key     = flag.String("key", "", "device key from the Bark app")

		title      = flag.String("title", "", "notification title")
		subtitle   = flag.String("subtitle", "", "notification subtitle (shown only with a title)")
		tapURL     = flag.String("url", "", "URL to open on tap")
		group      = flag.String("group", "", "notification group")
		icon       = flag.String("icon", "", "custom icon URL")
		sound      = flag.String("sound", "", "custom sound name")
		level      = flag.String("level", "", "urgency: active|timeSensitive|passive|critical")
		copyText   = flag.String("copy", "", "text copied to clipboard on press")
		ciphertext = flag.String("ciphertext", "", "pre-encrypted payload")
		call       = flag.Bool("call", false, "ring for 30 seconds")
		archive    = flag.Bool("archive", false, "archive the notification on the device")

		post     = flag.Bool("post", false, "send as JSON POST instead of path-encoded GET")
		logLevel = flag.String("log-level", "", "override log level")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: bark [flags] <body...>\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	body := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if body == "" {
		flag.Usage()
		os.Exit(exitUsage)
	}

	// Tri-state booleans: only flags the user actually set are forwarded.
	seen := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { seen[f.Name] = true })

	cfg := &config.Config{}
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "fatal:", err)
			os.Exit(exitUsage)
		}
		cfg = loaded
	}

	logCfg := logx.Config{
		Level:   firstNonEmpty(*logLevel, cfg.Logging.Level),
		Console: cfg.Logging.ConsoleEnabled(),
		File: logx.FileConfig{
			Enabled: cfg.Logging.File.Enabled,
			Path:    cfg.Logging.File.Path,
		},
	}
	logSvc, log := logx.New(logCfg)
	defer logSvc.Close()

	var opts []bark.Option
	if s := firstNonEmpty(*server, cfg.Server); s != "" {
		opts = append(opts, bark.WithServerURL(s))
	}
	opts = append(opts, bark.WithLogger(log))

	client, err := bark.New(firstNonEmpty(*key, cfg.Key), opts...)
	if err != nil {
		log.Error("client setup failed", logx.Err(err))
		os.Exit(exitValidation)
	}

	n := bark.Notification{
		Body:       body,
		Title:      firstNonEmpty(*title, cfg.Defaults.Title),
		Subtitle:   *subtitle,
		URL:        *tapURL,
		Group:      firstNonEmpty(*group, cfg.Defaults.Group),
		Icon:       firstNonEmpty(*icon, cfg.Defaults.Icon),
		Sound:      firstNonEmpty(*sound, cfg.Defaults.Sound),
		Level:      bark.Level(firstNonEmpty(*level, cfg.Defaults.Level)),
		Copy:       *copyText,
		Ciphertext: *ciphertext,
	}
	if seen["call"] {
		n.Call = bark.Bool(*call)
	}
	if seen["archive"] {
		n.IsArchive = bark.Bool(*archive)
	} else if cfg.Defaults.IsArchive != nil {
		n.IsArchive = cfg.Defaults.IsArchive
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	start := time.Now()
	send := client.Send
	if *post {
		send = client.SendPost
	}
	resp, err := send(ctx, n)
	if err != nil {
		log.Error("send failed", logx.Err(err), logx.Duration("elapsed", time.Since(start)))
		os.Exit(exitCode(err))
	}

	log.Info("notification sent", logx.Duration("elapsed", time.Since(start)))
	out, _ := json.Marshal(resp)
	fmt.Println(string(out))
}

func exitCode(err error) int {
	var (
		ve *bark.ValidationError
		ne *bark.NetworkError
		se *bark.ServerError
	)
	switch {
	case errors.As(err, &ve):
		return exitValidation
	case errors.As(err, &ne):
		return exitNetwork
	case errors.As(err, &se):
		return exitServer
	default:
		return exitUsage
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
