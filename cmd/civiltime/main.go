// Command civiltime prints the current time in the fixed UTC offset of the
// LANG locale.
//
// Usage:
//
//	civiltime [time|date|millis|micros|gmt|timestamp|all]
//
// With no argument it prints "time".
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aelexs/civiltime/internal/config"
	"github.com/aelexs/civiltime/internal/observability"
	"github.com/aelexs/civiltime/pkg/civiltime"
)

var errUsage = errors.New("usage: civiltime [time|date|millis|micros|gmt|timestamp|all]")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, nil); err != nil {
		fmt.Fprintf(os.Stderr, "civiltime: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, svc *civiltime.Service) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.InitLogger(observability.LogConfig{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		ServiceName: "civiltime",
		Environment: cfg.Environment,
		Output:      stderr,
	})

	if svc == nil {
		svc = civiltime.New(civiltime.WithLogger(logger))
	}

	mode := "time"
	switch len(args) {
	case 0:
	case 1:
		mode = args[0]
	default:
		return errUsage
	}

	sn, err := svc.Snapshot(ctx)
	if err != nil {
		return err
	}

	switch mode {
	case "time":
		fmt.Fprintln(stdout, sn.Local.String())
	case "date":
		fmt.Fprintln(stdout, sn.Local.DateString())
	case "millis":
		fmt.Fprintln(stdout, sn.Local.MillisString())
	case "micros":
		fmt.Fprintln(stdout, sn.Local.MicrosString())
	case "gmt":
		fmt.Fprintln(stdout, sn.GMT())
	case "timestamp":
		fmt.Fprintln(stdout, sn.Timestamp())
	case "all":
		printAll(stdout, sn)
	default:
		return errUsage
	}
	return nil
}

func printAll(w io.Writer, sn civiltime.Snapshot) {
	dt := sn.Local
	fmt.Fprintf(w, "locale:           %s (%s)\n", sn.Locale, sn.Locale.DisplayName())
	fmt.Fprintf(w, "offset:           %d\n", sn.Offset)
	fmt.Fprintf(w, "time:             %s\n", dt.String())
	fmt.Fprintf(w, "date:             %s\n", dt.DateString())
	fmt.Fprintf(w, "time_millis:      %s\n", dt.MillisString())
	fmt.Fprintf(w, "time_micros:      %s\n", dt.MicrosString())
	fmt.Fprintf(w, "gmt:              %s\n", sn.GMT())
	fmt.Fprintf(w, "timestamp:        %d\n", sn.Timestamp())
	fmt.Fprintf(w, "timestamp_millis: %d\n", sn.TimestampMillis())
	fmt.Fprintf(w, "timestamp_micros: %d\n", sn.TimestampMicros())
}
