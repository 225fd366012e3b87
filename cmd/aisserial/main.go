package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"github.com/tarm/serial"

	"github.com/aldas/go-ais-decoder"
)

func main() {
	device := pflag.StringP("device", "d", "/dev/ttyUSB0", "path to the serial-attached AIS receiver")
	baud := pflag.IntP("baud", "b", 38400, "device baud rate")
	pretty := pflag.BoolP("pretty", "p", false, "pretty-print JSON output")
	pflag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	port, err := serial.OpenPort(&serial.Config{
		Name: *device,
		Baud: *baud,
		// ReadTimeout bounds how long a Read call may block so the scan
		// loop below notices context cancellation promptly.
		ReadTimeout: 500 * time.Millisecond,
	})
	if err != nil {
		log.Fatalf("# failed to open device %v: %v\n", *device, err)
	}
	defer port.Close()

	go func() {
		<-ctx.Done()
		port.Close()
	}()

	enc := json.NewEncoder(os.Stdout)
	if pretty != nil && *pretty {
		enc.SetIndent("", "  ")
	}

	fmt.Fprintf(os.Stderr, "# reading AIS sentences from %v at %v baud\n", *device, *baud)
	msgCount := 0
	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			fmt.Fprintf(os.Stderr, "# shutting down, decoded %d messages\n", msgCount)
			return
		default:
		}

		line := scanner.Text()
		if line == "" {
			continue
		}
		payload, _, err := ais.ExtractPayload(line)
		if err != nil {
			log.Printf("# skipping line, %v\n", err)
			continue
		}
		msgCount++
		if err := enc.Encode(ais.Decode(payload)); err != nil {
			log.Printf("# failed to encode decoded message: %v\n", err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("# serial read ended: %v\n", err)
	}
	fmt.Fprintf(os.Stderr, "# decoded %d messages\n", msgCount)
}
