// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2023 mochi-mqtt, mochi-co
// SPDX-FileContributor: mochi-co

// wiredump decodes hex dumps of mqtt v5 wire fragments for debugging:
// a fixed header byte, a property list, or a reason code. It never builds
// or interprets whole control packets.
//
//	wiredump -mode header 3d
//	wiredump -mode properties 000401ff2402
//	wiredump -mode reason 10
package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mochi-mqtt/wire"
	"github.com/mochi-mqtt/wire/config"
)

func main() {
	mode := flag.String("mode", "header", "what to decode: header, properties or reason")
	confPath := flag.String("config", "", "path to a yaml or json config file")
	flag.Parse()

	logger := slog.Default()

	cfg, err := loadConfig(*confPath)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	raw := strings.ReplaceAll(strings.Join(flag.Args(), ""), " ", "")
	data, err := hex.DecodeString(raw)
	if err != nil {
		logger.Error("invalid hex input: " + err.Error())
		os.Exit(1)
	}

	if len(data) > cfg.BufferSize {
		logger.Error(fmt.Sprintf("input of %d bytes exceeds buffer size of %d", len(data), cfg.BufferSize))
		os.Exit(1)
	}

	if err := dump(*mode, bytes.NewReader(data)); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.New()
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return config.FromBytes(b)
}

func dump(mode string, r *bytes.Reader) error {
	switch mode {
	case "header":
		b, err := wire.ReadByte(r)
		if err != nil {
			return err
		}

		t, err := wire.DecodePacketType(b)
		if err != nil {
			return err
		}

		f, err := wire.DecodeFlags(b, t)
		if err != nil {
			return err
		}

		fmt.Printf("%s flags=%#+v\n", t, f)

	case "properties":
		p, err := wire.DecodeProperties(r)
		if err != nil {
			return err
		}

		for _, id := range p.Identifiers() {
			if id == wire.PropUser {
				for _, pair := range p.User() {
					fmt.Printf("%s: %q=%q\n", id, pair.Key, pair.Val)
				}
				continue
			}
			v, _ := p.Get(id)
			fmt.Printf("%s: %v\n", id, v)
		}

	case "reason":
		c, err := wire.DecodeReasonCode(r)
		if err != nil {
			return err
		}

		fmt.Printf("0x%02x %s\n", c.Encode(), c)

	default:
		return fmt.Errorf("unknown mode %q", mode)
	}

	return nil
}
