package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
)

var (
	errAddressFormat = errors.New("need address in a form `host:port`")
	errPortRange     = errors.New("port must be in range 1-65535")
)

// NetAddress is a listen address given on the command line. An empty host
// listens on every interface.
type NetAddress struct {
	Host string
	Port int
}

// String renders the address for net.Listen. The zero NetAddress renders as
// "" so that mergo leaves lower priority sources in place.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set implements flag.Value. IPv6 hosts must be bracketed ("[::1]:8080").
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", errAddressFormat, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return errPortRange
	}

	a.Host = host
	a.Port = port
	return nil
}

// ParseFlags parses the process command line.
//
// Flags:
//
//	-a                       listen address [host]:port
//	-d                       database DSN (postgres://... or file:...)
//	-c, -config              JSON config file path
//	-token-sign-key          token signing key
//	-token-issuer            token issuer
//	-token-duration          token lifetime, e.g. "24h"
//	-app-version             version reported by /api/version
//	-request-timeout         HTTP read/write timeout, e.g. "30s"
//	-log-level               zerolog level name
//	-cache-ttl               cache entry lifetime, e.g. "10m"
//	-cache-cleanup-interval  cache purge interval, e.g. "1m"
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var (
		cfg     StructuredConfig
		address NetAddress
	)

	fs.Var(&address, "a", "HTTP listen address [host]:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias of -c)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token lifetime")
	fs.StringVar(&cfg.App.Version, "app-version", "", "Version reported by the version endpoint")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "HTTP read/write timeout")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&cfg.Cache.TTL, "cache-ttl", 0, "Cache entry lifetime")
	fs.DurationVar(&cfg.Cache.CleanupInterval, "cache-cleanup-interval", 0, "Cache purge interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = address.String()
	return &cfg, nil
}
