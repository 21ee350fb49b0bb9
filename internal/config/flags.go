package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a flag.Value holding a host:port pair.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a partial StructuredConfig. Both binaries
// share one flag set; each reads the fields it needs.
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var adapterAddress string
	var adapterTimeout time.Duration
	var locale, sortMode, search string
	var noticeTTL time.Duration
	var printTable bool
	var seedCount int

	fs := flag.NewFlagSet(progName(), flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc health server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN (postgres:// URL or SQLite file path)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout (e.g., 30s, 1m)")
	fs.StringVar(&adapterAddress, "server", "", "Backend base URL used by the client")
	fs.DurationVar(&adapterTimeout, "server-timeout", 0, "Client request timeout (e.g., 5s)")
	fs.StringVar(&locale, "locale", "", "Name collation locale (BCP 47, e.g. ru, en)")
	fs.StringVar(&sortMode, "sort", "", "Sort mode: newest, oldest, name_asc, name_desc, email_asc")
	fs.DurationVar(&noticeTTL, "notice-ttl", 0, "How long notifications stay visible")
	fs.BoolVar(&printTable, "print", false, "Print the user table once and exit")
	fs.StringVar(&search, "search", "", "Search term applied in print mode")
	fs.IntVar(&seedCount, "seed-count", 0, "Number of demo users created by the seed command")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		View: View{
			Locale:      locale,
			DefaultSort: sortMode,
			NoticeTTL:   noticeTTL,
		},
		Print: Print{
			Enabled: printTable,
			Search:  search,
		},
		Seed: Seed{
			Count: seedCount,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func progName() string {
	if len(os.Args) == 0 {
		return "user-directory"
	}
	return os.Args[0]
}

// String returns host:port, or "" for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
