package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a listen address split into host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line arguments into a partial config.
//
// Flags:
//
//	-a               auth server listen address in format [host]:[port]
//	-u               auth API base URL used by the client
//	-d               database DSN (SQLite path, ":memory:" or postgres://...)
//	-c/-config       json file path with configs
//	-settle-delay    delay before leaving a signed-in login screen (e.g. "1s")
//	-log-file        client log file path
//	-login-timeout   login request timeout (e.g. "15s")
//	-health-timeout  health check timeout (e.g. "5s")
//	-request-timeout server request timeout (e.g. "30s")
//	-token-sign-key  token signing key
//	-token-issuer    token issuer name
//	-token-duration  token lifetime (e.g. "24h")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("nurse-notes", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var adapterAddress string
	var databaseDSN string
	var jsonConfigPath string
	var settleDelay time.Duration
	var logFile string
	var loginTimeout time.Duration
	var healthTimeout time.Duration
	var requestTimeout time.Duration
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration

	fs.Var(&serverAddress, "a", "Auth server net address host:port")
	fs.StringVar(&adapterAddress, "u", "", "Auth API base URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&settleDelay, "settle-delay", 0, "Delay before leaving a signed-in login screen")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.DurationVar(&loginTimeout, "login-timeout", 0, "Login request timeout")
	fs.DurationVar(&healthTimeout, "health-timeout", 0, "Health check timeout")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token lifetime")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SettleDelay: settleDelay,
			LogFile:     logFile,
		},
		Auth: Auth{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{DB: DB{DSN: databaseDSN}},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:   adapterAddress,
			LoginTimeout:  loginTimeout,
			HealthTimeout: healthTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the host:port form of the address, or an empty string
// when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses s in host:port form. The port must be positive and the host
// must be "localhost" or a valid IP address.
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

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
