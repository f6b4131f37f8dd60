package db

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

// SSHConfig holds SSH jump host details used to reach the database
type SSHConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	KeyPath        string
	KnownHostsPath string // defaults to ~/.ssh/known_hosts
}

// SSHTunnel represents an active SSH connection that can dial
type SSHTunnel struct {
	client *ssh.Client
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func authMethods(config *SSHConfig) []ssh.AuthMethod {
	var methods []ssh.AuthMethod

	// Explicit key first
	if config.KeyPath != "" {
		key, err := os.ReadFile(expandHome(config.KeyPath))
		if err != nil {
			log.Printf("SSH: failed to read private key %s: %v", config.KeyPath, err)
		} else {
			signer, err := ssh.ParsePrivateKey(key)
			if err != nil && config.Password != "" {
				signer, err = ssh.ParsePrivateKeyWithPassphrase(key, []byte(config.Password))
			}
			if err != nil {
				log.Printf("SSH: failed to parse private key: %v", err)
			} else {
				methods = append(methods, ssh.PublicKeys(signer))
			}
		}
	}

	if socket := os.Getenv("SSH_AUTH_SOCK"); socket != "" {
		if conn, err := net.Dial("unix", socket); err == nil {
			methods = append(methods, ssh.PublicKeysCallback(agent.NewClient(conn).Signers))
		} else {
			log.Printf("SSH: failed to dial SSH_AUTH_SOCK: %v", err)
		}
	}

	if config.Password != "" {
		methods = append(methods,
			ssh.Password(config.Password),
			ssh.KeyboardInteractive(func(user, instruction string, questions []string, echos []bool) ([]string, error) {
				answers := make([]string, len(questions))
				for i := range answers {
					answers[i] = config.Password
				}
				return answers, nil
			}),
		)
	}
	return methods
}

func hostKeyCallback(config *SSHConfig) ssh.HostKeyCallback {
	path := config.KnownHostsPath
	if path == "" {
		path = "~/.ssh/known_hosts"
	}
	cb, err := knownhosts.New(expandHome(path))
	if err != nil {
		log.Printf("SSH: known_hosts unavailable (%v), host key not verified", err)
		return ssh.InsecureIgnoreHostKey()
	}
	return cb
}

// NewSSHTunnel establishes an SSH connection
func NewSSHTunnel(config *SSHConfig) (*SSHTunnel, error) {
	if config.Host == "" {
		return nil, fmt.Errorf("SSH host is required")
	}

	methods := authMethods(config)
	if len(methods) == 0 {
		return nil, fmt.Errorf("no valid SSH authentication methods found")
	}

	port := config.Port
	if port == 0 {
		port = 22
	}

	address := net.JoinHostPort(config.Host, fmt.Sprint(port))
	log.Printf("SSH: dialing %s as %s", address, config.User)
	client, err := ssh.Dial("tcp", address, &ssh.ClientConfig{
		User:            config.User,
		Auth:            methods,
		HostKeyCallback: hostKeyCallback(config),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to dial SSH: %w", err)
	}

	return &SSHTunnel{client: client}, nil
}

// DialContext connects to a remote address through the tunnel
func (t *SSHTunnel) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	type result struct {
		conn net.Conn
		err  error
	}
	ch := make(chan result, 1)

	go func() {
		conn, err := t.client.Dial(network, addr)
		ch <- result{conn, err}
	}()

	select {
	case <-ctx.Done():
		// Close a connection that completes after we gave up on it
		go func() {
			if res := <-ch; res.conn != nil {
				res.conn.Close()
			}
		}()
		return nil, ctx.Err()
	case res := <-ch:
		return res.conn, res.err
	}
}

// Close closes the SSH connection
func (t *SSHTunnel) Close() error {
	return t.client.Close()
}

// ParseSSHTarget reads a user@host[:port] jump host
func ParseSSHTarget(target string) (*SSHConfig, error) {
	user, hostport, ok := strings.Cut(target, "@")
	if !ok || user == "" || hostport == "" {
		return nil, fmt.Errorf("ssh target %q: want user@host[:port]", target)
	}

	cfg := &SSHConfig{User: user, Host: hostport}
	if host, port, err := net.SplitHostPort(hostport); err == nil {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 || p > 65535 {
			return nil, fmt.Errorf("ssh target %q: bad port %q", target, port)
		}
		cfg.Host, cfg.Port = host, p
	}
	return cfg, nil
}
