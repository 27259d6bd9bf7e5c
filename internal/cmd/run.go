package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/solohq/soloist/internal/addrspec"
	"github.com/solohq/soloist/internal/config"
	"github.com/solohq/soloist/internal/logging"
	"github.com/solohq/soloist/internal/single"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var runCmd = &cobra.Command{
	Use:   "run [args...]",
	Short: "Become the primary instance, or hand off to it",
	Long: `Run coordinates with other soloist processes for the same user. If no
primary is running this process becomes it, holds the instance socket,
and logs handoffs from later invocations until interrupted. If a primary
already exists, the arguments are forwarded to it and this process exits.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("listen", "", `extra listener address ("unix:/path", "unix:@name", "tcp:host:port")`)
	_ = viper.BindPFlag("listen.spec", runCmd.Flags().Lookup("listen"))
}

// handoff is the single line a secondary writes to the primary before exiting.
type handoff struct {
	PID  int      `json:"pid"`
	Dir  string   `json:"dir"`
	Args []string `json:"args"`
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	id := single.CurrentIdentity(cfg.Instance.Name, cfg.Instance.Group)
	handle, err := single.Acquire(log, id)
	if err != nil {
		return err
	}
	defer handle.Release()

	if handle.Role() == single.Secondary {
		return handOff(cmd, handle, args)
	}
	return servePrimary(cmd, cfg, log, handle)
}

// handOff forwards this invocation's arguments to the running primary.
func handOff(cmd *cobra.Command, handle *single.Handle, args []string) error {
	dir, _ := os.Getwd()
	msg := handoff{PID: os.Getpid(), Dir: dir, Args: args}
	if err := json.NewEncoder(handle.Conn()).Encode(&msg); err != nil {
		return fmt.Errorf("handing off to primary: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "handed off to running primary")
	return nil
}

// servePrimary accepts handoffs until the process is interrupted. The
// coordination listener is always served; an extra listener from
// listen.spec is served alongside it when configured.
func servePrimary(cmd *cobra.Command, cfg *config.Config, log *logging.Logger, handle *single.Handle) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listeners := []net.Listener{handle.Listener()}
	if spec := cfg.Listen.Spec; spec != "" {
		ep, err := addrspec.Parse(spec)
		if err != nil {
			return err
		}
		extra, err := ep.Listen()
		if err != nil {
			return fmt.Errorf("opening extra listener %s: %w", spec, err)
		}
		defer extra.Close()
		if ep.CleanupPath != "" {
			defer os.Remove(ep.CleanupPath)
		}
		log.Info("extra listener open", "spec", spec)
		listeners = append(listeners, extra)
	}

	log.Info("running as primary", "pid", os.Getpid())
	fmt.Fprintln(cmd.OutOrStdout(), "running as primary, interrupt to exit")

	for _, ln := range listeners {
		go acceptLoop(log, ln)
	}

	<-ctx.Done()
	log.Info("shutting down")
	return nil
}

func acceptLoop(log *logging.Logger, ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			// The listener closes on shutdown; nothing to report.
			return
		}
		go serveConn(log, conn)
	}
}

func serveConn(log *logging.Logger, conn net.Conn) {
	defer conn.Close()
	dec := json.NewDecoder(conn)
	for {
		var msg handoff
		if err := dec.Decode(&msg); err != nil {
			if !errors.Is(err, io.EOF) {
				log.Warn("malformed handoff", "error", err)
			}
			return
		}
		log.Info("received handoff", "pid", msg.PID, "dir", msg.Dir, "args", msg.Args)
	}
}
