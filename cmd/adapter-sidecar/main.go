// Command adapter-sidecar is a runnable demonstration adapter process. It
// wires signal handling, socket path resolution, and a poll loop around a
// single demo adapter plugin, the way the reference implementation's
// example program does around SidecarRuntime.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"adapter-sidecar/adapter"
	"adapter-sidecar/discovery"
	"adapter-sidecar/dispatch"
	"adapter-sidecar/domain"
	"adapter-sidecar/middleware"
	"adapter-sidecar/transport"
)

const defaultSocketPath = "/tmp/phi-adapter-example.sock"

const pollTimeout = 250 * time.Millisecond

func resolveSocketPath(args []string) string {
	if len(args) > 1 {
		return args[1]
	}
	if v := os.Getenv("PHI_ADAPTER_SOCKET_PATH"); v != "" {
		return v
	}
	return defaultSocketPath
}

func main() {
	registryEndpoints := flag.String("registry-endpoints", "", "comma-separated etcd endpoints for optional adapter discovery registration")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)

	socketPath := resolveSocketPath(append([]string{os.Args[0]}, flag.Args()...))

	srv := transport.NewServer(socketPath)
	reg := adapter.NewRegistry()
	registerExamplePlugin(reg)

	plugin, ok := reg.New("example")
	if !ok {
		logger.Fatalf("example plugin type not registered")
	}

	var disc *discovery.Registry
	if *registryEndpoints != "" {
		var err error
		disc, err = discovery.NewRegistry(strings.Split(*registryEndpoints, ","))
		if err != nil {
			logger.Printf("discovery registry unavailable: %v", err)
			disc = nil
		}
	}

	host, handlers := adapter.NewHost(srv, "example", plugin)
	handlers.OnProtocolError = func(message string) {
		logger.Printf("protocol error: %s", message)
	}

	d := dispatch.NewDispatcher(srv, handlers)
	d.Use(
		middleware.LoggingMiddleware(),
		middleware.RateLimitMiddleware(20, 5),
		middleware.BusyRetryMiddleware(3, 50*time.Millisecond),
	)
	srv.OnFrame = d.HandleFrame
	srv.OnConnected = func() {
		logger.Printf("client connected")
		_ = dispatch.PublishConnectionStateChanged(d, true)
	}
	srv.OnDisconnected = func() {
		logger.Printf("client disconnected")
		if disc != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = disc.Deregister(ctx, "example", socketPath)
			cancel()
		}
	}

	if err := srv.Start(); err != nil {
		logger.Fatalf("start: %v", err)
	}
	defer srv.Stop()

	logger.Printf("phi adapter sidecar example listening on %s", socketPath)

	if disc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := disc.Register(ctx, discovery.Instance{PluginType: "example", SocketPath: socketPath}, 30); err != nil {
			logger.Printf("discovery register failed: %v", err)
		}
		cancel()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	running := true
	for running {
		select {
		case <-sigCh:
			running = false
		default:
		}
		if err := srv.PollOnce(pollTimeout); err != nil {
			logger.Printf("poll failed: %v", err)
			time.Sleep(pollTimeout)
		}
	}

	if bootstrap, ok := host.Bootstrap(); ok {
		logger.Printf("shutting down, last bootstrapped adapter %q (id=%d)", bootstrap.Adapter.Name, bootstrap.AdapterID)
	}
}

// registerExamplePlugin registers a minimal demo adapter under plugin type
// "example": a channel-invoke handler that echoes back whatever value it
// was told to set on any channel, a rename handler that always succeeds,
// and an adapter-action handler that reports NotSupported. It declares no
// devices or channels of its own.
func registerExamplePlugin(reg *adapter.Registry) {
	reg.Register("example", func() *adapter.Plugin {
		p := &adapter.Plugin{
			DisplayName: "Example Adapter",
			Description: "Demo adapter exercising the sidecar IPC surface.",
			APIVersion:  "1.0",
			TimeoutMs:   5000,
		}
		p.OnChannelInvoke = func(req dispatch.ChannelInvokeRequest) domain.CmdResponse {
			return domain.CmdResponse{
				Status:     domain.StatusSuccess,
				FinalValue: req.Value,
			}
		}
		p.OnDeviceNameUpdate = func(req dispatch.DeviceNameUpdateRequest) domain.CmdResponse {
			return domain.CmdResponse{Status: domain.StatusSuccess}
		}
		p.OnAdapterActionInvoke = func(req dispatch.AdapterActionInvokeRequest) domain.ActionResponse {
			return domain.ActionResponse{Status: domain.StatusNotSupported, ResultType: domain.ActionResultNone}
		}
		return p
	})
}
